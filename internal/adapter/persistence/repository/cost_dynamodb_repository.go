package repository

import (
	"context"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCostsTableName = "costs"
	costsTenantIDIndex    = "tenant_id-index"
)

type costItem struct {
	ID        string  `dynamodbav:"id"`
	TenantID  string  `dynamodbav:"tenant_id"`
	CostName  string  `dynamodbav:"cost_name"`
	Amount    float64 `dynamodbav:"amount"`
	CostDate  string  `dynamodbav:"cost_date"`
	Notes     string  `dynamodbav:"notes,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// CostDynamoRepository persists operational Cost records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type CostDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostRepository = (*CostDynamoRepository)(nil)

func NewCostDynamoRepository(ddb *dynamodb.Client) *CostDynamoRepository {
	return &CostDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COSTS_TABLE", defaultCostsTableName),
	}
}

func (r *CostDynamoRepository) Create(ctx context.Context, c entities.Cost) (entities.Cost, error) {
	av, err := attributevalue.MarshalMap(toCostItem(c))
	if err != nil {
		return entities.Cost{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Cost{}, err
	}
	return c, nil
}

func (r *CostDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cost{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cost{}, nil
	}

	var it costItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cost{}, err
	}
	return fromCostItem(it), nil
}

func (r *CostDynamoRepository) Update(ctx context.Context, c entities.Cost) (entities.Cost, error) {
	av, err := attributevalue.MarshalMap(toCostItem(c))
	if err != nil {
		return entities.Cost{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Cost{}, err
	}
	return c, nil
}

func (r *CostDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CostDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Cost, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(costsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	costs := make([]entities.Cost, 0, len(out.Items))
	for _, raw := range out.Items {
		var it costItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		costs = append(costs, fromCostItem(it))
	}
	return costs, nil
}

func toCostItem(c entities.Cost) costItem {
	return costItem{
		ID:        c.ID,
		TenantID:  c.TenantID,
		CostName:  c.CostName,
		Amount:    c.Amount,
		CostDate:  formatTime(c.CostDate),
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCostItem(it costItem) entities.Cost {
	return entities.Cost{
		ID:        it.ID,
		TenantID:  it.TenantID,
		CostName:  it.CostName,
		Amount:    it.Amount,
		CostDate:  parseTime(it.CostDate),
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
