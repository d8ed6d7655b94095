package repository

import (
	"context"
	"strconv"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSparepartsTableName = "spareparts"
	sparepartsTenantIDIndex    = "tenant_id-index"
)

type sparepartItem struct {
	ID            string  `dynamodbav:"id"`
	TenantID      string  `dynamodbav:"tenant_id"`
	Code          string  `dynamodbav:"code"`
	Name          string  `dynamodbav:"name"`
	Category      string  `dynamodbav:"category,omitempty"`
	Brand         string  `dynamodbav:"brand,omitempty"`
	Description   string  `dynamodbav:"description,omitempty"`
	Stock         int     `dynamodbav:"stock"`
	MinimumStock  int     `dynamodbav:"minimum_stock"`
	PurchasePrice float64 `dynamodbav:"purchase_price"`
	SellingPrice  float64 `dynamodbav:"selling_price"`
	Location      string  `dynamodbav:"location,omitempty"`
	Supplier      string  `dynamodbav:"supplier,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// SparepartDynamoRepository persists Sparepart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type SparepartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISparepartRepository = (*SparepartDynamoRepository)(nil)

func NewSparepartDynamoRepository(ddb *dynamodb.Client) *SparepartDynamoRepository {
	return &SparepartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SPAREPARTS_TABLE", defaultSparepartsTableName),
	}
}

func (r *SparepartDynamoRepository) Create(ctx context.Context, s entities.Sparepart) (entities.Sparepart, error) {
	av, err := attributevalue.MarshalMap(toSparepartItem(s))
	if err != nil {
		return entities.Sparepart{}, err
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
		return entities.Sparepart{}, err
	}
	return s, nil
}

func (r *SparepartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sparepart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sparepart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sparepart{}, nil
	}

	var it sparepartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sparepart{}, err
	}
	return fromSparepartItem(it), nil
}

func (r *SparepartDynamoRepository) Update(ctx context.Context, s entities.Sparepart) (entities.Sparepart, error) {
	av, err := attributevalue.MarshalMap(toSparepartItem(s))
	if err != nil {
		return entities.Sparepart{}, err
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
		return entities.Sparepart{}, err
	}
	return s, nil
}

func (r *SparepartDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *SparepartDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Sparepart, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sparepartsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	spareparts := make([]entities.Sparepart, 0, len(out.Items))
	for _, raw := range out.Items {
		var it sparepartItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		spareparts = append(spareparts, fromSparepartItem(it))
	}
	return spareparts, nil
}

// AdjustStock applies a signed delta atomically. Negative deltas carry a
// conditional check so stock can never go below zero; a failed condition
// surfaces as types.ConditionalCheckFailedException.
func (r *SparepartDynamoRepository) AdjustStock(ctx context.Context, id string, delta int) (entities.Sparepart, error) {
	in := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET stock = stock + :delta, updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
			":now":   &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	if delta < 0 {
		in.ConditionExpression = aws.String("attribute_exists(#id) AND stock >= :need")
		in.ExpressionAttributeValues[":need"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		return entities.Sparepart{}, err
	}

	var it sparepartItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sparepart{}, err
	}
	return fromSparepartItem(it), nil
}

func toSparepartItem(s entities.Sparepart) sparepartItem {
	return sparepartItem{
		ID:            s.ID,
		TenantID:      s.TenantID,
		Code:          s.Code,
		Name:          s.Name,
		Category:      s.Category,
		Brand:         s.Brand,
		Description:   s.Description,
		Stock:         s.Stock,
		MinimumStock:  s.MinimumStock,
		PurchasePrice: s.PurchasePrice,
		SellingPrice:  s.SellingPrice,
		Location:      s.Location,
		Supplier:      s.Supplier,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromSparepartItem(it sparepartItem) entities.Sparepart {
	return entities.Sparepart{
		ID:            it.ID,
		TenantID:      it.TenantID,
		Code:          it.Code,
		Name:          it.Name,
		Category:      it.Category,
		Brand:         it.Brand,
		Description:   it.Description,
		Stock:         it.Stock,
		MinimumStock:  it.MinimumStock,
		PurchasePrice: it.PurchasePrice,
		SellingPrice:  it.SellingPrice,
		Location:      it.Location,
		Supplier:      it.Supplier,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
