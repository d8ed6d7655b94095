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
	defaultCustomersTableName = "customers"
	customersTenantIDIndex    = "tenant_id-index"
)

type customerItem struct {
	ID           string `dynamodbav:"id"`
	TenantID     string `dynamodbav:"tenant_id"`
	CustomerCode string `dynamodbav:"customer_code"`
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	Address      string `dynamodbav:"address,omitempty"`
	Gender       string `dynamodbav:"gender,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CustomerDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	customers := make([]entities.Customer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it customerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		customers = append(customers, fromCustomerItem(it))
	}
	return customers, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:           c.ID,
		TenantID:     c.TenantID,
		CustomerCode: c.CustomerCode,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Gender:       c.Gender,
		Notes:        c.Notes,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:           it.ID,
		TenantID:     it.TenantID,
		CustomerCode: it.CustomerCode,
		Name:         it.Name,
		Phone:        it.Phone,
		Email:        it.Email,
		Address:      it.Address,
		Gender:       it.Gender,
		Notes:        it.Notes,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
