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

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID                 string  `dynamodbav:"id"`
	Name               string  `dynamodbav:"name"`
	OwnerName          string  `dynamodbav:"owner_name"`
	Email              string  `dynamodbav:"email"`
	Phone              string  `dynamodbav:"phone,omitempty"`
	Address            string  `dynamodbav:"address,omitempty"`
	Description        string  `dynamodbav:"description,omitempty"`
	Website            string  `dynamodbav:"website,omitempty"`
	BusinessHoursOpen  string  `dynamodbav:"business_hours_open,omitempty"`
	BusinessHoursClose string  `dynamodbav:"business_hours_close,omitempty"`
	ServiceTaxRate     float64 `dynamodbav:"service_tax_rate"`
	InvoiceTemplate    string  `dynamodbav:"invoice_template,omitempty"`
	EmailNotifications bool    `dynamodbav:"email_notifications"`
	SMSNotifications   bool    `dynamodbav:"sms_notifications"`
	Package            string  `dynamodbav:"package"`
	Status             string  `dynamodbav:"status"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the whole table; it backs the super-admin panel only and tenant
// counts stay small.

type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func (r *TenantDynamoRepository) Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) List(ctx context.Context) ([]entities.Tenant, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	tenants := make([]entities.Tenant, 0, len(out.Items))
	for _, raw := range out.Items {
		var it tenantItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tenants = append(tenants, fromTenantItem(it))
	}
	return tenants, nil
}

func toTenantItem(t entities.Tenant) tenantItem {
	return tenantItem{
		ID:                 t.ID,
		Name:               t.Name,
		OwnerName:          t.OwnerName,
		Email:              t.Email,
		Phone:              t.Phone,
		Address:            t.Address,
		Description:        t.Description,
		Website:            t.Website,
		BusinessHoursOpen:  t.BusinessHoursOpen,
		BusinessHoursClose: t.BusinessHoursClose,
		ServiceTaxRate:     t.ServiceTaxRate,
		InvoiceTemplate:    t.InvoiceTemplate,
		EmailNotifications: t.EmailNotifications,
		SMSNotifications:   t.SMSNotifications,
		Package:            string(t.Package),
		Status:             string(t.Status),
		CreatedAt:          formatTime(t.CreatedAt),
		UpdatedAt:          formatTime(t.UpdatedAt),
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		ID:                 it.ID,
		Name:               it.Name,
		OwnerName:          it.OwnerName,
		Email:              it.Email,
		Phone:              it.Phone,
		Address:            it.Address,
		Description:        it.Description,
		Website:            it.Website,
		BusinessHoursOpen:  it.BusinessHoursOpen,
		BusinessHoursClose: it.BusinessHoursClose,
		ServiceTaxRate:     it.ServiceTaxRate,
		InvoiceTemplate:    it.InvoiceTemplate,
		EmailNotifications: it.EmailNotifications,
		SMSNotifications:   it.SMSNotifications,
		Package:            entities.TenantPackage(it.Package),
		Status:             entities.TenantStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
