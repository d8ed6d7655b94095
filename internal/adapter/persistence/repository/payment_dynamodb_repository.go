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
	defaultPaymentsTableName = "payments"
	paymentsServiceIDIndex   = "service_id-index"
	paymentsTenantIDIndex    = "tenant_id-index"
)

type paymentItem struct {
	ID                string  `dynamodbav:"id"`
	TenantID          string  `dynamodbav:"tenant_id"`
	ServiceID         string  `dynamodbav:"service_id"`
	PaymentNumber     string  `dynamodbav:"payment_number"`
	Amount            float64 `dynamodbav:"amount"`
	Method            string  `dynamodbav:"payment_method"`
	Status            string  `dynamodbav:"status"`
	Notes             string  `dynamodbav:"notes,omitempty"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	ProviderResponse  string  `dynamodbav:"provider_response,omitempty"`
	PaymentDate       string  `dynamodbav:"payment_date"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists the append-only Payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)
//   - GSI: tenant_id-index (PK: tenant_id)
//
// Create uses a conditional put so a retried request can never double-insert
// the same ledger entry. There is no update or delete path.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsServiceIDIndex, "service_id", serviceID)
}

func (r *PaymentDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsTenantIDIndex, "tenant_id", tenantID)
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		TenantID:          p.TenantID,
		ServiceID:         p.ServiceID,
		PaymentNumber:     p.PaymentNumber,
		Amount:            p.Amount,
		Method:            string(p.Method),
		Status:            p.Status,
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderResponse:  string(p.ProviderResponse),
		PaymentDate:       formatTime(p.PaymentDate),
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	var providerResponse []byte
	if it.ProviderResponse != "" {
		providerResponse = []byte(it.ProviderResponse)
	}
	return entities.Payment{
		ID:                it.ID,
		TenantID:          it.TenantID,
		ServiceID:         it.ServiceID,
		PaymentNumber:     it.PaymentNumber,
		Amount:            it.Amount,
		Method:            entities.PaymentMethod(it.Method),
		Status:            it.Status,
		Notes:             it.Notes,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderResponse:  providerResponse,
		PaymentDate:       parseTime(it.PaymentDate),
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
