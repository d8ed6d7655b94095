package repository

import (
	"context"
	"time"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "services"
	defaultLineItemsTableName     = "service_spareparts"
	serviceOrdersTenantIDIndex    = "tenant_id-index"
	lineItemsServiceIDIndex       = "service_id-index"
)

type serviceOrderItem struct {
	ID            string `dynamodbav:"id"`
	TenantID      string `dynamodbav:"tenant_id"`
	ServiceNumber string `dynamodbav:"service_number"`

	CustomerID    string `dynamodbav:"customer_id,omitempty"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	LicensePlate  string `dynamodbav:"license_plate,omitempty"`
	VehicleBrand  string `dynamodbav:"vehicle_brand,omitempty"`
	VehicleModel  string `dynamodbav:"vehicle_model,omitempty"`
	VehicleYear   int    `dynamodbav:"vehicle_year,omitempty"`
	VehicleKM     int    `dynamodbav:"vehicle_km,omitempty"`

	Complaint  string `dynamodbav:"complaint,omitempty"`
	Technician string `dynamodbav:"technician,omitempty"`
	Status     string `dynamodbav:"status"`
	Progress   int    `dynamodbav:"progress"`

	EstimatedCost   float64 `dynamodbav:"estimated_cost,omitempty"`
	SparePartsTotal float64 `dynamodbav:"spareparts_total"`
	ServiceFee      float64 `dynamodbav:"service_fee"`
	TaxRatePercent  float64 `dynamodbav:"tax_rate"`
	TaxAmount       float64 `dynamodbav:"tax_amount"`
	GrandTotal      float64 `dynamodbav:"grand_total"`

	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentDate   string `dynamodbav:"payment_date,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type lineItemItem struct {
	ID          string  `dynamodbav:"id"`
	ServiceID   string  `dynamodbav:"service_id"`
	SparepartID string  `dynamodbav:"sparepart_id"`
	ItemName    string  `dynamodbav:"item_name"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	LineTotal   float64 `dynamodbav:"line_total"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities and their line
// items in DynamoDB.
//
// Table requirements:
//   - services: PK id (string), GSI tenant_id-index (PK tenant_id)
//   - service_spareparts: PK id (string), GSI service_id-index (PK service_id)

type ServiceOrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("SERVICES_TABLE", defaultServiceOrdersTableName),
		itemsTableName: getenvDefault("SERVICE_SPAREPARTS_TABLE", defaultLineItemsTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceOrdersTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

// UpdatePaymentStatus writes only the derived settlement fields so the cost
// snapshot persisted at save time is never touched by a payment.
func (r *ServiceOrderDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, paymentDate *time.Time) (entities.ServiceOrder, error) {
	expr := "SET payment_status = :ps, updated_at = :now"
	values := map[string]types.AttributeValue{
		":ps":  &types.AttributeValueMemberS{Value: string(status)},
		":now": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
	}
	if paymentDate != nil {
		expr += ", payment_date = :pd"
		values[":pd"] = &types.AttributeValueMemberS{Value: formatTime(*paymentDate)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// ReplaceLineItems deletes every stored line item for the order and inserts
// the new set. The caller holds the recomputed totals on the order itself.
func (r *ServiceOrderDynamoRepository) ReplaceLineItems(ctx context.Context, serviceID string, items []entities.ServiceLineItem) error {
	existing, err := r.ListLineItems(ctx, serviceID)
	if err != nil {
		return err
	}

	for _, old := range existing {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.itemsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: old.ID},
			},
		})
		if err != nil {
			return err
		}
	}

	for _, li := range items {
		av, err := attributevalue.MarshalMap(toLineItemItem(li))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.itemsTableName),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ServiceOrderDynamoRepository) ListLineItems(ctx context.Context, serviceID string) ([]entities.ServiceLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(lineItemsServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceLineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemItem(it))
	}
	return items, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:              o.ID,
		TenantID:        o.TenantID,
		ServiceNumber:   o.ServiceNumber,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		LicensePlate:    o.LicensePlate,
		VehicleBrand:    o.VehicleBrand,
		VehicleModel:    o.VehicleModel,
		VehicleYear:     o.VehicleYear,
		VehicleKM:       o.VehicleKM,
		Complaint:       o.Complaint,
		Technician:      o.Technician,
		Status:          string(o.Status),
		Progress:        o.Progress,
		EstimatedCost:   o.EstimatedCost,
		SparePartsTotal: o.SparePartsTotal,
		ServiceFee:      o.ServiceFee,
		TaxRatePercent:  o.TaxRatePercent,
		TaxAmount:       o.TaxAmount,
		GrandTotal:      o.GrandTotal,
		PaymentStatus:   string(o.PaymentStatus),
		PaymentDate:     formatTimePtr(o.PaymentDate),
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:              it.ID,
		TenantID:        it.TenantID,
		ServiceNumber:   it.ServiceNumber,
		CustomerID:      it.CustomerID,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		LicensePlate:    it.LicensePlate,
		VehicleBrand:    it.VehicleBrand,
		VehicleModel:    it.VehicleModel,
		VehicleYear:     it.VehicleYear,
		VehicleKM:       it.VehicleKM,
		Complaint:       it.Complaint,
		Technician:      it.Technician,
		Status:          entities.OrderStatus(it.Status),
		Progress:        it.Progress,
		EstimatedCost:   it.EstimatedCost,
		SparePartsTotal: it.SparePartsTotal,
		ServiceFee:      it.ServiceFee,
		TaxRatePercent:  it.TaxRatePercent,
		TaxAmount:       it.TaxAmount,
		GrandTotal:      it.GrandTotal,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		PaymentDate:     parseTimePtr(it.PaymentDate),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func toLineItemItem(li entities.ServiceLineItem) lineItemItem {
	return lineItemItem{
		ID:          li.ID,
		ServiceID:   li.ServiceID,
		SparepartID: li.SparepartID,
		ItemName:    li.ItemName,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		LineTotal:   li.LineTotal,
		CreatedAt:   formatTime(li.CreatedAt),
	}
}

func fromLineItemItem(it lineItemItem) entities.ServiceLineItem {
	return entities.ServiceLineItem{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		SparepartID: it.SparepartID,
		ItemName:    it.ItemName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		LineTotal:   it.LineTotal,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
