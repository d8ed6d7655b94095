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
	defaultVehiclesTableName = "customer_vehicles"
	vehiclesCustomerIDIndex  = "customer_id-index"
)

type vehicleItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	LicensePlate  string `dynamodbav:"license_plate,omitempty"`
	Brand         string `dynamodbav:"brand,omitempty"`
	Model         string `dynamodbav:"model,omitempty"`
	Year          int    `dynamodbav:"year,omitempty"`
	Color         string `dynamodbav:"color,omitempty"`
	ChassisNumber string `dynamodbav:"chassis_number,omitempty"`
	EngineNumber  string `dynamodbav:"engine_number,omitempty"`
	IsPrimary     bool   `dynamodbav:"is_primary"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists CustomerVehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.CustomerVehicle) (entities.CustomerVehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.CustomerVehicle{}, err
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
		return entities.CustomerVehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerVehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomerVehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerVehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerVehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.CustomerVehicle) (entities.CustomerVehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.CustomerVehicle{}, err
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
		return entities.CustomerVehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *VehicleDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.CustomerVehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	vehicles := make([]entities.CustomerVehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, fromVehicleItem(it))
	}
	return vehicles, nil
}

func toVehicleItem(v entities.CustomerVehicle) vehicleItem {
	return vehicleItem{
		ID:            v.ID,
		CustomerID:    v.CustomerID,
		LicensePlate:  v.LicensePlate,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		Color:         v.Color,
		ChassisNumber: v.ChassisNumber,
		EngineNumber:  v.EngineNumber,
		IsPrimary:     v.IsPrimary,
		CreatedAt:     formatTime(v.CreatedAt),
		UpdatedAt:     formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.CustomerVehicle {
	return entities.CustomerVehicle{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		LicensePlate:  it.LicensePlate,
		Brand:         it.Brand,
		Model:         it.Model,
		Year:          it.Year,
		Color:         it.Color,
		ChassisNumber: it.ChassisNumber,
		EngineNumber:  it.EngineNumber,
		IsPrimary:     it.IsPrimary,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
