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
	defaultProfilesTableName = "profiles"
	profilesEmailIndex       = "email-index"
)

type profileItem struct {
	ID           string `dynamodbav:"id"`
	TenantID     string `dynamodbav:"tenant_id,omitempty"`
	FullName     string `dynamodbav:"full_name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Role         string `dynamodbav:"role"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
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
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Profile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profilesEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Items) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) Update(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
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
		return entities.Profile{}, err
	}
	return p, nil
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		ID:           p.ID,
		TenantID:     p.TenantID,
		FullName:     p.FullName,
		Email:        p.Email,
		Phone:        p.Phone,
		Role:         string(p.Role),
		PasswordHash: p.PasswordHash,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	return entities.Profile{
		ID:           it.ID,
		TenantID:     it.TenantID,
		FullName:     it.FullName,
		Email:        it.Email,
		Phone:        it.Phone,
		Role:         entities.Role(it.Role),
		PasswordHash: it.PasswordHash,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
