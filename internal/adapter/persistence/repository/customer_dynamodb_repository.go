package repository

import (
	"context"
	"errors"
	"time"

	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type profilingPreferencesItem struct {
	Answers              map[string]string `dynamodbav:"answers"`
	Profiled             bool              `dynamodbav:"profiled"`
	LastProfilingAttempt string            `dynamodbav:"lastProfilingAttempt"`
}

type customerItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Phone   string `dynamodbav:"phone"`
	Email   string `dynamodbav:"email,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
	City    string `dynamodbav:"city,omitempty"`
	Pincode string `dynamodbav:"pincode,omitempty"`

	Preferences map[string]interface{} `dynamodbav:"preferences,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository reads and updates Customer records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The profiling merge writes only preferences.profiling via a document path,
// so preference families owned by other systems are left alone.

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

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
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

func (r *CustomerDynamoRepository) MergeProfilingPreferences(ctx context.Context, id string, prefs entities.ProfilingPreferences) (entities.Customer, error) {
	prefsAV, err := attributevalue.Marshal(profilingPreferencesItem{
		Answers:              prefs.Answers,
		Profiled:             prefs.Profiled,
		LastProfilingAttempt: prefs.LastProfilingAttempt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Customer{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #prefs = if_not_exists(#prefs, :empty), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#prefs":      "preferences",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty":      &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}

	out, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #prefs.#profiling = :profiling"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#prefs":     "preferences",
			"#profiling": "profiling",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":profiling": prefsAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:          it.ID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		Address:     it.Address,
		City:        it.City,
		Pincode:     it.Pincode,
		Preferences: it.Preferences,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
