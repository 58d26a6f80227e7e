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

const (
	defaultQuotationsTableName   = "quotations"
	quotationEngagementIndexName = "engagement_id-index"
)

type lineItemItem struct {
	ProductID string  `dynamodbav:"product_id"`
	Name      string  `dynamodbav:"name"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

type paymentEventItem struct {
	Type      string `dynamodbav:"type"`
	Timestamp string `dynamodbav:"timestamp"`
	Message   string `dynamodbav:"message,omitempty"`
}

type staffResponseItem struct {
	ID         string `dynamodbav:"id"`
	Timestamp  string `dynamodbav:"timestamp"`
	ActorID    string `dynamodbav:"actor_id"`
	Note       string `dynamodbav:"note"`
	FollowUpOn string `dynamodbav:"follow_up_on,omitempty"`
}

type quotationItem struct {
	ID           string `dynamodbav:"id"`
	EngagementID string `dynamodbav:"engagement_id"`
	CustomerID   string `dynamodbav:"customer_id"`
	Status       string `dynamodbav:"status"`

	Items       []lineItemItem `dynamodbav:"items"`
	TotalAmount float64        `dynamodbav:"total_amount"`

	PaymentTimeline []paymentEventItem  `dynamodbav:"payment_timeline"`
	StaffResponses  []staffResponseItem `dynamodbav:"staff_responses"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI engagement_id-index: PK engagement_id (string)
//
// payment_timeline and staff_responses are append-only lists. Appends use
// list_append with if_not_exists so concurrent writers interleave instead of
// clobbering each other; entries are never rewritten or removed.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) GetByEngagementID(ctx context.Context, engagementID string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationEngagementIndexName),
		KeyConditionExpression: aws.String("#engagement_id = :engagement_id"),
		ExpressionAttributeNames: map[string]string{
			"#engagement_id": "engagement_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":engagement_id": &types.AttributeValueMemberS{Value: engagementID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	return r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression: aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *QuotationDynamoRepository) AppendTimelineEvent(ctx context.Context, id string, event entities.PaymentEvent) error {
	eventAV, err := attributevalue.Marshal(toPaymentEventItem(event))
	if err != nil {
		return err
	}

	_, err = r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression: aws.String("SET #timeline = list_append(if_not_exists(#timeline, :empty), :event), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#timeline":   "payment_timeline",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":event":      &types.AttributeValueMemberL{Value: []types.AttributeValue{eventAV}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func (r *QuotationDynamoRepository) AppendStaffResponse(ctx context.Context, id string, response entities.StaffResponse) error {
	responseAV, err := attributevalue.Marshal(toStaffResponseItem(response))
	if err != nil {
		return err
	}

	_, err = r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression: aws.String("SET #responses = list_append(if_not_exists(#responses, :empty), :response), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#responses":  "staff_responses",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":response":   &types.AttributeValueMemberL{Value: []types.AttributeValue{responseAV}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

func (r *QuotationDynamoRepository) update(ctx context.Context, id string, in *dynamodb.UpdateItemInput) (entities.Quotation, error) {
	in.TableName = aws.String(r.tableName)
	in.Key = map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	in.ConditionExpression = aws.String("attribute_exists(#id)")
	in.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toPaymentEventItem(e entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		Type:      e.Type,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
		Message:   e.Message,
	}
}

func toStaffResponseItem(s entities.StaffResponse) staffResponseItem {
	it := staffResponseItem{
		ID:        s.ID,
		Timestamp: s.Timestamp.UTC().Format(time.RFC3339Nano),
		ActorID:   s.ActorID,
		Note:      s.Note,
	}
	if s.FollowUpOn != nil {
		it.FollowUpOn = s.FollowUpOn.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:           q.ID,
		EngagementID: q.EngagementID,
		CustomerID:   q.CustomerID,
		Status:       string(q.Status),
		TotalAmount:  q.TotalAmount,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	it.Items = make([]lineItemItem, 0, len(q.Items))
	for _, li := range q.Items {
		it.Items = append(it.Items, lineItemItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	it.PaymentTimeline = make([]paymentEventItem, 0, len(q.PaymentTimeline))
	for _, e := range q.PaymentTimeline {
		it.PaymentTimeline = append(it.PaymentTimeline, toPaymentEventItem(e))
	}
	it.StaffResponses = make([]staffResponseItem, 0, len(q.StaffResponses))
	for _, s := range q.StaffResponses {
		it.StaffResponses = append(it.StaffResponses, toStaffResponseItem(s))
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Quotation{
		ID:           it.ID,
		EngagementID: it.EngagementID,
		CustomerID:   it.CustomerID,
		Status:       entities.QuotationStatus(it.Status),
		TotalAmount:  it.TotalAmount,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	for _, li := range it.Items {
		q.Items = append(q.Items, entities.LineItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	for _, e := range it.PaymentTimeline {
		ts, _ := time.Parse(time.RFC3339Nano, e.Timestamp)
		q.PaymentTimeline = append(q.PaymentTimeline, entities.PaymentEvent{
			Type:      e.Type,
			Timestamp: ts,
			Message:   e.Message,
		})
	}
	for _, s := range it.StaffResponses {
		ts, _ := time.Parse(time.RFC3339Nano, s.Timestamp)
		sr := entities.StaffResponse{
			ID:        s.ID,
			Timestamp: ts,
			ActorID:   s.ActorID,
			Note:      s.Note,
		}
		if s.FollowUpOn != "" {
			if f, err := time.Parse(time.RFC3339Nano, s.FollowUpOn); err == nil {
				sr.FollowUpOn = &f
			}
		}
		q.StaffResponses = append(q.StaffResponses, sr)
	}
	return q
}
