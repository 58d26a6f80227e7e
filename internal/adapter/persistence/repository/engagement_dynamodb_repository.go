package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEngagementsTableName = "engagements"

type stageDetailItem struct {
	Note        string            `dynamodbav:"note,omitempty"`
	ActorID     string            `dynamodbav:"actor_id"`
	CompletedAt string            `dynamodbav:"completed_at"`
	Checklist   map[string]bool   `dynamodbav:"checklist,omitempty"`
	Answers     map[string]string `dynamodbav:"answers,omitempty"`
	Courier     string            `dynamodbav:"courier,omitempty"`
	TrackingID  string            `dynamodbav:"tracking_id,omitempty"`
}

type engagementItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id"`
	QuotationID string `dynamodbav:"quotation_id,omitempty"`

	WorkflowStatus map[string]string `dynamodbav:"workflow_status"`

	ProfilingDetails *stageDetailItem `dynamodbav:"profiling_details,omitempty"`
	QCDetails        *stageDetailItem `dynamodbav:"qc_details,omitempty"`
	PackagingDetails *stageDetailItem `dynamodbav:"packaging_details,omitempty"`
	DispatchDetails  *stageDetailItem `dynamodbav:"dispatch_details,omitempty"`

	BillStatus      string `dynamodbav:"bill_status,omitempty"`
	BillGeneratedAt string `dynamodbav:"bill_generated_at,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// stageDetailAttrs maps a stage to the attribute its wholesale detail record
// is written to. Quotation and payment stages carry no detail record; their
// state lives on the quotation document itself.
var stageDetailAttrs = map[entities.Stage]string{
	entities.StageProfiling: "profiling_details",
	entities.StageQC:        "qc_details",
	entities.StagePackaging: "packaging_details",
	entities.StageDispatch:  "dispatch_details",
}

// EngagementDynamoRepository persists Engagement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Workflow writes are conditional on the version attribute the caller read,
// so two actors racing on the same engagement cannot silently overwrite each
// other's sibling stages. A conditional miss is reported as a zero-value
// entity, matching the not-found convention of the read path.

type EngagementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
	}
}

func (r *EngagementDynamoRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	it := toEngagementItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Engagement{}, err
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
		return entities.Engagement{}, err
	}
	return e, nil
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

// UpdateWorkflow writes the whole workflow_status document plus the stage
// detail record in one conditional update, bumping the version counter.
func (r *EngagementDynamoRepository) UpdateWorkflow(ctx context.Context, id string, status map[entities.Stage]entities.StageStatus, stage entities.Stage, detail *entities.StageDetail, expectedVersion int64) (entities.Engagement, error) {
	statusAV, err := attributevalue.Marshal(workflowStatusToItem(status))
	if err != nil {
		return entities.Engagement{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #ws = :ws, #version = :new_version, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":ws":          statusAV,
		":version":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
		":new_version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion+1)},
		":updated_at":  &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#ws":         "workflow_status",
		"#version":    "version",
		"#updated_at": "updated_at",
	}

	if detail != nil {
		attr, ok := stageDetailAttrs[stage]
		if ok {
			detailAV, err := attributevalue.Marshal(toStageDetailItem(*detail))
			if err != nil {
				return entities.Engagement{}, err
			}
			expr += ", #detail = :detail"
			vals[":detail"] = detailAV
			names["#detail"] = attr
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :version"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}
	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) AttachQuotation(ctx context.Context, id string, quotationID string) (entities.Engagement, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quotation_id = :quotation_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":quotation_id": &types.AttributeValueMemberS{Value: quotationID},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quotation_id": "quotation_id",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EngagementDynamoRepository) UpdateBillSummary(ctx context.Context, id string, status entities.BillStatus, generatedAt time.Time) (entities.Engagement, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #bill_status = :bill_status, #bill_generated_at = :bill_generated_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":bill_status":       &types.AttributeValueMemberS{Value: string(status)},
			":bill_generated_at": &types.AttributeValueMemberS{Value: generatedAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#bill_status":       "bill_status",
			"#bill_generated_at": "bill_generated_at",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EngagementDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Engagement, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}
	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func workflowStatusToItem(status map[entities.Stage]entities.StageStatus) map[string]string {
	out := make(map[string]string, len(status))
	for k, v := range status {
		out[string(k)] = string(v)
	}
	return out
}

func workflowStatusFromItem(status map[string]string) map[entities.Stage]entities.StageStatus {
	out := make(map[entities.Stage]entities.StageStatus, len(status))
	for k, v := range status {
		out[entities.Stage(k)] = entities.StageStatus(v)
	}
	return out
}

func toStageDetailItem(d entities.StageDetail) stageDetailItem {
	return stageDetailItem{
		Note:        d.Note,
		ActorID:     d.ActorID,
		CompletedAt: d.CompletedAt.UTC().Format(time.RFC3339Nano),
		Checklist:   d.Checklist,
		Answers:     d.Answers,
		Courier:     d.Courier,
		TrackingID:  d.TrackingID,
	}
}

func fromStageDetailItem(it *stageDetailItem) *entities.StageDetail {
	if it == nil {
		return nil
	}
	completedAt, _ := time.Parse(time.RFC3339Nano, it.CompletedAt)
	return &entities.StageDetail{
		Note:        it.Note,
		ActorID:     it.ActorID,
		CompletedAt: completedAt,
		Checklist:   it.Checklist,
		Answers:     it.Answers,
		Courier:     it.Courier,
		TrackingID:  it.TrackingID,
	}
}

func toEngagementItem(e entities.Engagement) engagementItem {
	it := engagementItem{
		ID:               e.ID,
		CustomerID:       e.CustomerID,
		QuotationID:      e.QuotationID,
		WorkflowStatus:   workflowStatusToItem(e.WorkflowStatus),
		ProfilingDetails: detailItemOrNil(e.ProfilingDetails),
		QCDetails:        detailItemOrNil(e.QCDetails),
		PackagingDetails: detailItemOrNil(e.PackagingDetails),
		DispatchDetails:  detailItemOrNil(e.DispatchDetails),
		BillStatus:       string(e.BillStatus),
		Version:          e.Version,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.BillGeneratedAt != nil {
		it.BillGeneratedAt = e.BillGeneratedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func detailItemOrNil(d *entities.StageDetail) *stageDetailItem {
	if d == nil {
		return nil
	}
	it := toStageDetailItem(*d)
	return &it
}

func fromEngagementItem(it engagementItem) entities.Engagement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	e := entities.Engagement{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		QuotationID:      it.QuotationID,
		WorkflowStatus:   workflowStatusFromItem(it.WorkflowStatus),
		ProfilingDetails: fromStageDetailItem(it.ProfilingDetails),
		QCDetails:        fromStageDetailItem(it.QCDetails),
		PackagingDetails: fromStageDetailItem(it.PackagingDetails),
		DispatchDetails:  fromStageDetailItem(it.DispatchDetails),
		BillStatus:       entities.BillStatus(it.BillStatus),
		Version:          it.Version,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.BillGeneratedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.BillGeneratedAt); err == nil {
			e.BillGeneratedAt = &ts
		}
	}
	return e
}
