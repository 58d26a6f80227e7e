package interfaces

import (
	"context"
	"time"

	"retail_console/internal/domain/entities"
)

// IEngagementRepository abstracts DynamoDB persistence for Engagement.
//
// UpdateWorkflow carries the whole workflow_status document plus the stage
// detail record in one conditional write. The condition is the version the
// caller read; when another writer got in first, the implementation returns a
// zero-value Engagement (no error) and the caller decides how to surface the
// conflict. A zero-value result from any read also means "not found".

type IEngagementRepository interface {
	Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	UpdateWorkflow(ctx context.Context, id string, status map[entities.Stage]entities.StageStatus, stage entities.Stage, detail *entities.StageDetail, expectedVersion int64) (entities.Engagement, error)
	AttachQuotation(ctx context.Context, id string, quotationID string) (entities.Engagement, error)
	UpdateBillSummary(ctx context.Context, id string, status entities.BillStatus, generatedAt time.Time) (entities.Engagement, error)
}
