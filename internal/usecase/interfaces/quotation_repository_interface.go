package interfaces

import (
	"context"
	"retail_console/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// AppendTimelineEvent and AppendStaffResponse are single append calls on the
// two append-only streams. They never rewrite existing entries and never touch
// the rest of the document.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByEngagementID(ctx context.Context, engagementID string) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
	AppendTimelineEvent(ctx context.Context, id string, event entities.PaymentEvent) error
	AppendStaffResponse(ctx context.Context, id string, response entities.StaffResponse) error
}
