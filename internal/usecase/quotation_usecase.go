package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationAlreadyExists  = errors.New("quotation already exists for this engagement")
	ErrEmptyQuotation          = errors.New("quotation needs at least one line item")
	ErrInvalidLineItem         = errors.New("invalid line item")
	ErrInvalidStatusTransition = errors.New("invalid quotation status transition")
)

// IQuotationUseCase exposes quotation lifecycle operations.
//
// Accepting a quotation also completes the engagement's quotation stage, which
// is what opens the rest of the pipeline.

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, engagementID string, items []entities.LineItem) (entities.Quotation, error)
	SendQuotation(ctx context.Context, id string) (entities.Quotation, error)
	AcceptQuotation(ctx context.Context, id string, actorID string) (entities.Quotation, error)
	RejectQuotation(ctx context.Context, id string) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByEngagementID(ctx context.Context, engagementID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	quotations  interfaces.IQuotationRepository
	engagements interfaces.IEngagementRepository
	workflow    IWorkflowUseCase
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(quotations interfaces.IQuotationRepository, engagements interfaces.IEngagementRepository, workflow IWorkflowUseCase) *QuotationUseCase {
	return &QuotationUseCase{quotations: quotations, engagements: engagements, workflow: workflow}
}

// CreateQuotation prices the engagement's line items into a draft quotation
// and links it back onto the engagement. One quotation per engagement.
func (u *QuotationUseCase) CreateQuotation(ctx context.Context, engagementID string, items []entities.LineItem) (entities.Quotation, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.Quotation{}, ErrInvalidEngagementID
	}
	if len(items) == 0 {
		return entities.Quotation{}, ErrEmptyQuotation
	}
	total := 0.0
	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice <= 0 {
			return entities.Quotation{}, fmt.Errorf("%w: product=%s qty=%d price=%.2f", ErrInvalidLineItem, it.ProductID, it.Quantity, it.UnitPrice)
		}
		total += it.UnitPrice * float64(it.Quantity)
	}

	engagement, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if engagement.ID == "" {
		return entities.Quotation{}, ErrEngagementNotFound
	}
	if engagement.QuotationID != "" {
		return entities.Quotation{}, ErrQuotationAlreadyExists
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:           uuid.NewString(),
		EngagementID: engagementID,
		CustomerID:   engagement.CustomerID,
		Items:        items,
		TotalAmount:  total,
		Status:       entities.QuotationStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.quotations.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	if _, err := u.engagements.AttachQuotation(ctx, engagementID, created.ID); err != nil {
		log.Printf("[quotation][usecase] attach failed engagement_id=%s quotation_id=%s err=%v", engagementID, created.ID, err)
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] created quotation_id=%s engagement_id=%s total=%.2f items=%d", created.ID, engagementID, total, len(items))
	return created, nil
}

func (u *QuotationUseCase) SendQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusSent)
}

// AcceptQuotation marks the quotation accepted and completes the quotation
// stage of the owning engagement in the same action.
func (u *QuotationUseCase) AcceptQuotation(ctx context.Context, id string, actorID string) (entities.Quotation, error) {
	q, err := u.transition(ctx, id, entities.QuotationStatusAccepted)
	if err != nil {
		return entities.Quotation{}, err
	}
	if _, err := u.workflow.Advance(ctx, q.EngagementID, entities.StageQuotation, entities.StageStatusCompleted, nil, actorID); err != nil {
		// Acceptance already persisted; surface the workflow failure so the
		// operator retries the stage transition.
		log.Printf("[quotation][usecase] accept persisted but stage completion failed quotation_id=%s err=%v", q.ID, err)
		return entities.Quotation{}, err
	}
	return q, nil
}

func (u *QuotationUseCase) RejectQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusRejected)
}

var quotationTransitions = map[entities.QuotationStatus][]entities.QuotationStatus{
	entities.QuotationStatusDraft: {entities.QuotationStatusSent},
	entities.QuotationStatusSent:  {entities.QuotationStatusAccepted, entities.QuotationStatusRejected},
}

func (u *QuotationUseCase) transition(ctx context.Context, id string, to entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	allowed := false
	for _, next := range quotationTransitions[q.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return entities.Quotation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, q.Status, to)
	}

	updated, err := u.quotations.UpdateStatus(ctx, id, to)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	log.Printf("[quotation][usecase] status updated quotation_id=%s status=%s", id, to)
	return updated, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) GetByEngagementID(ctx context.Context, engagementID string) (entities.Quotation, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.Quotation{}, ErrInvalidEngagementID
	}

	q, err := u.quotations.GetByEngagementID(ctx, engagementID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
