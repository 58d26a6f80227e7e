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
	ErrInvalidEngagementID = errors.New("invalid engagement id")
	ErrEngagementNotFound  = errors.New("engagement not found")
	ErrUnknownStage        = errors.New("unknown stage")
	ErrInvalidStageOutcome = errors.New("invalid stage outcome")
	ErrStageOutOfOrder     = errors.New("stage out of order")
	ErrVersionConflict     = errors.New("workflow version conflict")
	ErrCustomerNotFound    = errors.New("customer not found")
)

// IWorkflowUseCase advances an engagement through the fulfillment pipeline.
//
// Advance validates the stage gating rules, merges the nested workflow_status
// document, and issues one conditional write carrying both the merged status
// and the wholesale stage-detail record. ActorID is threaded in explicitly;
// an empty actor id is tolerated and recorded as-is.

type IWorkflowUseCase interface {
	Advance(ctx context.Context, engagementID string, stage entities.Stage, outcome entities.StageStatus, detail *entities.StageDetail, actorID string) (entities.Engagement, error)
	CreateEngagement(ctx context.Context, customerID string) (entities.Engagement, error)
	GetEngagement(ctx context.Context, id string) (entities.Engagement, error)
}

type WorkflowUseCase struct {
	engagements interfaces.IEngagementRepository
	customers   interfaces.ICustomerRepository
	notifier    interfaces.INotifier
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(engagements interfaces.IEngagementRepository, customers interfaces.ICustomerRepository, notifier interfaces.INotifier) *WorkflowUseCase {
	return &WorkflowUseCase{engagements: engagements, customers: customers, notifier: notifier}
}

// CreateEngagement opens a new video-call engagement at first customer
// contact. The workflow starts with only the quotation stage pending.
func (u *WorkflowUseCase) CreateEngagement(ctx context.Context, customerID string) (entities.Engagement, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Engagement{}, ErrCustomerNotFound
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Engagement{}, err
	}
	if customer.ID == "" {
		return entities.Engagement{}, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	e := entities.Engagement{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		WorkflowStatus: map[entities.Stage]entities.StageStatus{
			entities.StageQuotation: entities.StageStatusPending,
		},
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	log.Printf("[workflow][usecase] create engagement customer_id=%s engagement_id=%s", customerID, e.ID)
	return u.engagements.Create(ctx, e)
}

func (u *WorkflowUseCase) GetEngagement(ctx context.Context, id string) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	e, err := u.engagements.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return e, nil
}

// Advance runs one stage transition.
//
// Precondition: every stage strictly before the requested one must already be
// completed; a predecessor that never reached pending counts as out of order
// too. On outcome=completed the next stage is set to pending in the same
// write, so the pipeline advances atomically from the caller's point of view.
func (u *WorkflowUseCase) Advance(ctx context.Context, engagementID string, stage entities.Stage, outcome entities.StageStatus, detail *entities.StageDetail, actorID string) (entities.Engagement, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}
	idx := entities.StageIndex(stage)
	if idx < 0 {
		log.Printf("[workflow][usecase] unknown stage engagement_id=%s stage=%q", engagementID, stage)
		return entities.Engagement{}, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	if !entities.KnownStageStatus(outcome) {
		return entities.Engagement{}, fmt.Errorf("%w: %q", ErrInvalidStageOutcome, outcome)
	}

	current, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return entities.Engagement{}, err
	}
	if current.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}

	for _, earlier := range entities.StageOrder[:idx] {
		if current.StatusOf(earlier) != entities.StageStatusCompleted {
			log.Printf("[workflow][usecase] out of order engagement_id=%s stage=%s blocked_by=%s status=%s",
				engagementID, stage, earlier, current.StatusOf(earlier))
			return entities.Engagement{}, fmt.Errorf("%w: %s requires %s completed", ErrStageOutOfOrder, stage, earlier)
		}
	}

	newStatus := current.CloneWorkflowStatus()
	newStatus[stage] = outcome

	var record *entities.StageDetail
	if outcome == entities.StageStatusCompleted {
		if next, ok := entities.NextStage(stage); ok {
			newStatus[next] = entities.StageStatusPending
		}
		rec := entities.StageDetail{}
		if detail != nil {
			rec = *detail
		}
		rec.ActorID = actorID
		rec.CompletedAt = time.Now().UTC()
		record = &rec
	}

	updated, err := u.engagements.UpdateWorkflow(ctx, engagementID, newStatus, stage, record, current.Version)
	if err != nil {
		log.Printf("[workflow][usecase] update failed engagement_id=%s stage=%s err=%v", engagementID, stage, err)
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		// The engagement existed when we read it, so a conditional miss here
		// means another writer bumped the version in between.
		log.Printf("[workflow][usecase] version conflict engagement_id=%s stage=%s read_version=%d", engagementID, stage, current.Version)
		return entities.Engagement{}, ErrVersionConflict
	}

	log.Printf("[workflow][usecase] advance success engagement_id=%s stage=%s outcome=%s version=%d",
		engagementID, stage, outcome, updated.Version)
	if u.notifier != nil && outcome == entities.StageStatusCompleted {
		u.notifier.Notify(fmt.Sprintf("Stage %s completed", stage), "success")
	}
	return updated, nil
}
