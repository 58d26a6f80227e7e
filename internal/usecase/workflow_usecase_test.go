package usecase

import (
	"context"
	"errors"
	"testing"

	"retail_console/internal/domain/entities"
	mock_interfaces "retail_console/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func engagementFixture(status map[entities.Stage]entities.StageStatus, version int64) entities.Engagement {
	return entities.Engagement{
		ID:             "eng-1",
		CustomerID:     "cust-1",
		WorkflowStatus: status,
		Version:        version,
	}
}

func TestWorkflowUseCase_CreateEngagement(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		uc := NewWorkflowUseCase(nil, nil, nil)
		_, err := uc.CreateEngagement(context.Background(), "  ")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewWorkflowUseCase(nil, customers, nil)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.CreateEngagement(context.Background(), "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("starts with quotation pending only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewWorkflowUseCase(engagements, customers, nil)

		customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		engagements.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Engagement{})).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if e.ID == "" || e.CustomerID != "cust-1" {
					t.Fatalf("unexpected engagement: %+v", e)
				}
				if len(e.WorkflowStatus) != 1 || e.WorkflowStatus[entities.StageQuotation] != entities.StageStatusPending {
					t.Fatalf("unexpected initial workflow status: %+v", e.WorkflowStatus)
				}
				if e.Version != 0 {
					t.Fatalf("expected version 0, got %d", e.Version)
				}
				return e, nil
			},
		)

		res, err := uc.CreateEngagement(context.Background(), "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkflowUseCase_AdvanceValidation(t *testing.T) {
	t.Run("unknown stage", func(t *testing.T) {
		uc := NewWorkflowUseCase(nil, nil, nil)
		_, err := uc.Advance(context.Background(), "eng-1", "polishing", entities.StageStatusCompleted, nil, "staff-1")
		if !errors.Is(err, ErrUnknownStage) {
			t.Fatalf("expected ErrUnknownStage, got %v", err)
		}
	})

	t.Run("invalid outcome", func(t *testing.T) {
		uc := NewWorkflowUseCase(nil, nil, nil)
		_, err := uc.Advance(context.Background(), "eng-1", entities.StageQC, "done", nil, "staff-1")
		if !errors.Is(err, ErrInvalidStageOutcome) {
			t.Fatalf("expected ErrInvalidStageOutcome, got %v", err)
		}
	})

	t.Run("engagement not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewWorkflowUseCase(engagements, nil, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{}, nil)

		_, err := uc.Advance(context.Background(), "eng-1", entities.StageQuotation, entities.StageStatusCompleted, nil, "")
		if !errors.Is(err, ErrEngagementNotFound) {
			t.Fatalf("expected ErrEngagementNotFound, got %v", err)
		}
	})

	t.Run("store read error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewWorkflowUseCase(engagements, nil, nil)

		engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(entities.Engagement{}, errors.New("db"))

		_, err := uc.Advance(context.Background(), "eng-1", entities.StageQuotation, entities.StageStatusCompleted, nil, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkflowUseCase_AdvanceOutOfOrder(t *testing.T) {
	cases := []struct {
		name   string
		status map[entities.Stage]entities.StageStatus
		stage  entities.Stage
	}{
		{
			name:   "predecessor pending",
			status: map[entities.Stage]entities.StageStatus{entities.StageQuotation: entities.StageStatusPending},
			stage:  entities.StageProfiling,
		},
		{
			name: "predecessor in progress",
			status: map[entities.Stage]entities.StageStatus{
				entities.StageQuotation: entities.StageStatusCompleted,
				entities.StageProfiling: entities.StageStatusInProgress,
			},
			stage: entities.StagePayment,
		},
		{
			name:   "predecessor skipped entirely",
			status: map[entities.Stage]entities.StageStatus{entities.StageQuotation: entities.StageStatusCompleted},
			stage:  entities.StageQC,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
			uc := NewWorkflowUseCase(engagements, nil, nil)

			// No UpdateWorkflow expectation: the precondition failure must
			// leave stored state untouched.
			engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagementFixture(tc.status, 3), nil)

			_, err := uc.Advance(context.Background(), "eng-1", tc.stage, entities.StageStatusCompleted, nil, "staff-1")
			if !errors.Is(err, ErrStageOutOfOrder) {
				t.Fatalf("expected ErrStageOutOfOrder, got %v", err)
			}
		})
	}
}

func TestWorkflowUseCase_AdvanceCompletesAndAdvancesPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	uc := NewWorkflowUseCase(engagements, nil, notifier)

	current := engagementFixture(map[entities.Stage]entities.StageStatus{
		entities.StageQuotation: entities.StageStatusCompleted,
		entities.StageProfiling: entities.StageStatusCompleted,
		entities.StagePayment:   entities.StageStatusPending,
	}, 7)

	engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(current, nil)
	engagements.EXPECT().UpdateWorkflow(gomock.Any(), "eng-1", gomock.Any(), entities.StagePayment, gomock.Any(), int64(7)).DoAndReturn(
		func(_ context.Context, _ string, status map[entities.Stage]entities.StageStatus, _ entities.Stage, detail *entities.StageDetail, _ int64) (entities.Engagement, error) {
			if status[entities.StagePayment] != entities.StageStatusCompleted {
				t.Fatalf("payment not completed in merged status: %+v", status)
			}
			if status[entities.StageQC] != entities.StageStatusPending {
				t.Fatalf("next stage not set pending: %+v", status)
			}
			if status[entities.StageQuotation] != entities.StageStatusCompleted || status[entities.StageProfiling] != entities.StageStatusCompleted {
				t.Fatalf("sibling stages changed: %+v", status)
			}
			if detail == nil || detail.ActorID != "staff-9" || detail.CompletedAt.IsZero() {
				t.Fatalf("unexpected detail record: %+v", detail)
			}
			if detail.Note != "upi received" {
				t.Fatalf("caller note lost: %+v", detail)
			}
			out := current
			out.WorkflowStatus = status
			out.Version = 8
			return out, nil
		},
	)
	notifier.EXPECT().Notify(gomock.Any(), "success")

	res, err := uc.Advance(context.Background(), "eng-1", entities.StagePayment, entities.StageStatusCompleted, &entities.StageDetail{Note: "upi received"}, "staff-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Version != 8 {
		t.Fatalf("expected bumped version, got %d", res.Version)
	}
	// The snapshot the engine read must not have been mutated by the merge.
	if current.WorkflowStatus[entities.StagePayment] != entities.StageStatusPending {
		t.Fatalf("input snapshot mutated: %+v", current.WorkflowStatus)
	}
}

func TestWorkflowUseCase_AdvanceTerminalStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
	uc := NewWorkflowUseCase(engagements, nil, nil)

	status := map[entities.Stage]entities.StageStatus{}
	for _, s := range entities.StageOrder[:len(entities.StageOrder)-1] {
		status[s] = entities.StageStatusCompleted
	}
	status[entities.StageDispatch] = entities.StageStatusPending

	engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(engagementFixture(status, 11), nil)
	engagements.EXPECT().UpdateWorkflow(gomock.Any(), "eng-1", gomock.Any(), entities.StageDispatch, gomock.Any(), int64(11)).DoAndReturn(
		func(_ context.Context, _ string, merged map[entities.Stage]entities.StageStatus, _ entities.Stage, detail *entities.StageDetail, _ int64) (entities.Engagement, error) {
			if merged[entities.StageDispatch] != entities.StageStatusCompleted {
				t.Fatalf("dispatch not completed: %+v", merged)
			}
			if len(merged) != len(entities.StageOrder) {
				t.Fatalf("terminal stage must not add a successor: %+v", merged)
			}
			if detail.Courier != "BlueDart" || detail.TrackingID != "BD123" {
				t.Fatalf("dispatch fields lost: %+v", detail)
			}
			out := engagementFixture(merged, 12)
			return out, nil
		},
	)

	res, err := uc.Advance(context.Background(), "eng-1", entities.StageDispatch, entities.StageStatusCompleted,
		&entities.StageDetail{Courier: "BlueDart", TrackingID: "BD123"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Terminal() {
		t.Fatalf("expected terminal engagement")
	}
}

func TestWorkflowUseCase_AdvanceNonCompletedOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
	uc := NewWorkflowUseCase(engagements, nil, nil)

	current := engagementFixture(map[entities.Stage]entities.StageStatus{
		entities.StageQuotation: entities.StageStatusCompleted,
		entities.StageProfiling: entities.StageStatusPending,
	}, 2)

	engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(current, nil)
	engagements.EXPECT().UpdateWorkflow(gomock.Any(), "eng-1", gomock.Any(), entities.StageProfiling, gomock.Nil(), int64(2)).DoAndReturn(
		func(_ context.Context, _ string, status map[entities.Stage]entities.StageStatus, _ entities.Stage, _ *entities.StageDetail, _ int64) (entities.Engagement, error) {
			if status[entities.StageProfiling] != entities.StageStatusInProgress {
				t.Fatalf("expected in_progress, got %+v", status)
			}
			if _, ok := status[entities.StagePayment]; ok {
				t.Fatalf("non-completed outcome must not advance the pipeline: %+v", status)
			}
			out := current
			out.WorkflowStatus = status
			out.Version = 3
			return out, nil
		},
	)

	if _, err := uc.Advance(context.Background(), "eng-1", entities.StageProfiling, entities.StageStatusInProgress, nil, "staff-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkflowUseCase_AdvanceVersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
	uc := NewWorkflowUseCase(engagements, nil, nil)

	current := engagementFixture(map[entities.Stage]entities.StageStatus{
		entities.StageQuotation: entities.StageStatusPending,
	}, 4)

	engagements.EXPECT().GetByID(gomock.Any(), "eng-1").Return(current, nil)
	// Conditional write misses because another actor bumped the version after
	// our read; the repository reports that as a zero-value engagement.
	engagements.EXPECT().UpdateWorkflow(gomock.Any(), "eng-1", gomock.Any(), entities.StageQuotation, gomock.Any(), int64(4)).Return(entities.Engagement{}, nil)

	_, err := uc.Advance(context.Background(), "eng-1", entities.StageQuotation, entities.StageStatusCompleted, nil, "staff-1")
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestWorkflowUseCase_AdvanceAllStagesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	engagements := mock_interfaces.NewMockIEngagementRepository(ctrl)
	uc := NewWorkflowUseCase(engagements, nil, nil)

	state := engagementFixture(map[entities.Stage]entities.StageStatus{
		entities.StageQuotation: entities.StageStatusPending,
	}, 0)

	engagements.EXPECT().GetByID(gomock.Any(), "eng-1").DoAndReturn(
		func(context.Context, string) (entities.Engagement, error) { return state, nil },
	).Times(len(entities.StageOrder))
	engagements.EXPECT().UpdateWorkflow(gomock.Any(), "eng-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, status map[entities.Stage]entities.StageStatus, _ entities.Stage, _ *entities.StageDetail, version int64) (entities.Engagement, error) {
			if version != state.Version {
				t.Fatalf("expected CAS on read version %d, got %d", state.Version, version)
			}
			state.WorkflowStatus = status
			state.Version++
			return state, nil
		},
	).Times(len(entities.StageOrder))

	for i, stage := range entities.StageOrder {
		res, err := uc.Advance(context.Background(), "eng-1", stage, entities.StageStatusCompleted, nil, "staff-1")
		if err != nil {
			t.Fatalf("stage %s: unexpected error: %v", stage, err)
		}
		if res.StatusOf(stage) != entities.StageStatusCompleted {
			t.Fatalf("stage %s not completed: %+v", stage, res.WorkflowStatus)
		}
		if next, ok := entities.NextStage(stage); ok {
			if res.StatusOf(next) != entities.StageStatusPending {
				t.Fatalf("stage %s: next %s not pending: %+v", stage, next, res.WorkflowStatus)
			}
		}
		for _, earlier := range entities.StageOrder[:i] {
			if res.StatusOf(earlier) != entities.StageStatusCompleted {
				t.Fatalf("stage %s: earlier %s regressed: %+v", stage, earlier, res.WorkflowStatus)
			}
		}
	}
	if !state.Terminal() {
		t.Fatalf("pipeline not terminal after all stages: %+v", state.WorkflowStatus)
	}
}
