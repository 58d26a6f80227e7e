package response

import (
	"testing"

	"retail_console/internal/domain/entities"
)

func TestFromEngagement_CurrentStage(t *testing.T) {
	tests := []struct {
		name   string
		status map[entities.Stage]entities.StageStatus
		want   string
	}{
		{
			name:   "fresh engagement points at quotation",
			status: map[entities.Stage]entities.StageStatus{entities.StageQuotation: entities.StageStatusPending},
			want:   "quotation",
		},
		{
			name: "mid pipeline points at first incomplete stage",
			status: map[entities.Stage]entities.StageStatus{
				entities.StageQuotation: entities.StageStatusCompleted,
				entities.StageProfiling: entities.StageStatusCompleted,
				entities.StagePayment:   entities.StageStatusInProgress,
			},
			want: "payment",
		},
		{
			name: "finished pipeline has no current stage",
			status: func() map[entities.Stage]entities.StageStatus {
				m := map[entities.Stage]entities.StageStatus{}
				for _, s := range entities.StageOrder {
					m[s] = entities.StageStatusCompleted
				}
				return m
			}(),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromEngagement(entities.Engagement{ID: "eng-1", WorkflowStatus: tt.status})
			if got.CurrentStage != tt.want {
				t.Fatalf("expected current stage %q, got %q", tt.want, got.CurrentStage)
			}
		})
	}
}

func TestFromEngagement_OmitsAbsentDetails(t *testing.T) {
	got := FromEngagement(entities.Engagement{
		ID: "eng-1",
		QCDetails: &entities.StageDetail{
			ActorID:   "staff-1",
			Checklist: map[string]bool{"pieces_checked": true},
		},
	})
	if got.QCDetails == nil || !got.QCDetails.Checklist["pieces_checked"] {
		t.Fatalf("expected qc details carried over, got %+v", got.QCDetails)
	}
	if got.ProfilingDetails != nil || got.DispatchDetails != nil {
		t.Fatalf("expected absent details to stay nil")
	}
}
