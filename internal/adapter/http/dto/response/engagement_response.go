package response

import (
	"time"

	"retail_console/internal/domain/entities"
)

type StageDetailResponse struct {
	Note        string            `json:"note,omitempty"`
	ActorID     string            `json:"actor_id"`
	CompletedAt time.Time         `json:"completed_at"`
	Checklist   map[string]bool   `json:"checklist,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
	Courier     string            `json:"courier,omitempty"`
	TrackingID  string            `json:"tracking_id,omitempty"`
}

type EngagementResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	QuotationID string `json:"quotation_id,omitempty"`

	WorkflowStatus map[string]string `json:"workflow_status"`
	CurrentStage   string            `json:"current_stage,omitempty"`

	ProfilingDetails *StageDetailResponse `json:"profiling_details,omitempty"`
	QCDetails        *StageDetailResponse `json:"qc_details,omitempty"`
	PackagingDetails *StageDetailResponse `json:"packaging_details,omitempty"`
	DispatchDetails  *StageDetailResponse `json:"dispatch_details,omitempty"`

	BillStatus      string     `json:"bill_status,omitempty"`
	BillGeneratedAt *time.Time `json:"bill_generated_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEngagement(e entities.Engagement) EngagementResponse {
	status := make(map[string]string, len(e.WorkflowStatus))
	for stage, st := range e.WorkflowStatus {
		status[string(stage)] = string(st)
	}

	return EngagementResponse{
		ID:               e.ID,
		CustomerID:       e.CustomerID,
		QuotationID:      e.QuotationID,
		WorkflowStatus:   status,
		CurrentStage:     currentStage(e),
		ProfilingDetails: fromStageDetail(e.ProfilingDetails),
		QCDetails:        fromStageDetail(e.QCDetails),
		PackagingDetails: fromStageDetail(e.PackagingDetails),
		DispatchDetails:  fromStageDetail(e.DispatchDetails),
		BillStatus:       string(e.BillStatus),
		BillGeneratedAt:  e.BillGeneratedAt,
		Version:          e.Version,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// currentStage is the first pipeline stage that is not yet completed, empty
// once the whole pipeline is done.
func currentStage(e entities.Engagement) string {
	for _, stage := range entities.StageOrder {
		if e.StatusOf(stage) != entities.StageStatusCompleted {
			return string(stage)
		}
	}
	return ""
}

func fromStageDetail(d *entities.StageDetail) *StageDetailResponse {
	if d == nil {
		return nil
	}
	return &StageDetailResponse{
		Note:        d.Note,
		ActorID:     d.ActorID,
		CompletedAt: d.CompletedAt,
		Checklist:   d.Checklist,
		Answers:     d.Answers,
		Courier:     d.Courier,
		TrackingID:  d.TrackingID,
	}
}
