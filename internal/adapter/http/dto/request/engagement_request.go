package request

import (
	"strings"

	"retail_console/internal/domain/entities"
)

// CreateEngagementRequest opens a new customer engagement.
type CreateEngagementRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

func (r CreateEngagementRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

// AdvanceStageRequest records a stage outcome. The detail fields are
// optional and stage-specific: checklist for qc, answers for profiling,
// courier and tracking_id for dispatch.
type AdvanceStageRequest struct {
	Outcome    string            `json:"outcome" binding:"required"`
	Note       string            `json:"note"`
	Checklist  map[string]bool   `json:"checklist"`
	Answers    map[string]string `json:"answers"`
	Courier    string            `json:"courier"`
	TrackingID string            `json:"tracking_id"`
}

func (r AdvanceStageRequest) ResolveOutcome() entities.StageStatus {
	return entities.StageStatus(strings.TrimSpace(r.Outcome))
}

// ToStageDetail returns nil when the request carries no detail fields, so
// pending transitions do not write an empty detail record.
func (r AdvanceStageRequest) ToStageDetail() *entities.StageDetail {
	if r.Note == "" && len(r.Checklist) == 0 && len(r.Answers) == 0 && r.Courier == "" && r.TrackingID == "" {
		return nil
	}
	return &entities.StageDetail{
		Note:       strings.TrimSpace(r.Note),
		Checklist:  r.Checklist,
		Answers:    r.Answers,
		Courier:    strings.TrimSpace(r.Courier),
		TrackingID: strings.TrimSpace(r.TrackingID),
	}
}
