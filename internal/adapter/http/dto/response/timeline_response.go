package response

import (
	"time"

	"retail_console/internal/usecase"
)

type TimelineEntryResponse struct {
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Icon       string     `json:"icon"`
	Timestamp  time.Time  `json:"timestamp"`
	Message    string     `json:"message,omitempty"`
	ActorID    string     `json:"actor_id,omitempty"`
	FollowUpOn *time.Time `json:"follow_up_on,omitempty"`
}

type BillSummaryResponse struct {
	Status   string `json:"status,omitempty"`
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// TimelineViewResponse is the merged payment history panel: newest entries
// first, headed by the billing summary badge.
type TimelineViewResponse struct {
	Bill    BillSummaryResponse     `json:"bill"`
	Entries []TimelineEntryResponse `json:"entries"`
}

func FromTimeline(entries []usecase.TimelineEntry, bill usecase.BillClassification) TimelineViewResponse {
	out := TimelineViewResponse{
		Bill: BillSummaryResponse{
			Status:   string(bill.Status),
			Label:    bill.Label,
			Severity: bill.Severity,
		},
		Entries: make([]TimelineEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, TimelineEntryResponse{
			Type:       e.Type,
			Severity:   e.Severity,
			Icon:       e.Icon,
			Timestamp:  e.Timestamp,
			Message:    e.Message,
			ActorID:    e.ActorID,
			FollowUpOn: e.FollowUpOn,
		})
	}
	return out
}
