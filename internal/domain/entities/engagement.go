package entities

import "time"

// BillStatus is the summary billing state mirrored onto the engagement from
// the linked quotation's payment history. It is kept in sync at read time by
// the payment flow, not by a storage invariant.

type BillStatus string

const (
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
	BillStatusPending BillStatus = "pending"
)

// StageDetail is the record persisted when a stage completes. One struct
// serves every stage; the optional payload fields are only populated for the
// stage they belong to (Checklist for qc, Answers for profiling, courier
// fields for dispatch).
//
// Detail records are replaced wholesale on each completion, never merged
// field-by-field.

type StageDetail struct {
	Note        string            `json:"note,omitempty"`
	ActorID     string            `json:"actor_id"`
	CompletedAt time.Time         `json:"completed_at"`
	Checklist   map[string]bool   `json:"checklist,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
	Courier     string            `json:"courier,omitempty"`
	TrackingID  string            `json:"tracking_id,omitempty"`
}

// Engagement is one customer video-call record walking the fulfillment
// pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//
// WorkflowStatus is a single nested document. Every workflow update reads the
// whole map, merges, and writes the whole map back; Version makes that
// read-merge-write a compare-and-swap so a stale writer fails instead of
// silently dropping a sibling stage written in between.

type Engagement struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	QuotationID string `json:"quotation_id,omitempty"`

	WorkflowStatus map[Stage]StageStatus `json:"workflow_status"`

	ProfilingDetails *StageDetail `json:"profiling_details,omitempty"`
	QCDetails        *StageDetail `json:"qc_details,omitempty"`
	PackagingDetails *StageDetail `json:"packaging_details,omitempty"`
	DispatchDetails  *StageDetail `json:"dispatch_details,omitempty"`

	BillStatus      BillStatus `json:"bill_status,omitempty"`
	BillGeneratedAt *time.Time `json:"bill_generated_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusOf returns the recorded status for a stage, defaulting to not_started
// for stages the pipeline has not reached yet.
func (e Engagement) StatusOf(s Stage) StageStatus {
	if st, ok := e.WorkflowStatus[s]; ok {
		return st
	}
	return StageStatusNotStarted
}

// CloneWorkflowStatus copies the status map so merges never mutate the
// snapshot the caller read.
func (e Engagement) CloneWorkflowStatus() map[Stage]StageStatus {
	out := make(map[Stage]StageStatus, len(e.WorkflowStatus)+2)
	for k, v := range e.WorkflowStatus {
		out[k] = v
	}
	return out
}

// Terminal reports whether the engagement finished the pipeline.
func (e Engagement) Terminal() bool {
	return e.StatusOf(StageDispatch) == StageStatusCompleted
}
