package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrEmptyStaffNote     = errors.New("staff note cannot be empty")
	ErrUnknownAlertType   = errors.New("unknown alert type")
)

// TimelineEntryType for entries projected from the two source streams.
// System events keep their own type tag; staff notes all become
// TimelineTypeStaffResponse.
const TimelineTypeStaffResponse = "staff_response"

// TimelineEntry is one normalized, displayable item of the merged payment
// audit view.

type TimelineEntry struct {
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Icon       string     `json:"icon"`
	Timestamp  time.Time  `json:"timestamp"`
	Message    string     `json:"message"`
	ActorID    string     `json:"actor_id,omitempty"`
	FollowUpOn *time.Time `json:"follow_up_on,omitempty"`
}

type entryClass struct {
	Severity string
	Icon     string
}

// Display classification per recognized event tag. Anything else degrades to
// the neutral default instead of erroring; the audit view must always render.
var entryClasses = map[string]entryClass{
	entities.EventFirstAlert:      {Severity: "info", Icon: "bell"},
	entities.EventSecondAlert:     {Severity: "warning", Icon: "bell-ring"},
	entities.EventThirdAlert:      {Severity: "critical", Icon: "siren"},
	entities.EventPromise:         {Severity: "info", Icon: "handshake"},
	entities.EventPaymentReceived: {Severity: "success", Icon: "check-circle"},
	entities.EventPaymentFailed:   {Severity: "danger", Icon: "x-circle"},
	TimelineTypeStaffResponse:     {Severity: "neutral", Icon: "message-square"},
}

var defaultEntryClass = entryClass{Severity: "neutral", Icon: "circle"}

func classify(eventType string) entryClass {
	if c, ok := entryClasses[eventType]; ok {
		return c
	}
	return defaultEntryClass
}

// MergeTimeline folds the system-generated payment events and the
// staff-entered notes into one view sorted by timestamp, most recent first.
//
// The merge is pure: neither input is mutated and the same inputs always
// produce the same output. Ties on timestamp keep input order, with system
// events ahead of staff notes; that reflects append order and is an
// implementation detail, not a semantic guarantee.
func MergeTimeline(events []entities.PaymentEvent, notes []entities.StaffResponse) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(events)+len(notes))
	for _, ev := range events {
		c := classify(ev.Type)
		out = append(out, TimelineEntry{
			Type:      ev.Type,
			Severity:  c.Severity,
			Icon:      c.Icon,
			Timestamp: ev.Timestamp,
			Message:   ev.Message,
		})
	}
	for _, n := range notes {
		c := classify(TimelineTypeStaffResponse)
		out = append(out, TimelineEntry{
			Type:       TimelineTypeStaffResponse,
			Severity:   c.Severity,
			Icon:       c.Icon,
			Timestamp:  n.Timestamp,
			Message:    n.Note,
			ActorID:    n.ActorID,
			FollowUpOn: n.FollowUpOn,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// BillClassification is the display mapping for a bill status.

type BillClassification struct {
	Status   entities.BillStatus `json:"status"`
	Label    string              `json:"label"`
	Severity string              `json:"severity"`
}

// DeriveBillStatus classifies a bill status for display. It is a pure lookup
// on the summary field, independent of the timeline contents; unrecognized or
// empty values map to an unknown default.
func DeriveBillStatus(status entities.BillStatus) BillClassification {
	switch status {
	case entities.BillStatusPaid:
		return BillClassification{Status: status, Label: "Paid", Severity: "success"}
	case entities.BillStatusOverdue:
		return BillClassification{Status: status, Label: "Overdue", Severity: "danger"}
	case entities.BillStatusPending:
		return BillClassification{Status: status, Label: "Payment pending", Severity: "warning"}
	default:
		return BillClassification{Status: status, Label: "Unknown", Severity: "neutral"}
	}
}

// ITimelineUseCase is the read-side aggregation plus the two append paths
// that feed it (staff notes and system billing alerts). Appends never touch
// workflow state.

type ITimelineUseCase interface {
	GetTimeline(ctx context.Context, quotationID string) ([]TimelineEntry, BillClassification, error)
	AddStaffNote(ctx context.Context, quotationID, note string, followUpOn *time.Time, actorID string) (entities.StaffResponse, error)
	RaiseAlert(ctx context.Context, quotationID, alertType, message string) (entities.PaymentEvent, error)
}

type TimelineUseCase struct {
	quotations  interfaces.IQuotationRepository
	engagements interfaces.IEngagementRepository
}

var _ ITimelineUseCase = (*TimelineUseCase)(nil)

func NewTimelineUseCase(quotations interfaces.IQuotationRepository, engagements interfaces.IEngagementRepository) *TimelineUseCase {
	return &TimelineUseCase{quotations: quotations, engagements: engagements}
}

// GetTimeline returns the merged audit view for a quotation together with the
// billing summary derived from the owning engagement's bill_status.
func (u *TimelineUseCase) GetTimeline(ctx context.Context, quotationID string) ([]TimelineEntry, BillClassification, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, BillClassification{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, BillClassification{}, err
	}
	if q.ID == "" {
		return nil, BillClassification{}, ErrQuotationNotFound
	}

	var bill BillClassification
	if e, err := u.engagements.GetByID(ctx, q.EngagementID); err == nil && e.ID != "" {
		bill = DeriveBillStatus(e.BillStatus)
	} else {
		// The audit view still renders when the summary cannot be resolved.
		bill = DeriveBillStatus("")
		if err != nil {
			log.Printf("[timeline][usecase] bill summary lookup failed quotation_id=%s err=%v", quotationID, err)
		}
	}

	return MergeTimeline(q.PaymentTimeline, q.StaffResponses), bill, nil
}

func (u *TimelineUseCase) AddStaffNote(ctx context.Context, quotationID, note string, followUpOn *time.Time, actorID string) (entities.StaffResponse, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.StaffResponse{}, ErrInvalidQuotationID
	}
	note = strings.TrimSpace(note)
	if note == "" {
		return entities.StaffResponse{}, ErrEmptyStaffNote
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.StaffResponse{}, err
	}
	if q.ID == "" {
		return entities.StaffResponse{}, ErrQuotationNotFound
	}

	r := entities.StaffResponse{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		ActorID:    actorID,
		Note:       note,
		FollowUpOn: followUpOn,
	}
	if err := u.quotations.AppendStaffResponse(ctx, quotationID, r); err != nil {
		log.Printf("[timeline][usecase] staff note append failed quotation_id=%s err=%v", quotationID, err)
		return entities.StaffResponse{}, err
	}
	log.Printf("[timeline][usecase] staff note appended quotation_id=%s note_id=%s actor_id=%q", quotationID, r.ID, actorID)
	return r, nil
}

// RaiseAlert appends one tiered system event (first/second/third alert or a
// payment promise) to the quotation timeline. Writers stay strict about the
// type tag even though the read side tolerates anything.
func (u *TimelineUseCase) RaiseAlert(ctx context.Context, quotationID, alertType, message string) (entities.PaymentEvent, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.PaymentEvent{}, ErrInvalidQuotationID
	}
	switch alertType {
	case entities.EventFirstAlert, entities.EventSecondAlert, entities.EventThirdAlert, entities.EventPromise:
	default:
		return entities.PaymentEvent{}, fmt.Errorf("%w: %q", ErrUnknownAlertType, alertType)
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if q.ID == "" {
		return entities.PaymentEvent{}, ErrQuotationNotFound
	}

	ev := entities.PaymentEvent{
		Type:      alertType,
		Timestamp: time.Now().UTC(),
		Message:   strings.TrimSpace(message),
	}
	if err := u.quotations.AppendTimelineEvent(ctx, quotationID, ev); err != nil {
		log.Printf("[timeline][usecase] alert append failed quotation_id=%s type=%s err=%v", quotationID, alertType, err)
		return entities.PaymentEvent{}, err
	}
	if alertType == entities.EventSecondAlert || alertType == entities.EventThirdAlert {
		u.markOverdue(ctx, q.EngagementID)
	}
	log.Printf("[timeline][usecase] alert appended quotation_id=%s type=%s", quotationID, alertType)
	return ev, nil
}

// markOverdue stamps the engagement's bill summary once reminders escalate
// past the first alert. Best effort: the alert is already appended, so a
// summary failure is logged and swallowed. A settled bill stays paid.
func (u *TimelineUseCase) markOverdue(ctx context.Context, engagementID string) {
	e, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil || e.ID == "" {
		log.Printf("[timeline][usecase] overdue lookup failed engagement_id=%s err=%v", engagementID, err)
		return
	}
	if e.BillStatus == entities.BillStatusPaid || e.BillStatus == entities.BillStatusOverdue {
		return
	}
	if _, err := u.engagements.UpdateBillSummary(ctx, engagementID, entities.BillStatusOverdue, time.Now().UTC()); err != nil {
		log.Printf("[timeline][usecase] overdue update failed engagement_id=%s err=%v", engagementID, err)
	}
}
