package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PaymentEvent is one system-generated entry of the quotation's payment
// timeline (alert raised, payment received, payment failed, ...). The
// timeline is append-only; entries are never mutated or removed.

type PaymentEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Recognized payment timeline event types. The read-side aggregator tolerates
// anything else and classifies it as neutral.
const (
	EventFirstAlert      = "first_alert"
	EventSecondAlert     = "second_alert"
	EventThirdAlert      = "third_alert"
	EventPromise         = "promise"
	EventPaymentReceived = "payment_received"
	EventPaymentFailed   = "payment_failed"
)

// StaffResponse is one human-entered follow-up note on the quotation's
// billing. Append-only, like the system timeline.

type StaffResponse struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	ActorID    string     `json:"actor_id"`
	Note       string     `json:"note"`
	FollowUpOn *time.Time `json:"follow_up_on,omitempty"`
}

// Quotation is the priced offer for one engagement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (engagement_id-index): engagement_id
//
// TotalAmount equals the sum of item subtotals; it is computed upstream when
// the quotation is created and not re-derived here.

type Quotation struct {
	ID           string          `json:"id"`
	EngagementID string          `json:"engagement_id"`
	CustomerID   string          `json:"customer_id"`
	Items        []LineItem      `json:"items"`
	TotalAmount  float64         `json:"total_amount"`
	Status       QuotationStatus `json:"status"`

	PaymentTimeline []PaymentEvent  `json:"payment_timeline,omitempty"`
	StaffResponses  []StaffResponse `json:"staff_responses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
