package response

import (
	"time"

	"retail_console/internal/domain/entities"
)

type LineItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type PaymentEventResponse struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

type StaffResponseResponse struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	ActorID    string     `json:"actor_id"`
	Note       string     `json:"note"`
	FollowUpOn *time.Time `json:"follow_up_on,omitempty"`
}

type QuotationResponse struct {
	ID           string `json:"id"`
	EngagementID string `json:"engagement_id"`
	CustomerID   string `json:"customer_id"`
	Status       string `json:"status"`

	LineItems []LineItemResponse `json:"line_items"`
	Total     float64            `json:"total_amount"`

	PaymentTimeline []PaymentEventResponse  `json:"payment_timeline"`
	StaffResponses  []StaffResponseResponse `json:"staff_responses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	out := QuotationResponse{
		ID:              q.ID,
		EngagementID:    q.EngagementID,
		CustomerID:      q.CustomerID,
		Status:          string(q.Status),
		Total:           q.TotalAmount,
		LineItems:       make([]LineItemResponse, 0, len(q.Items)),
		PaymentTimeline: make([]PaymentEventResponse, 0, len(q.PaymentTimeline)),
		StaffResponses:  make([]StaffResponseResponse, 0, len(q.StaffResponses)),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
	for _, li := range q.Items {
		out.LineItems = append(out.LineItems, LineItemResponse{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	for _, e := range q.PaymentTimeline {
		out.PaymentTimeline = append(out.PaymentTimeline, FromPaymentEvent(e))
	}
	for _, s := range q.StaffResponses {
		out.StaffResponses = append(out.StaffResponses, FromStaffResponse(s))
	}
	return out
}

func FromPaymentEvent(e entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		Type:      e.Type,
		Timestamp: e.Timestamp,
		Message:   e.Message,
	}
}

func FromStaffResponse(s entities.StaffResponse) StaffResponseResponse {
	return StaffResponseResponse{
		ID:         s.ID,
		Timestamp:  s.Timestamp,
		ActorID:    s.ActorID,
		Note:       s.Note,
		FollowUpOn: s.FollowUpOn,
	}
}
