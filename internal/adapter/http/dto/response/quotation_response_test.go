package response

import (
	"testing"
	"time"

	"retail_console/internal/domain/entities"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	followUp := now.Add(72 * time.Hour)
	q := entities.Quotation{
		ID:           "q-1",
		EngagementID: "eng-1",
		CustomerID:   "cus-1",
		Status:       entities.QuotationStatusSent,
		Items: []entities.LineItem{
			{ProductID: "RING-22K", Name: "Gold ring 22k", Quantity: 1, UnitPrice: 38000},
		},
		TotalAmount: 38000,
		PaymentTimeline: []entities.PaymentEvent{
			{Type: entities.EventFirstAlert, Timestamp: now},
		},
		StaffResponses: []entities.StaffResponse{
			{ID: "sr-1", Timestamp: now, ActorID: "staff-2", Note: "called", FollowUpOn: &followUp},
		},
	}

	got := FromQuotation(q)
	if got.Total != 38000 {
		t.Fatalf("expected total 38000, got %v", got.Total)
	}
	if len(got.LineItems) != 1 || got.LineItems[0].ProductID != "RING-22K" || got.LineItems[0].Name != "Gold ring 22k" {
		t.Fatalf("unexpected line items: %+v", got.LineItems)
	}
	if len(got.PaymentTimeline) != 1 || got.PaymentTimeline[0].Type != entities.EventFirstAlert {
		t.Fatalf("unexpected timeline: %+v", got.PaymentTimeline)
	}
	if len(got.StaffResponses) != 1 || got.StaffResponses[0].FollowUpOn == nil {
		t.Fatalf("unexpected staff responses: %+v", got.StaffResponses)
	}
}
