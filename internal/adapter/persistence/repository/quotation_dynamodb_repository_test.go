package repository

import (
	"testing"
	"time"

	"retail_console/internal/domain/entities"
)

func TestQuotationItemRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 30, 0, 123456789, time.UTC)
	updated := created.Add(2 * time.Hour)
	followUp := created.Add(72 * time.Hour)
	in := entities.Quotation{
		ID:           "q-1",
		EngagementID: "eng-1",
		CustomerID:   "cus-1",
		Status:       entities.QuotationStatusSent,
		Items: []entities.LineItem{
			{ProductID: "RING-22K", Name: "Gold ring 22k", Quantity: 1, UnitPrice: 38000},
			{ProductID: "CHAIN-18K", Name: "Chain 18k", Quantity: 2, UnitPrice: 12500},
		},
		TotalAmount: 63000,
		PaymentTimeline: []entities.PaymentEvent{
			{Type: entities.EventFirstAlert, Timestamp: created, Message: "payment reminder"},
			{Type: entities.EventPaymentReceived, Timestamp: updated},
		},
		StaffResponses: []entities.StaffResponse{
			{ID: "sr-1", Timestamp: created, ActorID: "staff-2", Note: "customer promised friday", FollowUpOn: &followUp},
		},
		CreatedAt: created,
		UpdatedAt: updated,
	}

	it := toQuotationItem(in)
	if it.Items[0].ProductID != "RING-22K" || it.Items[0].Name != "Gold ring 22k" {
		t.Fatalf("unexpected stored item: %+v", it.Items[0])
	}
	if it.TotalAmount != 63000 {
		t.Fatalf("expected total_amount 63000, got %v", it.TotalAmount)
	}

	out := fromQuotationItem(it)
	if out.ID != in.ID || out.EngagementID != in.EngagementID || out.Status != in.Status {
		t.Fatalf("identity fields did not survive: %+v", out)
	}
	if len(out.Items) != 2 || out.Items[1].ProductID != "CHAIN-18K" || out.Items[1].Quantity != 2 || out.Items[1].UnitPrice != 12500 {
		t.Fatalf("unexpected items: %+v", out.Items)
	}
	if out.TotalAmount != in.TotalAmount {
		t.Fatalf("expected total %v, got %v", in.TotalAmount, out.TotalAmount)
	}
	if len(out.PaymentTimeline) != 2 || out.PaymentTimeline[0].Type != entities.EventFirstAlert || !out.PaymentTimeline[0].Timestamp.Equal(created) {
		t.Fatalf("unexpected timeline: %+v", out.PaymentTimeline)
	}
	if out.PaymentTimeline[0].Message != "payment reminder" {
		t.Fatalf("expected timeline message to survive, got %q", out.PaymentTimeline[0].Message)
	}
	if len(out.StaffResponses) != 1 {
		t.Fatalf("unexpected staff responses: %+v", out.StaffResponses)
	}
	sr := out.StaffResponses[0]
	if sr.ActorID != "staff-2" || sr.FollowUpOn == nil || !sr.FollowUpOn.Equal(followUp) {
		t.Fatalf("staff response did not survive: %+v", sr)
	}
	if !out.CreatedAt.Equal(created) || !out.UpdatedAt.Equal(updated) {
		t.Fatalf("timestamps did not survive: created=%v updated=%v", out.CreatedAt, out.UpdatedAt)
	}
}
