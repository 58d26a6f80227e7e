package request

import "testing"

func TestCreateQuotationRequest_ToLineItems(t *testing.T) {
	r := CreateQuotationRequest{
		EngagementID: " eng-1 ",
		LineItems: []LineItemRequest{
			{ProductID: " RING-22K ", Name: " Gold ring 22k ", Quantity: 1, UnitPrice: 38000},
			{ProductID: "CHAIN-18K", Quantity: 2, UnitPrice: 12000},
		},
	}

	if r.ResolveEngagementID() != "eng-1" {
		t.Fatalf("expected trimmed engagement id, got %q", r.ResolveEngagementID())
	}

	items := r.ToLineItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != "RING-22K" || items[0].Name != "Gold ring 22k" {
		t.Fatalf("expected trimmed product fields, got %+v", items[0])
	}
	if items[1].ProductID != "CHAIN-18K" || items[1].Quantity != 2 || items[1].UnitPrice != 12000 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}
