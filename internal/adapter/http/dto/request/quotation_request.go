package request

import (
	"strings"

	"retail_console/internal/domain/entities"
)

type LineItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
}

// CreateQuotationRequest creates the quotation for an engagement. Totals are
// computed server-side from the line items.
type CreateQuotationRequest struct {
	EngagementID string            `json:"engagement_id" binding:"required"`
	LineItems    []LineItemRequest `json:"line_items" binding:"required"`
}

func (r CreateQuotationRequest) ResolveEngagementID() string {
	return strings.TrimSpace(r.EngagementID)
}

func (r CreateQuotationRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, entities.LineItem{
			ProductID: strings.TrimSpace(li.ProductID),
			Name:      strings.TrimSpace(li.Name),
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	return items
}
