package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
)

// Order is model for order records in API responses. The attributed customer
// comes nested, orders from guest checkouts have none. Line items stay raw so
// each line item keeps its original payload.
type Order struct {
	ID                *int64            `json:"id"`
	OrderNumber       *int64            `json:"order_number"`
	Customer          *OrderCustomer    `json:"customer"`
	Email             *string           `json:"email"`
	TotalPrice        json.RawMessage   `json:"total_price"`
	Currency          *string           `json:"currency"`
	CreatedAt         *string           `json:"created_at"`
	UpdatedAt         *string           `json:"updated_at"`
	FinancialStatus   *string           `json:"financial_status"`
	FulfillmentStatus *string           `json:"fulfillment_status"`
	LineItems         []json.RawMessage `json:"line_items"`
}

// OrderCustomer is model for the customer nested in order records.
type OrderCustomer struct {
	ID *int64 `json:"id"`
}

// LineItem is model for order line item records in API responses.
type LineItem struct {
	ID        *int64          `json:"id"`
	ProductID *int64          `json:"product_id"`
	VariantID *int64          `json:"variant_id"`
	Title     *string         `json:"title"`
	Quantity  *int32          `json:"quantity"`
	Price     json.RawMessage `json:"price"`
	SKU       *string         `json:"sku"`
}

func toAppOrder(record json.RawMessage) (*models.Order, int32, error) {
	var order Order
	if err := json.Unmarshal(record, &order); err != nil {
		return nil, 0, fmt.Errorf("can't unmarshal order: %w", err)
	}

	if order.ID == nil {
		return nil, 0, ErrMissingID
	}

	var customerID *int64
	if order.Customer != nil {
		customerID = order.Customer.ID
	}

	lineItems, failed := toAppLineItems(*order.ID, order.LineItems)

	return &models.Order{
		ID:                *order.ID,
		OrderNumber:       order.OrderNumber,
		CustomerID:        customerID,
		Email:             order.Email,
		TotalPrice:        toFloat(order.TotalPrice),
		Currency:          order.Currency,
		CreatedAt:         toTime(order.CreatedAt),
		UpdatedAt:         toTime(order.UpdatedAt),
		FinancialStatus:   order.FinancialStatus,
		FulfillmentStatus: order.FulfillmentStatus,
		Raw:               record,
		LineItems:         lineItems,
	}, failed, nil
}

func toAppLineItems(orderID int64, records []json.RawMessage) ([]models.LineItem, int32) {
	if len(records) == 0 {
		return nil, 0
	}

	lineItems := make([]models.LineItem, 0, len(records))
	failed := int32(0)

	for _, record := range records {
		var lineItem LineItem
		if err := json.Unmarshal(record, &lineItem); err != nil || lineItem.ID == nil {
			failed++
			continue
		}

		lineItems = append(lineItems, models.LineItem{
			ID:        *lineItem.ID,
			OrderID:   orderID,
			ProductID: lineItem.ProductID,
			VariantID: lineItem.VariantID,
			Title:     lineItem.Title,
			Quantity:  lineItem.Quantity,
			Price:     toFloat(lineItem.Price),
			SKU:       lineItem.SKU,
			Raw:       record,
		})
	}

	return lineItems, failed
}
