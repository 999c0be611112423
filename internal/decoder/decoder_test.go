package decoder_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/quantumspectra/shopify-sync/internal/decoder"
	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniDecodeProducts(t *testing.T) {
	updatedAt := time.Date(2024, time.May, 10, 12, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		records      []string
		wantProducts []models.Product
		wantFailed   int32
	}{
		"full product with variants": {
			records: []string{`{
				"id": 1,
				"title": "Shirt",
				"vendor": "Acme",
				"product_type": "apparel",
				"created_at": "2024-05-10T12:30:00Z",
				"updated_at": "2024-05-10T12:30:00Z",
				"variants": [
					{"id": 11, "product_id": 1, "title": "S", "sku": "SH-S", "price": "12.99", "position": 1},
					{"id": 12, "title": "M", "price": 14.5}
				]
			}`},
			wantProducts: []models.Product{
				{
					ID:          1,
					Title:       lo.ToPtr("Shirt"),
					Vendor:      lo.ToPtr("Acme"),
					ProductType: lo.ToPtr("apparel"),
					CreatedAt:   &updatedAt,
					UpdatedAt:   &updatedAt,
					Variants: []models.Variant{
						{
							ID:        11,
							ProductID: 1,
							Title:     lo.ToPtr("S"),
							SKU:       lo.ToPtr("SH-S"),
							Price:     lo.ToPtr(12.99),
							Position:  lo.ToPtr(int32(1)),
						},
						{
							// product_id inherited from the parent record
							ID:        12,
							ProductID: 1,
							Title:     lo.ToPtr("M"),
							Price:     lo.ToPtr(14.5),
						},
					},
				},
			},
		},
		"malformed price becomes null": {
			records: []string{`{"id": 2, "variants": [{"id": 21, "price": "abc"}]}`},
			wantProducts: []models.Product{
				{
					ID: 2,
					Variants: []models.Variant{
						{ID: 21, ProductID: 2},
					},
				},
			},
		},
		"malformed timestamp becomes null": {
			records: []string{`{"id": 3, "updated_at": "not-a-date"}`},
			wantProducts: []models.Product{
				{ID: 3},
			},
		},
		"missing id fails record": {
			records:      []string{`{"title": "no id"}`, `{"id": 4}`},
			wantProducts: []models.Product{{ID: 4}},
			wantFailed:   1,
		},
		"missing variant id fails variant only": {
			records: []string{`{"id": 5, "variants": [{"title": "no id"}, {"id": 51}]}`},
			wantProducts: []models.Product{
				{
					ID: 5,
					Variants: []models.Variant{
						{ID: 51, ProductID: 5},
					},
				},
			},
			wantFailed: 1,
		},
		"invalid json fails record": {
			records:    []string{`{"id": `},
			wantFailed: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}

			products, failed := dec.DecodeProducts(toRawRecords(tt.records))

			assert.Equal(t, tt.wantFailed, failed, "should count correct number of failed records")
			require.Len(t, products, len(tt.wantProducts), "should decode correct number of products")

			for ix := range products {
				assertRaw(t, products[ix].Raw)
				products[ix].Raw = nil
				for vx := range products[ix].Variants {
					assertRaw(t, products[ix].Variants[vx].Raw)
					products[ix].Variants[vx].Raw = nil
				}
				assert.Equal(t, tt.wantProducts[ix], products[ix], "product at index %d has incorrect values", ix)
			}
		})
	}
}

func TestUniDecodeCustomers(t *testing.T) {
	tests := map[string]struct {
		records       []string
		wantCustomers []models.Customer
		wantFailed    int32
	}{
		"full customer": {
			records: []string{`{
				"id": 7,
				"first_name": "Jo",
				"last_name": "Doe",
				"email": "jo@example.com",
				"phone": "+1555000111"
			}`},
			wantCustomers: []models.Customer{
				{
					ID:        7,
					FirstName: lo.ToPtr("Jo"),
					LastName:  lo.ToPtr("Doe"),
					Email:     lo.ToPtr("jo@example.com"),
					Phone:     lo.ToPtr("+1555000111"),
				},
			},
		},
		"missing id fails record": {
			records:    []string{`{"email": "no-id@example.com"}`},
			wantFailed: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}

			customers, failed := dec.DecodeCustomers(toRawRecords(tt.records))

			assert.Equal(t, tt.wantFailed, failed, "should count correct number of failed records")
			require.Len(t, customers, len(tt.wantCustomers), "should decode correct number of customers")

			for ix := range customers {
				assertRaw(t, customers[ix].Raw)
				customers[ix].Raw = nil
				assert.Equal(t, tt.wantCustomers[ix], customers[ix], "customer at index %d has incorrect values", ix)
			}
		})
	}
}

func TestUniDecodeOrders(t *testing.T) {
	tests := map[string]struct {
		records    []string
		wantOrders []models.Order
		wantFailed int32
	}{
		"full order with line items": {
			records: []string{`{
				"id": 9,
				"order_number": 1001,
				"customer": {"id": 7},
				"email": "jo@example.com",
				"total_price": "37.48",
				"currency": "USD",
				"financial_status": "paid",
				"fulfillment_status": "fulfilled",
				"line_items": [
					{"id": 91, "product_id": 1, "variant_id": 11, "title": "Shirt", "quantity": 2, "price": "12.99", "sku": "SH-S"}
				]
			}`},
			wantOrders: []models.Order{
				{
					ID:                9,
					OrderNumber:       lo.ToPtr(int64(1001)),
					CustomerID:        lo.ToPtr(int64(7)),
					Email:             lo.ToPtr("jo@example.com"),
					TotalPrice:        lo.ToPtr(37.48),
					Currency:          lo.ToPtr("USD"),
					FinancialStatus:   lo.ToPtr("paid"),
					FulfillmentStatus: lo.ToPtr("fulfilled"),
					LineItems: []models.LineItem{
						{
							ID:        91,
							OrderID:   9,
							ProductID: lo.ToPtr(int64(1)),
							VariantID: lo.ToPtr(int64(11)),
							Title:     lo.ToPtr("Shirt"),
							Quantity:  lo.ToPtr(int32(2)),
							Price:     lo.ToPtr(12.99),
							SKU:       lo.ToPtr("SH-S"),
						},
					},
				},
			},
		},
		"guest checkout has no customer id": {
			records: []string{`{"id": 10, "total_price": "5.00"}`},
			wantOrders: []models.Order{
				{
					ID:         10,
					TotalPrice: lo.ToPtr(5.0),
				},
			},
		},
		"malformed total price becomes null": {
			records: []string{`{"id": 11, "total_price": "abc"}`},
			wantOrders: []models.Order{
				{ID: 11},
			},
		},
		"missing line item id fails line item only": {
			records: []string{`{"id": 12, "line_items": [{"title": "no id"}]}`},
			wantOrders: []models.Order{
				{ID: 12},
			},
			wantFailed: 1,
		},
		"missing id fails record": {
			records:    []string{`{"order_number": 1002}`},
			wantFailed: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}

			orders, failed := dec.DecodeOrders(toRawRecords(tt.records))

			assert.Equal(t, tt.wantFailed, failed, "should count correct number of failed records")
			require.Len(t, orders, len(tt.wantOrders), "should decode correct number of orders")

			for ix := range orders {
				assertRaw(t, orders[ix].Raw)
				orders[ix].Raw = nil
				for lx := range orders[ix].LineItems {
					assertRaw(t, orders[ix].LineItems[lx].Raw)
					orders[ix].LineItems[lx].Raw = nil
				}
				assert.Equal(t, tt.wantOrders[ix], orders[ix], "order at index %d has incorrect values", ix)
			}
		})
	}
}

// toRawRecords converts json strings into raw records.
func toRawRecords(records []string) []json.RawMessage {
	raw := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		raw = append(raw, json.RawMessage(record))
	}

	return raw
}

// assertRaw checks a decoded record kept its original payload.
func assertRaw(t *testing.T, raw json.RawMessage) {
	t.Helper()

	assert.NotEmpty(t, raw, "record should keep its raw payload")
	assert.True(t, json.Valid(raw), "raw payload should be valid json")
}
