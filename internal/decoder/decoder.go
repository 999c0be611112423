package decoder

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/samber/lo"
)

// ErrMissingID is returned when a record has no usable id field.
var ErrMissingID = errors.New("record has no id")

// Decoder decodes raw API records into app models. Records without an id are
// dropped and counted as failed; any other malformed field is coerced to null
// and the record is kept.
type Decoder struct{}

// DecodeProducts decodes products with their variants.
// It returns decoded products and number of failed records.
func (d Decoder) DecodeProducts(records []json.RawMessage) ([]models.Product, int32) {
	products := make([]models.Product, 0, len(records))
	failed := int32(0)

	for _, record := range records {
		product, failedVariants, err := toAppProduct(record)
		failed += failedVariants
		if err != nil {
			failed++
			continue
		}

		products = append(products, *product)
	}

	return products, failed
}

// DecodeCustomers decodes customers.
// It returns decoded customers and number of failed records.
func (d Decoder) DecodeCustomers(records []json.RawMessage) ([]models.Customer, int32) {
	customers := make([]models.Customer, 0, len(records))
	failed := int32(0)

	for _, record := range records {
		customer, err := toAppCustomer(record)
		if err != nil {
			failed++
			continue
		}

		customers = append(customers, *customer)
	}

	return customers, failed
}

// DecodeOrders decodes orders with their line items.
// It returns decoded orders and number of failed records.
func (d Decoder) DecodeOrders(records []json.RawMessage) ([]models.Order, int32) {
	orders := make([]models.Order, 0, len(records))
	failed := int32(0)

	for _, record := range records {
		order, failedLineItems, err := toAppOrder(record)
		failed += failedLineItems
		if err != nil {
			failed++
			continue
		}

		orders = append(orders, *order)
	}

	return orders, failed
}

// toFloat coerces a price field to float. The API serializes prices as quoted
// decimal strings, older payloads use plain numbers. Anything else is null.
func toFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return &number
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}

	return &number
}

// toTime coerces a timestamp field to UTC time, or null when it can't be parsed.
func toTime(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, *value); err == nil {
			return lo.ToPtr(ts.UTC())
		}
	}

	return nil
}
