package modelstesting

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data and random number of fake variants.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	id := rand.Int63n(1_000_000_000)
	product := models.Product{
		ID:          id,
		Title:       lo.ToPtr(faker.Word()),
		Vendor:      lo.ToPtr(faker.Word()),
		ProductType: lo.ToPtr(faker.Word()),
		CreatedAt:   lo.ToPtr(fakeTime()),
		UpdatedAt:   lo.ToPtr(fakeTime()),
		Raw:         fakeRaw(id),
		Variants:    fakeVariants(id),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeVariant returns models.Variant with fake data linked to provided product ID.
func FakeVariant(productID int64, ops ...func(v *models.Variant)) models.Variant {
	id := rand.Int63n(1_000_000_000)
	variant := models.Variant{
		ID:             id,
		ProductID:      productID,
		Title:          lo.ToPtr(faker.Word()),
		SKU:            lo.ToPtr(faker.Word()),
		Price:          lo.ToPtr(float64(rand.Intn(10_000)) / 100),
		CompareAtPrice: lo.ToPtr(float64(rand.Intn(10_000)) / 100),
		Position:       lo.ToPtr(rand.Int31n(10)),
		Option1:        lo.ToPtr(faker.Word()),
		CreatedAt:      lo.ToPtr(fakeTime()),
		UpdatedAt:      lo.ToPtr(fakeTime()),
		Raw:            fakeRaw(id),
	}

	for _, op := range ops {
		op(&variant)
	}

	return variant
}

// FakeCustomer returns models.Customer with fake data.
func FakeCustomer(ops ...func(c *models.Customer)) models.Customer {
	id := rand.Int63n(1_000_000_000)
	customer := models.Customer{
		ID:        id,
		FirstName: lo.ToPtr(faker.FirstName()),
		LastName:  lo.ToPtr(faker.LastName()),
		Email:     lo.ToPtr(faker.Email()),
		Phone:     lo.ToPtr(faker.Phonenumber()),
		CreatedAt: lo.ToPtr(fakeTime()),
		UpdatedAt: lo.ToPtr(fakeTime()),
		Raw:       fakeRaw(id),
	}

	for _, op := range ops {
		op(&customer)
	}

	return customer
}

// FakeOrder returns models.Order with fake data and random number of fake line items.
func FakeOrder(ops ...func(o *models.Order)) models.Order {
	id := rand.Int63n(1_000_000_000)
	order := models.Order{
		ID:                id,
		OrderNumber:       lo.ToPtr(rand.Int63n(100_000)),
		CustomerID:        lo.ToPtr(rand.Int63n(1_000_000_000)),
		Email:             lo.ToPtr(faker.Email()),
		TotalPrice:        lo.ToPtr(float64(rand.Intn(100_000)) / 100),
		Currency:          lo.ToPtr(faker.Currency()),
		CreatedAt:         lo.ToPtr(fakeTime()),
		UpdatedAt:         lo.ToPtr(fakeTime()),
		FinancialStatus:   lo.ToPtr("paid"),
		FulfillmentStatus: lo.ToPtr("fulfilled"),
		Raw:               fakeRaw(id),
		LineItems:         fakeLineItems(id),
	}

	for _, op := range ops {
		op(&order)
	}

	return order
}

// FakeLineItem returns models.LineItem with fake data linked to provided order ID.
func FakeLineItem(orderID int64, ops ...func(li *models.LineItem)) models.LineItem {
	id := rand.Int63n(1_000_000_000)
	lineItem := models.LineItem{
		ID:        id,
		OrderID:   orderID,
		ProductID: lo.ToPtr(rand.Int63n(1_000_000_000)),
		VariantID: lo.ToPtr(rand.Int63n(1_000_000_000)),
		Title:     lo.ToPtr(faker.Word()),
		Quantity:  lo.ToPtr(rand.Int31n(10) + 1),
		Price:     lo.ToPtr(float64(rand.Intn(10_000)) / 100),
		SKU:       lo.ToPtr(faker.Word()),
		Raw:       fakeRaw(id),
	}

	for _, op := range ops {
		op(&lineItem)
	}

	return lineItem
}

func fakeVariants(productID int64) []models.Variant {
	variantsLen := rand.Intn(4)
	variants := make([]models.Variant, 0, variantsLen)
	for i := 0; i < variantsLen; i++ {
		variants = append(variants, FakeVariant(productID))
	}

	return variants
}

func fakeLineItems(orderID int64) []models.LineItem {
	lineItemsLen := rand.Intn(4)
	lineItems := make([]models.LineItem, 0, lineItemsLen)
	for i := 0; i < lineItemsLen; i++ {
		lineItems = append(lineItems, FakeLineItem(orderID))
	}

	return lineItems
}

func fakeTime() time.Time {
	return time.Date(2024, time.Month(rand.Intn(12)+1), rand.Intn(28)+1, rand.Intn(24), rand.Intn(60), rand.Intn(60), 0, time.UTC)
}

func fakeRaw(id int64) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":%d}`, id))
}
