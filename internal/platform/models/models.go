package models

import (
	"encoding/json"
	"time"
)

// EntityType identifies one independently synced entity type.
type EntityType string

// Synced entity types, in pass order.
const (
	EntityProducts  EntityType = "products"
	EntityCustomers EntityType = "customers"
	EntityOrders    EntityType = "orders"
)

// Product is product model with its nested variants.
type Product struct {
	ID          int64
	Title       *string
	Vendor      *string
	ProductType *string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
	Raw         json.RawMessage
	Variants    []Variant
}

// Variant is product variant model.
type Variant struct {
	ID             int64
	ProductID      int64
	Title          *string
	SKU            *string
	Price          *float64
	CompareAtPrice *float64
	Position       *int32
	Option1        *string
	Option2        *string
	Option3        *string
	CreatedAt      *time.Time
	UpdatedAt      *time.Time
	Raw            json.RawMessage
}

// Customer is customer model.
type Customer struct {
	ID        int64
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	CreatedAt *time.Time
	UpdatedAt *time.Time
	Raw       json.RawMessage
}

// Order is order model with its nested line items.
// CustomerID is nil for orders without an attributed customer (guest checkout).
type Order struct {
	ID                int64
	OrderNumber       *int64
	CustomerID        *int64
	Email             *string
	TotalPrice        *float64
	Currency          *string
	CreatedAt         *time.Time
	UpdatedAt         *time.Time
	FinancialStatus   *string
	FulfillmentStatus *string
	Raw               json.RawMessage
	LineItems         []LineItem
}

// LineItem is order line item model. ProductID and VariantID may reference
// rows a later or failed pass has not written yet.
type LineItem struct {
	ID        int64
	OrderID   int64
	ProductID *int64
	VariantID *int64
	Title     *string
	Quantity  *int32
	Price     *float64
	SKU       *string
	Raw       json.RawMessage
}

// Run is one sync invocation record.
type Run struct {
	ID            int32
	StartedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string
	FullSync      bool
	Products      *int32
	Customers     *int32
	Orders        *int32
	FailedRecords *int32
}

// SyncSummary holds per-entity counts of one sync invocation.
type SyncSummary struct {
	Products      int32
	Customers     int32
	Orders        int32
	FailedRecords int32
}
