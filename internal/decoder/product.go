package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
)

// Product is model for product records in API responses. Variants stay raw so
// each variant keeps its original payload.
type Product struct {
	ID          *int64            `json:"id"`
	Title       *string           `json:"title"`
	Vendor      *string           `json:"vendor"`
	ProductType *string           `json:"product_type"`
	CreatedAt   *string           `json:"created_at"`
	UpdatedAt   *string           `json:"updated_at"`
	Variants    []json.RawMessage `json:"variants"`
}

// Variant is model for product variant records in API responses.
type Variant struct {
	ID             *int64          `json:"id"`
	ProductID      *int64          `json:"product_id"`
	Title          *string         `json:"title"`
	SKU            *string         `json:"sku"`
	Price          json.RawMessage `json:"price"`
	CompareAtPrice json.RawMessage `json:"compare_at_price"`
	Position       *int32          `json:"position"`
	Option1        *string         `json:"option1"`
	Option2        *string         `json:"option2"`
	Option3        *string         `json:"option3"`
	CreatedAt      *string         `json:"created_at"`
	UpdatedAt      *string         `json:"updated_at"`
}

func toAppProduct(record json.RawMessage) (*models.Product, int32, error) {
	var product Product
	if err := json.Unmarshal(record, &product); err != nil {
		return nil, 0, fmt.Errorf("can't unmarshal product: %w", err)
	}

	if product.ID == nil {
		return nil, 0, ErrMissingID
	}

	variants, failed := toAppVariants(*product.ID, product.Variants)

	return &models.Product{
		ID:          *product.ID,
		Title:       product.Title,
		Vendor:      product.Vendor,
		ProductType: product.ProductType,
		CreatedAt:   toTime(product.CreatedAt),
		UpdatedAt:   toTime(product.UpdatedAt),
		Raw:         record,
		Variants:    variants,
	}, failed, nil
}

func toAppVariants(productID int64, records []json.RawMessage) ([]models.Variant, int32) {
	if len(records) == 0 {
		return nil, 0
	}

	variants := make([]models.Variant, 0, len(records))
	failed := int32(0)

	for _, record := range records {
		var variant Variant
		if err := json.Unmarshal(record, &variant); err != nil || variant.ID == nil {
			failed++
			continue
		}

		if variant.ProductID == nil {
			variant.ProductID = &productID
		}

		variants = append(variants, models.Variant{
			ID:             *variant.ID,
			ProductID:      *variant.ProductID,
			Title:          variant.Title,
			SKU:            variant.SKU,
			Price:          toFloat(variant.Price),
			CompareAtPrice: toFloat(variant.CompareAtPrice),
			Position:       variant.Position,
			Option1:        variant.Option1,
			Option2:        variant.Option2,
			Option3:        variant.Option3,
			CreatedAt:      toTime(variant.CreatedAt),
			UpdatedAt:      toTime(variant.UpdatedAt),
			Raw:            record,
		})
	}

	return variants, failed
}
