package storage

import (
	"encoding/json"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/samber/lo"

	smodel "github.com/quantumspectra/shopify-sync/internal/platform/storage/gen/sqlite/model"
)

// ToDBProduct converts models.Product into sqlite product model.
func ToDBProduct(product *models.Product) *smodel.Products {
	return &smodel.Products{
		ID:          product.ID,
		Title:       product.Title,
		Vendor:      product.Vendor,
		ProductType: product.ProductType,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
		RawJSON:     rawToString(product.Raw),
	}
}

// ToDBVariant converts models.Variant into sqlite product variant model.
func ToDBVariant(variant *models.Variant) *smodel.ProductVariants {
	return &smodel.ProductVariants{
		ID:             variant.ID,
		ProductID:      variant.ProductID,
		Title:          variant.Title,
		Sku:            variant.SKU,
		Price:          variant.Price,
		CompareAtPrice: variant.CompareAtPrice,
		Position:       variant.Position,
		Option1:        variant.Option1,
		Option2:        variant.Option2,
		Option3:        variant.Option3,
		CreatedAt:      variant.CreatedAt,
		UpdatedAt:      variant.UpdatedAt,
		RawJSON:        rawToString(variant.Raw),
	}
}

// ToDBCustomer converts models.Customer into sqlite customer model.
func ToDBCustomer(customer *models.Customer) *smodel.Customers {
	return &smodel.Customers{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
		RawJSON:   rawToString(customer.Raw),
	}
}

// ToDBOrder converts models.Order into sqlite order model.
func ToDBOrder(order *models.Order) *smodel.Orders {
	return &smodel.Orders{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		CustomerID:        order.CustomerID,
		Email:             order.Email,
		TotalPrice:        order.TotalPrice,
		Currency:          order.Currency,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
		FinancialStatus:   order.FinancialStatus,
		FulfillmentStatus: order.FulfillmentStatus,
		RawJSON:           rawToString(order.Raw),
	}
}

// ToDBLineItem converts models.LineItem into sqlite line item model.
func ToDBLineItem(lineItem *models.LineItem) *smodel.LineItems {
	return &smodel.LineItems{
		ID:        lineItem.ID,
		OrderID:   lineItem.OrderID,
		ProductID: lineItem.ProductID,
		VariantID: lineItem.VariantID,
		Title:     lineItem.Title,
		Quantity:  lineItem.Quantity,
		Price:     lineItem.Price,
		Sku:       lineItem.SKU,
		RawJSON:   rawToString(lineItem.Raw),
	}
}

func toDBRun(run *models.Run) *smodel.SyncRuns {
	return &smodel.SyncRuns{
		ID:            run.ID,
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
		Success:       run.IsSuccess,
		StatusMessage: run.StatusMessage,
		FullSync:      run.FullSync,
		Products:      run.Products,
		Customers:     run.Customers,
		Orders:        run.Orders,
		FailedRecords: run.FailedRecords,
	}
}

func rawToString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	return lo.ToPtr(string(raw))
}
