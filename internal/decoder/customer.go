package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
)

// Customer is model for customer records in API responses.
type Customer struct {
	ID        *int64  `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func toAppCustomer(record json.RawMessage) (*models.Customer, error) {
	var customer Customer
	if err := json.Unmarshal(record, &customer); err != nil {
		return nil, fmt.Errorf("can't unmarshal customer: %w", err)
	}

	if customer.ID == nil {
		return nil, ErrMissingID
	}

	return &models.Customer{
		ID:        *customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: toTime(customer.CreatedAt),
		UpdatedAt: toTime(customer.UpdatedAt),
		Raw:       record,
	}, nil
}
