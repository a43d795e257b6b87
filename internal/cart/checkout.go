package cart

import (
	"strings"

	"platra/internal/model"
)

// ValidateCustomer enforces the checkout precondition: name and email must be non-blank.
func ValidateCustomer(name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return model.ErrMissingCustomer
	}
	return nil
}

// BuildCheckout assembles the checkout payload from the cart entries and customer details.
// It performs no validation of its own.
func BuildCheckout(entries []model.CartEntry, name, email, specialInstructions string) model.CheckoutRequest {
	items := make([]model.CartEntry, len(entries))
	copy(items, entries)
	return model.CheckoutRequest{
		Items:               items,
		CustomerName:        strings.TrimSpace(name),
		CustomerEmail:       strings.TrimSpace(email),
		SpecialInstructions: strings.TrimSpace(specialInstructions),
	}
}
