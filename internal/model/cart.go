package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartEntry is a snapshot of one confirmed menu item, its selected variations and its price.
type CartEntry struct {
	ID                 string                       `json:"cart_id"`
	Item               MenuItem                     `json:"item"`
	SelectedVariations map[string]MenuItemVariation `json:"selected_variations"`
	TotalPrice         decimal.Decimal              `json:"total_price"`
	AddedAt            time.Time                    `json:"added_at"`
}

// CheckoutRequest is the payload assembled from the cart and the customer's details.
type CheckoutRequest struct {
	Items               []CartEntry `json:"items"`
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

// CheckoutForm is what the customer submits from the cart view.
type CheckoutForm struct {
	Name                string `json:"customer_name"`
	Email               string `json:"customer_email"`
	SpecialInstructions string `json:"special_instructions"`
}
