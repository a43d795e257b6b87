package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutStatusPendingPayment marks a recorded checkout that has not been paid yet.
const CheckoutStatusPendingPayment = "pending_payment"

// Checkout is a recorded checkout submission.
type Checkout struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	SessionID           string          `json:"-" db:"session_id"`
	OrganizationID      string          `json:"organizationId,omitempty" db:"organization_id"`
	CustomerName        string          `json:"customerName" db:"customer_name"`
	CustomerEmail       string          `json:"customerEmail" db:"customer_email"`
	SpecialInstructions string          `json:"specialInstructions,omitempty" db:"special_instructions"`
	Total               decimal.Decimal `json:"total" db:"total"`
	Currency            string          `json:"currency" db:"currency"`
	Status              string          `json:"status" db:"status"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at"`
}

// CheckoutItem is one line of a recorded checkout.
type CheckoutItem struct {
	ID         uuid.UUID                    `json:"-" db:"id"`
	CheckoutID uuid.UUID                    `json:"-" db:"checkout_id"`
	CartID     string                       `json:"cartId" db:"cart_id"`
	MenuItemID string                       `json:"menuItemId" db:"menu_item_id"`
	Name       string                       `json:"name" db:"name"`
	BasePrice  decimal.Decimal              `json:"basePrice" db:"base_price"`
	TotalPrice decimal.Decimal              `json:"totalPrice" db:"total_price"`
	Variations map[string]MenuItemVariation `json:"variations" db:"variations"`
}

// CheckoutResponse is returned after a checkout has been recorded.
type CheckoutResponse struct {
	Checkout       Checkout       `json:"checkout"`
	Items          []CheckoutItem `json:"items"`
	FormattedTotal string         `json:"formattedTotal"`
}
