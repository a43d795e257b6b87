package repository

import (
	"context"

	"platra/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckoutRepository defines the data access operations for recorded checkouts.
type CheckoutRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateCheckout inserts a checkout within the provided transaction.
	CreateCheckout(ctx context.Context, tx pgx.Tx, checkout *model.Checkout) error

	// CreateCheckoutItems inserts the lines of a checkout within the provided transaction.
	CreateCheckoutItems(ctx context.Context, tx pgx.Tx, items []model.CheckoutItem) error

	// GetByID returns a checkout with its items, or nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Checkout, []model.CheckoutItem, error)
}
