package repository

import (
	"context"
	"errors"
	"fmt"

	"platra/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// checkoutRepository implements CheckoutRepository using PostgreSQL.
type checkoutRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCheckoutRepository creates a PostgreSQL-backed checkout repository.
func NewCheckoutRepository(pool *pgxpool.Pool, logger zerolog.Logger) CheckoutRepository {
	return &checkoutRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "checkout").Logger(),
	}
}

func (r *checkoutRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func (r *checkoutRepository) CreateCheckout(ctx context.Context, tx pgx.Tx, checkout *model.Checkout) error {
	query := `
		INSERT INTO checkouts (
			id, session_id, organization_id, customer_name, customer_email,
			special_instructions, total, currency, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		checkout.ID,
		checkout.SessionID,
		checkout.OrganizationID,
		checkout.CustomerName,
		checkout.CustomerEmail,
		checkout.SpecialInstructions,
		checkout.Total,
		checkout.Currency,
		checkout.Status,
		checkout.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("checkout_id", checkout.ID.String()).
			Msg("failed to create checkout")
		return fmt.Errorf("failed to create checkout: %w", err)
	}

	r.logger.Debug().
		Str("checkout_id", checkout.ID.String()).
		Msg("checkout created")

	return nil
}

// CreateCheckoutItems queues one insert per item in a single batch. Item order is kept in
// the position column.
func (r *checkoutRepository) CreateCheckoutItems(ctx context.Context, tx pgx.Tx, items []model.CheckoutItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO checkout_items (
			id, checkout_id, position, cart_id, menu_item_id, name, base_price, total_price, variations
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for i, item := range items {
		variations := item.Variations
		if variations == nil {
			variations = map[string]model.MenuItemVariation{}
		}
		batch.Queue(query,
			item.ID,
			item.CheckoutID,
			i,
			item.CartID,
			item.MenuItemID,
			item.Name,
			item.BasePrice,
			item.TotalPrice,
			variations,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("checkout_id", items[i].CheckoutID.String()).
				Str("cart_id", items[i].CartID).
				Msg("failed to create checkout item")
			return fmt.Errorf("failed to create checkout item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("checkout items created")

	return nil
}

func (r *checkoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Checkout, []model.CheckoutItem, error) {
	checkoutQuery := `
		SELECT id, session_id, organization_id, customer_name, customer_email,
			special_instructions, total, currency, status, created_at
		FROM checkouts
		WHERE id = $1
	`

	var checkout model.Checkout
	err := r.pool.QueryRow(ctx, checkoutQuery, id).Scan(
		&checkout.ID,
		&checkout.SessionID,
		&checkout.OrganizationID,
		&checkout.CustomerName,
		&checkout.CustomerEmail,
		&checkout.SpecialInstructions,
		&checkout.Total,
		&checkout.Currency,
		&checkout.Status,
		&checkout.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("checkout_id", id.String()).Msg("checkout not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("checkout_id", id.String()).Msg("failed to query checkout")
		return nil, nil, fmt.Errorf("failed to query checkout: %w", err)
	}

	itemsQuery := `
		SELECT id, checkout_id, cart_id, menu_item_id, name, base_price, total_price, variations
		FROM checkout_items
		WHERE checkout_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("checkout_id", id.String()).
			Msg("failed to query checkout items")
		return nil, nil, fmt.Errorf("failed to query checkout items: %w", err)
	}
	defer rows.Close()

	var items []model.CheckoutItem
	for rows.Next() {
		var item model.CheckoutItem
		err := rows.Scan(
			&item.ID,
			&item.CheckoutID,
			&item.CartID,
			&item.MenuItemID,
			&item.Name,
			&item.BasePrice,
			&item.TotalPrice,
			&item.Variations,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan checkout item row")
			return nil, nil, fmt.Errorf("failed to scan checkout item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating checkout item rows")
		return nil, nil, fmt.Errorf("error iterating checkout items: %w", err)
	}

	return &checkout, items, nil
}
