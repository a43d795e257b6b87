package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the checkout tables. It is idempotent. Amounts are unscaled NUMERIC so a
// recorded checkout keeps the exact, possibly negative, cart totals.
const Schema = `
CREATE TABLE IF NOT EXISTS checkouts (
	id UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	organization_id TEXT NOT NULL DEFAULT '',
	customer_name TEXT NOT NULL,
	customer_email TEXT NOT NULL,
	special_instructions TEXT NOT NULL DEFAULT '',
	total NUMERIC NOT NULL,
	currency TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS checkout_items (
	id UUID PRIMARY KEY,
	checkout_id UUID NOT NULL REFERENCES checkouts(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	cart_id TEXT NOT NULL,
	menu_item_id TEXT NOT NULL,
	name TEXT NOT NULL,
	base_price NUMERIC NOT NULL,
	total_price NUMERIC NOT NULL,
	variations JSONB NOT NULL DEFAULT '{}'::jsonb
);

ALTER TABLE checkouts DROP CONSTRAINT IF EXISTS checkouts_total_check;
ALTER TABLE checkouts ALTER COLUMN total TYPE NUMERIC;
ALTER TABLE checkout_items ALTER COLUMN base_price TYPE NUMERIC;
ALTER TABLE checkout_items ALTER COLUMN total_price TYPE NUMERIC;

CREATE INDEX IF NOT EXISTS idx_checkout_items_checkout_id ON checkout_items (checkout_id);
CREATE INDEX IF NOT EXISTS idx_checkouts_session_id ON checkouts (session_id);
`

// EnsureSchema applies Schema.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
