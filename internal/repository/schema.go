package repository

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,
	`CREATE SEQUENCE IF NOT EXISTS order_number_seq`,
	`CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT,
		image       TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		slug           TEXT NOT NULL UNIQUE,
		description    TEXT,
		images         JSONB NOT NULL DEFAULT '[]',
		price          BIGINT NOT NULL CHECK (price > 0),
		old_price      BIGINT,
		badge          TEXT,
		specifications JSONB NOT NULL DEFAULT '{}',
		category_id    TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
		in_stock       BOOLEAN NOT NULL DEFAULT TRUE,
		featured       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL,
		email      TEXT,
		message    TEXT,
		source     TEXT NOT NULL,
		product_id TEXT REFERENCES products(id) ON DELETE SET NULL,
		status     TEXT NOT NULL DEFAULT 'NEW',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id               TEXT PRIMARY KEY,
		order_number     TEXT NOT NULL UNIQUE,
		customer_name    TEXT NOT NULL,
		customer_phone   TEXT NOT NULL,
		customer_email   TEXT,
		customer_address TEXT,
		total_amount     BIGINT NOT NULL CHECK (total_amount > 0),
		status           TEXT NOT NULL DEFAULT 'PENDING',
		notes            TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id         TEXT PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id TEXT NOT NULL REFERENCES products(id),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		price      BIGINT NOT NULL CHECK (price > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE TABLE IF NOT EXISTS images (
		id         TEXT PRIMARY KEY,
		filename   TEXT NOT NULL,
		mime_type  TEXT NOT NULL,
		size       BIGINT NOT NULL,
		data       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		image        TEXT NOT NULL DEFAULT '',
		price        BIGINT NOT NULL DEFAULT 0,
		link         TEXT NOT NULL DEFAULT '',
		space_type   TEXT NOT NULL DEFAULT '',
		space_size   TEXT NOT NULL DEFAULT '',
		guests_count TEXT NOT NULL DEFAULT '',
		canopy_type  TEXT NOT NULL DEFAULT '',
		style        TEXT NOT NULL DEFAULT '',
		profile      vector(5) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema. Every statement is idempotent.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return nil
}
