package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements creates the import targets. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id                    UUID PRIMARY KEY,
		name                  TEXT NOT NULL,
		name_ar               TEXT,
		slug                  TEXT NOT NULL UNIQUE,
		description           TEXT,
		description_ar        TEXT,
		category              TEXT NOT NULL,
		subcategory           TEXT,
		price                 NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		compare_at_price      NUMERIC(12,2) CHECK (compare_at_price >= 0),
		sku                   TEXT UNIQUE,
		stock_quantity        INTEGER NOT NULL DEFAULT 0,
		images                TEXT[] NOT NULL DEFAULT '{}',
		tags                  TEXT[] NOT NULL DEFAULT '{}',
		is_featured           BOOLEAN NOT NULL DEFAULT FALSE,
		is_on_sale            BOOLEAN NOT NULL DEFAULT FALSE,
		is_new                BOOLEAN NOT NULL DEFAULT FALSE,
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS products_category_idx ON products (category)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id             UUID PRIMARY KEY,
		title          TEXT NOT NULL,
		slug           TEXT NOT NULL UNIQUE,
		content        TEXT NOT NULL,
		excerpt        TEXT NOT NULL,
		author         TEXT NOT NULL,
		published_date TEXT NOT NULL,
		categories     TEXT[] NOT NULL DEFAULT '{}',
		tags           TEXT[] NOT NULL DEFAULT '{}',
		status         TEXT NOT NULL CHECK (status IN ('published', 'draft')),
		reading_time   INTEGER NOT NULL CHECK (reading_time >= 1),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		section    TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables the service writes to
func EnsureSchema(ctx context.Context, p *pgxpool.Pool) error {
	if p == nil {
		return ErrNotConnected
	}
	for i, stmt := range schemaStatements {
		if _, err := p.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
