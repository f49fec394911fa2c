package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so they can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		amount       DOUBLE PRECISION NOT NULL,
		currency     TEXT NOT NULL,
		category     TEXT NOT NULL,
		paid_by      TEXT NOT NULL,
		split_with   TEXT[] NOT NULL,
		settled_by   TEXT[] NOT NULL DEFAULT '{}',
		expense_date DATE NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses (expense_date)`,
	`CREATE TABLE IF NOT EXISTS rates (
		code       TEXT PRIMARY KEY,
		rate       DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema to the database
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}
	return nil
}
