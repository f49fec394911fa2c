package rates

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles rate table persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new rates repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves the full rate table
func (r *Repository) GetAll(ctx context.Context) ([]*Rate, error) {
	query := `
		SELECT code, rate, updated_at
		FROM rates
		ORDER BY code
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rates: %w", err)
	}
	defer rows.Close()

	var result []*Rate
	for rows.Next() {
		rate := &Rate{}
		if err := rows.Scan(&rate.Code, &rate.Rate, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		result = append(result, rate)
	}

	return result, nil
}

// Upsert inserts or replaces the rate for a currency code
func (r *Repository) Upsert(ctx context.Context, code string, rate float64) error {
	query := `
		INSERT INTO rates (code, rate, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (code) DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, code, rate); err != nil {
		return fmt.Errorf("failed to upsert rate: %w", err)
	}

	return nil
}

// Delete removes a currency from the rate table
func (r *Repository) Delete(ctx context.Context, code string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rates WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete rate: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrRateNotFound
	}

	return nil
}
