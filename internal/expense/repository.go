package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Filter narrows List results. Zero values mean "no filter".
type Filter struct {
	Search string    // case-insensitive substring of title or category
	Date   time.Time // exact expense date
}

// Create inserts a new expense into the database
func (r *Repository) Create(ctx context.Context, e *Expense) (*Expense, error) {
	query := `
		INSERT INTO expenses (id, title, amount, currency, category, paid_by, split_with, settled_by, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, amount, currency, category, paid_by, split_with, settled_by, expense_date, created_at
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query,
		e.ID,
		e.Title,
		e.Amount,
		e.Currency,
		e.Category,
		e.PaidBy,
		pq.Array(e.SplitWith),
		pq.Array(e.SettledBy),
		e.Date,
	), "failed to create expense")
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT id, title, amount, currency, category, paid_by, split_with, settled_by, expense_date, created_at
		FROM expenses
		WHERE id = $1
	`

	expense, err := r.scanOne(r.db.QueryRowContext(ctx, query, id), "failed to get expense")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return expense, nil
}

// List retrieves expenses matching the filter, newest date first
func (r *Repository) List(ctx context.Context, filter Filter) ([]*Expense, error) {
	query := `
		SELECT id, title, amount, currency, category, paid_by, split_with, settled_by, expense_date, created_at
		FROM expenses
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
		  AND ($2::date IS NULL OR expense_date = $2::date)
		ORDER BY expense_date DESC, created_at DESC
	`

	var date interface{}
	if !filter.Date.IsZero() {
		date = filter.Date
	}

	rows, err := r.db.QueryContext(ctx, query, filter.Search, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.Title,
			&expense.Amount,
			&expense.Currency,
			&expense.Category,
			&expense.PaidBy,
			pq.Array(&expense.SplitWith),
			pq.Array(&expense.SettledBy),
			&expense.Date,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if expense.SettledBy == nil {
			expense.SettledBy = []string{}
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// Update replaces the mutable fields of an existing expense
func (r *Repository) Update(ctx context.Context, e *Expense) (*Expense, error) {
	query := `
		UPDATE expenses
		SET title = $2, amount = $3, currency = $4, category = $5, paid_by = $6,
		    split_with = $7, settled_by = $8, expense_date = $9
		WHERE id = $1
		RETURNING id, title, amount, currency, category, paid_by, split_with, settled_by, expense_date, created_at
	`

	expense, err := r.scanOne(r.db.QueryRowContext(ctx, query,
		e.ID,
		e.Title,
		e.Amount,
		e.Currency,
		e.Category,
		e.PaidBy,
		pq.Array(e.SplitWith),
		pq.Array(e.SettledBy),
		e.Date,
	), "failed to update expense")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return expense, nil
}

// UpdateSettledBy replaces only the settled set of an expense
func (r *Repository) UpdateSettledBy(ctx context.Context, id string, settledBy []string) (*Expense, error) {
	query := `
		UPDATE expenses
		SET settled_by = $2
		WHERE id = $1
		RETURNING id, title, amount, currency, category, paid_by, split_with, settled_by, expense_date, created_at
	`

	expense, err := r.scanOne(r.db.QueryRowContext(ctx, query, id, pq.Array(settledBy)), "failed to update settled set")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return expense, nil
}

// Delete removes an expense
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// CountByMember counts expenses referencing a member as payer or participant
func (r *Repository) CountByMember(ctx context.Context, memberID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM expenses
		WHERE paid_by = $1 OR $1 = ANY(split_with)
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, memberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses for member: %w", err)
	}

	return count, nil
}

// scanOne scans a single expense row, normalizing a nil settled set to empty
func (r *Repository) scanOne(row *sql.Row, errMsg string) (*Expense, error) {
	expense := &Expense{}
	err := row.Scan(
		&expense.ID,
		&expense.Title,
		&expense.Amount,
		&expense.Currency,
		&expense.Category,
		&expense.PaidBy,
		pq.Array(&expense.SplitWith),
		pq.Array(&expense.SettledBy),
		&expense.Date,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	if expense.SettledBy == nil {
		expense.SettledBy = []string{}
	}
	return expense, nil
}
