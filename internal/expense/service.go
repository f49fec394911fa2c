package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles expense business logic.
//
// Every mutation validates the full record before anything is written, so a
// rejected mutation leaves the stored state untouched.
type Service struct {
	repo *Repository
}

// NewService creates a new expense service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create records a new expense after validating the data-model invariants
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	if err := validateRecord(req.Amount, req.PaidBy, req.Currency, req.SplitWith, req.SettledBy); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date, time.Now())
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = req.Category
	}

	settledBy := req.SettledBy
	if settledBy == nil {
		settledBy = []string{}
	}

	return s.repo.Create(ctx, &Expense{
		ID:        uuid.NewString(),
		Title:     title,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Category:  req.Category,
		PaidBy:    req.PaidBy,
		SplitWith: req.SplitWith,
		SettledBy: settledBy,
		Date:      date,
	})
}

// GetByID retrieves an expense by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// List retrieves expenses matching the filter
func (s *Service) List(ctx context.Context, filter Filter) ([]*Expense, error) {
	return s.repo.List(ctx, filter)
}

// Update replaces an existing expense record
func (s *Service) Update(ctx context.Context, id string, req *UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}

	if err := validateRecord(req.Amount, req.PaidBy, req.Currency, req.SplitWith, req.SettledBy); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date, existing.Date)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = req.Category
	}

	settledBy := req.SettledBy
	if settledBy == nil {
		settledBy = []string{}
	}

	updated, err := s.repo.Update(ctx, &Expense{
		ID:        id,
		Title:     title,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Category:  req.Category,
		PaidBy:    req.PaidBy,
		SplitWith: req.SplitWith,
		SettledBy: settledBy,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrExpenseNotFound
	}

	return updated, nil
}

// Delete removes an expense record
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ToggleSettled flips whether a participant has reimbursed their share.
// The payer/non-participant decision lives in nextSettledSet.
func (s *Service) ToggleSettled(ctx context.Context, expenseID, memberID string) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	settledBy, changed, err := nextSettledSet(expense, memberID)
	if err != nil {
		return nil, err
	}
	if !changed {
		return expense, nil
	}

	updated, err := s.repo.UpdateSettledBy(ctx, expenseID, settledBy)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrExpenseNotFound
	}

	return updated, nil
}

// parseDate parses a YYYY-MM-DD string. An empty value falls back to the
// UTC calendar date of fallback, matching how ledger views determine "today".
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		y, m, d := fallback.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
