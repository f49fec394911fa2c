package rates

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrRateNotFound      = errors.New("currency not found in rate table")
	ErrInvalidRate       = errors.New("rate must be a positive number")
	ErrReferenceReadOnly = errors.New("the reference currency always has rate 1")
)

// Service handles rate table business logic.
//
// Rates are supplied by the caller; the service performs no freshness
// validation and no upstream fetching.
type Service struct {
	repo      *Repository
	reference string
}

// NewService creates a new rates service for the given reference currency
func NewService(repo *Repository, referenceCurrency string) *Service {
	return &Service{
		repo:      repo,
		reference: referenceCurrency,
	}
}

// Reference returns the reference currency code
func (s *Service) Reference() string {
	return s.reference
}

// Table returns the rate table as a code→rate map. The reference currency is
// always present with rate 1, whatever the stored rows say.
func (s *Service) Table(ctx context.Context) (map[string]float64, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	table := make(map[string]float64, len(stored)+1)
	for _, r := range stored {
		table[r.Code] = r.Rate
	}
	table[s.reference] = 1

	return table, nil
}

// List returns the stored rate rows
func (s *Service) List(ctx context.Context) ([]*Rate, error) {
	return s.repo.GetAll(ctx)
}

// Set stores the rate for a currency code
func (s *Service) Set(ctx context.Context, code string, rate float64) error {
	if code == s.reference {
		return ErrReferenceReadOnly
	}
	if rate <= 0 {
		return ErrInvalidRate
	}

	return s.repo.Upsert(ctx, code, rate)
}

// SetAll merges a batch of rates into the table
func (s *Service) SetAll(ctx context.Context, table map[string]float64) error {
	for code, rate := range table {
		if err := s.Set(ctx, code, rate); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes a currency from the rate table
func (s *Service) Remove(ctx context.Context, code string) error {
	if code == s.reference {
		return ErrReferenceReadOnly
	}
	return s.repo.Delete(ctx, code)
}
