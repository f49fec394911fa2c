package member

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tripledger/internal/expense"
)

// Common errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrMemberInUse    = errors.New("member is referenced by expenses and cannot be removed")
	ErrNameRequired   = errors.New("member name is required")
)

// Service handles trip member business logic
type Service struct {
	repo        *Repository
	expenseRepo *expense.Repository
}

// NewService creates a new member service.
// The expense repository is injected so deletions can preserve referential
// integrity: a member stays deletable only while no expense references them.
func NewService(repo *Repository, expenseRepo *expense.Repository) *Service {
	return &Service{
		repo:        repo,
		expenseRepo: expenseRepo,
	}
}

// Create adds a new trip member
func (s *Service) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	return s.repo.Create(ctx, uuid.NewString(), req)
}

// GetByID retrieves a member by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// List retrieves all trip members
func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

// Update modifies an existing member
func (s *Service) Update(ctx context.Context, id string, req *UpdateMemberRequest) (*Member, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}

	member, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// Delete removes a member, rejecting the deletion while any expense still
// references them as payer or split participant.
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.expenseRepo.CountByMember(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMemberInUse
	}

	return s.repo.Delete(ctx, id)
}
