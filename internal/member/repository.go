package member

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new member repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new member into the database
func (r *Repository) Create(ctx context.Context, id string, req *CreateMemberRequest) (*Member, error) {
	query := `
		INSERT INTO members (id, name, avatar_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, avatar_url, created_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.AvatarURL).Scan(
		&member.ID,
		&member.Name,
		&member.AvatarURL,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// GetByID retrieves a member by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Member, error) {
	query := `
		SELECT id, name, avatar_url, created_at
		FROM members
		WHERE id = $1
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.AvatarURL,
		&member.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// List retrieves all trip members ordered by join time
func (r *Repository) List(ctx context.Context) ([]*Member, error) {
	query := `
		SELECT id, name, avatar_url, created_at
		FROM members
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.AvatarURL,
			&member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// Update modifies an existing member
func (r *Repository) Update(ctx context.Context, id string, req *UpdateMemberRequest) (*Member, error) {
	query := `
		UPDATE members
		SET name = COALESCE($2, name), avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING id, name, avatar_url, created_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.AvatarURL).Scan(
		&member.ID,
		&member.Name,
		&member.AvatarURL,
		&member.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return member, nil
}

// Delete removes a member
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
