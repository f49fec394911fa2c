package member

// CreateMemberRequest represents the request body for adding a trip member
type CreateMemberRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=50"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// UpdateMemberRequest represents the request body for updating a member
type UpdateMemberRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// MemberResponse represents the response for a single member
type MemberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
