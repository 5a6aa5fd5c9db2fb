package dto

import "github.com/stockpos/stockpos_backend/internal/core/domain"

// AddTeamMemberRequest defines the body for adding an account to the caller's
// tenancy.
type AddTeamMemberRequest struct {
	TargetUsername string          `json:"targetUsername" binding:"required"`
	Role           domain.UserRole `json:"role" binding:"required,oneof=admin member"`
}

// TeamMemberResponse describes one account sharing the tenant's catalog.
type TeamMemberResponse struct {
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// ListTeamMembersResponse wraps the team roster.
type ListTeamMembersResponse struct {
	Members []TeamMemberResponse `json:"members"`
}

// ToListTeamMembersResponse converts the member accounts to their response shape.
func ToListTeamMembersResponse(users []domain.User) ListTeamMembersResponse {
	members := make([]TeamMemberResponse, len(users))
	for i, u := range users {
		members[i] = TeamMemberResponse{
			Username: u.Username,
			Role:     u.Role,
		}
	}
	return ListTeamMembersResponse{Members: members}
}
