package services

import (
	"context"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// TeamSvcFacade defines team-membership operations. Both are admin only.
type TeamSvcFacade interface {
	// AddTeamMember points the target account at the caller's tenant with
	// the given role. The target's own prior catalog and ledger become
	// unreachable afterwards.
	AddTeamMember(ctx context.Context, callerID, targetUsername string, role domain.UserRole) error

	// ListTeamMembers returns the accounts currently sharing the caller's
	// tenant.
	ListTeamMembers(ctx context.Context, callerID string) ([]domain.User, error)
}
