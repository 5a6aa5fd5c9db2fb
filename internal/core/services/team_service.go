package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/middleware"
)

// TeamService handles shared-tenancy membership.
type TeamService struct {
	userRepo portsrepo.UserRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(ur portsrepo.UserRepository) portssvc.TeamSvcFacade {
	return &TeamService{userRepo: ur}
}

// Ensure TeamService implements the portssvc.TeamSvcFacade interface
var _ portssvc.TeamSvcFacade = (*TeamService)(nil)

// AddTeamMember re-points the target account at the caller's tenant. The
// target's own catalog and ledger rows stay in storage but become unreachable
// through tenant resolution; callers are expected to warn the target that the
// old data is lost.
func (s *TeamService) AddTeamMember(ctx context.Context, callerID, targetUsername string, role domain.UserRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		return fmt.Errorf("failed to resolve caller %s: %w", callerID, err)
	}
	if caller.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if !role.IsValid() {
		return fmt.Errorf("%w: role must be admin or member", apperrors.ErrValidation)
	}

	target, err := s.userRepo.FindUserByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	tenantID := caller.TenantID()
	if target.UserID == tenantID {
		return fmt.Errorf("%w: cannot add the tenant owner as a team member", apperrors.ErrValidation)
	}

	if err := s.userRepo.UpdateTeamMembership(ctx, target.UserID, tenantID, role, time.Now()); err != nil {
		return err
	}

	logger.Info("Team member added",
		slog.String("target_user_id", target.UserID),
		slog.String("tenant_id", tenantID),
		slog.String("role", string(role)),
	)
	return nil
}

func (s *TeamService) ListTeamMembers(ctx context.Context, callerID string) ([]domain.User, error) {
	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller %s: %w", callerID, err)
	}
	if caller.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	return s.userRepo.FindTeamMembers(ctx, caller.TenantID())
}
