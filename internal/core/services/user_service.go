package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/middleware"
	"github.com/stockpos/stockpos_backend/internal/utils"
)

// UserService handles account registration and lookups.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &UserService{userRepo: ur}
}

// Ensure UserService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser registers a new account. The account starts as the admin of its
// own tenancy and gets a zero-balance ledger in the same transaction.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.CreateUserWithLedger(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("username", username))
	return &user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}
