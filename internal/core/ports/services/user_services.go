package services

import (
	"context"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// UserSvcFacade defines the account-management operations the handlers rely on.
type UserSvcFacade interface {
	// CreateUser registers a new account with a hashed password and its
	// zero-balance ledger. Returns apperrors.ErrDuplicate when the username
	// is taken.
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)

	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
