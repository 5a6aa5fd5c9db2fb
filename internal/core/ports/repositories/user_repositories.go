package repositories

import (
	"context"
	"time"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// CreateUserWithLedger inserts the account row and its zero-balance
	// ledger row in a single database transaction.
	CreateUserWithLedger(ctx context.Context, user domain.User) error

	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// UpdateTeamMembership points the target account's owner reference at
	// ownerID and sets its role. Re-invocation simply re-points the reference.
	UpdateTeamMembership(ctx context.Context, targetUserID, ownerID string, role domain.UserRole, now time.Time) error

	// FindTeamMembers returns the accounts whose owner reference is ownerID.
	FindTeamMembers(ctx context.Context, ownerID string) ([]domain.User, error)
}
