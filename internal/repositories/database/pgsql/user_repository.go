package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
	"github.com/stockpos/stockpos_backend/internal/models"
	"github.com/stockpos/stockpos_backend/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
	ledgerRepo portsrepo.LedgerRepository
}

func newPgxUserRepository(pool *pgxpool.Pool, ledgerRepo portsrepo.LedgerRepository) portsrepo.UserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerRepo:     ledgerRepo,
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// CreateUserWithLedger inserts the account and its zero-balance ledger row in
// one transaction so a registered account always has a ledger.
func (r *PgxUserRepository) CreateUserWithLedger(ctx context.Context, user domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, role, owner_reference, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.OwnerReference,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %s: %w", user.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if err := r.ledgerRepo.CreateLedgerInTx(ctx, tx, user.UserID, user.CreatedAt); err != nil {
		return fmt.Errorf("failed to create ledger for user %s: %w", user.UserID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, owner_reference, created_at, last_updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID), userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, owner_reference, created_at, last_updated_at
		FROM users
		WHERE username = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, username), username)
}

func (r *PgxUserRepository) scanUser(row pgx.Row, key string) (*domain.User, error) {
	var modelUser models.User
	err := row.Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Role,
		&modelUser.OwnerReference,
		&modelUser.CreatedAt,
		&modelUser.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", key, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdateTeamMembership(ctx context.Context, targetUserID, ownerID string, role domain.UserRole, now time.Time) error {
	query := `
		UPDATE users
		SET owner_reference = $1, role = $2, last_updated_at = $3
		WHERE user_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, ownerID, string(role), now, targetUserID)
	if err != nil {
		return fmt.Errorf("failed to update team membership: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) FindTeamMembers(ctx context.Context, ownerID string) ([]domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, owner_reference, created_at, last_updated_at
		FROM users
		WHERE owner_reference = $1
		ORDER BY username;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		var modelUser models.User
		err := rows.Scan(
			&modelUser.UserID,
			&modelUser.Username,
			&modelUser.PasswordHash,
			&modelUser.Role,
			&modelUser.OwnerReference,
			&modelUser.CreatedAt,
			&modelUser.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		modelUsers = append(modelUsers, modelUser)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", rows.Err())
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}
