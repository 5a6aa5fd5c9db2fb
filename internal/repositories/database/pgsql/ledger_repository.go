package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
	"github.com/stockpos/stockpos_backend/internal/models"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) FindLedgerByOwner(ctx context.Context, ownerID string) (*domain.Ledger, error) {
	query := `
		SELECT owner_id, total_money, last_updated_at
		FROM ledgers
		WHERE owner_id = $1;
	`
	var modelLedger models.Ledger
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&modelLedger.OwnerID,
		&modelLedger.TotalMoney,
		&modelLedger.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger for owner %s: %w", ownerID, err)
	}

	return &domain.Ledger{
		OwnerID:       modelLedger.OwnerID,
		TotalMoney:    modelLedger.TotalMoney,
		LastUpdatedAt: modelLedger.LastUpdatedAt,
	}, nil
}

func (r *PgxLedgerRepository) CreateLedgerInTx(ctx context.Context, tx pgx.Tx, ownerID string, now time.Time) error {
	query := `
		INSERT INTO ledgers (owner_id, total_money, last_updated_at)
		VALUES ($1, 0, $2);
	`
	if _, err := tx.Exec(ctx, query, ownerID, now); err != nil {
		return fmt.Errorf("failed to insert ledger: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) IncrementTotalInTx(ctx context.Context, tx pgx.Tx, ownerID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE ledgers
		SET total_money = total_money + $1, last_updated_at = $2
		WHERE owner_id = $3;
	`
	cmdTag, err := tx.Exec(ctx, query, amount, now, ownerID)
	if err != nil {
		return fmt.Errorf("failed to increment ledger total: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ledger for owner %s: %w", ownerID, apperrors.ErrNotFound)
	}
	return nil
}
