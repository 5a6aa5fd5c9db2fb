package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// LedgerRepository defines persistence operations for tenant money totals.
// The InTx variants participate in a caller-owned transaction so user
// registration and the sale operation stay atomic across tables.
type LedgerRepository interface {
	FindLedgerByOwner(ctx context.Context, ownerID string) (*domain.Ledger, error)

	// CreateLedgerInTx inserts a zero-balance ledger row for a new tenant.
	CreateLedgerInTx(ctx context.Context, tx pgx.Tx, ownerID string, now time.Time) error

	// IncrementTotalInTx adds amount to the tenant's running total.
	IncrementTotalInTx(ctx context.Context, tx pgx.Tx, ownerID string, amount decimal.Decimal, now time.Time) error
}
