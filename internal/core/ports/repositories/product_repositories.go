package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for a tenant's catalog.
// Every operation is scoped by the owning tenant id; codes are only unique
// within one tenant.
type ProductRepository interface {
	FindProductsByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)

	// SaveProduct inserts a new catalog row and returns it with its
	// generated id. Returns apperrors.ErrDuplicate when (code, owner)
	// already exists.
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// RecordSale atomically decrements the product's quantity by one and
	// credits the tenant's ledger with the stored unit price. The whole
	// operation rolls back and apperrors.ErrNoStock is returned when no row
	// with positive quantity matches; concurrent sales of a last unit
	// therefore produce exactly one success. The credited price is returned.
	RecordSale(ctx context.Context, ownerID, code string) (decimal.Decimal, error)

	// AddStock increments the product's quantity by added (> 0, validated by
	// the caller). Returns apperrors.ErrNotFound when no row matches.
	AddStock(ctx context.Context, ownerID, code string, added int, now time.Time) error

	// DeleteProduct removes the row, returning apperrors.ErrNotFound when no
	// row matches.
	DeleteProduct(ctx context.Context, ownerID, code string) error
}
