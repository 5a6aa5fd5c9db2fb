package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// InventorySvcFacade defines the catalog operations. Every method takes the
// calling account's id; the service resolves the effective tenant (following
// the owner reference one hop) and the caller's current role internally.
type InventorySvcFacade interface {
	// ListCatalog returns the tenant's products and ledger total. Any role.
	ListCatalog(ctx context.Context, callerID string) ([]domain.Product, decimal.Decimal, error)

	// AddProduct creates a catalog row. Admin only.
	AddProduct(ctx context.Context, callerID, name string, quantity int, price decimal.Decimal, code string) (*domain.Product, error)

	// Sell atomically decrements stock by one and credits the ledger with
	// the product's stored unit price. Allowed for every role.
	Sell(ctx context.Context, callerID, code string) error

	// Restock increments stock by added (must be a positive integer). Admin only.
	Restock(ctx context.Context, callerID, code string, added int) error

	// DeleteProduct removes a catalog row. Admin only.
	DeleteProduct(ctx context.Context, callerID, code string) error
}
