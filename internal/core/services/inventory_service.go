package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/middleware"
)

// InventoryService handles catalog reads and mutations, scoped to the
// caller's effective tenant.
type InventoryService struct {
	userRepo    portsrepo.UserRepository
	productRepo portsrepo.ProductRepository
	ledgerRepo  portsrepo.LedgerRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(ur portsrepo.UserRepository, pr portsrepo.ProductRepository, lr portsrepo.LedgerRepository) portssvc.InventorySvcFacade {
	return &InventoryService{
		userRepo:    ur,
		productRepo: pr,
		ledgerRepo:  lr,
	}
}

// Ensure InventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*InventoryService)(nil)

// resolveCaller loads the calling account and resolves its effective tenant.
// The role is read fresh from storage rather than trusted from the token, so
// membership changes apply to in-flight sessions immediately.
func (s *InventoryService) resolveCaller(ctx context.Context, callerID string) (*domain.User, string, error) {
	caller, err := s.userRepo.FindUserByID(ctx, callerID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve caller %s: %w", callerID, err)
	}
	return caller, caller.TenantID(), nil
}

func (s *InventoryService) ListCatalog(ctx context.Context, callerID string) ([]domain.Product, decimal.Decimal, error) {
	_, tenantID, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	products, err := s.productRepo.FindProductsByOwner(ctx, tenantID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByOwner(ctx, tenantID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return products, ledger.TotalMoney, nil
}

func (s *InventoryService) AddProduct(ctx context.Context, callerID, name string, quantity int, price decimal.Decimal, code string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, tenantID, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if !price.Equal(price.Round(2)) {
		return nil, fmt.Errorf("%w: price must have at most 2 decimal places", apperrors.ErrValidation)
	}
	if !domain.IsValidCode(code) {
		return nil, fmt.Errorf("%w: code must be exactly 8 digits", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		OwnerID:  tenantID,
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Code:     code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	logger.Info("Product added", slog.String("code", code), slog.String("tenant_id", tenantID))
	return created, nil
}

// Sell is allowed for every role; it is the only catalog mutation a member
// may perform.
func (s *InventoryService) Sell(ctx context.Context, callerID, code string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, tenantID, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return err
	}

	price, err := s.productRepo.RecordSale(ctx, tenantID, code)
	if err != nil {
		return err
	}

	logger.Info("Product sold", slog.String("code", code), slog.String("tenant_id", tenantID), slog.String("price", price.StringFixed(2)))
	return nil
}

func (s *InventoryService) Restock(ctx context.Context, callerID, code string, added int) error {
	caller, tenantID, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return err
	}
	if caller.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if added <= 0 {
		return fmt.Errorf("%w: added quantity must be a positive integer", apperrors.ErrValidation)
	}

	return s.productRepo.AddStock(ctx, tenantID, code, added, time.Now())
}

func (s *InventoryService) DeleteProduct(ctx context.Context, callerID, code string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, tenantID, err := s.resolveCaller(ctx, callerID)
	if err != nil {
		return err
	}
	if caller.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if err := s.productRepo.DeleteProduct(ctx, tenantID, code); err != nil {
		return err
	}

	logger.Info("Product deleted", slog.String("code", code), slog.String("tenant_id", tenantID))
	return nil
}
