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
	"github.com/stockpos/stockpos_backend/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
	ledgerRepo portsrepo.LedgerRepository
}

// newPgxProductRepository creates the catalog repository. The ledger
// repository is injected so a sale can credit the tenant's total inside the
// same transaction.
func newPgxProductRepository(pool *pgxpool.Pool, ledgerRepo portsrepo.LedgerRepository) portsrepo.ProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerRepo:     ledgerRepo,
	}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepository
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindProductsByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	query := `
		SELECT product_id, owner_id, name, quantity, price, code, created_at, last_updated_at
		FROM products
		WHERE owner_id = $1
		ORDER BY product_id;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts := []models.Product{}
	for rows.Next() {
		var modelProduct models.Product
		err := rows.Scan(
			&modelProduct.ProductID,
			&modelProduct.OwnerID,
			&modelProduct.Name,
			&modelProduct.Quantity,
			&modelProduct.Price,
			&modelProduct.Code,
			&modelProduct.CreatedAt,
			&modelProduct.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return mapping.ToDomainProductSlice(modelProducts), nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	modelProduct := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (owner_id, name, quantity, price, code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING product_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelProduct.OwnerID,
		modelProduct.Name,
		modelProduct.Quantity,
		modelProduct.Price,
		modelProduct.Code,
		modelProduct.CreatedAt,
		modelProduct.LastUpdatedAt,
	).Scan(&modelProduct.ProductID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("code %s: %w", product.Code, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	created := mapping.ToDomainProduct(modelProduct)
	return &created, nil
}

// RecordSale performs the one multi-statement transaction in the system. The
// conditional decrement doubles as the stock guard: under concurrent sales of
// a product with one unit left, only one transaction's UPDATE matches a row,
// so exactly one caller succeeds and the others observe ErrNoStock with
// nothing applied.
func (r *PgxProductRepository) RecordSale(ctx context.Context, ownerID, code string) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()
	var price decimal.Decimal
	decrementQuery := `
		UPDATE products
		SET quantity = quantity - 1, last_updated_at = $1
		WHERE code = $2 AND owner_id = $3 AND quantity > 0
		RETURNING price;
	`
	err = tx.QueryRow(ctx, decrementQuery, now, code, ownerID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNoStock
		}
		return decimal.Zero, fmt.Errorf("failed to decrement stock for code %s: %w", code, err)
	}

	if err := r.ledgerRepo.IncrementTotalInTx(ctx, tx, ownerID, price, now); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func (r *PgxProductRepository) AddStock(ctx context.Context, ownerID, code string, added int, now time.Time) error {
	query := `
		UPDATE products
		SET quantity = quantity + $1, last_updated_at = $2
		WHERE code = $3 AND owner_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, added, now, code, ownerID)
	if err != nil {
		return fmt.Errorf("failed to add stock for code %s: %w", code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, ownerID, code string) error {
	query := `DELETE FROM products WHERE code = $1 AND owner_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, code, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
