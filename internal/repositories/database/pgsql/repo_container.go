package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool, ledgerRepo)
	productRepo := newPgxProductRepository(dbPool, ledgerRepo)

	return portsrepo.RepositoryProvider{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		LedgerRepo:  ledgerRepo,
	}
}
