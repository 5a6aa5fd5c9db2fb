package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) CreateUserWithLedger(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateTeamMembership(ctx context.Context, targetUserID, ownerID string, role domain.UserRole, now time.Time) error {
	args := m.Called(ctx, targetUserID, ownerID, role, now)
	return args.Error(0)
}

func (m *MockUserRepository) FindTeamMembers(ctx context.Context, ownerID string) ([]domain.User, error) {
	args := m.Called(ctx, ownerID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductsByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	args := m.Called(ctx, ownerID)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	var created *domain.Product
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Product)
	}
	return created, args.Error(1)
}

func (m *MockProductRepository) RecordSale(ctx context.Context, ownerID, code string) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, code)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProductRepository) AddStock(ctx context.Context, ownerID, code string, added int, now time.Time) error {
	args := m.Called(ctx, ownerID, code, added, now)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, ownerID, code string) error {
	args := m.Called(ctx, ownerID, code)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerByOwner(ctx context.Context, ownerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, ownerID)
	var ledger *domain.Ledger
	if args.Get(0) != nil {
		ledger = args.Get(0).(*domain.Ledger)
	}
	return ledger, args.Error(1)
}

func (m *MockLedgerRepository) CreateLedgerInTx(ctx context.Context, tx pgx.Tx, ownerID string, now time.Time) error {
	args := m.Called(ctx, tx, ownerID, now)
	return args.Error(0)
}

func (m *MockLedgerRepository) IncrementTotalInTx(ctx context.Context, tx pgx.Tx, ownerID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, ownerID, amount, now)
	return args.Error(0)
}
