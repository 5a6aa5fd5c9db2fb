package handlers_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock InventoryService ---

type MockInventoryService struct {
	mock.Mock
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

func (m *MockInventoryService) ListCatalog(ctx context.Context, callerID string) ([]domain.Product, decimal.Decimal, error) {
	args := m.Called(ctx, callerID)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockInventoryService) AddProduct(ctx context.Context, callerID, name string, quantity int, price decimal.Decimal, code string) (*domain.Product, error) {
	args := m.Called(ctx, callerID, name, quantity, price, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryService) Sell(ctx context.Context, callerID, code string) error {
	args := m.Called(ctx, callerID, code)
	return args.Error(0)
}

func (m *MockInventoryService) Restock(ctx context.Context, callerID, code string, added int) error {
	args := m.Called(ctx, callerID, code, added)
	return args.Error(0)
}

func (m *MockInventoryService) DeleteProduct(ctx context.Context, callerID, code string) error {
	args := m.Called(ctx, callerID, code)
	return args.Error(0)
}

// --- Mock TeamService ---

type MockTeamService struct {
	mock.Mock
}

var _ portssvc.TeamSvcFacade = (*MockTeamService)(nil)

func (m *MockTeamService) AddTeamMember(ctx context.Context, callerID, targetUsername string, role domain.UserRole) error {
	args := m.Called(ctx, callerID, targetUsername, role)
	return args.Error(0)
}

func (m *MockTeamService) ListTeamMembers(ctx context.Context, callerID string) ([]domain.User, error) {
	args := m.Called(ctx, callerID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}
