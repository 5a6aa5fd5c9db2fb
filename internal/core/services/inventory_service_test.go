package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/core/services"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockProductRepo *MockProductRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.InventorySvcFacade
	ctx             context.Context

	adminID  string
	memberID string
	tenantID string
}

func (s *InventoryServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockProductRepo = new(MockProductRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.service = services.NewInventoryService(s.mockUserRepo, s.mockProductRepo, s.mockLedgerRepo)
	s.ctx = context.Background()

	s.adminID = uuid.NewString()
	s.memberID = uuid.NewString()
	s.tenantID = uuid.NewString()
}

// admin account owning its own tenancy
func (s *InventoryServiceTestSuite) expectAdminCaller() {
	s.mockUserRepo.On("FindUserByID", mock.Anything, s.adminID).Return(&domain.User{
		UserID:   s.adminID,
		Username: "alice",
		Role:     domain.RoleAdmin,
	}, nil).Once()
}

// member account delegated to another tenant
func (s *InventoryServiceTestSuite) expectMemberCaller() {
	s.mockUserRepo.On("FindUserByID", mock.Anything, s.memberID).Return(&domain.User{
		UserID:         s.memberID,
		Username:       "bob",
		Role:           domain.RoleMember,
		OwnerReference: &s.tenantID,
	}, nil).Once()
}

func (s *InventoryServiceTestSuite) TestListCatalog_OwnTenant() {
	s.expectAdminCaller()

	products := []domain.Product{
		{ProductID: 1, OwnerID: s.adminID, Name: "Cola", Quantity: 10, Price: decimal.RequireFromString("1.50"), Code: "12345678"},
	}
	s.mockProductRepo.On("FindProductsByOwner", mock.Anything, s.adminID).Return(products, nil).Once()
	s.mockLedgerRepo.On("FindLedgerByOwner", mock.Anything, s.adminID).Return(&domain.Ledger{
		OwnerID:    s.adminID,
		TotalMoney: decimal.RequireFromString("4.50"),
	}, nil).Once()

	got, money, err := s.service.ListCatalog(s.ctx, s.adminID)

	s.NoError(err)
	s.Len(got, 1)
	s.Equal("12345678", got[0].Code)
	s.True(money.Equal(decimal.RequireFromString("4.50")))
	s.mockProductRepo.AssertExpectations(s.T())
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *InventoryServiceTestSuite) TestListCatalog_MemberSeesOwnersCatalog() {
	s.expectMemberCaller()

	s.mockProductRepo.On("FindProductsByOwner", mock.Anything, s.tenantID).Return([]domain.Product{}, nil).Once()
	s.mockLedgerRepo.On("FindLedgerByOwner", mock.Anything, s.tenantID).Return(&domain.Ledger{
		OwnerID:    s.tenantID,
		TotalMoney: decimal.Zero,
	}, nil).Once()

	_, _, err := s.service.ListCatalog(s.ctx, s.memberID)

	s.NoError(err)
	// The member's own id must never reach the catalog store.
	s.mockProductRepo.AssertNotCalled(s.T(), "FindProductsByOwner", mock.Anything, s.memberID)
}

func (s *InventoryServiceTestSuite) TestAddProduct_Success() {
	s.expectAdminCaller()

	price := decimal.RequireFromString("1.50")
	s.mockProductRepo.On("SaveProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.OwnerID == s.adminID && p.Code == "00012345" && p.Quantity == 10 && p.Price.Equal(price)
	})).Return(&domain.Product{ProductID: 7, OwnerID: s.adminID, Name: "Cola", Quantity: 10, Price: price, Code: "00012345"}, nil).Once()

	created, err := s.service.AddProduct(s.ctx, s.adminID, "Cola", 10, price, "00012345")

	s.NoError(err)
	s.Equal(int64(7), created.ProductID)
	s.mockProductRepo.AssertExpectations(s.T())
}

func (s *InventoryServiceTestSuite) TestAddProduct_MemberForbidden() {
	s.expectMemberCaller()

	_, err := s.service.AddProduct(s.ctx, s.memberID, "Cola", 10, decimal.RequireFromString("1.50"), "12345678")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockProductRepo.AssertNotCalled(s.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestAddProduct_Validation() {
	tests := []struct {
		name     string
		prodName string
		quantity int
		price    decimal.Decimal
		code     string
	}{
		{"empty name", "", 1, decimal.NewFromInt(1), "12345678"},
		{"negative quantity", "Cola", -1, decimal.NewFromInt(1), "12345678"},
		{"negative price", "Cola", 1, decimal.NewFromInt(-1), "12345678"},
		{"too many decimals", "Cola", 1, decimal.RequireFromString("1.505"), "12345678"},
		{"short code", "Cola", 1, decimal.NewFromInt(1), "1234567"},
		{"long code", "Cola", 1, decimal.NewFromInt(1), "123456789"},
		{"non-numeric code", "Cola", 1, decimal.NewFromInt(1), "1234567a"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectAdminCaller()

			_, err := s.service.AddProduct(s.ctx, s.adminID, tt.prodName, tt.quantity, tt.price, tt.code)

			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.mockProductRepo.AssertNotCalled(s.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestAddProduct_DuplicateCode() {
	s.expectAdminCaller()

	s.mockProductRepo.On("SaveProduct", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := s.service.AddProduct(s.ctx, s.adminID, "Cola", 10, decimal.RequireFromString("1.50"), "12345678")

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *InventoryServiceTestSuite) TestSell_MemberAllowed() {
	s.expectMemberCaller()

	s.mockProductRepo.On("RecordSale", mock.Anything, s.tenantID, "12345678").
		Return(decimal.RequireFromString("1.50"), nil).Once()

	err := s.service.Sell(s.ctx, s.memberID, "12345678")

	s.NoError(err)
	s.mockProductRepo.AssertExpectations(s.T())
}

func (s *InventoryServiceTestSuite) TestSell_NoStock() {
	s.expectAdminCaller()

	s.mockProductRepo.On("RecordSale", mock.Anything, s.adminID, "12345678").
		Return(decimal.Zero, apperrors.ErrNoStock).Once()

	err := s.service.Sell(s.ctx, s.adminID, "12345678")

	s.ErrorIs(err, apperrors.ErrNoStock)
}

func (s *InventoryServiceTestSuite) TestRestock_Success() {
	s.expectAdminCaller()

	s.mockProductRepo.On("AddStock", mock.Anything, s.adminID, "12345678", 5, mock.Anything).Return(nil).Once()

	err := s.service.Restock(s.ctx, s.adminID, "12345678", 5)

	s.NoError(err)
	s.mockProductRepo.AssertExpectations(s.T())
}

func (s *InventoryServiceTestSuite) TestRestock_NonPositiveQuantity() {
	for _, added := range []int{0, -3} {
		s.expectAdminCaller()

		err := s.service.Restock(s.ctx, s.adminID, "12345678", added)

		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.mockProductRepo.AssertNotCalled(s.T(), "AddStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestRestock_MemberForbidden() {
	s.expectMemberCaller()

	err := s.service.Restock(s.ctx, s.memberID, "12345678", 5)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *InventoryServiceTestSuite) TestRestock_NotFound() {
	s.expectAdminCaller()

	s.mockProductRepo.On("AddStock", mock.Anything, s.adminID, "99999999", 5, mock.Anything).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.Restock(s.ctx, s.adminID, "99999999", 5)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *InventoryServiceTestSuite) TestDeleteProduct_MemberForbidden() {
	s.expectMemberCaller()

	err := s.service.DeleteProduct(s.ctx, s.memberID, "12345678")

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockProductRepo.AssertNotCalled(s.T(), "DeleteProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestDeleteProduct_Success() {
	s.expectAdminCaller()

	s.mockProductRepo.On("DeleteProduct", mock.Anything, s.adminID, "12345678").Return(nil).Once()

	err := s.service.DeleteProduct(s.ctx, s.adminID, "12345678")

	s.NoError(err)
	s.mockProductRepo.AssertExpectations(s.T())
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
