package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/dto"
	"github.com/stockpos/stockpos_backend/internal/handlers"
	"github.com/stockpos/stockpos_backend/internal/utils"
)

type TeamHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTeamService *MockTeamService
	callerID        string
}

func (s *TeamHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.callerID = uuid.NewString()

	s.mockTeamService = new(MockTeamService)
	services := &portssvc.ServiceContainer{
		User:      new(MockUserService),
		Inventory: new(MockInventoryService),
		Team:      s.mockTeamService,
	}
	handlers.RegisterRoutes(s.router, testConfig(), services)
}

func (s *TeamHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	token, err := utils.GenerateJWT(&domain.User{
		UserID:   s.callerID,
		Username: "alice",
		Role:     domain.RoleAdmin,
	}, testJWTSecret, "stockpos-test", 0)
	s.Require().NoError(err)

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TeamHandlerTestSuite) TestAddMember_Success() {
	s.mockTeamService.On("AddTeamMember", mock.Anything, s.callerID, "bob", domain.RoleMember).
		Return(nil).Once()

	w := s.doRequest(http.MethodPost, "/api/team/add", gin.H{"targetUsername": "bob", "role": "member"})

	s.Equal(http.StatusOK, w.Code)
	s.mockTeamService.AssertExpectations(s.T())
}

func (s *TeamHandlerTestSuite) TestAddMember_InvalidRole() {
	w := s.doRequest(http.MethodPost, "/api/team/add", gin.H{"targetUsername": "bob", "role": "owner"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockTeamService.AssertNotCalled(s.T(), "AddTeamMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TeamHandlerTestSuite) TestAddMember_TargetNotFound() {
	s.mockTeamService.On("AddTeamMember", mock.Anything, s.callerID, "ghost", domain.RoleMember).
		Return(apperrors.ErrNotFound).Once()

	w := s.doRequest(http.MethodPost, "/api/team/add", gin.H{"targetUsername": "ghost", "role": "member"})

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TeamHandlerTestSuite) TestAddMember_NonAdminForbidden() {
	s.mockTeamService.On("AddTeamMember", mock.Anything, s.callerID, "bob", domain.RoleMember).
		Return(apperrors.ErrForbidden).Once()

	w := s.doRequest(http.MethodPost, "/api/team/add", gin.H{"targetUsername": "bob", "role": "member"})

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *TeamHandlerTestSuite) TestListMembers_Success() {
	s.mockTeamService.On("ListTeamMembers", mock.Anything, s.callerID).Return([]domain.User{
		{UserID: uuid.NewString(), Username: "bob", Role: domain.RoleMember},
		{UserID: uuid.NewString(), Username: "carol", Role: domain.RoleAdmin},
	}, nil).Once()

	w := s.doRequest(http.MethodGet, "/api/team/members", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp dto.ListTeamMembersResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Members, 2)
	s.Equal("bob", resp.Members[0].Username)
	s.Equal(domain.RoleMember, resp.Members[0].Role)
}

func TestTeamHandler(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
