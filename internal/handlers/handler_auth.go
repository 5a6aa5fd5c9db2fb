package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockpos/stockpos_backend/internal/apperrors"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/dto"
	"github.com/stockpos/stockpos_backend/internal/middleware"
	"github.com/stockpos/stockpos_backend/internal/platform/config"
	"github.com/stockpos/stockpos_backend/internal/utils"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: us,
		cfg:         cfg,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Register creates a new account with its zero-balance ledger.
// Responds 201 on success, 400 on missing fields or a taken username.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password required"})
		return
	}

	_, err := h.userService.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password required"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created"})
}

// Login verifies credentials and issues a signed bearer token carrying the
// account id, username and role. An unknown username responds 400 and a bad
// password 403, mirroring the historical API contract.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username and password required"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to look up user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Incorrect password"})
		return
	}

	token, err := utils.GenerateJWT(user, h.cfg.JWTSecret, h.cfg.JWTIssuer, h.cfg.JWTExpiryDuration)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	})
}
