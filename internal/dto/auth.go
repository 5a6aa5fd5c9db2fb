package dto

import "github.com/stockpos/stockpos_backend/internal/core/domain"

// RegisterRequest carries the credentials for a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token plus the identity the client renders
// its role-gated UI from.
type LoginResponse struct {
	Token    string          `json:"token"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// MessageResponse is a generic informational response.
type MessageResponse struct {
	Message string `json:"message"`
}
