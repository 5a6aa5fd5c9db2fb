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
)

// teamHandler handles shared-tenancy membership requests.
type teamHandler struct {
	teamService portssvc.TeamSvcFacade
}

func newTeamHandler(ts portssvc.TeamSvcFacade) *teamHandler {
	return &teamHandler{teamService: ts}
}

// addMember points another account at the caller's catalog and ledger. The
// target's prior data becomes unreachable, so the client warns before calling.
func (h *teamHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	err := h.teamService.AddTeamMember(c.Request.Context(), callerID, req.TargetUsername, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Target user not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to add team member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add team member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Team member added"})
}

// listMembers returns the accounts sharing the caller's tenant.
func (h *teamHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	members, err := h.teamService.ListTeamMembers(c.Request.Context(), callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
			return
		}
		logger.Error("Failed to list team members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list team members"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTeamMembersResponse(members))
}
