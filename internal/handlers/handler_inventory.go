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

// inventoryHandler handles catalog reads, product CRUD and the sell/restock
// operations.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// getData returns every product of the caller's tenant plus the ledger total.
func (h *inventoryHandler) getData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	products, money, err := h.inventoryService.ListCatalog(c.Request.Context(), callerID)
	if err != nil {
		logger.Error("Failed to list catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load data"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDataResponse(products, money))
}

// createProduct adds a catalog row. Admin only; a duplicate code within the
// tenant surfaces as 500, matching the historical API contract.
func (h *inventoryHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.inventoryService.AddProduct(c.Request.Context(), callerID, req.Name, *req.Quantity, *req.Price, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Product code already exists"})
		default:
			logger.Error("Failed to add product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(created))
}

// sell decrements one unit of stock and credits the tenant ledger with the
// product's stored price, atomically. A missing or sold-out product surfaces
// as 500, matching the historical API contract.
func (h *inventoryHandler) sell(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product code required"})
		return
	}

	if err := h.inventoryService.Sell(c.Request.Context(), callerID, req.Code); err != nil {
		if errors.Is(err, apperrors.ErrNoStock) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Product not found or out of stock"})
			return
		}
		logger.Error("Failed to sell product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sell product"})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// restock adds units to an existing product. Admin only.
func (h *inventoryHandler) restock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Code and quantity required"})
		return
	}

	if err := h.inventoryService.Restock(c.Request.Context(), callerID, req.Code, *req.Quantity); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		default:
			logger.Error("Failed to restock product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to restock product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// deleteProduct removes a catalog row by code. Admin only.
func (h *inventoryHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	code := c.Param("code")

	if err := h.inventoryService.DeleteProduct(c.Request.Context(), callerID, code); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		default:
			logger.Error("Failed to delete product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
