package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stockpos/stockpos_backend/internal/core/domain"
)

// CreateProductRequest defines the body for adding a catalog row. Quantity
// and Price are pointers to tell an omitted field apart from an explicit
// zero. Code is bound as a string so leading zeros survive.
type CreateProductRequest struct {
	Name     string           `json:"name" binding:"required"`
	Quantity *int             `json:"quantity" binding:"required,gte=0"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Code     string           `json:"code" binding:"required,len=8,numeric"`
}

// SellRequest defines the body for selling one unit. The client historically
// also sent the price; the server charges the stored unit price, so any
// price field in the body is ignored.
type SellRequest struct {
	Code string `json:"code" binding:"required"`
}

// RestockRequest defines the body for adding stock to an existing product.
type RestockRequest struct {
	Code     string `json:"code" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// ProductResponse is one catalog row as returned to the client.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Code     string          `json:"code"`
}

// DataResponse is the full catalog view: every product of the tenant plus the
// running money total.
type DataResponse struct {
	Products []ProductResponse `json:"products"`
	Money    decimal.Decimal   `json:"money"`
}

// SuccessResponse acknowledges a mutation with no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ToProductResponse converts a domain.Product to its response shape.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ProductID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price,
		Code:     p.Code,
	}
}

// ToDataResponse converts the catalog listing to its response shape.
func ToDataResponse(products []domain.Product, money decimal.Decimal) DataResponse {
	productResponses := make([]ProductResponse, len(products))
	for i := range products {
		productResponses[i] = ToProductResponse(&products[i])
	}
	return DataResponse{
		Products: productResponses,
		Money:    money,
	}
}
