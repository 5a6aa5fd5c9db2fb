package mapping

import (
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	"github.com/stockpos/stockpos_backend/internal/models"
)

// ToModelProduct converts a domain.Product to its persistence model.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID: d.ProductID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Quantity:  d.Quantity,
		Price:     d.Price,
		Code:      d.Code,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainProduct converts a models.Product to the domain representation.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID: m.ProductID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Price:     m.Price,
		Code:      m.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainProductSlice converts a slice of models.Product to domain products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
