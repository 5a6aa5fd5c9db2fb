package mapping

import (
	"github.com/stockpos/stockpos_backend/internal/core/domain"
	"github.com/stockpos/stockpos_backend/internal/models"
)

// ToModelUser converts a domain.User to its persistence model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		PasswordHash:   d.PasswordHash,
		Role:           string(d.Role),
		OwnerReference: d.OwnerReference,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainUser converts a models.User to the domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		PasswordHash:   m.PasswordHash,
		Role:           domain.UserRole(m.Role),
		OwnerReference: m.OwnerReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainUserSlice converts a slice of models.User to domain users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
