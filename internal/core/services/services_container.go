package services

import (
	portsrepo "github.com/stockpos/stockpos_backend/internal/core/ports/repositories"
	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.UserRepo),
		Inventory: NewInventoryService(repos.UserRepo, repos.ProductRepo, repos.LedgerRepo),
		Team:      NewTeamService(repos.UserRepo),
	}
}
