package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/stockpos/stockpos_backend/internal/core/ports/services"
	"github.com/stockpos/stockpos_backend/internal/middleware"
	"github.com/stockpos/stockpos_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	api := r.Group("/api")

	api.GET("/health", GetHealth)

	registerAuthRoutes(api, cfg, services.User)
	registerProtectedRoutes(api, cfg, services)
}

// registerAuthRoutes sets up the public register/login endpoints, rate
// limited per client IP.
func registerAuthRoutes(api *gin.RouterGroup, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	api.POST("/register", limitMiddleware, h.Register)
	api.POST("/login", limitMiddleware, h.Login)
}

// registerProtectedRoutes sets up every bearer-authenticated endpoint.
func registerProtectedRoutes(api *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	ih := newInventoryHandler(services.Inventory)
	protected.GET("/data", ih.getData)
	protected.POST("/products", ih.createProduct)
	protected.POST("/sell", ih.sell)
	protected.POST("/stock", ih.restock)
	protected.DELETE("/products/:code", ih.deleteProduct)

	th := newTeamHandler(services.Team)
	team := protected.Group("/team")
	{
		team.POST("/add", th.addMember)
		team.GET("/members", th.listMembers)
	}
}
