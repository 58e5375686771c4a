package routes

import (
	"github.com/gin-gonic/gin"

	"art/internal/interfaces/http/handlers"
	"art/internal/interfaces/http/middleware"
)

// SystemRouteConfig holds dependencies for the health probe and /auth routes.
type SystemRouteConfig struct {
	SystemHandler  *handlers.SystemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSystemRoutes configures /health and /auth/me.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/health", cfg.SystemHandler.HealthCheck)

	auth := engine.Group("/auth")
	{
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.SystemHandler.Me)
	}
}
