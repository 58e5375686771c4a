package routes

import (
	"github.com/gin-gonic/gin"

	"art/internal/infrastructure/permission"
	"art/internal/interfaces/http/handlers"
	"art/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for the taxonomy routes.
type CatalogRouteConfig struct {
	CatalogHandler       *handlers.CatalogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCatalogRoutes configures /catalog/:level for every taxonomy level.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	perm := func(action string) gin.HandlerFunc {
		return cfg.PermissionMiddleware.RequirePermission(permission.ResourceCatalog, action)
	}

	catalog := engine.Group("/catalog/:level")
	catalog.Use(cfg.AuthMiddleware.RequireAuth())
	{
		catalog.GET("", perm(permission.ActionRead), cfg.CatalogHandler.List)
		catalog.POST("", perm(permission.ActionCreate), cfg.CatalogHandler.Create)
		catalog.GET("/:id", perm(permission.ActionRead), cfg.CatalogHandler.Get)
		catalog.PUT("/:id", perm(permission.ActionUpdate), cfg.CatalogHandler.Update)
		catalog.DELETE("/:id", perm(permission.ActionDelete), cfg.CatalogHandler.Delete)
	}
}
