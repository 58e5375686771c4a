package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"art/internal/infrastructure/config"
	"art/internal/interfaces/http/middleware"
	"art/internal/interfaces/http/routes"
	"art/internal/shared/logger"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	*Container
}

// NewRouter wires the container. Call SetupRoutes before serving and
// Shutdown when done.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(gdb, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler:  r.hdlrs.systemHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAssetRoutes(r.engine, &routes.AssetRouteConfig{
		AssetHandler:         r.hdlrs.assetHandler,
		SpecsHandler:         r.hdlrs.specsHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ReportRateLimiter:    r.reportRateLimiter,
	})
	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler:       r.hdlrs.catalogHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupOrganizationRoutes(r.engine, &routes.OrganizationRouteConfig{
		OrganizationHandler:  r.hdlrs.organizationHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown stops the stock sweep and the event dispatcher, letting queued
// notifications finish, then closes Redis.
func (c *Container) Shutdown() {
	if c.stockSweeper != nil {
		c.stockSweeper.Stop()
		c.stockSweeper = nil
	}

	if c.dispatcherRunning {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Errorw("failed to stop event dispatcher", "error", err)
		}
		c.dispatcherRunning = false
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}
