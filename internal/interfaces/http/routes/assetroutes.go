package routes

import (
	"github.com/gin-gonic/gin"

	"art/internal/domain/assignee"
	"art/internal/infrastructure/permission"
	"art/internal/interfaces/http/handlers"
	"art/internal/interfaces/http/middleware"
)

// AssetRouteConfig holds dependencies for asset and specs routes.
type AssetRouteConfig struct {
	AssetHandler         *handlers.AssetHandler
	SpecsHandler         *handlers.SpecsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// Optional; nil disables report throttling.
	ReportRateLimiter    *middleware.ReportRateLimiter
}

// SetupAssetRoutes configures asset, ledger and specs routes.
func SetupAssetRoutes(engine *gin.Engine, cfg *AssetRouteConfig) {
	perm := func(action string) gin.HandlerFunc {
		return cfg.PermissionMiddleware.RequirePermission(permission.ResourceAsset, action)
	}
	limit := func(scope string) gin.HandlerFunc {
		if cfg.ReportRateLimiter == nil {
			return middleware.Passthrough()
		}
		return cfg.ReportRateLimiter.Limit(scope)
	}

	assets := engine.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.GET("", perm(permission.ActionRead), cfg.AssetHandler.ListAssets)
		assets.POST("", perm(permission.ActionCreate), cfg.AssetHandler.CreateAsset)

		// Named endpoints are registered before /:id
		assets.GET("/export", perm(permission.ActionExport), cfg.AssetHandler.ExportRegister)
		assets.GET("/stock", perm(permission.ActionRead), cfg.AssetHandler.StockSummary)

		assets.GET("/:id", perm(permission.ActionRead), cfg.AssetHandler.GetAsset)
		assets.PATCH("/:id", perm(permission.ActionUpdate), cfg.AssetHandler.UpdateAsset)
		assets.DELETE("/:id", perm(permission.ActionDelete), cfg.AssetHandler.DeleteAsset)

		assets.GET("/:id/status", perm(permission.ActionRead), cfg.AssetHandler.StatusHistory)
		assets.POST("/:id/status", perm(permission.ActionStatus), cfg.AssetHandler.RecordStatus)
		assets.GET("/:id/allocations", perm(permission.ActionRead), cfg.AssetHandler.AllocationHistory)
		assets.POST("/:id/allocations", perm(permission.ActionAllocate), cfg.AssetHandler.RecordAllocation)
		assets.GET("/:id/conditions", perm(permission.ActionRead), cfg.AssetHandler.ListConditions)
		assets.POST("/:id/conditions", perm(permission.ActionInspect), limit("conditions"), cfg.AssetHandler.AddCondition)
		assets.GET("/:id/incidents", perm(permission.ActionRead), cfg.AssetHandler.ListIncidents)
		assets.POST("/:id/incidents", perm(permission.ActionReport), limit("incidents"), cfg.AssetHandler.ReportIncident)
	}

	specs := engine.Group("/specs")
	specs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		specs.GET("", cfg.PermissionMiddleware.RequirePermission(permission.ResourceSpecs, permission.ActionRead), cfg.SpecsHandler.ListSpecs)
		specs.POST("", cfg.PermissionMiddleware.RequirePermission(permission.ResourceSpecs, permission.ActionCreate), cfg.SpecsHandler.CreateSpecs)
		specs.GET("/:id", cfg.PermissionMiddleware.RequirePermission(permission.ResourceSpecs, permission.ActionRead), cfg.SpecsHandler.GetSpecs)
		specs.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission(permission.ResourceSpecs, permission.ActionDelete), cfg.SpecsHandler.DeleteSpecs)
	}

	// Assets held by an owner
	for prefix, kind := range map[string]assignee.Kind{
		"/users":       assignee.KindUser,
		"/departments": assignee.KindDepartment,
		"/workspaces":  assignee.KindWorkspace,
	} {
		engine.GET(prefix+"/:id/assets",
			cfg.AuthMiddleware.RequireAuth(),
			perm(permission.ActionRead),
			cfg.AssetHandler.ListOwnerAssets(kind),
		)
	}
}
