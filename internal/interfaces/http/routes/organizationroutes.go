package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"art/internal/infrastructure/permission"
	"art/internal/interfaces/http/handlers"
	"art/internal/interfaces/http/middleware"
)

// OrganizationRouteConfig holds dependencies for centre, floor, workspace,
// department and user routes.
type OrganizationRouteConfig struct {
	OrganizationHandler  *handlers.OrganizationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

type crudHandlers struct {
	list, create, get, update, remove gin.HandlerFunc
	updateMethod                      string
}

// SetupOrganizationRoutes configures the organisation routes.
func SetupOrganizationRoutes(engine *gin.Engine, cfg *OrganizationRouteConfig) {
	h := cfg.OrganizationHandler
	perm := func(action string) gin.HandlerFunc {
		return cfg.PermissionMiddleware.RequirePermission(permission.ResourceOrganization, action)
	}

	groups := map[string]crudHandlers{
		"/centres":     {h.ListCentres, h.CreateCentre, h.GetCentre, h.UpdateCentre, h.DeleteCentre, http.MethodPut},
		"/floors":      {h.ListFloors, h.CreateFloor, h.GetFloor, h.UpdateFloor, h.DeleteFloor, http.MethodPut},
		"/workspaces":  {h.ListWorkspaces, h.CreateWorkspace, h.GetWorkspace, h.UpdateWorkspace, h.DeleteWorkspace, http.MethodPut},
		"/departments": {h.ListDepartments, h.CreateDepartment, h.GetDepartment, h.UpdateDepartment, h.DeleteDepartment, http.MethodPut},
		"/users":       {h.ListUsers, h.CreateUser, h.GetUser, h.UpdateUser, h.DeleteUser, http.MethodPatch},
	}

	for prefix, crud := range groups {
		group := engine.Group(prefix)
		group.Use(cfg.AuthMiddleware.RequireAuth())
		{
			group.GET("", perm(permission.ActionRead), crud.list)
			group.POST("", perm(permission.ActionCreate), crud.create)
			group.GET("/:id", perm(permission.ActionRead), crud.get)
			group.Handle(crud.updateMethod, "/:id", perm(permission.ActionUpdate), crud.update)
			group.DELETE("/:id", perm(permission.ActionDelete), crud.remove)
		}
	}
}
