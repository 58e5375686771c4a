package http

import (
	"art/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	systemHandler       *handlers.SystemHandler
	assetHandler        *handlers.AssetHandler
	specsHandler        *handlers.SpecsHandler
	catalogHandler      *handlers.CatalogHandler
	organizationHandler *handlers.OrganizationHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	org := c.organizationService

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	} else {
		log.Warnw("database handle unavailable, health check will not ping", "error", err)
	}

	c.hdlrs = &allHandlers{
		systemHandler:  handlers.NewSystemHandler(pinger, org.Users, log),
		assetHandler:   handlers.NewAssetHandler(c.assetService, log),
		specsHandler:   handlers.NewSpecsHandler(c.assetService, log),
		catalogHandler: handlers.NewCatalogHandler(c.catalogService, log),
		organizationHandler: handlers.NewOrganizationHandler(
			org.Centres, org.Floors, org.Workspaces, org.Departments, org.Users, log,
		),
	}
}
