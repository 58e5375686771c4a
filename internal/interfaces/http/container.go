package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assetApp "art/internal/application/asset"
	assigneeApp "art/internal/application/assignee"
	catalogApp "art/internal/application/catalog"
	"art/internal/application/notification"
	organizationApp "art/internal/application/organization"
	"art/internal/domain/shared/events"
	"art/internal/infrastructure/auth"
	"art/internal/infrastructure/config"
	"art/internal/infrastructure/permission"
	"art/internal/infrastructure/scheduler"
	"art/internal/interfaces/http/middleware"
	"art/internal/shared/db"
	"art/internal/shared/logger"
)

// Container holds infrastructure components, repositories, services, handlers
// and middlewares. It wires everything together and provides Shutdown() for
// graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	txMgr  *db.TransactionManager

	// Repositories
	repos *repositories

	// Application services
	assignees           *assigneeApp.Service
	assetService        *assetApp.ServiceDDD
	catalogService      *catalogApp.ServiceDDD
	organizationService *organizationApp.ServiceDDD

	// Events and notifications
	dispatcher          *events.InMemoryEventDispatcher
	dispatcherRunning   bool
	notificationHandler *notification.Handler
	stockSweeper        *scheduler.StockSweepScheduler

	// Auth and authorization
	jwtSvc   *auth.JWTService
	enforcer *permission.Enforcer

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	reportRateLimiter    *middleware.ReportRateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
// The event dispatcher is started; callers must call Shutdown.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Application services
	c.initServices()

	// Section 3: Events - Dispatcher, Notification handler
	if err := c.initNotifications(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 4: Handlers
	c.initHandlers()

	return c, nil
}
