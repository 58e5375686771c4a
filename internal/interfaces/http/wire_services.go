package http

import (
	"context"
	"fmt"
	"time"

	assetApp "art/internal/application/asset"
	assigneeApp "art/internal/application/assignee"
	catalogApp "art/internal/application/catalog"
	"art/internal/application/notification"
	organizationApp "art/internal/application/organization"
	"art/internal/domain/shared/events"
	"art/internal/infrastructure/auth"
	"art/internal/infrastructure/cache"
	"art/internal/infrastructure/email"
	"art/internal/infrastructure/permission"
	"art/internal/infrastructure/ratelimit"
	"art/internal/infrastructure/scheduler"
	"art/internal/infrastructure/slack"
	"art/internal/interfaces/http/middleware"
	"art/internal/shared/db"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.redis = client
		log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	}

	c.repos = newRepositories(c.db, log)
	c.txMgr = db.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, cfg.Permission.ModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.SeedPolicies(nil); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	if c.redis != nil && cfg.RateLimit.Enabled {
		c.reportRateLimiter = middleware.NewReportRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			cfg.RateLimit.ReportsPerMinute,
			cfg.RateLimit.ReportsPerHour,
			log,
		)
	}
	return nil
}

// ============================================================
// Section 2: Application services
// ============================================================

func (c *Container) initServices() {
	r := c.repos
	log := c.log

	c.assignees = assigneeApp.NewService(r.assigneeRepo, r.userRepo, r.departmentRepo, r.workspaceRepo, log)
	c.dispatcher = events.NewInMemoryEventDispatcher(c.cfg.Notification.EventBufferSize, log)

	c.catalogService = catalogApp.NewServiceDDD(r.catalogRepo, log)
	c.assetService = assetApp.NewServiceDDD(assetApp.Repositories{
		Assets:      r.assetRepo,
		Statuses:    r.statusLedger,
		Allocations: r.allocLedger,
		Conditions:  r.conditionRepo,
		Incidents:   r.incidentRepo,
		Specs:       r.specsRepo,
		Catalog:     r.catalogRepo,
	}, c.assignees, c.dispatcher, c.txMgr, log)
	c.organizationService = organizationApp.NewServiceDDD(organizationApp.Repositories{
		Centres:     r.centreRepo,
		Floors:      r.floorRepo,
		Workspaces:  r.workspaceRepo,
		Departments: r.departmentRepo,
		Users:       r.userRepo,
	}, c.assignees, r.assetRepo, c.txMgr, log)
}

// ============================================================
// Section 3: Events - Dispatcher, Notification handler
// ============================================================

func (c *Container) initNotifications() error {
	cfg := c.cfg
	log := c.log

	var slackNotifier notification.SlackNotifier
	if cfg.Slack.Enabled {
		slackNotifier = slack.NewClient(cfg.Slack, log.Named("slack"))
	}

	var mailer notification.EmailSender
	if cfg.Email.Enabled {
		mailer = email.NewSMTPEmailService(email.ConfigFrom(cfg.Email))
	}

	var dedup notification.Deduplicator
	if c.redis != nil {
		dedup = cache.NewAlertDeduplicator(c.redis)
	} else {
		dedup = cache.NewMemoryAlertDeduplicator()
	}

	c.notificationHandler = notification.NewHandler(
		c.repos.assetRepo,
		c.repos.catalogRepo,
		c.assignees,
		slackNotifier,
		mailer,
		dedup,
		notification.Config{
			LowStockChannel:   cfg.Slack.LowStockChannel,
			LowStockThreshold: cfg.Notification.LowStockThreshold,
			LowStockCooldown:  time.Duration(cfg.Notification.LowStockCooldownMinutes) * time.Minute,
		},
		log.Named("notification"),
	)
	if err := c.notificationHandler.Register(c.dispatcher); err != nil {
		return err
	}

	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.dispatcherRunning = true

	if minutes := cfg.Notification.StockSweepIntervalMinutes; minutes > 0 {
		c.stockSweeper = scheduler.NewStockSweepScheduler(
			c.notificationHandler,
			time.Duration(minutes)*time.Minute,
			log.Named("stock-sweep"),
		)
		c.stockSweeper.Start(context.Background())
	}
	log.Infow("event dispatcher started",
		"slack_enabled", slackNotifier != nil,
		"email_enabled", mailer != nil,
		"redis_dedup", c.redis != nil)
	return nil
}
