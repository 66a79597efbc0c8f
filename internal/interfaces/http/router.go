package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "helpdesk/docs"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/metrics"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/interfaces/http/handlers"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Dependencies are the process wide collaborators the router wires into
// handlers. Redis and Metrics may be nil.
type Dependencies struct {
	Config  *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Metrics *metrics.Metrics
	// MetricsHandler serves the exposition endpoint; defaults to promhttp.Handler.
	MetricsHandler http.Handler
	Logger         logger.Interface
}

// Router represents the HTTP router configuration
type Router struct {
	engine        *gin.Engine
	cfg           *config.Config
	deps          Dependencies
	ticketHandler *tickethandlers.TicketHandler
	healthHandler *handlers.HealthHandler
	rateLimit     gin.HandlerFunc
	logger        logger.Interface
}

func NewRouter(deps Dependencies) *Router {
	cfg := deps.Config
	log := deps.Logger

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(deps.DB, log.With("component", "repository.ticket"))
	commentRepo := repository.NewCommentRepository(deps.DB, log.With("component", "repository.comment"))
	txMgr := db.NewTransactionManager(deps.DB)

	var detailCache usecases.TicketDetailCache = cache.NoopTicketDetailCache{}
	if deps.Redis != nil && cfg.Cache.Type == sharedConfig.CacheTypeRedis {
		detailCache = cache.NewRedisTicketDetailCache(deps.Redis, cfg.Cache.DetailTTL())
	}

	var ticketMetrics usecases.TicketMetrics = usecases.NopMetrics()
	if deps.Metrics != nil {
		ticketMetrics = deps.Metrics
	}

	ucLog := log.With("component", "usecase.ticket")
	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, ucLog),
		usecases.NewGetTicketUseCase(ticketRepo, commentRepo, detailCache, ticketMetrics, ucLog),
		usecases.NewUpdateTicketStateUseCase(ticketRepo, detailCache, ticketMetrics, ucLog),
		usecases.NewAddCommentUseCase(ticketRepo, commentRepo, txMgr, detailCache, ticketMetrics, ucLog),
		log.With("component", "handler.ticket"),
	)

	checks := map[string]handlers.HealthCheckFunc{
		"database": func(ctx context.Context) error { return database.Ping(ctx, deps.DB) },
	}
	if deps.Redis != nil {
		checks["cache"] = func(ctx context.Context) error { return cache.Ping(ctx, deps.Redis) }
	}

	var rateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled && deps.Redis != nil {
		limiter := ratelimit.NewRedisRateLimiter(deps.Redis, cfg.RateLimit.Limit, cfg.RateLimit.Window())
		var recorder middleware.RateLimitRecorder
		if deps.Metrics != nil {
			recorder = deps.Metrics
		}
		rateLimit = middleware.RateLimit(limiter, recorder, log.With("component", "ratelimit"))
	} else if cfg.RateLimit.Enabled {
		log.Warnw("rate limiting enabled but no redis client configured, skipping")
	}

	return &Router{
		engine:        engine,
		cfg:           cfg,
		deps:          deps,
		ticketHandler: ticketHandler,
		healthHandler: handlers.NewHealthHandler(checks, log.With("component", "health")),
		rateLimit:     rateLimit,
		logger:        log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger.With("component", "http")))
	if r.deps.Metrics != nil {
		r.engine.Use(middleware.Metrics(r.deps.Metrics))
	}
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	metricsPath := ""
	if r.cfg.Metrics.Enabled {
		metricsPath = r.cfg.Metrics.Path
	}
	routes.SetupOperationalRoutes(r.engine, &routes.OperationalRouteConfig{
		HealthHandler:  r.healthHandler,
		MetricsPath:    metricsPath,
		MetricsHandler: r.deps.MetricsHandler,
		EnableSwagger:  r.cfg.Server.Mode != gin.ReleaseMode,
	})

	api := r.engine.Group("/api")
	api.Use(middleware.SecurityHeaders())
	api.Use(middleware.CurrentUser(r.cfg.Identity.CurrentUser))

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		RateLimit:     r.rateLimit,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
