package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/cache"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/metrics"
	"helpdesk/internal/infrastructure/migration"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (overrides the default search)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending database migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
		"auto_migrate", autoMigrate)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.Default()
	}

	router := httpRouter.NewRouter(httpRouter.Dependencies{
		Config:  cfg,
		DB:      database.Get(),
		Redis:   redisClient,
		Metrics: m,
		Logger:  logger.NewLogger(),
	})
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting",
		"address", cfg.Server.GetAddr(),
		"mode", cfg.Server.Mode)

	serveErr := goroutine.Go(logger.NewLogger(), "http-server", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			logger.Error("server stopped unexpectedly", "error", err)
			return fmt.Errorf("server failed: %w", err)
		}
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config) error {
	if skipMigrationCheck && !autoMigrate {
		logger.Info("skipping migration check")
		return nil
	}

	if err := database.EnsureSchema(database.Get(), &cfg.Database); err != nil {
		return err
	}

	strategy, err := migration.NewStrategy(&cfg.Database, logger.NewLogger())
	if err != nil {
		return err
	}
	manager := migration.NewManager(strategy, logger.NewLogger())

	if autoMigrate {
		if cfg.Server.Mode == gin.ReleaseMode {
			logger.Warn("auto-migration is enabled in release mode")
		}

		logger.Info("running migrations", "strategy", strategy.GetName())
		if err := manager.Up(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("migrations completed successfully")
		return nil
	}

	logger.Info("checking migration status")
	status, err := manager.Status(database.Get())
	switch {
	case errors.Is(err, migration.ErrVersioningUnsupported):
		logger.Info("migration strategy does not track versions", "strategy", status.Strategy)
	case err != nil:
		logger.Warn("failed to check migration status", "error", err)
	default:
		logger.Info("current migration version",
			"strategy", status.Strategy,
			"version", status.Version,
			"dirty", status.Dirty)
	}

	return nil
}

// connectRedis returns nil when neither the detail cache nor the rate
// limiter needs Redis. An unreachable server is logged and the client is kept
// so that both degrade per request instead of failing startup.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.Cache.Type != "redis" && !cfg.RateLimit.Enabled {
		return nil
	}

	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis disabled: invalid configuration", "error", err)
		return nil
	}

	if err := cache.Ping(context.Background(), client); err != nil {
		logger.Warn("redis unreachable, continuing without it for now", "error", err)
	} else {
		logger.Info("redis connected", "addr", client.Options().Addr)
	}

	return client
}
