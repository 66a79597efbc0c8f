package migrate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/logger"
)

const scriptsRoot = "./internal/infrastructure/migration/scripts"

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name for the configured strategy.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// initManager additionally opens the database and builds the configured
// migration strategy.
func initManager() (*config.Config, *migration.Manager, logger.Interface, error) {
	cfg, log, err := initEnv()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		database.Close()
		return nil, nil, nil, err
	}

	return cfg, migration.NewManager(strategy, log), log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, manager, log, err := initManager()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "strategy", manager.Strategy().GetName())

	if err := database.EnsureSchema(database.Get(), &cfg.Database); err != nil {
		return err
	}

	if err := manager.Up(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	_, manager, log, err := initManager()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := manager.Down(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, manager, log, err := initManager()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	status, err := manager.Status(database.Get())
	if err != nil {
		if errors.Is(err, migration.ErrVersioningUnsupported) {
			return fmt.Errorf("status check is not supported with the %s strategy", status.Strategy)
		}
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Strategy:        %s\n", status.Strategy)
	fmt.Fprintf(out, "  Current Version: %d\n", status.Version)
	fmt.Fprintf(out, "  Dirty:           %t\n", status.Dirty)

	if gooseStrategy, ok := manager.Strategy().(*migration.GooseStrategy); ok {
		if err := gooseStrategy.Status(database.Get()); err != nil {
			log.Errorw("failed to get detailed status", "error", err)
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}

	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name, "strategy", strategy.GetName())

	switch s := strategy.(type) {
	case *migration.GooseStrategy:
		dir, err := filepath.Abs(filepath.Join(scriptsRoot, "goose"))
		if err != nil {
			return fmt.Errorf("failed to get scripts path: %w", err)
		}
		if err := s.Create(dir, name); err != nil {
			log.Errorw("failed to create migration", "error", err)
			return err
		}
	case *migration.GolangMigrateStrategy:
		dir, err := filepath.Abs(filepath.Join(scriptsRoot, "migrate"))
		if err != nil {
			return fmt.Errorf("failed to get scripts path: %w", err)
		}
		upPath, downPath, err := migration.NewGenerator(dir, log).CreateMigration(name)
		if err != nil {
			log.Errorw("failed to create migration", "error", err)
			return fmt.Errorf("failed to create migration: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", upPath, downPath)
	default:
		return fmt.Errorf("create is not supported with the %s strategy", strategy.GetName())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created successfully\n", name)
	return nil
}
