package migration

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const (
	StrategyAuto          = "auto"
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang-migrate"
)

// ErrVersioningUnsupported is returned by version and rollback operations on
// strategies that do not track applied migrations.
var ErrVersioningUnsupported = errors.New("migration strategy does not track versions")

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// VersionedStrategy is a Strategy backed by numbered SQL scripts.
type VersionedStrategy interface {
	Strategy
	MigrateDown(db *gorm.DB, steps int) error
	Version(db *gorm.DB) (version int64, dirty bool, err error)
}

// NewStrategy resolves the configured strategy. An empty MigrationStrategy
// selects goose for PostgreSQL and gorm auto migration for other drivers.
// The SQL scripts target PostgreSQL only.
func NewStrategy(cfg *sharedConfig.DatabaseConfig, log logger.Interface) (Strategy, error) {
	name := cfg.MigrationStrategy
	if name == "" {
		name = StrategyAuto
		if cfg.Driver == sharedConfig.DriverPostgres {
			name = StrategyGoose
		}
	}

	if name != StrategyAuto && cfg.Driver != sharedConfig.DriverPostgres {
		return nil, fmt.Errorf("migration strategy %q requires the postgres driver, got %q", name, cfg.Driver)
	}

	switch name {
	case StrategyAuto:
		return NewGormAutoMigrateStrategy(log), nil
	case StrategyGoose:
		return NewGooseStrategy(log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(cfg.GetURL(), log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}
