package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// Status describes the applied schema version of a versioned strategy.
type Status struct {
	Strategy string
	Version  int64
	Dirty    bool
}

// Manager runs a Strategy against a database handle.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}

// Up applies all pending migrations.
func (m *Manager) Up(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())
	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("%s migration failed: %w", m.strategy.GetName(), err)
	}
	return nil
}

// Down rolls back the last steps migrations.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	versioned, ok := m.strategy.(VersionedStrategy)
	if !ok {
		return fmt.Errorf("%s: %w", m.strategy.GetName(), ErrVersioningUnsupported)
	}
	return versioned.MigrateDown(db, steps)
}

func (m *Manager) Status(db *gorm.DB) (Status, error) {
	status := Status{Strategy: m.strategy.GetName()}
	versioned, ok := m.strategy.(VersionedStrategy)
	if !ok {
		return status, fmt.Errorf("%s: %w", m.strategy.GetName(), ErrVersioningUnsupported)
	}

	version, dirty, err := versioned.Version(db)
	if err != nil {
		return status, err
	}
	status.Version = version
	status.Dirty = dirty
	return status, nil
}
