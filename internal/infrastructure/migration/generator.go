package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"helpdesk/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates golang-migrate up/down file pairs on disk.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes <timestamp>_<name>.up.sql and .down.sql and returns
// their paths.
func (g *Generator) CreateMigration(name string) (string, string, error) {
	if !migrationNamePattern.MatchString(name) {
		return "", "", fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	timestamp := g.now().UTC().Format("20060102150405")
	upPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := g.writeFile(upPath, fmt.Sprintf("-- Migration: %s\n\n", name)); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := g.writeFile(downPath, fmt.Sprintf("-- Rollback Migration: %s\n\n", name)); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upPath,
		"down_file", downPath)

	return upPath, downPath, nil
}

func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}
