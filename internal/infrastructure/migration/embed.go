package migration

import "embed"

// Both script sets describe the same PostgreSQL schema; goose and
// golang-migrate use different file conventions.

//go:embed scripts/goose/*.sql
var gooseScripts embed.FS

//go:embed scripts/migrate/*.sql
var migrateScripts embed.FS

const (
	gooseScriptsDir   = "scripts/goose"
	migrateScriptsDir = "scripts/migrate"
)
