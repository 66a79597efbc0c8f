package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host" validate:"required"`
	Port           int      `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	Mode           string   `mapstructure:"mode" yaml:"mode" validate:"oneof=debug release test"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver            string `mapstructure:"driver" yaml:"driver" validate:"oneof=postgres mysql sqlite"`
	Host              string `mapstructure:"host" yaml:"host"`
	Port              int    `mapstructure:"port" yaml:"port"`
	Username          string `mapstructure:"username" yaml:"username"`
	Password          string `mapstructure:"password" yaml:"password"`
	Database          string `mapstructure:"database" yaml:"database" validate:"required"`
	Schema            string `mapstructure:"schema" yaml:"schema"`
	SSLMode           string `mapstructure:"sslmode" yaml:"sslmode"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	MigrationStrategy string `mapstructure:"migration_strategy" yaml:"migration_strategy" validate:"omitempty,oneof=auto goose golang-migrate"`
}

// GetDSN builds the driver specific connection string. For sqlite Database is
// the file path (or ":memory:").
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	case DriverSQLite:
		return d.Database + "?_foreign_keys=on"
	default:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, d.sslMode())
		if d.Schema != "" {
			// Single quotes keep the double-quoted identifier as one value.
			value := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(d.QuotedSchema())
			dsn += fmt.Sprintf(" search_path='%s'", value)
		}
		return dsn
	}
}

// GetURL returns the postgres URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.Username, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Database,
	}
	q := u.Query()
	q.Set("sslmode", d.sslMode())
	if d.Schema != "" {
		q.Set("search_path", d.QuotedSchema())
		q.Set("x-migrations-table", "schema_migrations")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// QuotedSchema returns Schema as a double-quoted identifier so that postgres
// keeps its case ("TEST", not test).
func (d *DatabaseConfig) QuotedSchema() string {
	return `"` + strings.ReplaceAll(d.Schema, `"`, `""`) + `"`
}

func (d *DatabaseConfig) sslMode() string {
	if d.SSLMode == "" {
		return "disable"
	}
	return d.SSLMode
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db" validate:"min=0"`
	// URL takes precedence over Host/Port/DB when set (redis://host:port/db).
	URL string `mapstructure:"url" yaml:"url"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

const (
	CacheTypeRedis = "redis"
	CacheTypeNone  = "none"
)

type CacheConfig struct {
	Type string `mapstructure:"type" yaml:"type" validate:"oneof=redis none"`
	// DefaultTimeout is the fallback TTL in seconds for cached entries.
	DefaultTimeout int `mapstructure:"default_timeout" yaml:"default_timeout" validate:"min=0"`
	// TicketDetailTTL is the TTL in seconds of the cached ticket detail view.
	TicketDetailTTL int `mapstructure:"ticket_detail_ttl" yaml:"ticket_detail_ttl" validate:"min=0"`
}

// DetailTTL returns the ticket detail TTL, falling back to DefaultTimeout and
// then to 30s. A zero TTL would make redis keep entries forever.
func (c *CacheConfig) DetailTTL() time.Duration {
	switch {
	case c.TicketDetailTTL > 0:
		return time.Duration(c.TicketDetailTTL) * time.Second
	case c.DefaultTimeout > 0:
		return time.Duration(c.DefaultTimeout) * time.Second
	default:
		return 30 * time.Second
	}
}

type IdentityConfig struct {
	CurrentUser string `mapstructure:"current_user" yaml:"current_user" validate:"required,max=120"`
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled"`
	Limit         int  `mapstructure:"limit" yaml:"limit" validate:"min=0"`
	WindowSeconds int  `mapstructure:"window_seconds" yaml:"window_seconds" validate:"min=0"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}
