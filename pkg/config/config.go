package config

import "time"

// Config is the root configuration structure for Warden. It contains all
// configuration sections for the HTTP server, the moderation engine, the
// audit trail, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// Moderation contains configuration for the moderation engine,
	// including operator-supplied custom rules and batch limits.
	Moderation ModerationConfig `yaml:"moderation"`

	// Audit contains configuration for the decision audit trail.
	Audit AuditConfig `yaml:"audit"`

	// Telemetry contains observability configuration (logging, metrics).
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response
	// writes. Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection. Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown. Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size. Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// ModerationConfig contains configuration for the moderation engine.
type ModerationConfig struct {
	// CustomRules adds operator-supplied phrases to the built-in pattern
	// catalog, keyed by category name. Phrases are matched
	// case-insensitively as literals. The catalog is built once at
	// startup; changing this section requires a restart.
	CustomRules map[string][]string `yaml:"custom_rules"`

	// MaxBatchSize is the maximum number of items accepted in one batch
	// request. Default: 100
	MaxBatchSize int `yaml:"max_batch_size"`
}

// AuditConfig contains configuration for the decision audit trail.
type AuditConfig struct {
	// Enabled turns decision recording on. The engine itself never
	// persists anything; recording happens off the hot path.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	// Default: "data/audit.db"
	Path string `yaml:"path"`

	// Driver selects the SQLite driver: "sqlite3" (cgo) or "sqlite"
	// (pure Go). Default: "sqlite3"
	Driver string `yaml:"driver"`

	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int `yaml:"async_buffer"`

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// RetentionDays is how many days of records to keep. Zero disables
	// age-based pruning. Default: 30
	RetentionDays int `yaml:"retention_days"`

	// MaxRecords caps the total number of stored records. Zero disables
	// count-based pruning. Default: 0
	MaxRecords int64 `yaml:"max_records"`

	// PruneSchedule is a cron expression for scheduled pruning
	// (e.g. "0 3 * * *" for daily at 3 AM). Empty disables the scheduler.
	// Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records. Default: false
	AddSource bool `yaml:"add_source"`

	// RedactContent redacts personal-information shapes from logged
	// values so user content never lands raw in logs. Default: true
	RedactContent bool `yaml:"redact_content"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled turns the /metrics endpoint on. Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric namespace. Default: "warden"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem. Default: "moderation"
	Subsystem string `yaml:"subsystem"`

	// Path is the scrape endpoint path. Default: "/metrics"
	Path string `yaml:"path"`
}
