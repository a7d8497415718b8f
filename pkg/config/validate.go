package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate checks a fully-loaded configuration for consistency. It returns
// the first problem found.
func Validate(cfg *Config) error {
	if cfg.Server.ListenAddress == "" {
		return fmt.Errorf("server.listen_address must not be empty")
	}
	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address %q is not a valid host:port: %w",
			cfg.Server.ListenAddress, err)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	if cfg.Moderation.MaxBatchSize < 1 {
		return fmt.Errorf("moderation.max_batch_size must be at least 1")
	}

	if cfg.Audit.Enabled {
		if cfg.Audit.Path == "" {
			return fmt.Errorf("audit.path must not be empty when audit is enabled")
		}
		switch cfg.Audit.Driver {
		case "sqlite3", "sqlite":
		default:
			return fmt.Errorf("audit.driver must be \"sqlite3\" or \"sqlite\", got %q",
				cfg.Audit.Driver)
		}
		if cfg.Audit.AsyncBuffer < 1 {
			return fmt.Errorf("audit.async_buffer must be at least 1")
		}
		if cfg.Audit.RetentionDays < 0 {
			return fmt.Errorf("audit.retention_days must not be negative")
		}
		if cfg.Audit.MaxRecords < 0 {
			return fmt.Errorf("audit.max_records must not be negative")
		}
		if cfg.Audit.PruneSchedule != "" {
			if _, err := cron.ParseStandard(cfg.Audit.PruneSchedule); err != nil {
				return fmt.Errorf("audit.prune_schedule %q is not a valid cron expression: %w",
					cfg.Audit.PruneSchedule, err)
			}
		}
	}

	switch strings.ToLower(cfg.Telemetry.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("telemetry.logging.level %q is not a valid log level",
			cfg.Telemetry.Logging.Level)
	}
	switch strings.ToLower(cfg.Telemetry.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("telemetry.logging.format %q is not a valid log format",
			cfg.Telemetry.Logging.Format)
	}

	if cfg.Telemetry.Metrics.Enabled && !strings.HasPrefix(cfg.Telemetry.Metrics.Path, "/") {
		return fmt.Errorf("telemetry.metrics.path %q must start with \"/\"",
			cfg.Telemetry.Metrics.Path)
	}

	return nil
}
