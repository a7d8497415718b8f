package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"warden-hq/warden/pkg/api/handlers"
	"warden-hq/warden/pkg/audit"
	"warden-hq/warden/pkg/cli"
	"warden-hq/warden/pkg/config"
	"warden-hq/warden/pkg/moderation"
	"warden-hq/warden/pkg/server"
	"warden-hq/warden/pkg/telemetry/health"
	"warden-hq/warden/pkg/telemetry/logging"
	"warden-hq/warden/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the moderation server",
	Long: `Start the moderation server with the specified configuration.

The server listens on the configured address and serves the moderation API,
health probes, and the Prometheus scrape endpoint.

Examples:
  # Start with default config
  warden run

  # Start with custom config
  warden run --config /etc/warden/config.yaml

  # Override listen address
  warden run --listen 0.0.0.0:8080

  # Validate config without starting server
  warden run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:         cfg.Telemetry.Logging.Level,
		Format:        cfg.Telemetry.Logging.Format,
		AddSource:     cfg.Telemetry.Logging.AddSource,
		RedactContent: cfg.Telemetry.Logging.RedactContent,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger.Slog())

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Warden v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	// Build the pattern catalog once; it is immutable for the process
	// lifetime and shared by every request.
	customRules := make(map[moderation.Category][]string, len(cfg.Moderation.CustomRules))
	for name, phrases := range cfg.Moderation.CustomRules {
		customRules[moderation.Category(name)] = phrases
	}
	catalog, err := moderation.BuildCatalog(customRules)
	if err != nil {
		return cli.NewConfigError("moderation.custom_rules", err.Error())
	}
	engine := moderation.NewEngine(catalog)
	fmt.Println("✓ Pattern catalog loaded")

	checker := health.New(0)

	// Audit trail (if enabled)
	var recorder *audit.Recorder
	if cfg.Audit.Enabled {
		slog.Info("initializing audit trail",
			"path", cfg.Audit.Path,
			"driver", cfg.Audit.Driver,
		)

		storage, err := audit.NewSQLiteStorage(&cfg.Audit, logger.Slog())
		if err != nil {
			return fmt.Errorf("failed to create audit storage: %w", err)
		}
		defer storage.Close()

		recorder = audit.NewRecorder(storage, cfg.Audit.AsyncBuffer, logger.Slog())
		defer recorder.Close()

		checker.RegisterCheck("audit_storage", storage.Ping)

		// Scheduled retention pruning
		if cfg.Audit.PruneSchedule != "" {
			pruner := audit.NewPruner(storage, cfg.Audit.RetentionDays, cfg.Audit.MaxRecords, logger.Slog())
			scheduler := audit.NewScheduler(pruner, cfg.Audit.PruneSchedule, logger.Slog())
			if err := scheduler.Start(context.Background()); err != nil {
				slog.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer scheduler.Stop()
			}
		}

		fmt.Println("✓ Audit trail initialized")
	}

	// Metrics (if enabled)
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	// Watch the config file to apply log-level changes without a restart.
	// The pattern catalog is deliberately not reloaded: it is immutable by
	// contract, and rule changes require a restart.
	watcher, err := config.NewWatcher(cfgFile, func() {
		reloaded, err := config.LoadConfig(cfgFile)
		if err != nil {
			slog.Warn("config reload failed, keeping current settings", "error", err)
			return
		}
		if err := logger.SetLevel(reloaded.Telemetry.Logging.Level); err != nil {
			slog.Warn("invalid log level in reloaded config", "error", err)
			return
		}
		slog.Info("applied reloaded log level", "level", reloaded.Telemetry.Logging.Level)
	}, logger.Slog())
	if err != nil {
		slog.Warn("config watcher unavailable", "error", err)
	} else {
		watcher.Start()
		defer watcher.Stop()
	}

	srv := server.New(cfg, server.Options{
		Engine:    engine,
		Recorder:  recorderOrNil(recorder),
		Collector: collector,
		Health:    checker,
		Version: health.VersionInfo{
			Version:   Version,
			Commit:    GitCommit,
			BuildDate: BuildDate,
		},
		MaxBatchSize: cfg.Moderation.MaxBatchSize,
	})

	ctx := cli.SetupSignalHandler()
	fmt.Printf("✓ Listening on %s\n", cfg.Server.ListenAddress)

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

// recorderOrNil avoids handing the server a typed nil interface when
// auditing is disabled.
func recorderOrNil(r *audit.Recorder) handlers.Recorder {
	if r == nil {
		return nil
	}
	return r
}
