package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"warden-hq/warden/pkg/cli"
	"warden-hq/warden/pkg/config"
	"warden-hq/warden/pkg/moderation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load and validate a configuration file without starting the server.

Validation covers the listen address, timeouts, audit settings including the
retention cron schedule, logging settings, and the custom moderation rules
(every custom rule must name a known category and a non-empty phrase).

Examples:
  # Validate the default config file
  warden validate

  # Validate a specific file
  warden validate --config /etc/warden/config.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Custom rules only fail at catalog build time, so build one to check.
	customRules := make(map[moderation.Category][]string, len(cfg.Moderation.CustomRules))
	for name, phrases := range cfg.Moderation.CustomRules {
		customRules[moderation.Category(name)] = phrases
	}
	if _, err := moderation.BuildCatalog(customRules); err != nil {
		return cli.NewConfigError("moderation.custom_rules", err.Error())
	}

	fmt.Printf("✓ Configuration valid: %s\n", cfgFile)
	fmt.Printf("  listen address: %s\n", cfg.Server.ListenAddress)
	fmt.Printf("  audit enabled:  %v\n", cfg.Audit.Enabled)
	fmt.Printf("  metrics:        %v\n", cfg.Telemetry.Metrics.Enabled)
	fmt.Printf("  custom rules:   %d categories\n", len(cfg.Moderation.CustomRules))
	return nil
}
