package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warden-hq/warden/pkg/cli"
	"warden-hq/warden/pkg/config"
	"warden-hq/warden/pkg/moderation"
)

var checkFlags struct {
	text          string
	url           string
	platform      string
	audience      string
	previousFlags int
	format        string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze a piece of content from the terminal",
	Long: `Run a piece of text or a URL through the moderation engine and print
the verdict. Custom rules from the configuration file are loaded if the file
exists; otherwise the built-in catalog is used.

Examples:
  # Check a piece of text
  warden check --text "free money, click here"

  # Check a URL
  warden check --url "http://bit.ly/prize"

  # Include situational context
  warden check --text "you are pathetic" --platform twitter --previous-flags 5

  # Machine-readable output
  warden check --text "hello" --format json`,
	RunE: checkContent,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.text, "text", "t", "", "text to analyze")
	checkCmd.Flags().StringVarP(&checkFlags.url, "url", "u", "", "url to analyze")
	checkCmd.Flags().StringVar(&checkFlags.platform, "platform", "", "platform context (e.g. twitter)")
	checkCmd.Flags().StringVar(&checkFlags.audience, "audience", "", "audience context (e.g. children)")
	checkCmd.Flags().IntVar(&checkFlags.previousFlags, "previous-flags", 0, "prior offense count for the author")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

func checkContent(cmd *cobra.Command, args []string) error {
	if checkFlags.text == "" && checkFlags.url == "" {
		return cli.NewCommandError("check", fmt.Errorf("provide --text or --url"))
	}

	// Custom rules are optional here: check works without a config file.
	var customRules map[moderation.Category][]string
	if cfg, err := config.LoadConfig(cfgFile); err == nil {
		customRules = make(map[moderation.Category][]string, len(cfg.Moderation.CustomRules))
		for name, phrases := range cfg.Moderation.CustomRules {
			customRules[moderation.Category(name)] = phrases
		}
	}

	catalog, err := moderation.BuildCatalog(customRules)
	if err != nil {
		return cli.NewConfigError("moderation.custom_rules", err.Error())
	}
	engine := moderation.NewEngine(catalog)

	content := &moderation.ContentItem{
		ID:     "cli",
		UserID: "cli",
		Type:   moderation.ContentTypeText,
		Text:   checkFlags.text,
		URL:    checkFlags.url,
	}
	if checkFlags.url != "" && checkFlags.text == "" {
		content.Type = moderation.ContentTypeLink
	}

	var actx *moderation.AnalysisContext
	if checkFlags.platform != "" || checkFlags.audience != "" || checkFlags.previousFlags > 0 {
		actx = &moderation.AnalysisContext{
			Platform:      checkFlags.platform,
			Audience:      checkFlags.audience,
			PreviousFlags: checkFlags.previousFlags,
		}
	}

	resp := engine.Process(content, actx)

	if cli.OutputFormat(checkFlags.format) == cli.FormatJSON {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, resp)
	}

	result := resp.Result
	fmt.Printf("Flagged:    %v\n", result.IsFlagged)
	fmt.Printf("Severity:   %s\n", result.Severity)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	if len(result.Reasons) > 0 {
		fmt.Printf("Reasons:    ")
		for i, r := range result.Reasons {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(string(r))
		}
		fmt.Println()
	}
	fmt.Printf("Details:    %s\n", result.Details)
	return nil
}
