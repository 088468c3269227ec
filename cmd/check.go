package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/config"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/lint"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

var checkCmd = &cobra.Command{
	Use:   "check [pages...]",
	Short: "Check the navigation markup of built pages",
	Long: `Inspects pages of the built book and reports markup that the navigation
panel drops, skips or cannot adapt. With no pages given, every HTML page of
the book is checked.

Exits non-zero when errors are found, or warnings with --strict.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "report format: text, json, github")
	checkCmd.Flags().Bool("no-color", false, "disable colors in text reports")
	checkCmd.Flags().Bool("strict", false, "fail on warnings")
	checkCmd.Flags().String("min-severity", "", "minimum severity to report: error, warning, info")
	checkCmd.Flags().StringSlice("enable", nil, "only run these rule IDs")
	checkCmd.Flags().StringSlice("disable", nil, "skip these rule IDs")
	checkCmd.Flags().Int("max-issues", -1, "stop reporting after this many issues (0 = unlimited)")
	checkCmd.Flags().Bool("list-rules", false, "list the available rules and exit")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyCheckFlags(cmd, cfg)

	lintCfg := lintConfig(cfg)
	if list, _ := cmd.Flags().GetBool("list-rules"); list {
		printRules(cmd.OutOrStdout(), lint.NewLinter(lintCfg).ListRules())
		return nil
	}

	// Reports name files relative to the directory as the user gave it.
	lintCfg.BookDir = cfg.BookDir
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	pages := args
	if len(pages) == 0 {
		if pages, err = sidebar.ListPages(cfg.BookDir); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	service := sidebar.NewDefaultService(logger, cfg.BookDir, cfg.Providers)
	snaps, err := inspectPages(ctx, service, pages)
	if err != nil {
		return err
	}

	result := lint.NewLinter(lintCfg).Run(ctx, snaps)
	logger.Info("Checked pages", "pages", result.TotalPages, "issues", len(result.Issues))

	format := cfg.Lint.Format
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor && format == "text" {
		format = "text-no-color"
	}
	if err := lint.NewFormatter(format).Format(result, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if result.ExitCode != 0 {
		return fmt.Errorf("check failed: %d error(s), %d warning(s)", result.ErrorCount, result.WarnCount)
	}
	return nil
}

func applyCheckFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if format, _ := flags.GetString("format"); format != "" {
		cfg.Lint.Format = format
	}
	if strict, _ := flags.GetBool("strict"); strict {
		cfg.Lint.FailOnWarning = true
	}
	if sev, _ := flags.GetString("min-severity"); sev != "" {
		cfg.Lint.MinSeverity = sev
	}
	if enable, _ := flags.GetStringSlice("enable"); len(enable) > 0 {
		cfg.Lint.EnabledRules = enable
	}
	if disable, _ := flags.GetStringSlice("disable"); len(disable) > 0 {
		cfg.Lint.DisabledRules = disable
	}
	if n, _ := flags.GetInt("max-issues"); n >= 0 {
		cfg.Lint.MaxIssues = n
	}
}

func lintConfig(cfg *config.Config) *lint.Config {
	return &lint.Config{
		MinSeverity:   lint.Severity(cfg.Lint.MinSeverity),
		EnabledRules:  cfg.Lint.EnabledRules,
		DisabledRules: cfg.Lint.DisabledRules,
		FailOnWarning: cfg.Lint.FailOnWarning,
		MaxIssues:     cfg.Lint.MaxIssues,
	}
}

func printRules(w io.Writer, rules []lint.RuleInfo) {
	for _, r := range rules {
		state := ""
		if !r.Enabled {
			state = " (disabled)"
		}
		fmt.Fprintf(w, "%s  %-24s %-8s %-10s %s%s\n", r.ID, r.Name, r.Severity, r.Category, r.Description, state)
	}
}
