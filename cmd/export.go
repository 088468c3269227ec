package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/output"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

var exportCmd = &cobra.Command{
	Use:   "export [page]",
	Short: "Export the adapted navigation of a page",
	Long: `Runs the navigation pipeline on one page and writes the result.

Formats:
  json      the full snapshot (context, categories, outline)
  markdown  a readable resource index
  tree      an ASCII tree of categories and resources
  html      the replacement panel markup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "output format: json, markdown, tree, html")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().String("filter", "", "apply a filter query to the html panel")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.OutputFormat = format
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputFile = out
	}
	if len(args) == 1 {
		cfg.Page = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	service := sidebar.NewDefaultService(logger, cfg.BookDir, cfg.Providers)
	snap, err := service.Inspect(ctx, cfg.Page)
	if err != nil {
		return err
	}

	manager := output.NewManager()
	if query, _ := cmd.Flags().GetString("filter"); strings.TrimSpace(query) != "" {
		manager.RegisterFormatter(output.NewHTMLFormatter(query))
	}

	if cfg.OutputFile == "" {
		if err := manager.Format(ctx, cfg.OutputFormat, snap, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to export %s: %w", snap.Path, err)
		}
	} else {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cfg.OutputFile, err)
		}
		if err := writeExport(ctx, manager, cfg.OutputFormat, snap, f); err != nil {
			return err
		}
	}

	logger.Info("Exported page", "path", snap.Path, "format", cfg.OutputFormat)
	if cfg.OutputFile != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Export written to %s\n", cfg.OutputFile)
	}
	return nil
}

// writeExport formats snap into w and closes it, returning the first error.
func writeExport(ctx context.Context, manager output.Manager, format string, snap *sidebar.Snapshot, w io.WriteCloser) error {
	if err := manager.Format(ctx, format, snap, w); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to export %s: %w", snap.Path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	return nil
}
