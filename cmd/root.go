// Package cmd implements the mdbook-sidebar command line.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/config"
)

var (
	cfgFile string
	bookDir string
	logFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "mdbook-sidebar",
	Short: "Provider-aware navigation for built Terraform provider books",
	Long: `mdbook-sidebar reads the HTML output of an mdBook build and adapts its
navigation. Provider pages get a flat, filterable resource index grouped by
category; other pages get a simplified top-level outline.

Browse a book interactively, export the adapted panel, or check the
navigation markup of every page in CI.`,
	SilenceUsage: true,
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().StringVarP(&bookDir, "book", "b", "book", "mdBook output directory")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
}
