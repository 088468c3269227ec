package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/config"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// loadConfig loads the config file and environment, then applies the
// persistent flags the user set explicitly. It does not validate.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mdbook-sidebar config init` to create a config file", err)
	}

	flags := cmd.Flags()
	if flags.Changed("book") {
		cfg.BookDir = bookDir
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to the configured file;
// without one they go to fallback when debugging, or nowhere. The browser
// passes a nil fallback since it owns the terminal.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
	}
	if cfg.Debug && fallback != nil {
		return slog.New(slog.NewTextHandler(fallback, opts)), func() {}, nil
	}
	return slog.New(slog.DiscardHandler), func() {}, nil
}

// inspectPages runs the page pipeline over every page in order and stops at
// the first real failure.
func inspectPages(ctx context.Context, service sidebar.Service, pages []string) ([]*sidebar.Snapshot, error) {
	snaps := make([]*sidebar.Snapshot, 0, len(pages))
	for _, p := range pages {
		snap, err := service.Inspect(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
