package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/tui/theme"
)

var browseCmd = &cobra.Command{
	Use:   "browse [page]",
	Short: "Browse the book with the adapted navigation panel",
	Long: `Opens a page of the built book in an interactive terminal browser. The
left panel shows the provider resource index (or the simplified outline on
other pages); Ctrl+K focuses the filter and dragging the divider resizes the
panel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("theme", "", "color theme: default, neon")
	browseCmd.Flags().Int("width", 0, "initial panel width in cells")
	browseCmd.Flags().Bool("no-mouse", false, "disable mouse support and drag-to-resize")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("theme"); name != "" {
		cfg.Theme = name
	}
	if width, _ := cmd.Flags().GetInt("width"); width > 0 {
		cfg.SidebarWidth = width
	}
	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		cfg.Mouse = false
	}
	if len(args) == 1 {
		cfg.Page = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return err
	}

	logger.Info("Starting browser", "book", cfg.BookDir, "page", cfg.Page, "theme", cfg.Theme)
	service := sidebar.NewDefaultService(logger, cfg.BookDir, cfg.Providers)
	app := tui.NewTUI(logger, service, tui.Options{
		Theme:        th,
		SidebarWidth: cfg.SidebarWidth,
		Bounds:       cfg.ResizeBounds(),
		Mouse:        cfg.Mouse,
	})
	return app.Run(cmd.Context(), cfg.Page)
}
