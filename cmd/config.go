package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/config"
	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mdbook-sidebar config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Writes the default configuration, including the provider registry, to the
file named by --config so it can be edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		cfg := config.NewConfig()
		cfg.Providers = sidebar.DefaultRegistry()
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
