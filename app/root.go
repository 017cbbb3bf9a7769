// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "schoolhub-admin",
	Short: "SchoolHub-Admin is the back office service of SchoolHub",
	Long: `SchoolHub-Admin is the back office service of SchoolHub.
It authenticates users, students and parents, issues capability tokens
and decides which module actions an identity may perform in its active branch.`,
	Args: cobra.OnlyValidArgs,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.ReadConfig(configPath); err != nil {
			return err //nolint:wrapcheck
		}

		return logger.Init(cfg.Log) //nolint:wrapcheck
	},
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "configuration directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
