package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration with secrets masked",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := config.DumpConfigJSON(cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err //nolint:wrapcheck
	},
}
