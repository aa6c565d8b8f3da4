package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/lovetree"
)

func (c *CLI) configCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the scene configuration as TOML",
		Long:  `Print the default scene as TOML, or the file given by --config after defaults are applied. The output is a valid starting point for --config.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(path, 0)
			if err != nil {
				return err
			}
			return lovetree.WriteConfig(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "scene configuration (TOML)")
	return cmd
}
