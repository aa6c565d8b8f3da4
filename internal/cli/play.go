package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/lovetree"
)

type playOpts struct {
	config  string
	seed    uint64
	debug   bool
	showFPS bool
	shots   string
}

func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and play the animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := loadConfig(opts.config, opts.seed)
			if err != nil {
				return err
			}
			d := newDirector(cfg, lovetree.DirectorOptions{
				Logger:        logger,
				Debug:         opts.debug,
				ScreenshotDir: opts.shots,
			})
			logger.Info("window open", "width", cfg.Width, "height", cfg.Height)
			return lovetree.Run(d, lovetree.RunConfig{Title: appName, ShowFPS: opts.showFPS})
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "scene configuration (TOML)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log per-phase statistics")
	cmd.Flags().BoolVar(&opts.showFPS, "fps", false, "show FPS and TPS")
	cmd.Flags().StringVar(&opts.shots, "screenshots", "screenshots", "screenshot directory")

	return cmd
}
