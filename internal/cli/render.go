package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/lovetree"
)

const (
	defaultLoopFrames = 300  // frames played after the loop starts
	defaultRenderSeed = 1314 // fixed so renders are reproducible
)

// renderOpts holds the flags for the render command.
type renderOpts struct {
	config     string // scene configuration file
	script     string // JSON script driving clicks and screenshots
	output     string // final composite PNG
	shots      string // screenshot directory
	loopFrames int    // frames after PhaseLoop when no script is given
	maxFrames  uint64 // hard stop
	seed       uint64
	debug      bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		output:     "lovetree.png",
		shots:      "screenshots",
		loopFrames: defaultLoopFrames,
		seed:       defaultRenderSeed,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run the animation headless and write PNG output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := runRender(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "Rendered %d frames", res.Frames)
			printKeyValue(w, "phase", res.Phase.String())
			printFile(w, opts.output)
			for _, p := range res.Screenshots {
				printFile(w, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "scene configuration (TOML)")
	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "JSON script of clicks, waits and screenshots")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "final composite PNG")
	cmd.Flags().StringVar(&opts.shots, "screenshots", opts.shots, "screenshot directory")
	cmd.Flags().IntVar(&opts.loopFrames, "frames", opts.loopFrames, "frames to play after the loop starts")
	cmd.Flags().Uint64Var(&opts.maxFrames, "max-frames", 0, "stop after this many frames (0 uses the default)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log per-phase statistics")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts) (lovetree.HeadlessResult, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := loadConfig(opts.config, opts.seed)
	if err != nil {
		return lovetree.HeadlessResult{}, err
	}

	var script *lovetree.ScriptRunner
	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return lovetree.HeadlessResult{}, fmt.Errorf("read script: %w", err)
		}
		if script, err = lovetree.LoadScript(data); err != nil {
			return lovetree.HeadlessResult{}, err
		}
	}

	d := newDirector(cfg, lovetree.DirectorOptions{
		Logger:        logger,
		Debug:         opts.debug,
		ScreenshotDir: opts.shots,
	})
	res, err := lovetree.RunHeadless(ctx, d, lovetree.HeadlessOptions{
		Script:     script,
		LoopFrames: opts.loopFrames,
		MaxFrames:  opts.maxFrames,
	})
	if err != nil {
		return res, err
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := lovetree.WritePNG(opts.output, d.Composite()); err != nil {
		return res, err
	}
	prog.done(fmt.Sprintf("Rendered %d frames", res.Frames))
	return res, nil
}
