// Package cli implements the lovetree command-line interface.
//
// # Commands
//
//   - play: open a window and run the animation interactively
//   - render: run the animation headless and write PNG frames
//   - config: print the default scene configuration as TOML
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/lovetree"
)

const appName = "lovetree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Grow a tree of hearts from a seed",
		Long:         `lovetree plays a decorative animation: a seed becomes a tree, the tree blooms into a heart, and petals drift away while a clock counts the time together.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.playCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())

	return root
}

// loadConfig returns the default scene or the TOML file at path layered
// over it, with seed overriding the random seed when non-zero.
func loadConfig(path string, seed uint64) (lovetree.Config, error) {
	cfg := lovetree.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = lovetree.LoadConfig(path); err != nil {
			return lovetree.Config{}, err
		}
	}
	if seed != 0 {
		cfg.RandSeed = seed
	}
	return cfg, nil
}

// newDirector builds a canvas, tree and director for cfg.
func newDirector(cfg lovetree.Config, opts lovetree.DirectorOptions) *lovetree.Director {
	canvas := lovetree.NewCanvas(cfg.Width, cfg.Height)
	return lovetree.NewDirector(lovetree.NewTree(canvas, cfg), opts)
}
