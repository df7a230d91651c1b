// Package cli implements the wavecanvas command-line interface.
//
// The root command opens the drawing window. The snapshot subcommand replays
// scripted strokes headlessly and writes the final frame as PNG. Every command
// reads the same TOML configuration and supports --verbose (-v) for debug
// logging; the logger travels to commands through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/wave-canvas/internal/config"
)

const appName = "wavecanvas"

// Version is reported by --version. It is set at build time with -ldflags.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	width      int
	height     int
	window     windowOptions
}

// New creates a CLI logging to w.
func New(w io.Writer) *CLI {
	return &CLI{Logger: newLogger(w, log.InfoLevel)}
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Draw on a dot grid and watch the waves",
		Long:         `wavecanvas opens a dot-grid canvas. Strokes fade away a moment after you lift the pointer, and each one sends a wave across the grid that swells the dots it passes.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&c.width, "width", 0, "canvas width in logical pixels (overrides config)")
	pf.IntVar(&c.height, "height", 0, "canvas height in logical pixels (overrides config)")

	c.windowFlags(root)
	root.RunE = c.runWindow

	root.AddCommand(c.snapshotCommand())
	return root
}

// loadConfig reads the config file and applies the flags the user set.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = c.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = c.height
	}
	return cfg, nil
}

// Execute runs the CLI with ctx; logs go to stderr.
func Execute(ctx context.Context, stderr io.Writer, args []string) error {
	root := New(stderr).RootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", appName, err)
	}
	return nil
}
