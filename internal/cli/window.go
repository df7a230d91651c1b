package cli

import (
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/wave-canvas/internal/config"
	"github.com/iburimskiy/wave-canvas/internal/game"
)

type windowOptions struct {
	sound   bool
	overlay bool
}

func (c *CLI) windowFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&c.window.sound, "sound", false, "play a short chime for every wave")
	f.BoolVar(&c.window.overlay, "overlay", false, "show the debug overlay (toggle with F1)")
}

func (c *CLI) runWindow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	applyWindowFlags(cmd, &cfg, c.window)
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height, "sound", cfg.Sound.Enabled)

	if err := game.Run(ctx, g); err != nil {
		logger.Error("window failed", "err", err)
		// The window may never have appeared; surface the failure natively.
		if derr := zenity.Error(err.Error(), zenity.Title("Wave Canvas")); derr != nil {
			logger.Debug("error dialog unavailable", "err", derr)
		}
		return err
	}
	return nil
}

func applyWindowFlags(cmd *cobra.Command, cfg *config.Config, opts windowOptions) {
	flags := cmd.Flags()
	if flags.Changed("sound") {
		cfg.Sound.Enabled = opts.sound
	}
	if flags.Changed("overlay") {
		cfg.Window.Overlay = opts.overlay
	}
}
