package main

import (
	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/config"
	"github.com/cxd309/train-motion/internal/logging"
	"github.com/cxd309/train-motion/internal/tui"
)

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator",
		Long: `Opens a full-screen calculator with sliders for both speeds and the head
start, the meeting result, an animated track, and a "learn the math" panel.

Logs go to stderr, so redirect it (2>trainmotion.log) when using debug levels.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			panel, err := panelFromFlags(cmd, e)
			if err != nil {
				return err
			}

			var frames *logging.FrameLogger
			if dir, err := config.Dir(); err == nil {
				frames = logging.NewFrameLogger(dir, e.config.Logging.Level)
			}
			defer frames.Close()

			app, err := tui.New(e.variant, panel, e.logger, frames)
			if err != nil {
				return err
			}

			ctx, stop := notifyContext(cmd.Context())
			defer stop()
			return app.Run(ctx)
		},
	}
	addParamFlags(cmd)
	return cmd
}
