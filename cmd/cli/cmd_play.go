package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/animation"
	"github.com/cxd309/train-motion/internal/config"
	"github.com/cxd309/train-motion/internal/engine"
	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/lesson"
	"github.com/cxd309/train-motion/internal/logging"
	"github.com/cxd309/train-motion/internal/track"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate the trains in the terminal, one line per frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			panel, err := panelFromFlags(cmd, e)
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetInt("width")

			tl, err := engine.NewTimeline(panel.Params(), e.variant.TimeStep, e.variant.Buffer)
			if err != nil {
				return err
			}
			e.logger.Debug("timeline", "frames", tl.Len(), "step", tl.Step(), "interval", e.variant.FrameInterval)
			player, err := animation.New(tl, e.variant.FrameInterval)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			msg, ok := lesson.Banner(tl.Meeting())
			if !ok {
				if jsonOut {
					return json.NewEncoder(out).Encode(struct {
						Params  kinematics.MotionParams   `json:"motion_params"`
						Meeting *kinematics.MeetingResult `json:"meeting"`
						Message string                    `json:"message"`
					}{Params: tl.Params(), Message: msg})
				}
				fmt.Fprintln(out, msg)
				return nil
			}
			if !jsonOut {
				fmt.Fprintln(out, msg)
			}

			m, _ := tl.Meeting()
			tr, err := track.New(tl.Params(), &m, width, 1)
			if err != nil {
				return err
			}

			var frames *logging.FrameLogger
			if dir, err := config.Dir(); err == nil {
				frames = logging.NewFrameLogger(dir, e.config.Logging.Level)
			}
			defer frames.Close()

			ctx, stop := notifyContext(cmd.Context())
			defer stop()

			enc := json.NewEncoder(out)
			var encErr error
			err = player.Run(ctx, func(f engine.Frame) {
				frames.Log(f)
				logging.TraceFrame(ctx, e.logger, f)
				if jsonOut {
					if err := enc.Encode(f); err != nil && encErr == nil {
						encErr = fmt.Errorf("encoding frame: %w", err)
					}
					return
				}
				fmt.Fprintf(out, "%s  t=%5.2fh%s\n", tr.Line(tr.Place(f.Trains)), f.Elapsed, metMark(f))
			})
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			if err != nil {
				return err
			}
			return encErr
		},
	}
	addParamFlags(cmd)
	cmd.Flags().Int("width", 60, "Track width in columns")
	return cmd
}

func metMark(f engine.Frame) string {
	if f.Met {
		return "  met"
	}
	return ""
}
