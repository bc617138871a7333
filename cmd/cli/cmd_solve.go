package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/lesson"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute when and where the trains meet",
		Example: `  trainmotion solve --speed-a 40 --speed-b 60 --head-start 2
  trainmotion solve --scenario opposite --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			panel, err := panelFromFlags(cmd, e)
			if err != nil {
				return err
			}

			p := panel.Params()
			if err := p.Validate(); err != nil {
				return err
			}
			r, ok := kinematics.SolveMeeting(p)
			e.logger.Debug("solved", "params", p, "meets", ok)

			msg, _ := lesson.Banner(r, ok)
			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				resp := struct {
					Params  kinematics.MotionParams   `json:"motion_params"`
					Meeting *kinematics.MeetingResult `json:"meeting"`
					Message string                    `json:"message"`
				}{Params: p, Message: msg}
				if ok {
					resp.Meeting = &r
				}
				return json.NewEncoder(out).Encode(resp)
			}

			fmt.Fprintln(out, msg)
			if ok {
				fmt.Fprintf(out, "Meeting point: %.1f miles (Train A %.1f mi, Train B %.1f mi)\n", r.Distance, r.DistanceA, r.DistanceB)
			}
			explain, _ := cmd.Flags().GetBool("explain")
			if explain {
				fmt.Fprintln(out)
				for _, line := range lesson.Steps(p, r, ok) {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
	addParamFlags(cmd)
	cmd.Flags().Bool("explain", false, "Show the worked solution")
	return cmd
}
