package main

import (
	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/controls"
	"github.com/cxd309/train-motion/internal/kinematics"
)

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", "same", "Scenario: same (pursuit) or opposite (approach)")
	cmd.Flags().Float64("speed-a", 0, "Train A speed in mph (default: the preset's)")
	cmd.Flags().Float64("speed-b", 0, "Train B speed in mph (default: the preset's)")
	cmd.Flags().Float64("head-start", 0, "Hours Train A departs before Train B (default: the preset's)")
}

// panelFromFlags builds the variant's control panel and applies any parameter
// flags through it, so values outside the sliders' ranges are clamped.
func panelFromFlags(cmd *cobra.Command, e *env) (*controls.Panel, error) {
	panel, err := e.variant.Panel()
	if err != nil {
		return nil, err
	}

	s, _ := cmd.Flags().GetString("scenario")
	kind, err := kinematics.ParseScenario(s)
	if err != nil {
		return nil, err
	}
	if err := panel.SetScenario(kind); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		name   string
		slider controls.Slider
	}{
		{"speed-a", controls.SpeedA},
		{"speed-b", controls.SpeedB},
		{"head-start", controls.HeadStart},
	} {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		want, _ := cmd.Flags().GetFloat64(f.name)
		if got := panel.Set(f.slider, want); got != want {
			r := panel.Range(f.slider)
			e.logger.Warn("value clamped to slider range",
				"flag", f.name, "requested", want, "used", got, "min", r.Min, "max", r.Max, "step", r.Step)
		}
	}
	return panel, nil
}
