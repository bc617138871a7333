package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/controls"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the slider presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]any{
					"selected": e.config.Variant,
					"active":   e.variant,
					"variants": e.config.Variants,
				})
			}

			for _, name := range e.config.VariantNames() {
				v := e.config.Variants[name]
				mark := " "
				if name == e.config.Variant {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %-10s %s\n", mark, name, v.Title)
				fmt.Fprintf(out, "    speed A    %s\n", describeRange(v.SpeedA))
				fmt.Fprintf(out, "    speed B    %s\n", describeRange(v.SpeedB))
				fmt.Fprintf(out, "    head start %s\n", describeRange(v.HeadStart))
			}
			return nil
		},
	}
}

func describeRange(r controls.Range) string {
	return fmt.Sprintf("%g-%g step %g (default %g)", r.Min, r.Max, r.Step, r.Default)
}
