package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/engine"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Run a simulation from JSON input and print the frame log",
		Long: `Reads a SimulationInput JSON document from file (or stdin when no file is
given), samples every frame, and writes the SimulationLog JSON to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			result, err := engine.RunJSON(string(data))
			if err != nil {
				return fmt.Errorf("simulation error: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
