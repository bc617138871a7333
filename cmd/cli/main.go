// Command trainmotion solves two-train meeting problems and animates them.
//
// The run subcommand keeps the engine's JSON contract: it reads a SimulationInput
// from a file argument (or stdin) and writes the SimulationLog JSON to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxd309/train-motion/internal/config"
	"github.com/cxd309/train-motion/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trainmotion",
		Short: "Train motion calculator - when and where do two trains meet?",
		Long: `trainmotion computes when and where two trains meet, either with one
pursuing the other along the same heading or with the two approaching each
other, and animates both trains along the track.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.trainmotion/config.yaml)")
	rootCmd.PersistentFlags().String("variant", "", "Slider preset to use (see 'trainmotion presets')")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSolveCmd(),
		newRunCmd(),
		newPlayCmd(),
		newTUICmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trainmotion version %s\n", version)
			return nil
		},
	}
}

// env is what every subcommand needs after flags and config are resolved.
type env struct {
	config  *config.Config
	variant config.Variant
	logger  *slog.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		cfg.Variant = v
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.Logging.Level = l
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	variant, err := cfg.Selected()
	if err != nil {
		return nil, err
	}
	return &env{
		config:  cfg,
		variant: variant,
		logger:  logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()),
	}, nil
}
