// Package config provides unified configuration loading for trainmotion.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/cxd309/train-motion/internal/animation"
	"github.com/cxd309/train-motion/internal/controls"
	"github.com/cxd309/train-motion/internal/engine"
)

// DefaultVariant is the variant used when none is selected.
const DefaultVariant = "classic"

// Config contains all trainmotion configuration settings.
type Config struct {
	// Logging contains settings for operational logging and frame tracing.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Variant selects one of Variants.
	Variant string `json:"variant" yaml:"variant"`

	// Variants maps a name to a preset of slider ranges and animation timings.
	// Entries from a config file are added to the built-in presets; a file entry
	// with a built-in name replaces that preset.
	Variants map[string]Variant `json:"variants" yaml:"variants"`

	// FrameInterval, when set, replaces the frame interval of whichever
	// variant ends up selected.
	FrameInterval time.Duration `json:"frame_interval,omitempty" yaml:"frame_interval,omitempty"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables frame tracing to ~/.trainmotion/frames.jsonl.
	// "trace" additionally logs every frame to stderr.
	Level string `json:"level" yaml:"level"`
}

// Variant is one presentation of the calculator.
type Variant struct {
	// Title is shown in the widget header.
	Title string `json:"title" yaml:"title"`

	SpeedA    controls.Range `json:"speed_a" yaml:"speed_a"`
	SpeedB    controls.Range `json:"speed_b" yaml:"speed_b"`
	HeadStart controls.Range `json:"head_start" yaml:"head_start"`

	// TimeStep is the simulated hours between frames. Zero means engine.DefaultTimeStep.
	TimeStep float64 `json:"time_step,omitempty" yaml:"time_step,omitempty"`

	// Buffer is the simulated hours played after the meeting. Zero means engine.DefaultBuffer.
	Buffer float64 `json:"buffer,omitempty" yaml:"buffer,omitempty"`

	// FrameInterval is the wall-clock time between frames. Zero means animation.DefaultInterval.
	FrameInterval time.Duration `json:"frame_interval,omitempty" yaml:"frame_interval,omitempty"`
}

// Builtins returns the built-in variants.
func Builtins() map[string]Variant {
	return map[string]Variant{
		"classic": {
			Title:         "Train Motion Simulator",
			SpeedA:        controls.Range{Min: 20, Max: 200, Step: 1, Default: 40},
			SpeedB:        controls.Range{Min: 30, Max: 300, Step: 1, Default: 60},
			HeadStart:     controls.Range{Min: 0.5, Max: 5, Step: 0.5, Default: 2},
			TimeStep:      0.1,
			Buffer:        2,
			FrameInterval: 100 * time.Millisecond,
		},
		"explorer": {
			Title:         "Train Meeting Calculator",
			SpeedA:        controls.Range{Min: 10, Max: 200, Step: 5, Default: 40},
			SpeedB:        controls.Range{Min: 10, Max: 300, Step: 5, Default: 60},
			HeadStart:     controls.Range{Min: 0, Max: 10, Step: 0.5, Default: 2},
			TimeStep:      0.05,
			Buffer:        3,
			FrameInterval: 50 * time.Millisecond,
		},
		"wide": {
			Title:         "Relative Speed Lab",
			SpeedA:        controls.Range{Min: 10, Max: 800, Step: 10, Default: 40},
			SpeedB:        controls.Range{Min: 10, Max: 800, Step: 10, Default: 60},
			HeadStart:     controls.Range{Min: 0, Max: 24, Step: 0.5, Default: 2},
			TimeStep:      0.1,
			Buffer:        3,
			FrameInterval: 100 * time.Millisecond,
		},
	}
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: "info"},
		Variant:  DefaultVariant,
		Variants: Builtins(),
	}
}

// Dir returns ~/.trainmotion.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".trainmotion"), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.trainmotion/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	if dir, err := Dir(); err == nil {
		configPath := filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadPath loads configuration from path, then applies environment variables.
func LoadPath(path string) (*Config, error) {
	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config := Default()
	if file.Logging.Level != "" {
		config.Logging.Level = file.Logging.Level
	}
	if file.Variant != "" {
		config.Variant = file.Variant
	}
	if file.FrameInterval != 0 {
		config.FrameInterval = file.FrameInterval
	}
	for name, v := range file.Variants {
		config.Variants[name] = v
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.FrameInterval < 0 {
		return fmt.Errorf("frame_interval must be non-negative, got %v", c.FrameInterval)
	}

	if _, ok := c.Variants[c.Variant]; !ok {
		return fmt.Errorf("unknown variant %q (valid: %v)", c.Variant, c.VariantNames())
	}

	for _, name := range c.VariantNames() {
		if err := c.Variants[name].Validate(); err != nil {
			return fmt.Errorf("variant %q: %w", name, err)
		}
	}
	return nil
}

// VariantNames returns the configured variant names in sorted order.
func (c *Config) VariantNames() []string {
	names := maps.Keys(c.Variants)
	slices.Sort(names)
	return names
}

// Selected returns the selected variant with its zero timings filled in.
func (c *Config) Selected() (Variant, error) {
	v, ok := c.Variants[c.Variant]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (valid: %v)", c.Variant, c.VariantNames())
	}
	if c.FrameInterval != 0 {
		v.FrameInterval = c.FrameInterval
	}
	return v.withDefaults(), nil
}

// Validate checks the variant's slider ranges and timings.
func (v Variant) Validate() error {
	if _, err := controls.NewPanel(v.SpeedA, v.SpeedB, v.HeadStart); err != nil {
		return err
	}
	if v.TimeStep < 0 {
		return fmt.Errorf("time_step must be non-negative, got %g", v.TimeStep)
	}
	if v.Buffer < 0 {
		return fmt.Errorf("buffer must be non-negative, got %g", v.Buffer)
	}
	if v.FrameInterval < 0 {
		return fmt.Errorf("frame_interval must be non-negative, got %v", v.FrameInterval)
	}
	return nil
}

// Panel builds a control panel from the variant's sliders.
func (v Variant) Panel() (*controls.Panel, error) {
	return controls.NewPanel(v.SpeedA, v.SpeedB, v.HeadStart)
}

func (v Variant) withDefaults() Variant {
	if v.TimeStep == 0 {
		v.TimeStep = engine.DefaultTimeStep
	}
	if v.Buffer == 0 {
		v.Buffer = engine.DefaultBuffer
	}
	if v.FrameInterval == 0 {
		v.FrameInterval = animation.DefaultInterval
	}
	return v
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("TRAINMOTION_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("TRAINMOTION_VARIANT"); v != "" {
		config.Variant = v
	}

	if v := os.Getenv("TRAINMOTION_FRAME_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TRAINMOTION_FRAME_INTERVAL: %w", err)
		}
		config.FrameInterval = d
	}
	return nil
}
