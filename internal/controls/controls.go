// Package controls is the input boundary: slider ranges and the panel state the
// host UI edits. Values leaving a Panel are always clamped and snapped to their
// slider's step, so the solver only ever sees validated input.
package controls

import (
	"fmt"
	"math"

	"github.com/cxd309/train-motion/internal/kinematics"
)

// Range bounds one slider. A zero Step means continuous.
type Range struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Default float64 `json:"default" yaml:"default"`
}

// Validate checks that r describes a usable slider.
func (r Range) Validate() error {
	for _, v := range []float64{r.Min, r.Max, r.Step, r.Default} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("range %v has a non-finite bound", r)
		}
	}
	if r.Min > r.Max {
		return fmt.Errorf("range min %g exceeds max %g", r.Min, r.Max)
	}
	if r.Step < 0 {
		return fmt.Errorf("range step must not be negative, got %g", r.Step)
	}
	if r.Default < r.Min || r.Default > r.Max {
		return fmt.Errorf("range default %g outside [%g, %g]", r.Default, r.Min, r.Max)
	}
	return nil
}

// Clamp limits v to [Min, Max] and snaps it to the nearest step from Min.
// NaN becomes Default.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = r.Default
	}
	v = math.Max(r.Min, math.Min(v, r.Max))
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
		if v > r.Max {
			v -= r.Step
		}
	}
	// Drop float noise from repeated steps, e.g. 0.1+0.2.
	return math.Round(v*1e9) / 1e9
}

// Slider names one of the panel's numeric inputs.
type Slider int

const (
	SpeedA Slider = iota
	SpeedB
	HeadStart
	numSliders
)

func (s Slider) String() string {
	switch s {
	case SpeedA:
		return "Train A Speed (mph)"
	case SpeedB:
		return "Train B Speed (mph)"
	case HeadStart:
		return "Head Start (hours)"
	default:
		return fmt.Sprintf("Slider(%d)", int(s))
	}
}

// Panel is the editable state of the calculator: a scenario and three sliders.
// It has a single owner and is not safe for concurrent use.
type Panel struct {
	scenario kinematics.ScenarioKind
	ranges   [numSliders]Range
	values   [numSliders]float64
	focus    Slider
}

// NewPanel returns a same-direction panel with every slider at its default.
func NewPanel(speedA, speedB, headStart Range) (*Panel, error) {
	p := &Panel{
		scenario: kinematics.SameDirection,
		ranges:   [numSliders]Range{speedA, speedB, headStart},
	}
	for i, r := range p.ranges {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", Slider(i), err)
		}
		p.values[i] = r.Clamp(r.Default)
	}
	if p.ranges[SpeedA].Min <= 0 || p.ranges[SpeedB].Min <= 0 {
		return nil, fmt.Errorf("speed sliders must start above zero")
	}
	if p.ranges[HeadStart].Min < 0 {
		return nil, fmt.Errorf("head start slider must not go below zero")
	}
	return p, nil
}

// Scenario returns the selected scenario.
func (p *Panel) Scenario() kinematics.ScenarioKind { return p.scenario }

// SetScenario selects k.
func (p *Panel) SetScenario(k kinematics.ScenarioKind) error {
	if _, err := kinematics.Lookup(k); err != nil {
		return err
	}
	p.scenario = k
	return nil
}

// ToggleScenario switches between the two scenarios.
func (p *Panel) ToggleScenario() {
	if p.scenario == kinematics.SameDirection {
		p.scenario = kinematics.OppositeDirection
	} else {
		p.scenario = kinematics.SameDirection
	}
}

// Focus returns the slider the arrow keys edit.
func (p *Panel) Focus() Slider { return p.focus }

// FocusNext moves focus to the next slider, wrapping around.
func (p *Panel) FocusNext() { p.focus = (p.focus + 1) % numSliders }

// FocusPrev moves focus to the previous slider, wrapping around.
func (p *Panel) FocusPrev() { p.focus = (p.focus + numSliders - 1) % numSliders }

// Range returns the bounds of s.
func (p *Panel) Range(s Slider) Range { return p.ranges[s] }

// Value returns the current value of s.
func (p *Panel) Value(s Slider) float64 { return p.values[s] }

// Set clamps v into s's range, stores it, and returns the stored value.
func (p *Panel) Set(s Slider, v float64) float64 {
	p.values[s] = p.ranges[s].Clamp(v)
	return p.values[s]
}

// Inc nudges the focused slider up one step.
func (p *Panel) Inc() float64 { return p.nudge(1) }

// Dec nudges the focused slider down one step.
func (p *Panel) Dec() float64 { return p.nudge(-1) }

func (p *Panel) nudge(dir float64) float64 {
	r := p.ranges[p.focus]
	step := r.Step
	if step == 0 {
		step = (r.Max - r.Min) / 100
	}
	return p.Set(p.focus, p.values[p.focus]+dir*step)
}

// Params returns the panel's current motion parameters.
func (p *Panel) Params() kinematics.MotionParams {
	return kinematics.MotionParams{
		SpeedA:    p.values[SpeedA],
		SpeedB:    p.values[SpeedB],
		HeadStart: p.values[HeadStart],
		Scenario:  p.scenario,
	}
}
