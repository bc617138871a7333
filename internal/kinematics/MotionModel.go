// Package kinematics defines the Scenario interface for two-train relative motion,
// along with the built-in same-direction and opposite-direction models.
//
// Every model assumes constant speeds. Train A departs first; train B departs
// HeadStart hours later. Adding a new scenario requires only implementing Scenario
// and registering it in Lookup: the engine and the host surfaces never need to change.
package kinematics

import (
	"errors"
	"fmt"
	"math"
)

// ScenarioKind is the JSON discriminator selecting a Scenario.
type ScenarioKind string

const (
	SameDirection     ScenarioKind = "same-direction"
	OppositeDirection ScenarioKind = "opposite-direction"
)

// ErrInvalidParams is wrapped by every validation failure from MotionParams.Validate.
var ErrInvalidParams = errors.New("invalid motion parameters")

// MotionParams is the full input to the solver. Speeds are in mph, HeadStart in hours.
type MotionParams struct {
	SpeedA    float64      `json:"speed_a"`
	SpeedB    float64      `json:"speed_b"`
	HeadStart float64      `json:"head_start"`
	Scenario  ScenarioKind `json:"scenario"`
}

// MeetingResult describes where and when train B meets train A.
// Time is measured from B's departure.
type MeetingResult struct {
	Time         float64 `json:"time"`          // hours
	Distance     float64 `json:"distance"`      // miles from A's origin
	DistanceA    float64 `json:"distance_a"`    // miles travelled by A, head start included
	DistanceB    float64 `json:"distance_b"`    // miles travelled by B
	InitialGap   float64 `json:"initial_gap"`   // miles between the trains when B departs
	ClosingSpeed float64 `json:"closing_speed"` // mph at which the gap shrinks
}

// Positions is the linear position of each train, in miles from A's origin.
type Positions struct {
	PosA float64 `json:"pos_a"`
	PosB float64 `json:"pos_b"`
}

// Scenario is the contract every relative-motion model must satisfy.
type Scenario interface {
	// Kind returns the discriminator this model is registered under.
	Kind() ScenarioKind

	// Meet returns the meeting point, or false when the trains never meet.
	Meet(p MotionParams) (MeetingResult, bool)

	// Positions returns both trains' positions elapsed hours after B departs.
	// elapsed is never negative.
	Positions(p MotionParams, elapsed float64) Positions
}

// Lookup returns the Scenario registered for kind.
//
// Supported kinds:
//   - "same-direction": B pursues A along the same heading.
//   - "opposite-direction": B approaches A from the far end of the gap.
func Lookup(kind ScenarioKind) (Scenario, error) {
	switch kind {
	case SameDirection:
		return sameDirection{}, nil
	case OppositeDirection:
		return oppositeDirection{}, nil
	default:
		return nil, fmt.Errorf("unknown scenario %q", kind)
	}
}

// ParseScenario accepts the discriminator strings plus the short forms "same" and "opposite".
func ParseScenario(s string) (ScenarioKind, error) {
	switch s {
	case "same", string(SameDirection):
		return SameDirection, nil
	case "opposite", string(OppositeDirection):
		return OppositeDirection, nil
	default:
		return "", fmt.Errorf("%w: unknown scenario %q", ErrInvalidParams, s)
	}
}

// Validate rejects parameters the solver is not defined for.
func (p MotionParams) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"speed_a", p.SpeedA},
		{"speed_b", p.SpeedB},
		{"head_start", p.HeadStart},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}
	if p.SpeedA <= 0 {
		return fmt.Errorf("%w: speed_a must be positive, got %g", ErrInvalidParams, p.SpeedA)
	}
	if p.SpeedB <= 0 {
		return fmt.Errorf("%w: speed_b must be positive, got %g", ErrInvalidParams, p.SpeedB)
	}
	if p.HeadStart < 0 {
		return fmt.Errorf("%w: head_start must not be negative, got %g", ErrInvalidParams, p.HeadStart)
	}
	if _, err := Lookup(p.Scenario); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// SolveMeeting computes the meeting point for p. It returns false when the trains
// never meet, including when p names an unknown scenario.
func SolveMeeting(p MotionParams) (MeetingResult, bool) {
	s, err := Lookup(p.Scenario)
	if err != nil {
		return MeetingResult{}, false
	}
	return s.Meet(p)
}

// PositionsAt samples both trains elapsed hours after B departs.
// Negative elapsed is treated as zero.
func PositionsAt(p MotionParams, elapsed float64) Positions {
	s, err := Lookup(p.Scenario)
	if err != nil {
		return Positions{}
	}
	return s.Positions(p, math.Max(0, elapsed))
}

// InitialGap is the distance A covers before B departs.
func (p MotionParams) InitialGap() float64 {
	return p.SpeedA * p.HeadStart
}
