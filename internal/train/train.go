// Package train defines the two trains of a scenario and the per-frame
// snapshot of each one's state.
package train

import (
	"github.com/cxd309/train-motion/internal/kinematics"
)

// ID identifies a train within a scenario.
type ID = string

const (
	A ID = "A"
	B ID = "B"
)

// State describes what a train is doing at a given frame.
type State string

const (
	StateWaiting State = "waiting" // not yet departed
	StateRunning State = "running"
	StateMet     State = "met" // caught up with or passed the other train
)

// Heading is +1 when a train travels away from A's origin and -1 toward it.
type Heading int

const (
	Outbound Heading = 1
	Inbound  Heading = -1
)

// Train is the static definition of one train.
type Train struct {
	ID      ID      `json:"id"`
	Label   string  `json:"label"`
	Speed   float64 `json:"speed"` // mph
	Heading Heading `json:"heading"`
	// Origin is the mile marker the train departs from.
	Origin float64 `json:"origin"`
	// DepartureDelay is the number of hours after A's departure at which this
	// train departs. For B it is the head start.
	DepartureDelay float64 `json:"departure_delay,omitempty"`
}

// Pair builds both trains described by p.
func Pair(p kinematics.MotionParams) [2]Train {
	b := Train{
		ID:             B,
		Label:          "Train B",
		Speed:          p.SpeedB,
		Heading:        Outbound,
		DepartureDelay: p.HeadStart,
	}
	if p.Scenario == kinematics.OppositeDirection {
		// B starts one gap ahead of where A stands at B's departure.
		b.Heading = Inbound
		b.Origin = 2 * p.InitialGap()
	}
	return [2]Train{
		{ID: A, Label: "Train A", Speed: p.SpeedA, Heading: Outbound},
		b,
	}
}

// SimTrain is a Train enriched with live simulation state.
type SimTrain struct {
	Train
	State     State   `json:"state"`
	Position  float64 `json:"position"`  // mile marker
	Travelled float64 `json:"travelled"` // miles since departure
}

// NewSimTrain places tr at its origin, waiting to depart.
func NewSimTrain(tr Train) *SimTrain {
	return &SimTrain{Train: tr, State: StateWaiting, Position: tr.Origin}
}

// Advance moves the train to its position at clock hours after A's departure.
// meetAt is the clock time of the meeting, or negative when the trains never meet.
func (s *SimTrain) Advance(clock, meetAt float64) {
	running := clock - s.DepartureDelay
	switch {
	case running < 0:
		s.State = StateWaiting
		s.Travelled = 0
	case meetAt >= 0 && clock >= meetAt:
		s.State = StateMet
		s.Travelled = s.Speed * running
	default:
		s.State = StateRunning
		s.Travelled = s.Speed * running
	}
	s.Position = s.Origin + float64(s.Heading)*s.Travelled
}

// Log is a point-in-time snapshot of a SimTrain.
type Log struct {
	ID        ID      `json:"id"`
	State     State   `json:"state"`
	Position  float64 `json:"position"`
	Travelled float64 `json:"travelled"`
}

// GetLog returns a point-in-time snapshot of the train state.
func (s *SimTrain) GetLog() Log {
	return Log{
		ID:        s.ID,
		State:     s.State,
		Position:  s.Position,
		Travelled: s.Travelled,
	}
}
