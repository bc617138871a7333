// Package engine turns motion parameters into the frames of a train motion animation.
//
// A run solves the meeting point once, then samples both trains at a fixed step
// from B's departure until a buffer past the meeting. Frames are produced lazily
// by a Timeline; Run materialises them into a SimulationLog.
package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cxd309/train-motion/internal/kinematics"
)

// Simulation is a single configured run.
type Simulation struct {
	meta     SimulationMeta
	timeline *Timeline
}

// NewSimulation builds a Simulation from input. Zero timing fields take their
// defaults and a missing simulation ID is generated.
func NewSimulation(input SimulationInput) (*Simulation, error) {
	meta := input.Meta
	if meta.SimulationID == "" {
		meta.SimulationID = uuid.NewString()
	}
	if meta.TimeStep == 0 {
		meta.TimeStep = DefaultTimeStep
	}
	if meta.Buffer == 0 {
		meta.Buffer = DefaultBuffer
	}

	tl, err := NewTimeline(input.Params, meta.TimeStep, meta.Buffer)
	if err != nil {
		return nil, fmt.Errorf("building timeline: %w", err)
	}
	return &Simulation{meta: meta, timeline: tl}, nil
}

// Timeline returns the simulation's frame sequence.
func (s *Simulation) Timeline() *Timeline { return s.timeline }

// Run samples every frame and returns the log.
func (s *Simulation) Run() SimulationLog {
	log := SimulationLog{
		Meta:   s.meta,
		Params: s.timeline.Params(),
		Output: make([]Frame, 0, s.timeline.Len()),
	}
	if m, ok := s.timeline.Meeting(); ok {
		log.Meeting = &m
	}
	for f := range s.timeline.Frames() {
		log.Output = append(log.Output, f)
	}
	return log
}

// RunJSON is the primary entry point for the CLI and WASM targets.
// It accepts a JSON-encoded SimulationInput, runs the simulation, and returns a
// JSON-encoded SimulationLog.
func RunJSON(jsonInput string) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	sim, err := NewSimulation(input)
	if err != nil {
		return "", err
	}
	return marshal(sim.Run())
}

// SolveJSON accepts JSON-encoded MotionParams and returns a JSON-encoded SolveOutput.
// A "meeting" of null means the trains never meet.
func SolveJSON(jsonInput string) (string, error) {
	var p kinematics.MotionParams
	if err := json.Unmarshal([]byte(jsonInput), &p); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	out := SolveOutput{Params: p}
	if m, ok := kinematics.SolveMeeting(p); ok {
		out.Meeting = &m
	}
	return marshal(out)
}

// PositionsJSON accepts a JSON-encoded SampleInput and returns the JSON-encoded
// Frame at that elapsed time.
func PositionsJSON(jsonInput string) (string, error) {
	var in SampleInput
	if err := json.Unmarshal([]byte(jsonInput), &in); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	tl, err := NewTimeline(in.Params, DefaultTimeStep, DefaultBuffer)
	if err != nil {
		return "", err
	}
	return marshal(tl.Sample(in.Elapsed))
}

func marshal(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
