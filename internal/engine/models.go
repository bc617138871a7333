package engine

import (
	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/train"
)

const (
	DefaultTimeStep = 0.1 // hours per frame
	DefaultBuffer   = 2.0 // hours shown after the meeting
)

// SimulationMeta holds the identity and timing parameters for a simulation run.
type SimulationMeta struct {
	SimulationID string  `json:"simulation_id"`
	TimeStep     float64 `json:"time_step"` // hours
	Buffer       float64 `json:"buffer"`    // hours
}

// SimulationInput is the JSON-serialisable input to the engine.
type SimulationInput struct {
	Meta   SimulationMeta          `json:"simulation_meta"`
	Params kinematics.MotionParams `json:"motion_params"`
}

// Frame is the state of both trains at a single elapsed time, measured from B's departure.
type Frame struct {
	Elapsed float64 `json:"elapsed"` // hours
	kinematics.Positions
	Met    bool        `json:"met"`
	Trains []train.Log `json:"trains"`
}

// SimulationLog is the complete output of a simulation run.
// Meeting is nil when the trains never meet, in which case Output is empty.
type SimulationLog struct {
	Meta    SimulationMeta            `json:"simulation_meta"`
	Params  kinematics.MotionParams   `json:"motion_params"`
	Meeting *kinematics.MeetingResult `json:"meeting"`
	Output  []Frame                   `json:"output"`
}

// SolveOutput is the response of SolveJSON.
type SolveOutput struct {
	Params  kinematics.MotionParams   `json:"motion_params"`
	Meeting *kinematics.MeetingResult `json:"meeting"`
}

// SampleInput is the request of PositionsJSON.
type SampleInput struct {
	Params  kinematics.MotionParams `json:"motion_params"`
	Elapsed float64                 `json:"elapsed"` // hours
}
