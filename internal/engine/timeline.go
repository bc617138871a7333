package engine

import (
	"fmt"
	"iter"
	"math"

	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/train"
)

// Timeline is the finite, restartable sequence of frames covering
// [0, meeting time + buffer] at a fixed step. It is empty when the trains never meet.
//
// A Timeline's cursor is not safe for concurrent use; it belongs to one owner.
type Timeline struct {
	params  kinematics.MotionParams
	meeting kinematics.MeetingResult
	meets   bool
	step    float64
	buffer  float64
	n       int
	next    int
}

// NewTimeline validates p and lays out the frames for it.
func NewTimeline(p kinematics.MotionParams, step, buffer float64) (*Timeline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("time step must be positive, got %g", step)
	}
	if !(buffer >= 0) || math.IsInf(buffer, 0) {
		return nil, fmt.Errorf("buffer must not be negative, got %g", buffer)
	}
	tl := &Timeline{params: p, step: step, buffer: buffer}
	tl.meeting, tl.meets = kinematics.SolveMeeting(p)
	if tl.meets {
		// The small epsilon keeps e.g. 6.0/0.1 from flooring to 59.
		tl.n = int(math.Floor((tl.meeting.Time+buffer)/step+1e-9)) + 1
	}
	return tl, nil
}

// Params returns the parameters the timeline was built from.
func (tl *Timeline) Params() kinematics.MotionParams { return tl.params }

// Meeting returns the meeting point, or false when the trains never meet.
func (tl *Timeline) Meeting() (kinematics.MeetingResult, bool) { return tl.meeting, tl.meets }

// Step returns the elapsed hours between consecutive frames.
func (tl *Timeline) Step() float64 { return tl.step }

// Len returns the number of frames.
func (tl *Timeline) Len() int { return tl.n }

// Next returns the frame under the cursor and advances it.
// It returns false once the timeline is exhausted.
func (tl *Timeline) Next() (Frame, bool) {
	if tl.next >= tl.n {
		return Frame{}, false
	}
	f := tl.At(tl.next)
	tl.next++
	return f, true
}

// Remaining returns how many frames Next has yet to yield.
func (tl *Timeline) Remaining() int { return tl.n - tl.next }

// Reset rewinds the cursor to the first frame.
func (tl *Timeline) Reset() { tl.next = 0 }

// At returns frame i. It does not move the cursor.
func (tl *Timeline) At(i int) Frame {
	return tl.Sample(float64(i) * tl.step)
}

// Frames iterates over every frame from the start. Each range restarts from
// the first frame and leaves the cursor untouched.
func (tl *Timeline) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for i := 0; i < tl.n; i++ {
			if !yield(tl.At(i)) {
				return
			}
		}
	}
}

// Sample returns the frame at elapsed hours after B's departure, whether or not
// it falls on the timeline's grid.
func (tl *Timeline) Sample(elapsed float64) Frame {
	elapsed = math.Max(0, elapsed)
	f := Frame{
		Elapsed:   elapsed,
		Positions: kinematics.PositionsAt(tl.params, elapsed),
		Met:       tl.meets && elapsed >= tl.meeting.Time,
	}

	// Train clocks run from A's departure.
	clock := elapsed + tl.params.HeadStart
	meetAt := -1.0
	if tl.meets {
		meetAt = tl.params.HeadStart + tl.meeting.Time
	}
	pair := train.Pair(tl.params)
	f.Trains = make([]train.Log, len(pair))
	for i, tr := range pair {
		st := train.NewSimTrain(tr)
		st.Advance(clock, meetAt)
		f.Trains[i] = st.GetLog()
	}
	return f
}
