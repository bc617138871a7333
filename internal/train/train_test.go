package train

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cxd309/train-motion/internal/kinematics"
)

func TestPairOpposite(t *testing.T) {
	p := kinematics.MotionParams{SpeedA: 40, SpeedB: 60, HeadStart: 2, Scenario: kinematics.OppositeDirection}
	got := Pair(p)
	want := [2]Train{
		{ID: A, Label: "Train A", Speed: 40, Heading: Outbound},
		{ID: B, Label: "Train B", Speed: 60, Heading: Inbound, Origin: 160, DepartureDelay: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pair mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceMeetsAtSamePosition(t *testing.T) {
	for _, kind := range []kinematics.ScenarioKind{kinematics.SameDirection, kinematics.OppositeDirection} {
		t.Run(string(kind), func(t *testing.T) {
			p := kinematics.MotionParams{SpeedA: 40, SpeedB: 60, HeadStart: 2, Scenario: kind}
			r, ok := kinematics.SolveMeeting(p)
			if !ok {
				t.Fatal("expected a meeting")
			}
			pair := Pair(p)
			a, b := NewSimTrain(pair[0]), NewSimTrain(pair[1])
			meetAt := p.HeadStart + r.Time
			a.Advance(meetAt, meetAt)
			b.Advance(meetAt, meetAt)

			approx := cmpopts.EquateApprox(0, 1e-9)
			if !cmp.Equal(a.Position, b.Position, approx) {
				t.Errorf("A at %v, B at %v at the meeting", a.Position, b.Position)
			}
			if !cmp.Equal(a.Position, r.Distance, approx) {
				t.Errorf("meeting at %v, want %v", a.Position, r.Distance)
			}
			if a.State != StateMet || b.State != StateMet {
				t.Errorf("states %q/%q, want met", a.State, b.State)
			}
		})
	}
}

func TestAdvanceStates(t *testing.T) {
	p := kinematics.MotionParams{SpeedA: 40, SpeedB: 60, HeadStart: 2, Scenario: kinematics.SameDirection}
	b := NewSimTrain(Pair(p)[1])

	tests := []struct {
		clock float64
		want  Log
	}{
		{1, Log{ID: B, State: StateWaiting, Position: 0, Travelled: 0}},
		{3, Log{ID: B, State: StateRunning, Position: 60, Travelled: 60}},
		{7, Log{ID: B, State: StateMet, Position: 300, Travelled: 300}},
	}
	for _, tt := range tests {
		b.Advance(tt.clock, 6)
		if diff := cmp.Diff(tt.want, b.GetLog()); diff != "" {
			t.Errorf("clock %v (-want +got):\n%s", tt.clock, diff)
		}
	}
}

func TestAdvanceNeverMeets(t *testing.T) {
	p := kinematics.MotionParams{SpeedA: 40, SpeedB: 30, HeadStart: 1, Scenario: kinematics.SameDirection}
	b := NewSimTrain(Pair(p)[1])
	b.Advance(100, -1)
	if b.State != StateRunning {
		t.Errorf("state %q, want running", b.State)
	}
}
