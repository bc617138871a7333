package lesson

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cxd309/train-motion/internal/kinematics"
)

func TestBanner(t *testing.T) {
	r, ok := kinematics.SolveMeeting(kinematics.MotionParams{SpeedA: 40, SpeedB: 60, HeadStart: 2, Scenario: kinematics.SameDirection})
	msg, success := Banner(r, ok)
	if !success || msg != "Trains will meet after 4.00 hours." {
		t.Errorf("Banner = (%q, %t)", msg, success)
	}

	msg, success = Banner(kinematics.MeetingResult{}, false)
	if success || msg != NeverMeet {
		t.Errorf("Banner = (%q, %t), want the never-meet message", msg, success)
	}
}

func TestStepsSameDirection(t *testing.T) {
	p := kinematics.MotionParams{SpeedA: 40, SpeedB: 60, HeadStart: 2, Scenario: kinematics.SameDirection}
	r, ok := kinematics.SolveMeeting(p)
	want := []string{
		"Let t = hours Train B travels; Train A travels t + 2.",
		"Train A: 40(t + 2)   Train B: 60t",
		"Set equal: 40(t + 2) = 60t -> 80 = 20t",
		"t = 80 / 20 = 4.00 hours",
		"Both trains are 240.0 miles from the station.",
	}
	if diff := cmp.Diff(want, Steps(p, r, ok)); diff != "" {
		t.Errorf("Steps mismatch (-want +got):\n%s", diff)
	}
}

func TestStepsOppositeDirection(t *testing.T) {
	p := kinematics.MotionParams{SpeedA: 40, SpeedB: 60, HeadStart: 2, Scenario: kinematics.OppositeDirection}
	r, ok := kinematics.SolveMeeting(p)
	got := Steps(p, r, ok)
	if len(got) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(got), got)
	}
	if got[1] != "Combined speed: 40 + 60 = 100 mph" {
		t.Errorf("combined speed line = %q", got[1])
	}
	if got[2] != "t = 80 / 100 = 0.80 hours" {
		t.Errorf("time line = %q", got[2])
	}
}

func TestStepsNeverMeet(t *testing.T) {
	p := kinematics.MotionParams{SpeedA: 40, SpeedB: 30, HeadStart: 1, Scenario: kinematics.SameDirection}
	r, ok := kinematics.SolveMeeting(p)
	got := Steps(p, r, ok)
	if last := got[len(got)-1]; !strings.Contains(last, "never closes") {
		t.Errorf("last line = %q, want the gap to never close", last)
	}
}

func TestConceptMentionsBothFormulas(t *testing.T) {
	text := strings.Join(Concept(), "\n")
	for _, f := range []string{"t = (r1 * h) / (r2 - r1)", "t = d / (r1 + r2)"} {
		if !strings.Contains(text, f) {
			t.Errorf("concept panel is missing %q", f)
		}
	}
}
