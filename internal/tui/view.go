package tui

import (
	"fmt"
	"math"

	"github.com/cxd309/train-motion/internal/controls"
	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/lesson"
)

// SliderView is one slider as drawn.
type SliderView struct {
	Label   string
	Value   float64
	Percent int
	Focused bool
}

// Title returns the header text.
func (a *App) Title() string {
	if a.variant.Title == "" {
		return "Train Motion"
	}
	return a.variant.Title
}

// ScenarioLine renders the two-valued scenario switch.
func (a *App) ScenarioLine() string {
	same, opposite := "( )", "( )"
	if a.panel.Scenario() == kinematics.SameDirection {
		same = "(*)"
	} else {
		opposite = "(*)"
	}
	return fmt.Sprintf("%s Same Direction   %s Opposite Direction", same, opposite)
}

// Sliders returns the three sliders in panel order.
func (a *App) Sliders() []SliderView {
	ids := []controls.Slider{controls.SpeedA, controls.SpeedB, controls.HeadStart}
	out := make([]SliderView, len(ids))
	for i, s := range ids {
		r := a.panel.Range(s)
		v := a.panel.Value(s)
		pct := 100
		if r.Max > r.Min {
			pct = int(math.Round((v - r.Min) / (r.Max - r.Min) * 100))
		}
		out[i] = SliderView{
			Label:   s.String(),
			Value:   v,
			Percent: pct,
			Focused: a.panel.Focus() == s,
		}
	}
	return out
}

// Banner returns the result message and whether it reports a meeting.
func (a *App) Banner() (string, bool) {
	return lesson.Banner(a.meeting, a.meets)
}

// TrackLines renders the track with both markers at the current frame and a
// status line below it.
func (a *App) TrackLines() []string {
	f := a.player.Frame()
	line := a.track.Line(a.track.Place(f.Trains))

	status := fmt.Sprintf("Time: %.1f h", f.Elapsed)
	for _, tr := range f.Trains {
		status += fmt.Sprintf("   Train %s: %.1f mi (%s)", tr.ID, tr.Travelled, tr.State)
	}
	if a.player.Playing() {
		status += "   > playing"
	}
	return []string{line, status}
}

// LessonLines returns the worked solution, preceded by the concept panel when
// it is toggled on.
func (a *App) LessonLines() []string {
	var lines []string
	if a.showLesson {
		lines = append(lines, lesson.Concept()...)
		lines = append(lines, "")
	}
	return append(lines, lesson.Steps(a.panel.Params(), a.meeting, a.meets)...)
}

// Help lists the key bindings.
func (a *App) Help() string {
	return "tab/up/down: slider  left/right: adjust  s: scenario  space: play/pause  r: reset  m: learn the math  q: quit"
}
