// Package tui is the terminal host for the calculator: a scenario switch,
// three sliders, the result banner, the animated track, and the lesson panel.
//
// All state lives on the event loop's goroutine. Every input change re-solves
// the meeting and swaps in a fresh timeline; playback is driven by an
// animation.Player whose ticker the loop owns.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cxd309/train-motion/internal/animation"
	"github.com/cxd309/train-motion/internal/config"
	"github.com/cxd309/train-motion/internal/controls"
	"github.com/cxd309/train-motion/internal/engine"
	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/logging"
	"github.com/cxd309/train-motion/internal/track"
)

const (
	defaultTrackWidth = 60
	markerWidth       = 1
)

// App is the widget state.
type App struct {
	variant config.Variant
	panel   *controls.Panel
	player  *animation.Player
	track   *track.Track
	logger  *slog.Logger
	frames  *logging.FrameLogger

	meeting    kinematics.MeetingResult
	meets      bool
	trackWidth int
	showLesson bool
}

// New builds an App over panel. frames may be nil.
func New(v config.Variant, panel *controls.Panel, logger *slog.Logger, frames *logging.FrameLogger) (*App, error) {
	a := &App{
		variant:    v,
		panel:      panel,
		logger:     logger,
		frames:     frames,
		trackWidth: defaultTrackWidth,
	}
	if err := a.recompute(); err != nil {
		return nil, err
	}
	return a, nil
}

// recompute handles a change event: re-solve, rebuild the timeline and track,
// and rewind playback.
func (a *App) recompute() error {
	p := a.panel.Params()
	tl, err := engine.NewTimeline(p, a.variant.TimeStep, a.variant.Buffer)
	if err != nil {
		return fmt.Errorf("building timeline: %w", err)
	}
	a.meeting, a.meets = tl.Meeting()

	var m *kinematics.MeetingResult
	if a.meets {
		m = &a.meeting
	}
	a.track, err = track.New(p, m, a.trackWidth, markerWidth)
	if err != nil {
		return fmt.Errorf("laying out track: %w", err)
	}

	if a.player == nil {
		a.player, err = animation.New(tl, a.variant.FrameInterval)
		if err != nil {
			return err
		}
	} else {
		a.player.SetTimeline(tl)
	}

	a.logger.Debug("parameters changed",
		"scenario", p.Scenario, "speed_a", p.SpeedA, "speed_b", p.SpeedB,
		"head_start", p.HeadStart, "meets", a.meets, "meeting_time", a.meeting.Time)
	return nil
}

// Resize fits the track to width columns.
func (a *App) Resize(width int) error {
	w := width - 4
	if w <= markerWidth+1 || w == a.trackWidth {
		return nil
	}
	a.trackWidth = w
	return a.recompute()
}

// HandleKey applies one key press and reports whether the app should quit.
func (a *App) HandleKey(id string) (quit bool, err error) {
	switch id {
	case "q", "<C-c>":
		a.player.Stop()
		return true, nil
	case "<Tab>", "<Down>", "j":
		a.panel.FocusNext()
	case "<Up>", "k":
		a.panel.FocusPrev()
	case "<Right>", "l", "+":
		a.panel.Inc()
		return false, a.recompute()
	case "<Left>", "h", "-":
		a.panel.Dec()
		return false, a.recompute()
	case "s":
		a.panel.ToggleScenario()
		return false, a.recompute()
	case "<Space>", "p":
		a.TogglePlay()
	case "r":
		a.player.Reset()
	case "m":
		a.showLesson = !a.showLesson
	}
	return false, nil
}

// TogglePlay starts or pauses the animation.
func (a *App) TogglePlay() {
	if a.player.Playing() {
		a.player.Stop()
		return
	}
	if !a.player.Start() {
		a.logger.Info("nothing to animate", "reason", "trains never meet")
	}
}

// Tick plays the next frame. It is called when the player's ticker fires.
func (a *App) Tick() {
	f, ok := a.player.Tick()
	if !ok {
		return
	}
	a.frames.Log(f)
	logging.TraceFrame(context.Background(), a.logger, f)
}
