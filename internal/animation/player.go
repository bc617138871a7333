// Package animation drives a Timeline in wall-clock time.
//
// A Player is an owned handle around a time.Ticker. Its owner selects on C()
// alongside its other events and calls Tick when it fires, so every frame is
// sampled and rendered on the owner's goroutine. Stop releases the ticker;
// once it returns C() is nil and Tick yields nothing, so no stale tick can
// reach the renderer after a stop or reset.
package animation

import (
	"context"
	"fmt"
	"time"

	"github.com/cxd309/train-motion/internal/engine"
)

// DefaultInterval is the wall-clock time between frames.
const DefaultInterval = 100 * time.Millisecond

// Player plays a Timeline one frame per tick. It is not safe for concurrent use.
type Player struct {
	timeline *engine.Timeline
	interval time.Duration
	ticker   *time.Ticker
	frame    engine.Frame
}

// New returns a stopped Player showing tl's first frame.
func New(tl *engine.Timeline, interval time.Duration) (*Player, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %s", interval)
	}
	p := &Player{interval: interval}
	p.SetTimeline(tl)
	return p, nil
}

// SetTimeline stops playback and rewinds onto tl.
func (p *Player) SetTimeline(tl *engine.Timeline) {
	p.timeline = tl
	p.Reset()
}

// Timeline returns the timeline being played.
func (p *Player) Timeline() *engine.Timeline { return p.timeline }

// Playing reports whether the ticker is running.
func (p *Player) Playing() bool { return p.ticker != nil }

// Frame returns the most recently played frame.
func (p *Player) Frame() engine.Frame { return p.frame }

// Start begins or resumes playback. A finished timeline restarts from the top.
// It returns false, without starting, when the timeline has no frames.
func (p *Player) Start() bool {
	if p.ticker != nil {
		return true
	}
	if p.timeline.Len() == 0 {
		return false
	}
	if p.timeline.Remaining() == 0 {
		p.timeline.Reset()
	}
	p.ticker = time.NewTicker(p.interval)
	return true
}

// C delivers ticks while playing. It is nil when stopped, so a select on it
// never fires.
func (p *Player) C() <-chan time.Time {
	if p.ticker == nil {
		return nil
	}
	return p.ticker.C
}

// Tick advances one frame. It returns false when stopped. The ticker is
// released as soon as the last frame has been played.
func (p *Player) Tick() (engine.Frame, bool) {
	if p.ticker == nil {
		return p.frame, false
	}
	f, ok := p.timeline.Next()
	if !ok {
		p.Stop()
		return p.frame, false
	}
	p.frame = f
	if p.timeline.Remaining() == 0 {
		p.Stop()
	}
	return f, true
}

// Stop pauses playback and releases the ticker. It is safe to call repeatedly.
func (p *Player) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
}

// Reset stops playback and rewinds to the first frame.
func (p *Player) Reset() {
	p.Stop()
	p.timeline.Reset()
	p.frame = p.timeline.Sample(0)
}

// Run plays the timeline to the end, calling onFrame for each frame on the
// calling goroutine. It returns ctx.Err() if ctx ends first. The ticker is
// released on every return path.
func (p *Player) Run(ctx context.Context, onFrame func(engine.Frame)) error {
	if !p.Start() {
		return nil
	}
	defer p.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.C():
			f, ok := p.Tick()
			if !ok {
				return nil
			}
			onFrame(f)
			if !p.Playing() {
				return nil
			}
		}
	}
}
