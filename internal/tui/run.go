package tui

import (
	"context"
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

type screen struct {
	header   *widgets.Paragraph
	scenario *widgets.Paragraph
	sliders  []*widgets.Gauge
	banner   *widgets.Paragraph
	track    *widgets.Paragraph
	lesson   *widgets.Paragraph
	help     *widgets.Paragraph
	grid     *ui.Grid
}

func newScreen() *screen {
	s := &screen{
		header:   widgets.NewParagraph(),
		scenario: widgets.NewParagraph(),
		banner:   widgets.NewParagraph(),
		track:    widgets.NewParagraph(),
		lesson:   widgets.NewParagraph(),
		help:     widgets.NewParagraph(),
		grid:     ui.NewGrid(),
	}
	for i := 0; i < 3; i++ {
		g := widgets.NewGauge()
		g.BarColor = ui.ColorBlue
		s.sliders = append(s.sliders, g)
	}
	s.scenario.Title = "Scenario"
	s.track.Title = "Track"
	s.lesson.Title = "Learn the Math"
	s.help.Border = false

	s.grid.Set(
		ui.NewRow(1.0/12, s.header),
		ui.NewRow(1.0/12, s.scenario),
		ui.NewRow(1.0/12,
			ui.NewCol(1.0/3, s.sliders[0]),
			ui.NewCol(1.0/3, s.sliders[1]),
			ui.NewCol(1.0/3, s.sliders[2]),
		),
		ui.NewRow(1.0/12, s.banner),
		ui.NewRow(2.0/12, s.track),
		ui.NewRow(5.0/12, s.lesson),
		ui.NewRow(1.0/12, s.help),
	)
	return s
}

func (s *screen) resize(w, h int) {
	s.grid.SetRect(0, 0, w, h)
}

func (s *screen) draw(a *App) {
	s.header.Text = a.Title()
	s.scenario.Text = a.ScenarioLine()

	for i, sv := range a.Sliders() {
		g := s.sliders[i]
		g.Title = sv.Label
		g.Percent = sv.Percent
		g.Label = fmt.Sprintf("%g", sv.Value)
		g.BorderStyle = ui.NewStyle(ui.ColorWhite)
		if sv.Focused {
			g.BorderStyle = ui.NewStyle(ui.ColorYellow)
		}
	}

	msg, ok := a.Banner()
	s.banner.Text = msg
	s.banner.TextStyle = ui.NewStyle(ui.ColorRed)
	if ok {
		s.banner.TextStyle = ui.NewStyle(ui.ColorGreen)
	}

	s.track.Text = strings.Join(a.TrackLines(), "\n")
	s.lesson.Text = strings.Join(a.LessonLines(), "\n")
	s.help.Text = a.Help()

	ui.Render(s.grid)
}

// Run takes over the terminal until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("termui init: %w", err)
	}
	defer ui.Close()
	defer a.player.Stop()

	s := newScreen()
	w, h := ui.TerminalDimensions()
	s.resize(w, h)
	if err := a.Resize(w); err != nil {
		return err
	}
	s.draw(a)

	events := ui.PollEvents()
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-events:
			switch e.Type {
			case ui.ResizeEvent:
				r := e.Payload.(ui.Resize)
				s.resize(r.Width, r.Height)
				if err := a.Resize(r.Width); err != nil {
					return err
				}
				ui.Clear()
			case ui.KeyboardEvent:
				quit, err := a.HandleKey(e.ID)
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			}
			s.draw(a)
		case <-a.player.C():
			a.Tick()
			s.draw(a)
		}
	}
}
