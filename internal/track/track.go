// Package track lays the two trains' straight track out in render columns.
package track

import (
	"fmt"
	"math"
	"strings"

	"github.com/cxd309/train-motion/internal/kinematics"
	"github.com/cxd309/train-motion/internal/train"
)

const (
	// MinLength is the shortest track drawn, in miles.
	MinLength = 300.0
	// Headroom stretches the track past the meeting point so the trains
	// visibly carry on after they meet.
	Headroom = 1.3
)

// StationID identifies a station on the track.
type StationID = string

// Station is a named mile marker.
type Station struct {
	ID   StationID `json:"station_id"`
	Name string    `json:"name"`
	Mile float64   `json:"mile"`
}

// Track is a straight line of Length miles drawn across Width columns.
// Markers are Marker columns wide and never overhang the right edge.
type Track struct {
	Stations []Station
	Length   float64 // miles
	Width    int     // columns
	Marker   int     // columns
}

// Placement is a train's marker column.
type Placement struct {
	ID     train.ID
	Column int
}

// New builds the track for p. meeting may be nil when the trains never meet.
func New(p kinematics.MotionParams, meeting *kinematics.MeetingResult, width, marker int) (*Track, error) {
	if marker < 1 {
		return nil, fmt.Errorf("marker width must be positive, got %d", marker)
	}
	if width <= marker {
		return nil, fmt.Errorf("track width %d does not fit a %d column marker", width, marker)
	}

	t := &Track{
		Stations: []Station{{ID: "origin", Name: "Station A", Mile: 0}},
		Length:   MinLength,
		Width:    width,
		Marker:   marker,
	}
	if meeting != nil {
		t.Length = math.Max(t.Length, meeting.Distance*Headroom)
	}
	if b := train.Pair(p)[1]; b.Origin > 0 {
		t.Stations = append(t.Stations, Station{ID: "far", Name: "Station B", Mile: b.Origin})
		t.Length = math.Max(t.Length, b.Origin)
	}
	return t, nil
}

// Column maps a mile marker to the left edge of a marker drawn there.
func (t *Track) Column(mile float64) int {
	x := mile / t.Length * float64(t.Width)
	x = math.Max(0, math.Min(x, float64(t.Width-t.Marker)))
	return int(math.Round(x))
}

// Place returns the column of every train in logs.
func (t *Track) Place(logs []train.Log) []Placement {
	out := make([]Placement, len(logs))
	for i, l := range logs {
		out[i] = Placement{ID: l.ID, Column: t.Column(l.Position)}
	}
	return out
}

// Line draws the track as a single row of Width runes: rails, station posts,
// and each train's ID at its column. Later placements overwrite earlier ones.
func (t *Track) Line(placements []Placement) string {
	row := []rune(strings.Repeat("=", t.Width))
	for _, s := range t.Stations {
		row[t.Column(s.Mile)] = '|'
	}
	for _, p := range placements {
		id := []rune(p.ID)
		for i := 0; i < t.Marker && p.Column+i < t.Width; i++ {
			row[p.Column+i] = id[i%len(id)]
		}
	}
	return string(row)
}
