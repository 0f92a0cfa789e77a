package render

import (
	"fmt"
	"time"
)

// Cadence decides when frames are drawn.
type Cadence int

const (
	// Demand draws only after something changed.
	Demand Cadence = iota
	// Continuous draws whenever the frame budget has elapsed.
	Continuous
)

func (c Cadence) String() string {
	if c == Continuous {
		return "continuous"
	}
	return "demand"
}

func ParseCadence(s string) (Cadence, error) {
	switch s {
	case "demand":
		return Demand, nil
	case "continuous":
		return Continuous, nil
	}
	return Demand, fmt.Errorf("unknown cadence %q", s)
}

// Pacer tracks whether the next event-loop iteration should draw.
type Pacer struct {
	Cadence Cadence
	Budget  time.Duration
	// Animating keeps a demand pacer producing frames at the budget while
	// the time uniform is live.
	Animating bool

	dirty bool
	last  time.Time
}

// NewPacer returns a pacer with a pending first frame.
func NewPacer(cadence Cadence, frameRate int) *Pacer {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &Pacer{
		Cadence: cadence,
		Budget:  time.Second / time.Duration(frameRate),
		dirty:   true,
	}
}

// Invalidate requests a redraw.
func (p *Pacer) Invalidate() {
	p.dirty = true
}

// Due reports whether a frame should be drawn at now.
func (p *Pacer) Due(now time.Time) bool {
	if p.dirty {
		return true
	}
	if p.Cadence == Continuous || p.Animating {
		return p.last.IsZero() || now.Sub(p.last) > p.Budget
	}
	return false
}

// Drawn records that a frame was drawn at now.
func (p *Pacer) Drawn(now time.Time) {
	p.dirty = false
	p.last = now
}

// Blocking reports whether the event loop may sleep until the next event.
func (p *Pacer) Blocking() bool {
	return p.Cadence == Demand && !p.Animating && !p.dirty
}
