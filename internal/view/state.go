// Package view holds the viewer-controlled rendering parameters and the
// bounded transitions key presses apply to them.
//
// Every transition is self-clamping: pressing a key at a bound leaves the
// state untouched, so no input needs validating.
package view

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Colors is the number of colour schemes the fragment stage knows.
const Colors = 6

// MaxPower bounds the power parameter n from above.
const MaxPower = 32

// MinPower is the smallest power the generalised power shaders accept.
const MinPower = 3

type ComputeMode int

const (
	GPU ComputeMode = iota
	CPU
)

func (m ComputeMode) Toggle() ComputeMode {
	if m == GPU {
		return CPU
	}
	return GPU
}

func (m ComputeMode) String() string {
	if m == CPU {
		return "cpu"
	}
	return "gpu"
}

func ParseComputeMode(s string) (ComputeMode, error) {
	switch s {
	case "gpu", "GPU":
		return GPU, nil
	case "cpu", "CPU":
		return CPU, nil
	}
	return GPU, fmt.Errorf("unknown compute mode %q", s)
}

// PanScaling decides how the pan step shrinks as zoom grows.
type PanScaling int

const (
	// Inverse pans by step/zoom.
	Inverse PanScaling = iota
	// InverseSquare pans by step/zoom².
	InverseSquare
)

func (p PanScaling) String() string {
	if p == InverseSquare {
		return "inverse_square"
	}
	return "inverse"
}

func ParsePanScaling(s string) (PanScaling, error) {
	switch s {
	case "inverse":
		return Inverse, nil
	case "inverse_square":
		return InverseSquare, nil
	}
	return Inverse, fmt.Errorf("unknown pan scaling %q", s)
}

// Options are the startup values and bounds of a State.
type Options struct {
	Precision     int32
	PrecisionMin  int32
	PrecisionMax  int32
	PrecisionStep int32

	ZoomOutDivisor float64
	PanStep        float64
	PanScaling     PanScaling

	Fractal  Fractal
	Color    int32
	Automate bool
	Power    int32
	Compute  ComputeMode
}

func DefaultOptions() Options {
	return Options{
		Precision:      50,
		PrecisionMin:   20,
		PrecisionMax:   5000,
		PrecisionStep:  10,
		ZoomOutDivisor: 3,
		PanStep:        1,
		PanScaling:     Inverse,
		Fractal:        Mandelbrot{Class: 2},
		Color:          1,
		Automate:       true,
		Power:          MinPower,
		Compute:        GPU,
	}
}

// State is the View State. It is owned by a single goroutine, the one
// running the event loop.
type State struct {
	Zoom      float64
	Offset    mgl64.Vec2
	Precision int32
	Color     int32
	Fractal   Fractal
	Automate  bool
	Compute   ComputeMode
	Power     int32

	opts Options
}

func New(opts Options) *State {
	s := &State{opts: opts}
	s.Reset()
	return s
}

func (s *State) Options() Options {
	return s.opts
}

// Reset restores the startup values.
func (s *State) Reset() {
	s.Zoom = 1
	s.Offset = mgl64.Vec2{}
	s.Precision = s.opts.Precision
	s.Color = s.opts.Color
	s.Fractal = s.opts.Fractal
	if s.Fractal == nil {
		s.Fractal = Mandelbrot{Class: 2}
	}
	s.Automate = s.opts.Automate
	s.Compute = s.opts.Compute
	s.Power = s.opts.Power
}

// Apply performs the transition bound to a, reporting whether anything changed.
func (s *State) Apply(a Action) bool {
	switch a {
	case ZoomIn:
		return s.ZoomIn()
	case ZoomOut:
		return s.ZoomOut()
	case PanLeft:
		return s.Pan(-1, 0)
	case PanRight:
		return s.Pan(1, 0)
	case PanUp:
		return s.Pan(0, 1)
	case PanDown:
		return s.Pan(0, -1)
	case PrecisionUp:
		return s.IncreasePrecision()
	case PrecisionDown:
		return s.DecreasePrecision()
	case NextColor:
		s.NextColor()
		return true
	case NextFractal:
		s.NextFractal()
		return true
	case ToggleAutomation:
		s.Automate = !s.Automate
		return true
	case ToggleCompute:
		s.Compute = s.Compute.Toggle()
		return true
	case PowerUp:
		return s.IncreasePower()
	case PowerDown:
		return s.DecreasePower()
	case Reset:
		before := *s
		s.Reset()
		return before != *s
	}
	return false
}

func (s *State) ZoomIn() bool {
	next := s.Zoom * 2
	if math.IsInf(next, 1) {
		return false
	}
	s.Zoom = next
	return true
}

// ZoomOut shrinks zoom by a fraction of itself, never going below 1.
func (s *State) ZoomOut() bool {
	if s.Zoom <= 1 {
		return false
	}
	s.Zoom -= s.Zoom / s.opts.ZoomOutDivisor
	if s.Zoom < 1 {
		s.Zoom = 1
	}
	return true
}

// PanStep is the distance a single pan key press moves the offset.
func (s *State) PanStep() float64 {
	if s.opts.PanScaling == InverseSquare {
		return s.opts.PanStep / (s.Zoom * s.Zoom)
	}
	return s.opts.PanStep / s.Zoom
}

// Pan moves the offset by (dx, dy) pan steps.
func (s *State) Pan(dx, dy float64) bool {
	step := s.PanStep()
	if step == 0 || (dx == 0 && dy == 0) {
		return false
	}
	s.Offset = s.Offset.Add(mgl64.Vec2{dx, dy}.Mul(step))
	return true
}

func (s *State) IncreasePrecision() bool {
	if s.Precision >= s.opts.PrecisionMax {
		return false
	}
	s.Precision = min(s.Precision+s.opts.PrecisionStep, s.opts.PrecisionMax)
	return true
}

func (s *State) DecreasePrecision() bool {
	if s.Precision <= s.opts.PrecisionMin {
		return false
	}
	s.Precision = max(s.Precision-s.opts.PrecisionStep, s.opts.PrecisionMin)
	return true
}

// NextColor wraps 6 back to 1.
func (s *State) NextColor() {
	s.Color = s.Color%Colors + 1
}

func (s *State) NextFractal() {
	s.Fractal = s.Fractal.Next()
}

func (s *State) IncreasePower() bool {
	if s.Power >= MaxPower {
		return false
	}
	s.Power++
	return true
}

func (s *State) DecreasePower() bool {
	if s.Power <= MinPower {
		return false
	}
	s.Power--
	return true
}
