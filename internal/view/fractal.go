package view

import (
	"fmt"
	"strings"
)

// Fractal selects which escape-time algorithm the fragment stage runs.
// It is either a Mandelbrot with a power class or a Julia set.
type Fractal interface {
	// AlgType is the numeric tag fed to the shader's algType uniform.
	AlgType() float32
	// Next returns the following fractal in the viewer's cycle.
	Next() Fractal
	String() string

	isFractal()
}

type Mandelbrot struct {
	Class int
}

func (m Mandelbrot) AlgType() float32 { return float32(m.Class) }

func (m Mandelbrot) Next() Fractal {
	switch m.Class {
	case 1:
		return Mandelbrot{Class: 2}
	case 2:
		return Julia{}
	default:
		return Mandelbrot{Class: 1}
	}
}

func (m Mandelbrot) String() string { return fmt.Sprintf("mandelbrot%d", m.Class) }

func (Mandelbrot) isFractal() {}

type Julia struct{}

func (Julia) AlgType() float32 { return 3 }
func (Julia) Next() Fractal    { return Mandelbrot{Class: 1} }
func (Julia) String() string   { return "julia" }
func (Julia) isFractal()       {}

// Fractals is the order the fractal-cycle key walks through.
var Fractals = []Fractal{
	Mandelbrot{Class: 1},
	Mandelbrot{Class: 2},
	Julia{},
}

func ParseFractal(s string) (Fractal, error) {
	for _, f := range Fractals {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown fractal %q", s)
}
