package programs

import (
	_ "embed"
)

const (
	// Fractal evaluates the escape-time fractal per fragment.
	Fractal = "fractal"
	// Coloured draws vertices carrying precomputed colours.
	Coloured = "coloured"
)

//go:embed shaders/fractal.frag
var fractalFragment string

//go:embed shaders/coloured.vert
var colouredVertex string

//go:embed shaders/coloured.frag
var colouredFragment string

func init() {
	for _, p := range []Program{
		{
			Name:           Fractal,
			VertexShader:   defaultVertexShader,
			FragmentShader: fractalFragment,
		},
		{
			Name:           Coloured,
			VertexShader:   colouredVertex,
			FragmentShader: colouredFragment,
		},
	} {
		if err := NewProgram(p); err != nil {
			panic(err)
		}
	}
}
