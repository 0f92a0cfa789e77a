// Package geometry builds the vertex data drawn by the viewer and uploads it
// to the GPU.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Primitive int

const (
	Triangles Primitive = iota
	Points
)

func (p Primitive) String() string {
	if p == Points {
		return "points"
	}
	return "triangles"
}

// Attribute is one vertex attribute slot. Size and Offset count floats.
type Attribute struct {
	Index  uint32
	Size   int32
	Offset int
}

// Layout describes how vertices are packed in the buffer.
type Layout struct {
	// Stride is the number of floats per vertex.
	Stride     int32
	Attributes []Attribute
	Primitive  Primitive
}

var (
	positionLayout = Layout{
		Stride:     2,
		Attributes: []Attribute{{Index: 0, Size: 2}},
		Primitive:  Triangles,
	}

	colouredLayout = Layout{
		Stride: 5,
		Attributes: []Attribute{
			{Index: 0, Size: 2},
			{Index: 1, Size: 3, Offset: 2},
		},
		Primitive: Points,
	}
)

// Data is vertex data ready for upload.
type Data struct {
	Vertices []float32
	Layout   Layout
}

// Count is the number of whole vertices in d.
func (d Data) Count() int32 {
	if d.Layout.Stride == 0 {
		return 0
	}
	return int32(len(d.Vertices)) / d.Layout.Stride
}

// Quad covers clip space with two triangles.
func Quad() Data {
	corners := []mgl32.Vec2{
		{-1, 1}, {1, -1}, {-1, -1},
		{1, 1}, {1, -1}, {-1, 1},
	}

	vertices := make([]float32, 0, len(corners)*2)
	for _, c := range corners {
		vertices = append(vertices, c.X(), c.Y())
	}

	return Data{
		Vertices: vertices,
		Layout:   positionLayout,
	}
}

// PixelToClip maps a pixel coordinate to clip space.
func PixelToClip(x, y, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(x)/(float32(width)/2) - 1,
		float32(y)/(float32(height)/2) - 1,
	}
}

// PixelGrid emits one point per output pixel, rows outermost.
func PixelGrid(width, height int) Data {
	layout := positionLayout
	layout.Primitive = Points

	if width <= 0 || height <= 0 {
		return Data{Layout: layout}
	}

	vertices := make([]float32, 0, width*height*2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := PixelToClip(x, y, width, height)
			vertices = append(vertices, p.X(), p.Y())
		}
	}

	return Data{
		Vertices: vertices,
		Layout:   layout,
	}
}

// ColouredPixels would emit a position and precomputed RGB colour per
// pixel, for fractals evaluated on the CPU. There is no CPU evaluator, so
// it returns no vertices and a draw with it renders nothing.
func ColouredPixels(width, height int) Data {
	return Data{Layout: colouredLayout}
}
