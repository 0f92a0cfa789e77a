package geometry

import (
	"github.com/go-gl/gl/v4.4-core/gl"
)

const floatSize = 4

// Mesh is vertex data resident on the GPU. It is not modified after Upload.
type Mesh struct {
	VAO       uint32
	VBO       uint32
	Count     int32
	Primitive Primitive
}

// Upload copies d into a new buffer and records its attribute layout in a
// new vertex array. A GL context must be current.
func Upload(d Data) *Mesh {
	m := &Mesh{
		Count:     d.Count(),
		Primitive: d.Layout.Primitive,
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	if len(d.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*floatSize, gl.Ptr(d.Vertices), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	stride := d.Layout.Stride * floatSize
	for _, a := range d.Layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, stride, uintptr(a.Offset*floatSize))
		gl.EnableVertexAttribArray(a.Index)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Mode is the GL draw mode for the mesh's primitive.
func (m *Mesh) Mode() uint32 {
	if m.Primitive == Points {
		return gl.POINTS
	}
	return gl.TRIANGLES
}

func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
	m.VAO, m.VBO, m.Count = 0, 0, 0
}
