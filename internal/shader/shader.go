// Package shader compiles GLSL programs and sets their uniforms by name.
package shader

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.4-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/fracview/programs"
)

var _ programs.Setter = (*Program)(nil)

// Program is a linked GL program. Uniform locations are looked up once per
// name and cached; names the program does not use resolve to -1, which GL
// silently ignores.
type Program struct {
	Name string

	id        uint32
	locations map[string]int32
}

// New compiles and links program. A GL context must be current.
func New(program programs.Program) (*Program, error) {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: vertex stage: %w", program.Name, err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: fragment stage: %w", program.Name, err)
	}
	defer gl.DeleteShader(fragmentShader)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.BindFragDataLocation(id, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(id, l, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program %s: %v", program.Name, log)
	}

	return &Program{
		Name:      program.Name,
		id:        id,
		locations: make(map[string]int32),
	}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2fv(p.location(name), 1, &value[0])
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %v", log)
	}

	return shader, nil
}
