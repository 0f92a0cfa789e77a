package programs

import (
	_ "embed"
	"fmt"
)

//go:embed default.vert
var defaultVertexShader string

// Lookup returns the registered program with the given name.
func Lookup(name string) (Program, error) {
	for _, p := range programs {
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("no program named %q", name)
}

func NewProgram(p Program) error {
	if _, err := Lookup(p.Name); err == nil {
		return fmt.Errorf("program %q already registered", p.Name)
	}
	programs = append(programs, p)
	return nil
}

var programs []Program

// Program is a vertex and fragment shader pair, kept as source text until
// a GL context exists to compile it.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}
