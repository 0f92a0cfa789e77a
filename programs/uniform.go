package programs

import (
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is every value pushed to the active program on each draw.
// The uniform tag names the GLSL uniform a field feeds.
type Uniforms struct {
	MaxIter    int32      `uniform:"maxIter"`
	Zoom       float32    `uniform:"zoom"`
	XOffset    float32    `uniform:"xOffset"`
	YOffset    float32    `uniform:"yOffset"`
	ColorType  int32      `uniform:"colorType"`
	AlgType    float32    `uniform:"algType"`
	Time       float32    `uniform:"time"`
	N          int32      `uniform:"n"`
	Compute    int32      `uniform:"compute"`
	Resolution mgl32.Vec2 `uniform:"resolution"`
}

// Setter receives uniform values by name.
type Setter interface {
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
}

var (
	int32Type = reflect.TypeOf(int32(0))
	floatType = reflect.TypeOf(float32(0))
	vec2Type  = reflect.TypeOf(mgl32.Vec2{})
)

// Apply sets every tagged field of u on s, unconditionally.
func (u *Uniforms) Apply(s Setter) error {
	v := reflect.ValueOf(u).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		if name == "" {
			continue
		}

		f := v.Field(i)
		switch f.Type() {
		case int32Type:
			s.SetInt(name, int32(f.Int()))
		case floatType:
			s.SetFloat(name, float32(f.Float()))
		case vec2Type:
			s.SetVec2(name, f.Interface().(mgl32.Vec2))
		default:
			return fmt.Errorf("unsupported uniform type %v for %q", f.Type(), name)
		}
	}
	return nil
}

// Names lists the uniform names Apply sets, in field order.
func (u *Uniforms) Names() []string {
	t := reflect.TypeOf(u).Elem()
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := t.Field(i).Tag.Get("uniform"); name != "" {
			names = append(names, name)
		}
	}
	return names
}
