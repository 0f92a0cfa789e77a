// Package render drives frames: it owns the View State, applies key
// actions to it and pushes it to the active Render Target on every draw.
package render

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/fracview/internal/geometry"
	"github.com/stewi1014/fracview/internal/view"
	"github.com/stewi1014/fracview/programs"
)

// frozenTime is fed to the time uniform while automation is off.
const frozenTime = 1.0

// Program is a compiled shader program.
type Program interface {
	programs.Setter
	Use()
}

// Device executes GPU commands.
type Device interface {
	Clear()
	Viewport(width, height int32)
	Draw(mesh *geometry.Mesh)
}

// Presenter shows the finished frame.
type Presenter interface {
	SwapBuffers()
}

// Target is a Render Target: a mesh and the program that draws it.
type Target struct {
	Program Program
	Mesh    *geometry.Mesh
}

type Renderer struct {
	State *view.State

	targets   [2]Target
	device    Device
	presenter Presenter

	resolution mgl32.Vec2
	start      time.Time
	now        func() time.Time
}

// NewRenderer returns a Renderer drawing gpu or cpu depending on the
// state's compute mode.
func NewRenderer(state *view.State, gpu, cpu Target, device Device, presenter Presenter) (*Renderer, error) {
	for mode, t := range map[view.ComputeMode]Target{view.GPU: gpu, view.CPU: cpu} {
		if t.Program == nil || t.Mesh == nil {
			return nil, fmt.Errorf("%v render target is incomplete", mode)
		}
	}

	r := &Renderer{
		State:     state,
		device:    device,
		presenter: presenter,
		now:       time.Now,
	}
	r.targets[view.GPU] = gpu
	r.targets[view.CPU] = cpu
	r.start = r.now()

	return r, nil
}

// Active is the target selected by the compute mode.
func (r *Renderer) Active() Target {
	return r.targets[r.State.Compute]
}

// Handle applies a to the View State. It reports whether a redraw is
// needed, and quit for the quit action.
func (r *Renderer) Handle(a view.Action) (redraw, quit bool) {
	if a == view.Quit {
		return false, true
	}

	redraw = r.State.Apply(a)
	if redraw {
		Logger().Debug("action", "action", a.String(), "zoom", r.State.Zoom, "offset", r.State.Offset,
			"precision", r.State.Precision, "color", r.State.Color, "fractal", r.State.Fractal.String(),
			"automate", r.State.Automate, "compute", r.State.Compute.String(), "n", r.State.Power)
	}
	return redraw, false
}

func (r *Renderer) Resize(width, height int) {
	r.resolution = mgl32.Vec2{float32(width), float32(height)}
	r.device.Viewport(int32(width), int32(height))
}

// Elapsed is the time since the renderer was created.
func (r *Renderer) Elapsed() time.Duration {
	return r.now().Sub(r.start)
}

// Uniforms snapshots the View State as shader uniforms.
func (r *Renderer) Uniforms() programs.Uniforms {
	s := r.State

	t := float32(frozenTime)
	if s.Automate {
		t = float32(r.Elapsed().Seconds())
	}

	return programs.Uniforms{
		MaxIter:    s.Precision,
		Zoom:       float32(s.Zoom),
		XOffset:    float32(s.Offset.X()),
		YOffset:    float32(s.Offset.Y()),
		ColorType:  s.Color,
		AlgType:    s.Fractal.AlgType(),
		Time:       t,
		N:          s.Power,
		Compute:    int32(s.Compute),
		Resolution: r.resolution,
	}
}

// Draw renders one frame with the active target and presents it.
func (r *Renderer) Draw() {
	target := r.Active()
	uniforms := r.Uniforms()

	target.Program.Use()
	if err := uniforms.Apply(target.Program); err != nil {
		Logger().Warn("setting uniforms", "err", err)
	}

	r.device.Clear()
	r.device.Draw(target.Mesh)
	r.presenter.SwapBuffers()
}
