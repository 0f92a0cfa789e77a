package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.4-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/fracview/internal/config"
	"github.com/stewi1014/fracview/internal/geometry"
	"github.com/stewi1014/fracview/internal/render"
	"github.com/stewi1014/fracview/internal/shader"
	"github.com/stewi1014/fracview/internal/view"
	"github.com/stewi1014/fracview/programs"
)

// targets holds the GPU objects of both Render Targets so they can be
// released together.
type targets struct {
	programs []*shader.Program
	meshes   []*geometry.Mesh
}

func (t *targets) build(programName string, data geometry.Data) (render.Target, error) {
	source, err := programs.Lookup(programName)
	if err != nil {
		return render.Target{}, err
	}

	program, err := shader.New(source)
	if err != nil {
		return render.Target{}, err
	}
	t.programs = append(t.programs, program)

	mesh := geometry.Upload(data)
	t.meshes = append(t.meshes, mesh)

	render.Logger().Info("render target ready",
		"program", programName,
		"vertices", mesh.Count,
		"primitive", mesh.Primitive.String(),
	)

	return render.Target{Program: program, Mesh: mesh}, nil
}

func (t *targets) Release() {
	for i := len(t.meshes) - 1; i >= 0; i-- {
		t.meshes[i].Delete()
	}
	for i := len(t.programs) - 1; i >= 0; i-- {
		t.programs[i].Delete()
	}
}

// gpuGeometry builds the GPU target's geometry for a framebuffer of the
// given size.
func gpuGeometry(cfg *config.Config, width, height int) geometry.Data {
	if cfg.Render.Geometry == "pixels" {
		return geometry.PixelGrid(width, height)
	}
	return geometry.Quad()
}

// viewerMain runs the window until it is closed, the quit key is pressed
// or ctx is cancelled.
func viewerMain(ctx context.Context, quit context.CancelCauseFunc, cfg *config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	w, err := NewRenderWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer w.Destroy()

	version := gl.GoStr(gl.GetString(gl.VERSION))
	render.Logger().Info("OpenGL context", "version", version)
	if cfg.Window.Debug {
		render.EnableDebugOutput()
	}

	fbWidth, fbHeight := w.GetFramebufferSize()

	var t targets
	defer t.Release()

	gpu, err := t.build(programs.Fractal, gpuGeometry(cfg, fbWidth, fbHeight))
	if err != nil {
		return err
	}
	cpu, err := t.build(programs.Coloured, geometry.ColouredPixels(fbWidth, fbHeight))
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(view.New(cfg.ViewOptions()), gpu, cpu, render.GLDevice{}, w)
	if err != nil {
		return err
	}

	cadence, err := render.ParseCadence(cfg.Render.Cadence)
	if err != nil {
		return err
	}
	pacer := render.NewPacer(cadence, cfg.Render.FrameRate)

	renderer.Resize(fbWidth, fbHeight)

	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		renderer.Resize(width, height)
		pacer.Invalidate()
	})
	w.SetRefreshCallback(func(_ *glfw.Window) {
		pacer.Invalidate()
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}

		redraw, stop := renderer.Handle(ActionForKey(key))
		if stop {
			w.SetShouldClose(true)
			quit(nil)
			return
		}
		if redraw {
			pacer.Invalidate()
		}
	})

	for !w.ShouldClose() && ctx.Err() == nil {
		pacer.Animating = renderer.State.Automate
		if pacer.Due(time.Now()) {
			renderer.Draw()
			pacer.Drawn(time.Now())
		}

		if pacer.Blocking() {
			glfw.WaitEvents()
		} else if pacer.Cadence == render.Continuous || pacer.Animating {
			glfw.WaitEventsTimeout(pacer.Budget.Seconds())
		} else {
			glfw.PollEvents()
		}
	}

	return nil
}
