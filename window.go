package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.4-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/fracview/internal/config"
	"github.com/stewi1014/fracview/internal/render"
)

// NewRenderWindow creates the window, makes its context current and loads
// the GL functions. glfw must be initialised.
func NewRenderWindow(cfg config.WindowConfig) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(
		cfg.Width,
		cfg.Height,
		cfg.Title,
		nil,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
}

// SwapBuffers presents the back buffer. A failed swap is logged and the
// frame dropped.
func (w *RenderWindow) SwapBuffers() {
	defer func() {
		if v := recover(); v != nil {
			render.Logger().Warn("swap buffers failed", "err", v)
		}
	}()
	w.Window.SwapBuffers()
}
