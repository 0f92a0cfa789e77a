package render

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.4-core/gl"
	"github.com/stewi1014/fracview/internal/geometry"
)

// GLDevice issues draw calls on the current GL context.
type GLDevice struct{}

func (GLDevice) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (GLDevice) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (GLDevice) Draw(mesh *geometry.Mesh) {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawArrays(mesh.Mode(), 0, mesh.Count)
	gl.BindVertexArray(0)
}

// EnableDebugOutput routes GL debug messages to the package logger.
// It needs a 4.3 or newer context.
func EnableDebugOutput() {
	gl.DebugMessageCallback(glDebugMessage, nil)
	gl.Enable(gl.DEBUG_OUTPUT)
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	level := slog.LevelDebug
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		level = slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		level = slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		level = slog.LevelInfo
	}

	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "thirdParty"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "marker"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_POP_GROUP:
		typeStr = "popGroup"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		typeStr = "pushGroup"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	}

	Logger().Log(context.Background(), level, message, "source", sourceStr, "type", typeStr, "id", id)
}
