// Package debug provides GL error checking and frame capture helpers.
package debug

import (
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/solhaug/sceneview/internal/logger"
)

var strict atomic.Bool

// SetStrict makes CheckGL fatal on the first GL error instead of logging and
// continuing. Meant for development runs where an error should stop the
// program at the call site that caused it.
func SetStrict(on bool) { strict.Store(on) }

// Strict reports whether strict GL checking is enabled.
func Strict() bool { return strict.Load() }

// CheckGL drains the GL error queue and logs every pending error with the
// given scope. Returns true if any error was pending. Under strict mode the
// first error is fatal.
func CheckGL(scope string) bool {
	found := false
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return found
		}
		found = true
		if strict.Load() {
			logger.Fatal("GL error",
				zap.String("scope", scope),
				zap.String("error", glErrorString(code)))
		}
		logger.Error("GL error",
			zap.String("scope", scope),
			zap.String("error", glErrorString(code)))
	}
}

func glErrorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "GL_UNKNOWN_ERROR"
	}
}
