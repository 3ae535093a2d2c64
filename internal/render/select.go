package render

import (
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Backend names a renderer implementation preference.
type Backend string

const (
	BackendAuto Backend = "auto"
	BackendCPU  Backend = "cpu"
	BackendGPU  Backend = "gpu"
)

var (
	probeOnce  sync.Once
	gpuCapable bool
)

// HasGPUSupport reports whether a usable GPU context is available. The
// probe runs once per process and its result is cached. It must be called
// with the window's GL context current on the calling thread.
func HasGPUSupport() bool {
	probeOnce.Do(func() {
		if err := gl.Init(); err != nil {
			return
		}
		gpuCapable = gl.GetString(gl.VERSION) != nil
	})
	return gpuCapable
}

// pick resolves a backend preference against the probed capability. The
// GPU backend is chosen when preferred or unspecified and capable; it is
// never chosen when the capability probe reports false.
func pick(pref Backend, capable bool) Backend {
	if pref == BackendCPU {
		return BackendCPU
	}
	if capable {
		return BackendGPU
	}
	return BackendCPU
}

// New constructs a renderer for the preference. GPU construction failures
// are caught here, logged, and answered with the CPU backend; they never
// propagate to the caller.
func New(pref Backend, pal Palette, logger *zap.Logger) Renderer {
	if pick(pref, HasGPUSupport()) == BackendGPU {
		r, err := NewGPU(pal)
		if err == nil {
			logger.Info("renderer ready", zap.String("backend", r.Name()))
			return r
		}
		logger.Warn("gpu renderer unavailable, falling back to cpu",
			zap.Error(err))
	} else if pref == BackendGPU {
		logger.Warn("gpu backend requested but not supported")
	}
	logger.Info("renderer ready", zap.String("backend", "cpu"))
	return NewCPU(pal)
}

// Switch replaces a renderer at runtime. The old renderer is fully
// disposed before the new one is constructed; the two never coexist.
func Switch(old Renderer, pref Backend, pal Palette, logger *zap.Logger) Renderer {
	if old != nil {
		old.Dispose()
	}
	return New(pref, pal, logger)
}
