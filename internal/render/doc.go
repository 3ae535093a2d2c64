// Package render draws simulation snapshots to the window through one of
// two backends:
//
//   - CPU: immediate-mode raster drawing, one rectangle per live cell
//   - GPU: simulation history kept resident in a ping-pong texture pair,
//     advanced by a shader pass and displayed by a second shader pass
//
// The package selects the backend once at construction:
//
//	renderer := render.New(render.BackendAuto, pal, logger)
//
// GPU construction failures (no context, shader compile or link errors) are
// caught at the selection boundary and fall back to the CPU backend; they
// never reach the caller. Errors raised by Render after successful
// construction indicate logic defects and propagate as panics.
//
// All calls must happen on the thread that owns the window's GL context.
package render
