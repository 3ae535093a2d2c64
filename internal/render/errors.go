package render

import (
	"errors"
	"fmt"
)

// ErrNoGPU indicates no usable GPU context is available. It is recovered
// transparently by falling back to the CPU backend.
var ErrNoGPU = errors.New("render: no usable gpu context")

// ShaderCompileError carries the driver's diagnostic log for a shader that
// failed to compile. Fatal to the GPU backend instance; the selector falls
// back to the CPU backend.
type ShaderCompileError struct {
	Stage string // "vertex", "fragment"
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("render: %s shader compile failed: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the driver's diagnostic log for a program that
// failed to link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("render: program link failed: %s", e.Log)
}

// FramebufferError indicates an incomplete framebuffer attachment.
type FramebufferError struct {
	Status uint32
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("render: framebuffer incomplete (status 0x%x)", e.Status)
}
