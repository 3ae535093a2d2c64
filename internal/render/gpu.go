package render

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"rulescope/internal/sim"
	"rulescope/internal/viewport"
)

// pingPong is the double-buffered texture/framebuffer pair. A pass reads
// from the read slot and writes through the write slot's framebuffer; the
// two can never alias because the accessors are derived from one index.
type pingPong struct {
	tex  [2]uint32
	fbo  [2]uint32
	read int
}

func (p *pingPong) readTex() uint32  { return p.tex[p.read] }
func (p *pingPong) writeFBO() uint32 { return p.fbo[1-p.read] }
func (p *pingPong) swap()            { p.read = 1 - p.read }

// GPU keeps the simulation history resident in a texture pair, advances it
// with a shader pass and displays it with a second pass. Construction
// either yields a fully Ready instance or fails with no partial state.
type GPU struct {
	pal Palette

	computeProg uint32
	displayProg uint32
	vao         uint32
	vbo         uint32
	pp          pingPong

	// physical texture dimensions (power of two) and the logical
	// occupied region within them
	texW, texH int
	cols, rows int

	width, height int

	lastSeq   uint64
	lastEpoch uint64
	synced    bool
	disposed  bool

	staging []uint8
}

// NewGPU compiles and links both shader programs and allocates the shared
// quad geometry. Texture storage is allocated lazily from the first
// snapshot's viewport. Requires a current GL context.
func NewGPU(pal Palette) (*GPU, error) {
	if !HasGPUSupport() {
		return nil, ErrNoGPU
	}

	r := &GPU{pal: pal}

	var err error
	if r.computeProg, err = buildProgram(quadVertexShader, computeFragmentShader); err != nil {
		return nil, err
	}
	if r.displayProg, err = buildProgram(quadVertexShader, displayFragmentShader); err != nil {
		gl.DeleteProgram(r.computeProg)
		return nil, err
	}

	quad := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.BindVertexArray(0)

	return r, nil
}

func (r *GPU) Name() string { return "gpu" }

// Render synchronizes the state texture with the snapshot and runs the
// display pass. A single-generation advance is executed entirely on the
// GPU by the shader pass; any discontinuity (first frame, reset, resize,
// or a multi-step frame) fully re-encodes and replaces the read texture.
func (r *GPU) Render(s sim.Snapshot) {
	if r.disposed {
		panic("render: gpu renderer used after dispose")
	}
	if err := r.ensureStorage(s.View); err != nil {
		// storage allocation failed after successful init: logic defect
		panic(err)
	}
	if r.cols == 0 || r.rows == 0 {
		return
	}

	switch {
	case !r.synced || s.Epoch != r.lastEpoch || s.Seq-r.lastSeq > 1:
		r.upload(s)
	case s.Seq-r.lastSeq == 1:
		r.computePass(s)
	}
	r.lastSeq = s.Seq
	r.lastEpoch = s.Epoch
	r.synced = true

	r.displayPass(s)
}

// Resize records the output surface size in pixels. Texture storage is
// revalidated against the next snapshot's viewport.
func (r *GPU) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Dispose explicitly releases all GPU resources rather than waiting for
// context teardown. Idempotent: safe on an already-disposed instance.
func (r *GPU) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.releaseStorage()
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.displayProg != 0 {
		gl.DeleteProgram(r.displayProg)
	}
	if r.computeProg != 0 {
		gl.DeleteProgram(r.computeProg)
	}
}

// ensureStorage (re)allocates the texture pair for the viewport's logical
// grid: N columns by M+1 rows, padded up to power-of-two dimensions.
func (r *GPU) ensureStorage(v viewport.Viewport) error {
	cols, rows := v.Cols, v.Rows+1
	if cols == r.cols && rows == r.rows && r.texW != 0 {
		return nil
	}
	r.releaseStorage()
	r.cols, r.rows = cols, rows
	r.synced = false
	if cols == 0 || v.Rows < 0 {
		return nil
	}

	r.texW, r.texH = nextPow2(cols), nextPow2(rows)
	r.staging = make([]uint8, r.texW*r.texH)

	gl.GenTextures(2, &r.pp.tex[0])
	gl.GenFramebuffers(2, &r.pp.fbo[0])
	for i := 0; i < 2; i++ {
		gl.BindTexture(gl.TEXTURE_2D, r.pp.tex[i])
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(r.texW), int32(r.texH),
			0, gl.RED, gl.UNSIGNED_BYTE, nil)

		gl.BindFramebuffer(gl.FRAMEBUFFER, r.pp.fbo[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
			gl.TEXTURE_2D, r.pp.tex[i], 0)
		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			r.releaseStorage()
			return &FramebufferError{Status: status}
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (r *GPU) releaseStorage() {
	if r.texW != 0 {
		gl.DeleteFramebuffers(2, &r.pp.fbo[0])
		gl.DeleteTextures(2, &r.pp.tex[0])
	}
	r.pp = pingPong{}
	r.texW, r.texH = 0, 0
	r.staging = nil
}

// upload fully replaces the read texture with the encoded history window
// plus current generation.
func (r *GPU) upload(s sim.Snapshot) {
	encodeState(s, r.texW, r.texH, r.staging)
	gl.BindTexture(gl.TEXTURE_2D, r.pp.readTex())
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(r.texW), int32(r.texH),
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(r.staging))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// computePass advances the state texture by one generation on the GPU and
// flips the pair. The pass reads only the read texture and writes only the
// write framebuffer.
func (r *GPU) computePass(s sim.Snapshot) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.pp.writeFBO())
	gl.Viewport(0, 0, int32(r.texW), int32(r.texH))
	gl.Disable(gl.BLEND)

	gl.UseProgram(r.computeProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.pp.readTex())
	gl.Uniform1i(uniform(r.computeProg, "stateTex"), 0)
	gl.Uniform1i(uniform(r.computeProg, "cols"), int32(r.cols))
	gl.Uniform1i(uniform(r.computeProg, "rule"), int32(s.Rule))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	r.pp.swap()
}

// displayPass draws the read texture to the default framebuffer through
// the cell-geometry mapping with age-based fading.
func (r *GPU) displayPass(s sim.Snapshot) {
	occupied := len(s.History)
	if occupied > s.View.Rows {
		occupied = s.View.Rows
	}
	occupied++ // current generation

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))

	gl.UseProgram(r.displayProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.pp.readTex())
	gl.Uniform1i(uniform(r.displayProg, "stateTex"), 0)
	gl.Uniform1i(uniform(r.displayProg, "cellSize"), int32(s.View.CellSize))
	gl.Uniform1i(uniform(r.displayProg, "cellMargin"), int32(s.View.CellMargin))
	gl.Uniform1i(uniform(r.displayProg, "renderMargin"), int32(s.View.RenderMargin))
	gl.Uniform1i(uniform(r.displayProg, "cols"), int32(r.cols))
	gl.Uniform1i(uniform(r.displayProg, "occupied"), int32(occupied))
	gl.Uniform1i(uniform(r.displayProg, "viewHeight"), int32(r.height))
	uniformColor(uniform(r.displayProg, "liveColor"), r.pal.Live)
	uniformColor(uniform(r.displayProg, "backColor"), r.pal.Background)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.UseProgram(0)
}

// encodeState writes the snapshot row-major into buf: texture row 0 is the
// current generation, row k the generation k steps back. buf holds
// texW*texH bytes; padding texels stay zero.
func encodeState(s sim.Snapshot, texW, texH int, buf []uint8) {
	for i := range buf {
		buf[i] = 0
	}
	rows := rowOrder(s)
	for age := 0; age < len(rows) && age < texH; age++ {
		gen := rows[len(rows)-1-age]
		base := age * texW
		for i, alive := range gen {
			if i >= texW {
				break
			}
			if alive {
				buf[base+i] = 255
			}
		}
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func uniformColor(loc int32, c Color) {
	gl.Uniform4f(loc,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

// buildProgram compiles the vertex and fragment sources and links them,
// retaining the driver's info log on failure.
func buildProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vert)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, &ProgramLinkError{Log: strings.TrimRight(infoLog, "\x00")}
	}
	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: strings.TrimRight(infoLog, "\x00")}
	}
	return shader, nil
}
