package gfx

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"glscenes/internal/frame"
	"glscenes/internal/mesh"
	"glscenes/internal/xform"
)

// Uniform names every scene shader declares.
const (
	matrixUniform = "u_matrix"
	colorUniform  = "u_color"
)

var errNoProgram = errors.New("no program loaded")

// Renderer is the OpenGL frame.Device. It holds one program and one vertex
// array at a time and must be used from the thread that owns the context.
type Renderer struct {
	log *zap.Logger

	program  uint32
	uniforms map[string]int32
	vao      uint32
	buffers  []uint32

	width, height int
}

var _ frame.Device = (*Renderer)(nil)

// New loads the GL entry points for the current context.
func New(log *zap.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Info("OpenGL ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	return &Renderer{log: log, uniforms: map[string]int32{}}, nil
}

func (r *Renderer) LoadProgram(vertexSource, fragmentSource string) error {
	program, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.program = program
	clear(r.uniforms)
	gl.UseProgram(program)
	return nil
}

func (r *Renderer) LoadMesh(m mesh.Mesh) error {
	if r.program == 0 {
		return errNoProgram
	}
	if err := m.Validate(); err != nil {
		return err
	}
	locs, err := attribLocations(m, func(name string) int32 {
		return gl.GetAttribLocation(r.program, gl.Str(name+"\x00"))
	})
	if err != nil {
		return err
	}
	r.releaseMesh()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	for i, a := range m.Attributes {
		loc := locs[i]

		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		r.buffers = append(r.buffers, vbo)

		var typ uint32
		if a.Floats != nil {
			gl.BufferData(gl.ARRAY_BUFFER, len(a.Floats)*4, gl.Ptr(a.Floats), gl.STATIC_DRAW)
			typ = gl.FLOAT
		} else {
			gl.BufferData(gl.ARRAY_BUFFER, len(a.Bytes), gl.Ptr(a.Bytes), gl.STATIC_DRAW)
			typ = gl.UNSIGNED_BYTE
		}
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(a.Size), typ, a.Normalized, 0, gl.PtrOffset(0))
	}

	r.log.Debug("mesh uploaded", zap.Int("vertices", m.Count), zap.Int("attributes", len(m.Attributes)))
	return nil
}

// attribLocations resolves every attribute of m before anything is
// uploaded, so a mesh the program cannot consume leaves no GL state behind.
func attribLocations(m mesh.Mesh, locate func(name string) int32) ([]uint32, error) {
	locs := make([]uint32, len(m.Attributes))
	for i, a := range m.Attributes {
		loc := locate(a.Name)
		if loc < 0 {
			return nil, fmt.Errorf("attribute %s not found in program", a.Name)
		}
		locs[i] = uint32(loc)
	}
	return locs, nil
}

func (r *Renderer) Enable(f frame.Feature) {
	switch f {
	case frame.CullFace:
		gl.Enable(gl.CULL_FACE)
	case frame.DepthTest:
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
}

// SetDrawableSize is called by the window when the framebuffer is resized.
func (r *Renderer) SetDrawableSize(width, height int) {
	r.width, r.height = width, height
}

func (r *Renderer) DrawableSize() (int, int) {
	return r.width, r.height
}

func (r *Renderer) Clear() {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) SetMatrix3(m xform.Mat3) {
	m32 := toMat3(m)
	gl.UniformMatrix3fv(r.uniform(matrixUniform), 1, false, &m32[0])
}

func (r *Renderer) SetMatrix4(m xform.Mat4) {
	m32 := toMat4(m)
	gl.UniformMatrix4fv(r.uniform(matrixUniform), 1, false, &m32[0])
}

func (r *Renderer) SetColor(c xform.Vec4) {
	gl.Uniform4f(r.uniform(colorUniform), float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
}

func (r *Renderer) DrawTriangles(first, count int) {
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

// Close releases the program and buffers.
func (r *Renderer) Close() {
	r.releaseMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *Renderer) releaseMesh() {
	if len(r.buffers) > 0 {
		gl.DeleteBuffers(int32(len(r.buffers)), &r.buffers[0])
		r.buffers = r.buffers[:0]
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

func (r *Renderer) uniform(name string) int32 {
	if loc, ok := r.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	r.uniforms[name] = loc
	return loc
}

func toMat3(m xform.Mat3) mgl32.Mat3 {
	var out mgl32.Mat3
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func toMat4(m xform.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
