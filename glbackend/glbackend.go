// Package glbackend implements view.Backend on OpenGL 4.1 core. All
// calls must come from the thread owning the current GL context.
package glbackend

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/axuy/axuy/view"
)

var ErrUnknownUniform = errors.New("unknown uniform")

// Backend is stateless; the GL context is global to the thread.
type Backend struct{}

// Init loads the GL function pointers. Call it after making a context current.
func Init() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	return &Backend{}, nil
}

// Clear resets the color and depth buffers of a width x height viewport.
func (b *Backend) Clear(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

type uniform struct {
	location int32
	xtype    uint32
}

// Program is a linked GL program with its active uniforms.
type Program struct {
	id       uint32
	uniforms map[string]uniform
}

// Buffer is a GL array buffer of float32 positions.
type Buffer struct {
	id       uint32
	vertices int32
}

// VertexArray draws a Buffer through a Program.
type VertexArray struct {
	id       uint32
	prog     *Program
	vertices int32
}

func (b *Backend) Program(vertexShader, fragmentShader string) (view.Program, error) {
	vert, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return &Program{id: id, uniforms: activeUniforms(id)}, nil
}

func activeUniforms(id uint32) map[string]uniform {
	var count, maxLen int32
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	out := make(map[string]uniform, count)
	for i := uint32(0); i < uint32(count); i++ {
		name := make([]uint8, maxLen+1)
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(id, i, maxLen+1, &length, &size, &xtype, &name[0])
		n := string(name[:length])
		out[n] = uniform{location: gl.GetUniformLocation(id, gl.Str(n+"\x00")), xtype: xtype}
	}
	return out
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// Write sets a float uniform from little-endian float32 bytes. The byte
// count must match the uniform type.
func (p *Program) Write(name string, data []byte) error {
	u, ok := p.uniforms[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUniform, name)
	}
	f := decodeFloats(data)
	want := map[uint32]int{gl.FLOAT: 1, gl.FLOAT_VEC2: 2, gl.FLOAT_VEC3: 3, gl.FLOAT_VEC4: 4, gl.FLOAT_MAT4: 16}[u.xtype]
	if want == 0 {
		return fmt.Errorf("uniform %s: unsupported type 0x%x", name, u.xtype)
	}
	if len(f) != want {
		return fmt.Errorf("uniform %s: got %d floats, want %d", name, len(f), want)
	}
	gl.UseProgram(p.id)
	switch u.xtype {
	case gl.FLOAT:
		gl.Uniform1fv(u.location, 1, &f[0])
	case gl.FLOAT_VEC2:
		gl.Uniform2fv(u.location, 1, &f[0])
	case gl.FLOAT_VEC3:
		gl.Uniform3fv(u.location, 1, &f[0])
	case gl.FLOAT_VEC4:
		gl.Uniform4fv(u.location, 1, &f[0])
	case gl.FLOAT_MAT4:
		gl.UniformMatrix4fv(u.location, 1, false, &f[0])
	}
	return glError("write uniform " + name)
}

func decodeFloats(data []byte) []float32 {
	f := make([]float32, len(data)/4)
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
	return f
}

func (b *Backend) Buffer(data []byte) (view.Buffer, error) {
	buf := &Buffer{vertices: int32(len(data) / 12)}
	gl.GenBuffers(1, &buf.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.id)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	}
	return buf, glError("buffer data")
}

func (b *Backend) VertexArray(prog view.Program, buf view.Buffer, attr string) (view.VertexArray, error) {
	p, ok := prog.(*Program)
	if !ok {
		return nil, fmt.Errorf("program %T not created by glbackend", prog)
	}
	vb, ok := buf.(*Buffer)
	if !ok {
		return nil, fmt.Errorf("buffer %T not created by glbackend", buf)
	}
	loc := gl.GetAttribLocation(p.id, gl.Str(attr+"\x00"))
	if loc < 0 {
		return nil, fmt.Errorf("unknown attribute %s", attr)
	}
	vao := &VertexArray{prog: p, vertices: vb.vertices}
	gl.GenVertexArrays(1, &vao.id)
	gl.BindVertexArray(vao.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return vao, glError("vertex array")
}

func (v *VertexArray) Render() error {
	gl.UseProgram(v.prog.id)
	gl.BindVertexArray(v.id)
	gl.DrawArrays(gl.TRIANGLES, 0, v.vertices)
	gl.BindVertexArray(0)
	return glError("draw")
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%x", op, code)
	}
	return nil
}
