// Package view assembles the space of a map, uploads its boundary mesh
// and renders it from the camera.
package view

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/axuy/axuy/torus"
)

const (
	zNear = 0.0001
	zFar  = 4

	// Uniform and attribute names shared with the space shaders.
	uniformColor = "color"
	uniformMVP   = "mvp"
	uniformEye   = "eye"
	attrVertex   = "in_vert"
)

// DefaultColor is the mesh color, #eeeeec.
var DefaultColor = [3]float32{0xee / 255.0, 0xee / 255.0, 0xec / 255.0}

// Options tunes View construction. The zero value is usable.
type Options struct {
	Color          *[3]float32
	PlacementTries int
	Rand           *rand.Rand
}

// View owns the space of one map and the GPU objects drawing it.
type View struct {
	Camera *torus.Picobot
	Quads  int

	space *torus.Space
	prog  Program
	vao  VertexArray
}

// New assembles the space selected by mapid, uploads its boundary mesh
// and places the camera in a free cell.
func New(mapid []int, lib torus.TileLibrary, shaders Shaders, backend Backend, opts Options) (*View, error) {
	space, err := torus.Assemble(lib, mapid)
	if err != nil {
		return nil, err
	}
	faces := torus.BuildFaces(space)
	vertices := faces.Vertices()

	prog, err := backend.Program(shaders.Vertex, shaders.Fragment)
	if err != nil {
		return nil, fmt.Errorf("space program: %w", err)
	}
	color := DefaultColor
	if opts.Color != nil {
		color = *opts.Color
	}
	if err := prog.Write(uniformColor, float32Bytes(color[:])); err != nil {
		return nil, err
	}
	vbo, err := backend.Buffer(float32Bytes(vertices))
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	vao, err := backend.VertexArray(prog, vbo, attrVertex)
	if err != nil {
		return nil, fmt.Errorf("vertex array: %w", err)
	}

	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	pos, err := torus.PlaceFree(space, r, opts.PlacementTries)
	if err != nil {
		return nil, err
	}

	Logf("view: %d occupied cells, %d faces (xy=%d yz=%d zx=%d), camera at %.2f,%.2f,%.2f",
		space.Count(), faces.Quads(), len(faces.XY), len(faces.YZ), len(faces.ZX), pos[0], pos[1], pos[2])
	return &View{
		Camera: torus.NewPicobot(pos, space),
		Quads:  faces.Quads(),
		space:  space,
		prog:   prog,
		vao:    vao,
	}, nil
}

// Space returns a copy of the assembled map. The view's own space never
// changes after New.
func (v *View) Space() torus.Space { return *v.space }

func (v *View) Pos() mgl32.Vec3     { return v.Camera.Pos }
func (v *View) Right() mgl32.Vec3   { return v.Camera.Right() }
func (v *View) Upward() mgl32.Vec3  { return v.Camera.Upward() }
func (v *View) Forward() mgl32.Vec3 { return v.Camera.Forward() }

// MVP returns the perspective projection for a width x height viewport
// and a vertical field of view of fov degrees, composed with the camera's
// look-at matrix.
func (v *View) MVP(width, height int, fov float32) (mgl32.Mat4, error) {
	if width <= 0 || height <= 0 {
		return mgl32.Mat4{}, fmt.Errorf("invalid viewport %dx%d", width, height)
	}
	proj := mgl32.Perspective(mgl32.DegToRad(fov), float32(width)/float32(height), zNear, zFar)
	pos := v.Pos()
	look := mgl32.LookAtV(pos, pos.Add(v.Forward()), v.Upward())
	return proj.Mul4(look), nil
}

// Render draws the map. It only reads the camera state.
func (v *View) Render(width, height int, fov float32) error {
	mvp, err := v.MVP(width, height, fov)
	if err != nil {
		return err
	}
	if err := v.prog.Write(uniformMVP, float32Bytes(mvp[:])); err != nil {
		return err
	}
	pos := v.Pos()
	if err := v.prog.Write(uniformEye, float32Bytes(pos[:])); err != nil {
		return err
	}
	return v.vao.Render()
}

func float32Bytes(v []float32) []byte {
	b := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}
