package torus

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPlacementTries bounds PlaceFree when the caller passes no limit.
const DefaultPlacementTries = 1 << 20

// maxStep is the longest distance Move covers before checking collision again.
const maxStep = 0.25

var ErrNoFreeCell = errors.New("no free cell found")

// Picobot is the first-person camera. Rot holds the right, upward and
// forward unit vectors as its columns, with right = forward × upward so
// that right is screen-right under a look-at view.
type Picobot struct {
	Pos   mgl32.Vec3
	Rot   mgl32.Mat3
	space *Space
}

var initialFrame = mgl32.Mat3FromCols(mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1})

// NewPicobot places a camera at pos looking along +z with +y up. The
// space is only read, for collision checks.
func NewPicobot(pos mgl32.Vec3, space *Space) *Picobot {
	return &Picobot{Pos: wrapPos(pos), Rot: initialFrame, space: space}
}

func (p *Picobot) Right() mgl32.Vec3   { return p.Rot.Col(0) }
func (p *Picobot) Upward() mgl32.Vec3  { return p.Rot.Col(1) }
func (p *Picobot) Forward() mgl32.Vec3 { return p.Rot.Col(2) }

// Rotate turns the camera by yaw radians around its upward vector and by
// pitch radians around its right vector.
func (p *Picobot) Rotate(yaw, pitch float32) {
	q := mgl32.QuatRotate(yaw, p.Upward()).Mul(mgl32.QuatRotate(pitch, p.Right()))
	forward := q.Rotate(p.Forward()).Normalize()
	upward := q.Rotate(p.Upward())
	right := forward.Cross(upward).Normalize()
	upward = right.Cross(forward).Normalize()
	p.Rot = mgl32.Mat3FromCols(right, upward, forward)
}

// Move translates the camera by delta, in steps no longer than maxStep,
// stopping before the first step that would enter an occupied cell. The
// position wraps around the space. It reports whether the full distance
// was covered.
func (p *Picobot) Move(delta mgl32.Vec3) bool {
	dist := delta.Len()
	if dist == 0 {
		return true
	}
	steps := int(math.Ceil(float64(dist / maxStep)))
	step := delta.Mul(1 / float32(steps))
	for range steps {
		next := wrapPos(p.Pos.Add(step))
		if p.space.OccupiedAt(next) {
			return false
		}
		p.Pos = next
	}
	return true
}

// PlaceFree samples points uniformly from the space until one falls in an
// unoccupied cell, giving up after maxTries samples. maxTries <= 0 means
// DefaultPlacementTries.
func PlaceFree(s *Space, r *rand.Rand, maxTries int) (mgl32.Vec3, error) {
	if maxTries <= 0 {
		maxTries = DefaultPlacementTries
	}
	for range maxTries {
		pos := mgl32.Vec3{
			float32(r.Float64() * SizeX),
			float32(r.Float64() * SizeY),
			float32(r.Float64() * SizeZ),
		}
		pos = wrapPos(pos)
		if !s.OccupiedAt(pos) {
			return pos, nil
		}
	}
	return mgl32.Vec3{}, ErrNoFreeCell
}

func wrapPos(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{wrapf(v[0], SizeX), wrapf(v[1], SizeY), wrapf(v[2], SizeZ)}
}

// wrapf maps v into [0, n).
func wrapf(v float32, n int) float32 {
	m := float32(math.Mod(float64(v), float64(n)))
	if m < 0 {
		m += float32(n)
	}
	if m >= float32(n) {
		m = 0
	}
	return m
}
