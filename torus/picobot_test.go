package torus

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellOf(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p[0]))),
		int(math.Floor(float64(p[1]))),
		int(math.Floor(float64(p[2]))),
	}
}

func TestPlaceFreeFindsOnlyFreeCell(t *testing.T) {
	s := new(Space)
	s.fill(true)
	s[7][3][2] = false
	for seed := uint64(0); seed < 5; seed++ {
		pos, err := PlaceFree(s, rand.New(rand.NewPCG(seed, seed+1)), 0)
		require.NoError(t, err)
		assert.Equal(t, [3]int{7, 3, 2}, cellOf(pos))
	}
}

func TestPlaceFreeNeverPicksOccupiedCell(t *testing.T) {
	s := randomSpace(42, 0.6)
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		pos, err := PlaceFree(s, r, 0)
		require.NoError(t, err)
		assert.False(t, s.OccupiedAt(pos), "placed in occupied cell %v", pos)
		assert.True(t, pos[0] >= 0 && pos[0] < SizeX)
		assert.True(t, pos[1] >= 0 && pos[1] < SizeY)
		assert.True(t, pos[2] >= 0 && pos[2] < SizeZ)
	}
}

func TestPlaceFreeGivesUp(t *testing.T) {
	s := new(Space)
	s.fill(true)
	_, err := PlaceFree(s, rand.New(rand.NewPCG(1, 1)), 1000)
	assert.ErrorIs(t, err, ErrNoFreeCell)
}

func TestMoveStopsAtOccupiedCell(t *testing.T) {
	s := new(Space)
	s[5][5][5] = true
	p := NewPicobot(mgl32.Vec3{4.5, 5.5, 5.5}, s)

	assert.False(t, p.Move(mgl32.Vec3{1, 0, 0}))
	assert.Less(t, p.Pos[0], float32(5))
	assert.GreaterOrEqual(t, p.Pos[0], float32(4.5))

	assert.True(t, p.Move(mgl32.Vec3{0, 1, 0}))
	assert.InDelta(t, 6.5, p.Pos[1], 1e-5)
}

func TestMoveWrapsAround(t *testing.T) {
	p := NewPicobot(mgl32.Vec3{11.9, 0.5, 8.9}, new(Space))
	assert.True(t, p.Move(mgl32.Vec3{0.2, -1, 0.2}))
	assert.InDelta(t, 0.1, p.Pos[0], 1e-4)
	assert.InDelta(t, 11.5, p.Pos[1], 1e-4)
	assert.InDelta(t, 0.1, p.Pos[2], 1e-4)
}

func TestMoveBlockedAcrossSeam(t *testing.T) {
	s := new(Space)
	s[0][0][0] = true
	p := NewPicobot(mgl32.Vec3{11.5, 0.5, 0.5}, s)
	assert.False(t, p.Move(mgl32.Vec3{1, 0, 0}))
	assert.InDelta(t, 11.5, p.Pos[0], 0.26)
}

func TestRotateKeepsFrameOrthonormal(t *testing.T) {
	p := NewPicobot(mgl32.Vec3{1, 1, 1}, new(Space))
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, p.Forward())

	for i := 0; i < 50; i++ {
		p.Rotate(0.13, -0.07)
	}
	r, u, f := p.Right(), p.Upward(), p.Forward()
	for _, v := range []mgl32.Vec3{r, u, f} {
		assert.InDelta(t, 1, v.Len(), 1e-4)
	}
	assert.InDelta(t, 0, r.Dot(u), 1e-4)
	assert.InDelta(t, 0, u.Dot(f), 1e-4)
	assert.InDelta(t, 0, f.Dot(r), 1e-4)
	assert.InDelta(t, 0, f.Cross(u).Sub(r).Len(), 1e-4)
}

func TestInitialFrame(t *testing.T) {
	p := NewPicobot(mgl32.Vec3{}, new(Space))
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, p.Right())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, p.Upward())
	assert.Equal(t, p.Forward().Cross(p.Upward()), p.Right())
}

func TestRotateYaw(t *testing.T) {
	p := NewPicobot(mgl32.Vec3{}, new(Space))
	p.Rotate(math.Pi/2, 0)
	assert.InDelta(t, 1, p.Forward()[0], 1e-5)
	assert.InDelta(t, 1, p.Upward()[1], 1e-5)
	assert.InDelta(t, 1, p.Right()[2], 1e-5)
}

func (s *Space) fill(v bool) {
	for x := range SizeX {
		for y := range SizeY {
			for z := range SizeZ {
				s[x][y][z] = v
			}
		}
	}
}
