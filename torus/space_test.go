package torus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupiedWraps(t *testing.T) {
	s := new(Space)
	s[0][11][8] = true

	assert.True(t, s.Occupied(0, 11, 8))
	assert.True(t, s.Occupied(12, -1, -1))
	assert.True(t, s.Occupied(-24, 23, 17))
	assert.False(t, s.Occupied(1, 11, 8))
}

func TestOccupiedAtFloors(t *testing.T) {
	s := new(Space)
	s[11][0][8] = true

	assert.True(t, s.OccupiedAt([3]float32{11.99, 0.01, 8.5}))
	assert.True(t, s.OccupiedAt([3]float32{-0.5, 12.2, -0.1}))
	assert.False(t, s.OccupiedAt([3]float32{0.5, 0.5, 8.5}))
}

func TestCellsAndCount(t *testing.T) {
	s := new(Space)
	s[1][2][3] = true
	s[4][5][6] = true
	var got [][3]int
	s.Cells(func(x, y, z int) { got = append(got, [3]int{x, y, z}) })
	assert.Equal(t, [][3]int{{1, 2, 3}, {4, 5, 6}}, got)
	assert.Equal(t, 2, s.Count())
}
