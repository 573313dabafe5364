package torus

import "math"

const (
	SizeX = 12
	SizeY = 12
	SizeZ = 9
)

// Space[x][y][z] is true for occupied cells. Every axis wraps around.
type Space [SizeX][SizeY][SizeZ]bool

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Occupied reports whether the cell at (x, y, z) is filled, taking each
// coordinate modulo its axis length.
func (s *Space) Occupied(x, y, z int) bool {
	return s[wrap(x, SizeX)][wrap(y, SizeY)][wrap(z, SizeZ)]
}

// OccupiedAt reports whether the cell containing the point p is filled.
func (s *Space) OccupiedAt(p [3]float32) bool {
	return s.Occupied(
		int(math.Floor(float64(p[0]))),
		int(math.Floor(float64(p[1]))),
		int(math.Floor(float64(p[2]))),
	)
}

// Count returns the number of occupied cells.
func (s *Space) Count() int {
	n := 0
	s.Cells(func(x, y, z int) { n++ })
	return n
}

// Cells calls fn for every occupied cell in x, y, z order.
func (s *Space) Cells(fn func(x, y, z int)) {
	for x := range SizeX {
		for y := range SizeY {
			for z := range SizeZ {
				if s[x][y][z] {
					fn(x, y, z)
				}
			}
		}
	}
}
