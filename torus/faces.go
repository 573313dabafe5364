package torus

import (
	"cmp"
	"maps"
	"slices"
)

// Anchor is the low corner of a unit face in extended space, where each
// axis may be shifted by whole multiples of the space size.
type Anchor [3]int

// FaceSet is a deduplicated set of face anchors on one plane.
type FaceSet map[Anchor]struct{}

func (s FaceSet) add(a ...Anchor) {
	for _, v := range a {
		s[v] = struct{}{}
	}
}

// Has reports whether a is in the set.
func (s FaceSet) Has(a Anchor) bool {
	_, ok := s[a]
	return ok
}

// Sorted returns the anchors in lexicographic order.
func (s FaceSet) Sorted() []Anchor {
	return slices.SortedFunc(maps.Keys(s), func(a, b Anchor) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		if c := cmp.Compare(a[1], b[1]); c != 0 {
			return c
		}
		return cmp.Compare(a[2], b[2])
	})
}

// Faces holds the face anchors of every axis-aligned plane.
type Faces struct {
	XY FaceSet
	YZ FaceSet
	ZX FaceSet
}

type plane struct {
	name     string
	template [6][3]float32
}

var (
	planeXY = plane{"xy", [6][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 0}}}
	planeYZ = plane{"yz", [6][3]float32{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {0, 1, 1}, {0, 0, 1}, {0, 0, 0}}}
	planeZX = plane{"zx", [6][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {1, 0, 1}, {0, 0, 1}, {0, 0, 0}}}
)

// Neighbors lists every permutation of every multiset of three values
// from {-1, 0, 1}, i.e. the whole 3x3x3 block of offsets including the
// home copy at (0, 0, 0).
var Neighbors = buildNeighbors()

func buildNeighbors() [][3]int {
	vals := [3]int{-1, 0, 1}
	seen := make(map[[3]int]bool)
	var out [][3]int
	// combinations with replacement
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			for k := j; k < 3; k++ {
				c := [3]int{vals[i], vals[j], vals[k]}
				for _, p := range permutations(c) {
					if !seen[p] {
						seen[p] = true
						out = append(out, p)
					}
				}
			}
		}
	}
	return out
}

func permutations(c [3]int) [][3]int {
	return [][3]int{
		{c[0], c[1], c[2]}, {c[0], c[2], c[1]},
		{c[1], c[0], c[2]}, {c[1], c[2], c[0]},
		{c[2], c[0], c[1]}, {c[2], c[1], c[0]},
	}
}

// HomeOnly limits BuildFacesWith to the unshifted copy of the space.
var HomeOnly = [][3]int{{0, 0, 0}}

// BuildFaces collects the face anchors of every occupied cell together
// with its copies shifted by one space length along any combination of
// axes, so that faces on the wrap seam are present on both sides.
func BuildFaces(s *Space) Faces {
	return BuildFacesWith(s, Neighbors)
}

// BuildFacesWith is BuildFaces over an explicit list of copy offsets,
// counted in whole space lengths.
func BuildFacesWith(s *Space, offsets [][3]int) Faces {
	f := Faces{XY: FaceSet{}, YZ: FaceSet{}, ZX: FaceSet{}}
	s.Cells(func(x, y, z int) {
		i, j, k := (x+1)%SizeX, (y+1)%SizeY, (z+1)%SizeZ
		for _, t := range offsets {
			xt, yt, zt := x+t[0]*SizeX, y+t[1]*SizeY, z+t[2]*SizeZ
			it, jt, kt := i+t[0]*SizeX, j+t[1]*SizeY, k+t[2]*SizeZ
			f.XY.add(Anchor{xt, yt, zt}, Anchor{xt, yt, kt})
			f.YZ.add(Anchor{xt, yt, zt}, Anchor{it, yt, zt})
			f.ZX.add(Anchor{xt, yt, zt}, Anchor{xt, jt, zt})
		}
	})
	return f
}

// Each calls fn with the name and face set of every plane, in vertex order.
func (f Faces) Each(fn func(plane string, set FaceSet)) {
	fn(planeXY.name, f.XY)
	fn(planeYZ.name, f.YZ)
	fn(planeZX.name, f.ZX)
}

// Quads returns the total number of unit faces.
func (f Faces) Quads() int {
	return len(f.XY) + len(f.YZ) + len(f.ZX)
}

// Vertices flattens the faces into triangle-list positions, three floats
// per vertex and six vertices per face, XY faces first, then YZ, then ZX.
func (f Faces) Vertices() []float32 {
	out := make([]float32, 0, f.Quads()*6*3)
	out = appendPlane(out, planeXY, f.XY)
	out = appendPlane(out, planeYZ, f.YZ)
	out = appendPlane(out, planeZX, f.ZX)
	return out
}

func appendPlane(dst []float32, p plane, set FaceSet) []float32 {
	for _, a := range set.Sorted() {
		for _, v := range p.template {
			dst = append(dst,
				float32(a[0])+v[0],
				float32(a[1])+v[1],
				float32(a[2])+v[2],
			)
		}
	}
	return dst
}
