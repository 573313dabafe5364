package torus

import (
	"cmp"
	"slices"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
	// noise units between neighbouring cells
	perlinStep = 0.37
	// offset between consecutive tiles along the noise diagonal
	perlinTileGap = 7.1
)

// GeneratePerlinTiles creates n tiles shaped by 3D Perlin noise. Each tile
// keeps the round(fillPercent% of TileCells) cells with the highest noise,
// so occupancy matches GenerateTiles for the same fillPercent.
func GeneratePerlinTiles(seed int64, n int, fillPercent float64) TileLibrary {
	want := fillCount(fillPercent)
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	lib := make(TileLibrary, max(n, 0))
	values := make([]float64, TileCells)
	idx := make([]int, TileCells)
	for t := range lib {
		base := float64(t) * perlinTileGap
		for i := range idx {
			idx[i] = i
			c, d, e, f := i/27, (i/9)%3, (i/3)%3, i%3
			x := base + float64(d)*perlinStep
			y := base + float64(e)*perlinStep
			z := float64(c*TileSide+f) * perlinStep
			values[i] = noise.Noise3D(x, y, z)
		}
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(values[b], values[a]) })
		for _, i := range idx[:want] {
			lib[t].set(i, true)
		}
	}
	return lib
}
