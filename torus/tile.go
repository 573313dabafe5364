package torus

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	// TileSide is the edge length of a fine block inside a tile.
	TileSide = 3
	// TileCells is the number of cells in one tile.
	TileCells = TileSide * TileSide * TileSide * TileSide
	// MapIDLen is the number of tiles composing a map, laid out 4x4.
	MapIDLen = 16
	mapCols  = 4
)

var ErrMapID = errors.New("invalid map id")

// Tile[c][d][e][f] covers cell (d, e, c*3+f) of its 3x3x9 column.
type Tile [TileSide][TileSide][TileSide][TileSide]bool

// TileLibrary holds the tiles a map id selects from.
type TileLibrary []Tile

// Count returns the number of occupied cells in the tile.
func (t *Tile) Count() int {
	n := 0
	for c := range TileSide {
		for d := range TileSide {
			for e := range TileSide {
				for f := range TileSide {
					if t[c][d][e][f] {
						n++
					}
				}
			}
		}
	}
	return n
}

// Space returns an otherwise empty space holding only this tile, at the
// coarse column a map id's first entry occupies.
func (t *Tile) Space() *Space {
	s := new(Space)
	for c := range TileSide {
		for d := range TileSide {
			for e := range TileSide {
				for f := range TileSide {
					s[d][e][c*TileSide+f] = t[c][d][e][f]
				}
			}
		}
	}
	return s
}

// ValidateMapID checks that mapid selects exactly MapIDLen tiles that all
// exist in a library of the given size.
func ValidateMapID(mapid []int, librarySize int) error {
	if len(mapid) != MapIDLen {
		return fmt.Errorf("%w: want %d ids, got %d", ErrMapID, MapIDLen, len(mapid))
	}
	for i, id := range mapid {
		if id < 0 || id >= librarySize {
			return fmt.Errorf("%w: id %d at position %d outside library of %d tiles", ErrMapID, id, i, librarySize)
		}
	}
	return nil
}

// Assemble stacks the tiles chosen by mapid into a Space. Tile mapid[i]
// lands on coarse column (i/4, i%4).
func Assemble(lib TileLibrary, mapid []int) (*Space, error) {
	if err := ValidateMapID(mapid, len(lib)); err != nil {
		return nil, err
	}
	space := new(Space)
	for i, id := range mapid {
		a, b := i/mapCols, i%mapCols
		tile := &lib[id]
		for c := range TileSide {
			for d := range TileSide {
				for e := range TileSide {
					for f := range TileSide {
						if tile[c][d][e][f] {
							space[a*TileSide+d][b*TileSide+e][c*TileSide+f] = true
						}
					}
				}
			}
		}
	}
	return space, nil
}

// GenerateMapID picks MapIDLen distinct tiles from a library of the given size.
func GenerateMapID(r *rand.Rand, librarySize int) ([]int, error) {
	if librarySize < MapIDLen {
		return nil, fmt.Errorf("%w: library has %d tiles, need at least %d", ErrMapID, librarySize, MapIDLen)
	}
	idx := make([]int, librarySize)
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher-Yates
	for i := 0; i < MapIDLen; i++ {
		j := i + r.IntN(librarySize-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:MapIDLen:MapIDLen], nil
}

// GenerateTiles creates n tiles, each with round(fillPercent% of TileCells)
// occupied cells chosen at random.
func GenerateTiles(r *rand.Rand, n int, fillPercent float64) TileLibrary {
	want := fillCount(fillPercent)
	lib := make(TileLibrary, max(n, 0))
	idx := make([]int, TileCells)
	for t := range lib {
		for i := range idx {
			idx[i] = i
		}
		for i := 0; i < want; i++ {
			j := i + r.IntN(TileCells-i)
			idx[i], idx[j] = idx[j], idx[i]
		}
		for _, i := range idx[:want] {
			lib[t].set(i, true)
		}
	}
	return lib
}

// fillCount is the number of occupied cells per tile for fillPercent,
// clamped to [0, 100].
func fillCount(fillPercent float64) int {
	fillPercent = min(max(fillPercent, 0), 100)
	return int(float64(TileCells)*(fillPercent/100.0) + 0.5)
}

// set and get address the tile in c, d, e, f row-major order.
func (t *Tile) set(i int, v bool) {
	t[i/27][(i/9)%3][(i/3)%3][i%3] = v
}

func (t *Tile) get(i int) bool {
	return t[i/27][(i/9)%3][(i/3)%3][i%3]
}
