package torus

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityMapID() []int {
	mapid := make([]int, MapIDLen)
	for i := range mapid {
		mapid[i] = i
	}
	return mapid
}

func TestAssemblePlacesTileCells(t *testing.T) {
	lib := make(TileLibrary, MapIDLen)
	lib[5][2][1][0][2] = true
	mapid := identityMapID()
	// tile 5 at position 6 -> coarse (1, 2)
	mapid[5], mapid[6] = mapid[6], mapid[5]

	s, err := Assemble(lib, mapid)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())
	assert.True(t, s[4][6][8])
}

func TestAssembleIsDeterministic(t *testing.T) {
	lib := GenerateTiles(rand.New(rand.NewPCG(1, 2)), 20, 30)
	mapid, err := GenerateMapID(rand.New(rand.NewPCG(3, 4)), len(lib))
	require.NoError(t, err)

	a, err := Assemble(lib, mapid)
	require.NoError(t, err)
	b, err := Assemble(lib, mapid)
	require.NoError(t, err)
	assert.Equal(t, *a, *b)

	total := 0
	for _, id := range mapid {
		total += lib[id].Count()
	}
	assert.Equal(t, total, a.Count())
}

func TestAssembleRejectsBadMapID(t *testing.T) {
	lib := make(TileLibrary, MapIDLen)
	cases := map[string][]int{
		"short":    identityMapID()[:15],
		"long":     append(identityMapID(), 0),
		"negative": append([]int{-1}, identityMapID()[1:]...),
		"missing":  append([]int{MapIDLen}, identityMapID()[1:]...),
		"empty":    nil,
	}
	for name, mapid := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Assemble(lib, mapid)
			assert.ErrorIs(t, err, ErrMapID)
			assert.Nil(t, s)
		})
	}
}

func TestGenerateMapID(t *testing.T) {
	mapid, err := GenerateMapID(rand.New(rand.NewPCG(9, 9)), 40)
	require.NoError(t, err)
	require.Len(t, mapid, MapIDLen)
	seen := map[int]bool{}
	for _, id := range mapid {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, 40)
		seen[id] = true
	}

	again, err := GenerateMapID(rand.New(rand.NewPCG(9, 9)), 40)
	require.NoError(t, err)
	assert.Equal(t, mapid, again)

	_, err = GenerateMapID(rand.New(rand.NewPCG(9, 9)), MapIDLen-1)
	assert.ErrorIs(t, err, ErrMapID)
}

func TestGenerateTilesFill(t *testing.T) {
	lib := GenerateTiles(rand.New(rand.NewPCG(5, 5)), 8, 25)
	require.Len(t, lib, 8)
	for i := range lib {
		// round(81 * 0.25)
		assert.Equal(t, 20, lib[i].Count())
	}
	full := GenerateTiles(rand.New(rand.NewPCG(5, 5)), 1, 150)
	assert.Equal(t, TileCells, full[0].Count())
	assert.Empty(t, GenerateTiles(rand.New(rand.NewPCG(5, 5)), -1, 10))
}

func TestTileSpace(t *testing.T) {
	var tile Tile
	tile[1][2][0][1] = true
	s := tile.Space()
	assert.Equal(t, 1, s.Count())
	assert.True(t, s[2][0][4])
}

func TestTileIndexOrder(t *testing.T) {
	var tile Tile
	tile.set(TileCells-1, true)
	assert.True(t, tile[2][2][2][2])
	tile.set(27+9+3+1, true)
	assert.True(t, tile[1][1][1][1])
	assert.True(t, tile.get(40))
	assert.False(t, tile.get(0))
}
