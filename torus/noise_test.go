package torus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePerlinTiles(t *testing.T) {
	lib := GeneratePerlinTiles(11, 20, 40)
	require.Len(t, lib, 20)
	for i := range lib {
		assert.Equal(t, 32, lib[i].Count(), "tile %d", i)
	}
	assert.Equal(t, lib, GeneratePerlinTiles(11, 20, 40))

	assert.Empty(t, GeneratePerlinTiles(11, -1, 40))
	full := GeneratePerlinTiles(11, 1, 150)
	assert.Equal(t, TileCells, full[0].Count())
	empty := GeneratePerlinTiles(11, 1, -5)
	assert.Zero(t, empty[0].Count())
}

func TestPerlinTilesAssemble(t *testing.T) {
	lib := GeneratePerlinTiles(3, MapIDLen, 25)
	mapid := make([]int, MapIDLen)
	for i := range mapid {
		mapid[i] = i
	}
	s, err := Assemble(lib, mapid)
	require.NoError(t, err)
	assert.Equal(t, MapIDLen*20, s.Count())
}
