package torus

import (
	"io"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTiles(t *testing.T) {
	lib := GenerateTiles(rand.New(rand.NewPCG(11, 12)), 17, 40)
	for _, comp := range []Compression{CompNone, CompZlib, CompZstd} {
		t.Run(comp.String(), func(t *testing.T) {
			data, err := EncodeTiles(lib, comp)
			require.NoError(t, err)
			got, hdr, err := DecodeTiles(data)
			require.NoError(t, err)
			assert.Equal(t, lib, got)
			assert.Equal(t, TileHeader{Ver: tileVersion, Comp: comp, Count: 17}, hdr)
		})
	}
}

func TestEncodeDecodeEmptyLibrary(t *testing.T) {
	data, err := EncodeTiles(nil, CompNone)
	require.NoError(t, err)
	got, hdr, err := DecodeTiles(data)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, hdr.Count)
}

func TestDecodeTilesRejectsCorruption(t *testing.T) {
	lib := GenerateTiles(rand.New(rand.NewPCG(1, 1)), 2, 50)
	data, err := EncodeTiles(lib, CompNone)
	require.NoError(t, err)

	flipped := append([]byte(nil), data...)
	flipped[tileHeaderLen+2] ^= 0x01
	_, _, err = DecodeTiles(flipped)
	assert.ErrorIs(t, err, ErrChecksum)

	badMagic := append([]byte(nil), data...)
	badMagic[0] = 'X'
	_, _, err = DecodeTiles(badMagic)
	assert.ErrorIs(t, err, ErrTileFormat)

	badVersion := append([]byte(nil), data...)
	badVersion[4] = 9
	_, _, err = DecodeTiles(badVersion)
	assert.ErrorIs(t, err, ErrTileFormat)

	badComp := append([]byte(nil), data...)
	badComp[5] = 7
	_, _, err = DecodeTiles(badComp)
	assert.ErrorIs(t, err, ErrTileFormat)

	_, _, err = DecodeTiles(data[:tileHeaderLen+4])
	assert.ErrorIs(t, err, ErrTileFormat)

	_, err = EncodeTiles(lib, Compression(9))
	assert.ErrorIs(t, err, ErrTileFormat)
}

func TestSaveLoadTiles(t *testing.T) {
	lib := GenerateTiles(rand.New(rand.NewPCG(2, 3)), 16, 20)
	path := filepath.Join(t.TempDir(), "tiles.axt")
	require.NoError(t, SaveTiles(lib, CompZstd, path))
	got, err := LoadTiles(path)
	require.NoError(t, err)
	assert.Equal(t, lib, got)

	_, err = LoadTiles(filepath.Join(t.TempDir(), "missing.axt"))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	var a, b Tile
	b[0][0][0][1] = true
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	c := b
	assert.Equal(t, b.Fingerprint(), c.Fingerprint())
}

func TestParseCompression(t *testing.T) {
	for _, comp := range []Compression{CompNone, CompZlib, CompZstd} {
		got, err := ParseCompression(comp.String())
		require.NoError(t, err)
		assert.Equal(t, comp, got)
	}
	_, err := ParseCompression("lz4")
	assert.Error(t, err)
}

func TestBitOrder(t *testing.T) {
	w := newBitWriter(10)
	for _, b := range []bool{true, false, true, true, false, false, false, false, false, true} {
		w.writeBool(b)
	}
	assert.Equal(t, []byte{0x0d, 0x02}, w.bytes())

	r := newBitReader([]byte{0x80})
	for i := range 8 {
		v, err := r.readBool()
		require.NoError(t, err)
		assert.Equal(t, i == 7, v)
	}
	_, err := r.readBool()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeTilesLimitsContent(t *testing.T) {
	for _, comp := range []Compression{CompZlib, CompZstd} {
		t.Run(comp.String(), func(t *testing.T) {
			payload, err := compress(make([]byte, maxContent+100), comp)
			require.NoError(t, err)
			data := append([]byte(tileMagic), tileVersion, byte(comp))
			_, _, err = DecodeTiles(append(data, payload...))
			assert.ErrorIs(t, err, ErrTileFormat)
		})
	}
}

func TestDecodeTilesTruncatedZlib(t *testing.T) {
	data, err := EncodeTiles(GenerateTiles(rand.New(rand.NewPCG(1, 2)), 20, 50), CompZlib)
	require.NoError(t, err)
	_, _, err = DecodeTiles(data[:len(data)-6])
	assert.ErrorIs(t, err, ErrTileFormat)
}
