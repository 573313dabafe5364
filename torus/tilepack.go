package torus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the codec applied to the content of a tile library blob.
type Compression uint8

const (
	CompNone Compression = 0
	CompZlib Compression = 1
	CompZstd Compression = 2
)

const (
	tileMagic   = "AXTL"
	tileVersion = 1
	// magic + version + compression
	tileHeaderLen = len(tileMagic) + 2
	maxTiles      = 0xFFFF
	// count + bits of maxTiles tiles + checksum
	maxContent = 2 + (maxTiles*TileCells+7)/8 + 8
)

var (
	ErrTileFormat = errors.New("invalid tile library")
	ErrChecksum   = errors.New("tile library checksum mismatch")
)

// TileHeader holds the fixed fields of a tile library blob.
type TileHeader struct {
	Ver   uint8
	Comp  Compression
	Count uint16
}

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZlib:
		return "zlib"
	case CompZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression is the inverse of Compression.String.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return CompNone, nil
	case "zlib":
		return CompZlib, nil
	case "zstd":
		return CompZstd, nil
	}
	return 0, fmt.Errorf("unknown compression %q", s)
}

// packTiles returns the tile bits, 81 per tile in c, d, e, f order.
func packTiles(lib TileLibrary) []byte {
	bw := newBitWriter(len(lib) * TileCells)
	for i := range lib {
		for c := 0; c < TileCells; c++ {
			bw.writeBool(lib[i].get(c))
		}
	}
	return bw.bytes()
}

func unpackTiles(bits []byte, count int) (TileLibrary, error) {
	if len(bits) != (count*TileCells+7)/8 {
		return nil, fmt.Errorf("%w: %d bytes of tile bits for %d tiles", ErrTileFormat, len(bits), count)
	}
	br := newBitReader(bits)
	lib := make(TileLibrary, count)
	for i := range lib {
		for c := 0; c < TileCells; c++ {
			v, err := br.readBool()
			if err != nil {
				return nil, err
			}
			lib[i].set(c, v)
		}
	}
	return lib, nil
}

// Fingerprint returns the xxhash of the tile's packed cells.
func (t *Tile) Fingerprint() uint64 {
	return xxhash.Sum64(packTiles(TileLibrary{*t}))
}

// EncodeTiles serializes lib into a tile library blob.
func EncodeTiles(lib TileLibrary, comp Compression) ([]byte, error) {
	if len(lib) > maxTiles {
		return nil, fmt.Errorf("%w: %d tiles exceeds %d", ErrTileFormat, len(lib), maxTiles)
	}
	bits := packTiles(lib)
	var content bytes.Buffer
	_ = binary.Write(&content, binary.LittleEndian, uint16(len(lib)))
	_, _ = content.Write(bits)
	_ = binary.Write(&content, binary.LittleEndian, xxhash.Sum64(bits))

	body, err := compress(content.Bytes(), comp)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.WriteString(tileMagic)
	_ = binary.Write(&out, binary.LittleEndian, uint8(tileVersion))
	_ = binary.Write(&out, binary.LittleEndian, uint8(comp))
	_, _ = out.Write(body)
	return out.Bytes(), nil
}

// DecodeTiles parses a tile library blob produced by EncodeTiles.
func DecodeTiles(data []byte) (TileLibrary, TileHeader, error) {
	var hdr TileHeader
	if len(data) < tileHeaderLen || string(data[:len(tileMagic)]) != tileMagic {
		return nil, hdr, fmt.Errorf("%w: bad magic", ErrTileFormat)
	}
	hdr.Ver = data[4]
	hdr.Comp = Compression(data[5])
	if hdr.Ver != tileVersion {
		return nil, hdr, fmt.Errorf("%w: unsupported version %d", ErrTileFormat, hdr.Ver)
	}
	content, err := decompress(data[tileHeaderLen:], hdr.Comp)
	if err != nil {
		return nil, hdr, err
	}
	// count + checksum
	if len(content) < 2+8 {
		return nil, hdr, fmt.Errorf("%w: content too short", ErrTileFormat)
	}
	hdr.Count = binary.LittleEndian.Uint16(content)
	bits := content[2 : len(content)-8]
	sum := binary.LittleEndian.Uint64(content[len(content)-8:])
	if xxhash.Sum64(bits) != sum {
		return nil, hdr, ErrChecksum
	}
	lib, err := unpackTiles(bits, int(hdr.Count))
	if err != nil {
		return nil, hdr, err
	}
	return lib, hdr, nil
}

func compress(b []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompNone:
		return b, nil
	case CompZlib:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(b); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(b, nil), nil
	default:
		return nil, fmt.Errorf("%w: unsupported compression %d", ErrTileFormat, comp)
	}
}

func decompress(b []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompNone:
		return b, nil
	case CompZlib:
		zr, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTileFormat, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(io.LimitReader(zr, maxContent+1))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTileFormat, err)
		}
		if len(out) > maxContent {
			return nil, fmt.Errorf("%w: content exceeds %d bytes", ErrTileFormat, maxContent)
		}
		return out, nil
	case CompZstd:
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxContent))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(b, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTileFormat, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported compression %d", ErrTileFormat, comp)
	}
}
