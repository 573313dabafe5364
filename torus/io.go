package torus

import (
	"fmt"
	"os"
)

func SaveTiles(lib TileLibrary, comp Compression, filename string) error {
	data, err := EncodeTiles(lib, comp)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func LoadTiles(filename string) (TileLibrary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lib, _, err := DecodeTiles(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return lib, nil
}
