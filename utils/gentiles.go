package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/axuy/axuy/api"
	"github.com/axuy/axuy/torus"
)

// RunGenerateTiles writes a library of count tiles, each with fillPercent
// of its cells occupied, to outPath. gen names an api generator.
func RunGenerateTiles(count int, fillPercent float64, seed uint64, comp torus.Compression, gen, outPath string) error {
	if count < torus.MapIDLen {
		return fmt.Errorf("need at least %d tiles to build a map, got %d", torus.MapIDLen, count)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := api.GenerateTilesBytes(gen, count, fillPercent, seed, comp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save tiles: %w", err)
	}
	fmt.Printf("%d %s tiles saved (%d bytes, %s)\n", count, gen, len(data), comp)
	return nil
}
