package utils

import (
	"fmt"
	"sync"

	"github.com/axuy/axuy/torus"
)

// MergeTiles concatenates tile libraries in argument order and writes
// the result to outputFile. Tiles already present, by fingerprint, are
// dropped.
func MergeTiles(inputFiles []string, outputFile string, comp torus.Compression) error {
	if len(inputFiles) == 0 {
		return fmt.Errorf("no tile libraries provided")
	}
	type item struct {
		lib torus.TileLibrary
		err error
	}
	items := make([]item, len(inputFiles))

	var wg sync.WaitGroup
	for i := range inputFiles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lib, err := torus.LoadTiles(inputFiles[i])
			items[i] = item{lib: lib, err: err}
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	var merged torus.TileLibrary
	for _, it := range items {
		if it.err != nil {
			return it.err
		}
		for _, t := range it.lib {
			fp := t.Fingerprint()
			if seen[fp] {
				continue
			}
			seen[fp] = true
			merged = append(merged, t)
		}
	}
	if err := torus.SaveTiles(merged, comp, outputFile); err != nil {
		return err
	}
	fmt.Printf("%d tiles merged from %d libraries\n", len(merged), len(inputFiles))
	return nil
}
