package utils

import (
	"fmt"
	"os"

	"github.com/axuy/axuy/api"
)

// RunMap2GLB exports the boundary mesh of the map selected by mapidArg.
func RunMap2GLB(tilesPath, mapidArg, outPath string, color [3]float32) error {
	mapid, err := api.ParseMapID(mapidArg)
	if err != nil {
		return err
	}
	tiles, err := os.ReadFile(tilesPath)
	if err != nil {
		return err
	}
	glb, err := api.MapToGLB(tiles, mapid, color)
	if err != nil {
		return fmt.Errorf("%s: %w", tilesPath, err)
	}
	return os.WriteFile(outPath, glb, 0644)
}

// RunTiles2GLB exports every tile of a library as its own node.
func RunTiles2GLB(tilesPath, outPath string, color [3]float32) error {
	tiles, err := os.ReadFile(tilesPath)
	if err != nil {
		return err
	}
	glb, err := api.TilesToGLB(tiles, color)
	if err != nil {
		return fmt.Errorf("%s: %w", tilesPath, err)
	}
	return os.WriteFile(outPath, glb, 0644)
}
