package utils

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/axuy/axuy/api"
	"github.com/axuy/axuy/torus"
)

// RunMapID prints a map id drawn from the library with the given seed.
func RunMapID(w io.Writer, tilesPath string, seed uint64) error {
	lib, err := torus.LoadTiles(tilesPath)
	if err != nil {
		return err
	}
	mapid, err := torus.GenerateMapID(rand.New(rand.NewPCG(seed, seed)), len(lib))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, api.FormatMapID(mapid))
	return err
}

// RunMapInfo prints the occupancy and face counts of one map.
func RunMapInfo(w io.Writer, tilesPath, mapidArg string) error {
	mapid, err := api.ParseMapID(mapidArg)
	if err != nil {
		return err
	}
	lib, err := torus.LoadTiles(tilesPath)
	if err != nil {
		return err
	}
	space, err := torus.Assemble(lib, mapid)
	if err != nil {
		return err
	}
	faces := torus.BuildFaces(space)
	total := torus.SizeX * torus.SizeY * torus.SizeZ
	fmt.Fprintf(w, "occupied: %d/%d\n", space.Count(), total)
	faces.Each(func(plane string, set torus.FaceSet) {
		fmt.Fprintf(w, "%s faces: %d\n", plane, len(set))
	})
	fmt.Fprintf(w, "vertices: %d\n", 6*faces.Quads())
	return nil
}

// RunTileInfo prints each tile's occupancy and fingerprint.
func RunTileInfo(w io.Writer, tilesPath string) error {
	lib, err := torus.LoadTiles(tilesPath)
	if err != nil {
		return err
	}
	for i := range lib {
		fmt.Fprintf(w, "%3d  %2d/%d  %016x\n", i, lib[i].Count(), torus.TileCells, lib[i].Fingerprint())
	}
	return nil
}
