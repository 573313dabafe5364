//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/axuy/axuy/api"
	"github.com/axuy/axuy/torus"
	"github.com/axuy/axuy/utils"
	"github.com/axuy/axuy/view"
)

func usage() {
	fmt.Println("Usage: axuytool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  gentiles <count> <fill%> <seed> <output.axt> [none|zlib|zstd] [random|perlin]   (generate a tile library)")
	fmt.Println("  mergetiles <output.axt> <input1.axt> [input2.axt ...]          (merge libraries, dropping duplicate tiles)")
	fmt.Println("  tileinfo <tiles.axt>                                            (per-tile occupancy and fingerprint)")
	fmt.Println("  mapid <tiles.axt> <seed>                                        (draw a map id from a library)")
	fmt.Println("  mapinfo <tiles.axt> <mapid>                                     (occupancy and face counts of a map)")
	fmt.Println("  map2glb <tiles.axt> <mapid> <output.glb>                        (export the boundary mesh of a map)")
	fmt.Println("  tiles2glb <tiles.axt> <output.glb>                              (export every tile, one node each)")
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "gentiles":
		if len(os.Args) < 6 || len(os.Args) > 8 {
			usage()
			os.Exit(1)
		}
		count, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fail(err)
		}
		perc, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			fail(err)
		}
		seed, err := strconv.ParseUint(os.Args[4], 10, 64)
		if err != nil {
			fail(err)
		}
		comp := torus.CompZstd
		if len(os.Args) >= 7 {
			if comp, err = torus.ParseCompression(os.Args[6]); err != nil {
				fail(err)
			}
		}
		gen := api.GenRandom
		if len(os.Args) == 8 {
			gen = os.Args[7]
		}
		if err := utils.RunGenerateTiles(count, perc, seed, comp, gen, os.Args[5]); err != nil {
			fail(err)
		}
	case "mergetiles":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.MergeTiles(os.Args[3:], os.Args[2], torus.CompZstd); err != nil {
			fail(err)
		}
	case "tileinfo":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunTileInfo(os.Stdout, os.Args[2]); err != nil {
			fail(err)
		}
		return
	case "mapid":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		seed, err := strconv.ParseUint(os.Args[3], 10, 64)
		if err != nil {
			fail(err)
		}
		if err := utils.RunMapID(os.Stdout, os.Args[2], seed); err != nil {
			fail(err)
		}
		return
	case "mapinfo":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunMapInfo(os.Stdout, os.Args[2], os.Args[3]); err != nil {
			fail(err)
		}
		return
	case "map2glb":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunMap2GLB(os.Args[2], os.Args[3], os.Args[4], view.DefaultColor); err != nil {
			fail(err)
		}
	case "tiles2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunTiles2GLB(os.Args[2], os.Args[3], view.DefaultColor); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
