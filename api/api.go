package api

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/axuy/axuy/torus"
)

// ParseMapID parses a comma separated list of tile ids, e.g. "3,1,4,...".
func ParseMapID(arg string) ([]int, error) {
	s := strings.Trim(arg, "[] ")
	if s == "" {
		return nil, fmt.Errorf("empty map id")
	}
	var mapid []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse map id '%s': %w", p, err)
		}
		mapid = append(mapid, i)
	}
	if len(mapid) != torus.MapIDLen {
		return nil, fmt.Errorf("%w: want %d ids, got %d", torus.ErrMapID, torus.MapIDLen, len(mapid))
	}
	return mapid, nil
}

// FormatMapID is the inverse of ParseMapID.
func FormatMapID(mapid []int) string {
	parts := make([]string, len(mapid))
	for i, id := range mapid {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Tile generators understood by GenerateLibrary.
const (
	GenRandom = "random"
	GenPerlin = "perlin"
)

// GenerateLibrary builds count tiles with the named generator. The same
// seed always gives the same library.
func GenerateLibrary(gen string, count int, fillPercent float64, seed uint64) (torus.TileLibrary, error) {
	switch gen {
	case GenRandom, "":
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		return torus.GenerateTiles(r, count, fillPercent), nil
	case GenPerlin:
		return torus.GeneratePerlinTiles(int64(seed), count, fillPercent), nil
	}
	return nil, fmt.Errorf("unknown tile generator %q", gen)
}

// GenerateTilesBytes is GenerateLibrary encoded as a tile library blob.
func GenerateTilesBytes(gen string, count int, fillPercent float64, seed uint64, comp torus.Compression) ([]byte, error) {
	lib, err := GenerateLibrary(gen, count, fillPercent, seed)
	if err != nil {
		return nil, err
	}
	return torus.EncodeTiles(lib, comp)
}

// MapToGLB assembles the map selected by mapid from a tile library blob
// and returns its boundary mesh as .glb bytes.
func MapToGLB(tilesBytes []byte, mapid []int, color [3]float32) ([]byte, error) {
	lib, _, err := torus.DecodeTiles(tilesBytes)
	if err != nil {
		return nil, err
	}
	space, err := torus.Assemble(lib, mapid)
	if err != nil {
		return nil, err
	}
	doc := newDocument("axuy map -> GLB", color)
	addMesh(doc, "SpaceMesh", torus.BuildFaces(space).Vertices(), [3]float64{})
	return encodeBinary(doc)
}

// TilesToGLB returns one node per tile of the library, laid out side by
// side on a square grid.
func TilesToGLB(tilesBytes []byte, color [3]float32) ([]byte, error) {
	lib, _, err := torus.DecodeTiles(tilesBytes)
	if err != nil {
		return nil, err
	}
	if len(lib) == 0 {
		return nil, fmt.Errorf("empty tile library")
	}
	doc := newDocument("axuy tiles -> GLB", color)
	cols := int(math.Ceil(math.Sqrt(float64(len(lib)))))
	// one tile width of gap between tiles
	step := float64(2 * torus.TileSide)
	for i := range lib {
		faces := torus.BuildFacesWith(lib[i].Space(), torus.HomeOnly)
		r, c := i/cols, i%cols
		addMesh(doc, fmt.Sprintf("tile-%d", i), faces.Vertices(), [3]float64{float64(c) * step, 0, float64(r) * step})
	}
	return encodeBinary(doc)
}

func newDocument(generator string, color [3]float32) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = generator
	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{float64(color[0]), float64(color[1]), float64(color[2]), 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	// faces are single quads seen from both sides
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque, DoubleSided: true}}
	return doc
}

// addMesh appends a triangle-list mesh and a node translated by offset.
// Empty meshes are skipped.
func addMesh(doc *gltf.Document, name string, vertices []float32, offset [3]float64) {
	if len(vertices) == 0 {
		return
	}
	positions := make([][3]float32, len(vertices)/3)
	for i := range positions {
		positions[i] = [3]float32{vertices[3*i], vertices[3*i+1], vertices[3*i+2]}
	}
	indices := make([]uint32, len(positions))
	for i := range indices {
		indices[i] = uint32(i)
	}
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, flatNormals(positions))
	indicesAccessor := modeler.WriteIndices(doc, indices)
	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
		},
		Indices:  gltf.Index(indicesAccessor),
		Material: gltf.Index(0),
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(len(doc.Meshes) - 1), Translation: offset})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
}

// flatNormals computes one normal per triangle, shared by its three vertices.
func flatNormals(positions [][3]float32) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		p0, p1, p2 := positions[i], positions[i+1], positions[i+2]
		vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			vec1[1]*vec2[2] - vec1[2]*vec2[1],
			vec1[2]*vec2[0] - vec1[0]*vec2[2],
			vec1[0]*vec2[1] - vec1[1]*vec2[0],
		}
		length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[i], normals[i+1], normals[i+2] = cross, cross, cross
	}
	return normals
}

func encodeBinary(doc *gltf.Document) ([]byte, error) {
	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
