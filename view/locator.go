package view

import (
	"fmt"
	"io/fs"
	"os"
)

// Resource names resolved through a Locator.
const (
	VertexShaderName   = "space.vert"
	FragmentShaderName = "space.frag"
)

// Locator resolves a resource name to its content.
type Locator interface {
	Bytes(name string) ([]byte, error)
}

// FSLocator reads resources from a file system, e.g. an embed.FS.
type FSLocator struct {
	FS fs.FS
}

func (l FSLocator) Bytes(name string) ([]byte, error) {
	b, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", name, err)
	}
	return b, nil
}

// DirLocator reads resources from a directory on disk.
func DirLocator(dir string) FSLocator {
	return FSLocator{FS: os.DirFS(dir)}
}

// Shaders holds the sources of the space program.
type Shaders struct {
	Vertex   string
	Fragment string
}

// LoadShaders reads both shader sources. It is meant to run once at
// startup; the result is shared by every View.
func LoadShaders(l Locator) (Shaders, error) {
	vert, err := l.Bytes(VertexShaderName)
	if err != nil {
		return Shaders{}, err
	}
	frag, err := l.Bytes(FragmentShaderName)
	if err != nil {
		return Shaders{}, err
	}
	return Shaders{Vertex: string(vert), Fragment: string(frag)}, nil
}
