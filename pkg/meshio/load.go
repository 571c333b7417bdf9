package meshio

import (
	"os"
	"path/filepath"
	"strings"
)

// Load reads a mesh file, dispatching on its extension (.stl or .nas,
// case-insensitive).
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: ErrUnreadable}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return decodeSTL(f, path)
	case ".nas":
		return decodeNAS(f, path)
	default:
		return nil, &LoadError{Path: path, Err: ErrUnsupportedExt}
	}
}
