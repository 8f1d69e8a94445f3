package stl

import (
	"fmt"

	"github.com/philipparndt/goslice/pkg/mesh"
)

// Source is a mesh source backed by raw STL bytes. It satisfies the
// slicer's MeshSource capability so the pipeline never needs to know
// about file formats.
type Source struct {
	Data []byte
}

// NewSource wraps raw STL data as a mesh source
func NewSource(data []byte) Source {
	return Source{Data: data}
}

// Mesh parses the STL data into a mesh
func (s Source) Mesh() (*mesh.Mesh, error) {
	m, err := Parse(s.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STL data: %w", err)
	}
	return m, nil
}
