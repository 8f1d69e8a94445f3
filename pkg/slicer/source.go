package slicer

import (
	"errors"

	"github.com/philipparndt/goslice/pkg/mesh"
)

// ErrNoMesh is returned when a pipeline operation runs before any
// mesh has been installed. There is no silent fallback geometry;
// demo mode is an explicit CubeSource.
var ErrNoMesh = errors.New("no mesh loaded")

// MeshSource produces the mesh to slice. Real model ingestion (STL
// parsing) and test doubles both plug in here; the pipeline slices
// whatever mesh the source yields and never knows where it came from.
type MeshSource interface {
	Mesh() (*mesh.Mesh, error)
}

// CubeSource is the demo-mode source: a synthetic cube of the given
// side length, centered at the origin. A zero Size means 10 units.
type CubeSource struct {
	Size float64
}

// Mesh builds the synthetic cube
func (c CubeSource) Mesh() (*mesh.Mesh, error) {
	size := c.Size
	if size == 0 {
		size = 10.0
	}
	return mesh.Cube(size), nil
}
