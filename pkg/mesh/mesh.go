package mesh

import (
	"github.com/philipparndt/goslice/pkg/geometry"
)

// Mesh is an ordered collection of triangles representing the solid
// to slice. No manifoldness, closedness, or winding invariant is
// required or checked; the slicing pipeline only ever reads a Mesh.
type Mesh struct {
	Name      string
	Triangles []geometry.Triangle
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the mesh
func (m *Mesh) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty returns true if the mesh has no triangles
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// BoundingBox calculates the axis-aligned extents covering every
// vertex of every triangle. It is recomputed on every call, never
// cached. An empty mesh yields the all-zero box; callers that can
// see legitimately empty meshes must treat that sentinel specially.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	if m.IsEmpty() {
		return geometry.BoundingBox{}
	}
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
