package slicer

import (
	"github.com/philipparndt/goslice/pkg/geometry"
)

// Contour is an ordered sequence of points in one layer. Closed marks
// a stitched polygon loop; the engine currently always produces open
// polylines in triangle-scan order, so Closed stays false until a
// contour-stitching pass exists to set it.
type Contour struct {
	Points []geometry.Vector3
	Closed bool
}

// Line is one infill segment with exactly two endpoints.
type Line struct {
	A, B geometry.Vector3
}

// Layer is one horizontal cross-section of the mesh. All contour
// points and infill endpoints share the layer height as their Z
// coordinate. A Layer is produced once per run and never mutated
// afterwards.
type Layer struct {
	Height   float64
	Contours []Contour
	Infill   []Line
}
