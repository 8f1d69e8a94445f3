// Package slicer converts a triangle mesh into horizontal layers,
// each carrying a perimeter contour and an infill pattern. The
// geometry is deliberately approximate: each intersecting triangle
// contributes a single averaged point instead of a chord, and the
// resulting contour is an open polyline in triangle-scan order.
package slicer

import (
	"fmt"
	"math"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// Warning reports a recoverable geometric degeneracy encountered
// during slicing, such as a zero-length Z edge producing a non-finite
// intersection point. The offending point still flows into the layer.
type Warning struct {
	Layer    int
	Triangle int
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("layer %d, triangle %d: %s", w.Layer, w.Triangle, w.Message)
}

// Result is the output of one slicing run. Ownership of the layers
// transfers fully to the caller; the engine retains nothing.
type Result struct {
	Layers   []Layer
	Warnings []Warning
}

// Slice produces the ordered layer sequence for a mesh under a
// configuration. Plane heights start at the mesh's minimum Z and step
// by the layer height while they remain at or below the maximum Z.
// The inclusive upper bound means the final plane may sit exactly on
// maxZ or just below it depending on floating-point accumulation;
// whether that is intended or an accumulation artifact is an open
// question, so the behavior is kept as-is.
//
// A non-positive or non-finite layer height would never advance the
// plane; Slice returns an empty result in that case instead of
// looping forever.
func Slice(m *mesh.Mesh, cfg Config) Result {
	var res Result

	if cfg.LayerHeight <= 0 || math.IsNaN(cfg.LayerHeight) || math.IsInf(cfg.LayerHeight, 0) {
		return res
	}

	bbox := m.BoundingBox()
	minZ := bbox.Min.Z
	maxZ := bbox.Max.Z

	for z := minZ; z <= maxZ; z += cfg.LayerHeight {
		layerIndex := len(res.Layers)
		layer := Layer{Height: z}

		var points []geometry.Vector3
		for i, tri := range m.Triangles {
			if !intersectsPlane(tri, z) {
				continue
			}
			p := intersectionPoint(tri, z)
			if !p.IsFinite() {
				res.Warnings = append(res.Warnings, Warning{
					Layer:    layerIndex,
					Triangle: i,
					Message:  "degenerate Z edge produced a non-finite intersection point",
				})
			}
			points = append(points, p)
		}

		if len(points) > 0 {
			layer.Contours = []Contour{{Points: points}}
			layer.Infill = Infill(layer.Contours[0], z, bbox, cfg)
		}

		// Empty layers are still emitted: one layer per plane height.
		res.Layers = append(res.Layers, layer)
	}

	return res
}

// intersectsPlane reports whether any triangle edge brackets the
// plane height, endpoints inclusive in either orientation. A triangle
// entirely on one side of the plane never matches; one exactly
// coplanar with it matches trivially on all edges.
func intersectsPlane(tri geometry.Triangle, z float64) bool {
	return edgeBrackets(tri.V1, tri.V2, z) ||
		edgeBrackets(tri.V2, tri.V3, z) ||
		edgeBrackets(tri.V3, tri.V1, z)
}

func edgeBrackets(a, b geometry.Vector3, z float64) bool {
	return (a.Z <= z && z <= b.Z) || (b.Z <= z && z <= a.Z)
}

// intersectionPoint interpolates along the v1->v2 and v2->v3 edges at
// the plane height and averages the two results, with Z forced onto
// the plane. A proper plane-triangle intersection would yield a chord
// of two points; the single averaged point is the historical
// approximation this engine preserves. An edge with zero Z extent
// makes the interpolation parameter divide by zero, and the resulting
// non-finite coordinates flow through unfiltered.
func intersectionPoint(tri geometry.Triangle, z float64) geometry.Vector3 {
	t1 := (z - tri.V1.Z) / (tri.V2.Z - tri.V1.Z)
	t2 := (z - tri.V2.Z) / (tri.V3.Z - tri.V2.Z)

	p1 := tri.V1.Lerp(tri.V2, t1)
	p2 := tri.V2.Lerp(tri.V3, t2)

	return geometry.Vector3{
		X: (p1.X + p2.X) / 2,
		Y: (p1.Y + p2.Y) / 2,
		Z: z,
	}
}
