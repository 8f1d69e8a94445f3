package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// MeasurementResult contains aggregate measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh computes aggregate statistics for a mesh
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		TriangleCount: m.TriangleCount(),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range m.Triangles {
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
			result.EdgeCount++
		}
	}

	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	} else {
		result.MinEdgeLength = 0
	}

	return result
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
