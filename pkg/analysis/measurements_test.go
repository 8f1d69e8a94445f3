package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/goslice/pkg/mesh"
)

func TestAnalyzeCube(t *testing.T) {
	result := AnalyzeMesh(mesh.Cube(10))

	if result.TriangleCount != 12 {
		t.Errorf("triangle count: expected 12, got %d", result.TriangleCount)
	}
	if result.EdgeCount != 36 {
		t.Errorf("edge count: expected 36, got %d", result.EdgeCount)
	}
	if math.Abs(result.SurfaceArea-600) > 1e-9 {
		t.Errorf("surface area: expected 600, got %v", result.SurfaceArea)
	}
	if math.Abs(result.Volume-1000) > 1e-9 {
		t.Errorf("volume: expected 1000, got %v", result.Volume)
	}

	expectedDims := 10.0
	if result.Dimensions.X != expectedDims || result.Dimensions.Y != expectedDims || result.Dimensions.Z != expectedDims {
		t.Errorf("dimensions: expected 10x10x10, got %v", result.Dimensions)
	}

	// Shortest edges are the 10-unit face edges, longest the face diagonals
	if math.Abs(result.MinEdgeLength-10) > 1e-9 {
		t.Errorf("min edge: expected 10, got %v", result.MinEdgeLength)
	}
	if math.Abs(result.MaxEdgeLength-10*math.Sqrt2) > 1e-9 {
		t.Errorf("max edge: expected %v, got %v", 10*math.Sqrt2, result.MaxEdgeLength)
	}
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	result := AnalyzeMesh(mesh.New("empty"))

	if result.TriangleCount != 0 || result.EdgeCount != 0 {
		t.Errorf("expected zero counts, got %+v", result)
	}
	if result.MinEdgeLength != 0 || result.MaxEdgeLength != 0 || result.AvgEdgeLength != 0 {
		t.Errorf("expected zero edge lengths, got %+v", result)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(mesh.Cube(2).BoundingBox().Min)
	expected := "(-1.000000, -1.000000, -1.000000)"
	if got != expected {
		t.Errorf("FormatVector: expected %q, got %q", expected, got)
	}
}
