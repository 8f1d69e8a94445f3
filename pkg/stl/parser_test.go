package stl

import (
	"bytes"
	"encoding/binary"
	"testing"
)

const asciiSTL = `solid pyramid
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 1
      vertex 1 0 1
      vertex 0 1 1
    endloop
  endfacet
endsolid pyramid
`

func TestParseASCII(t *testing.T) {
	m, err := Parse([]byte(asciiSTL))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "pyramid" {
		t.Errorf("name: expected %q, got %q", "pyramid", m.Name)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("triangle count: expected 2, got %d", m.TriangleCount())
	}

	tri := m.Triangles[0]
	if tri.V2.X != 1 || tri.V3.Y != 1 {
		t.Errorf("unexpected vertices in first triangle: %+v", tri)
	}
	if tri.Normal.Z != 1 {
		t.Errorf("normal: expected Z=1, got %+v", tri.Normal)
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, "binary test model")
	buf.Write(header)

	binary.Write(&buf, binary.LittleEndian, uint32(1))
	// normal, then three vertices
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 0})
	binary.Write(&buf, binary.LittleEndian, [3]float32{2, 0, 0})
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 2, 0})
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	m, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "binary test model" {
		t.Errorf("name: expected %q, got %q", "binary test model", m.Name)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("triangle count: expected 1, got %d", m.TriangleCount())
	}
	if m.Triangles[0].V2.X != 2 {
		t.Errorf("unexpected vertices: %+v", m.Triangles[0])
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(3)) // claims 3 triangles, has none

	if _, err := Parse(buf.Bytes()); err == nil {
		t.Error("expected error for truncated binary STL, got nil")
	}
}

func TestSourceMesh(t *testing.T) {
	src := NewSource([]byte(asciiSTL))

	m, err := src.Mesh()
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("triangle count: expected 2, got %d", m.TriangleCount())
	}
}
