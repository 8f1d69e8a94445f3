// Package stl parses STL (Stereolithography) geometry, both ASCII and
// binary, into mesh containers. It never touches the filesystem; the
// host hands it bytes and receives a mesh.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// Parse reads STL data and returns a mesh.
// It automatically detects whether the data is ASCII or binary format.
func Parse(data []byte) (*mesh.Mesh, error) {
	// ASCII files start with "solid"
	if len(data) >= 5 && strings.HasPrefix(string(data[:5]), "solid") {
		return parseASCII(bytes.NewReader(data))
	}
	return parseBinary(bytes.NewReader(data))
}

// parseASCII parses an ASCII STL stream
func parseASCII(reader io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	m := mesh.New("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				x, _ := strconv.ParseFloat(fields[2], 64)
				y, _ := strconv.ParseFloat(fields[3], 64)
				z, _ := strconv.ParseFloat(fields[4], 64)
				currentNormal = geometry.NewVector3(x, y, z)
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				triangle := geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				)
				m.AddTriangle(triangle)
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return m, nil
}

// parseBinary parses a binary STL stream
func parseBinary(reader io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("")

	// 80-byte header, may carry a model name
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	headerStr := string(bytes.TrimRight(header, "\x00"))
	if len(headerStr) > 0 {
		m.Name = headerStr
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var normal, v1, v2, v3 [3]float32
		var attributeByteCount uint16

		if err := binary.Read(reader, binary.LittleEndian, &normal); err != nil {
			return nil, fmt.Errorf("failed to read normal for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v1); err != nil {
			return nil, fmt.Errorf("failed to read v1 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v2); err != nil {
			return nil, fmt.Errorf("failed to read v2 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v3); err != nil {
			return nil, fmt.Errorf("failed to read v3 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &attributeByteCount); err != nil {
			return nil, fmt.Errorf("failed to read attribute for triangle %d: %w", i, err)
		}

		triangle := geometry.NewTriangle(
			geometry.NewVector3(float64(normal[0]), float64(normal[1]), float64(normal[2])),
			geometry.NewVector3(float64(v1[0]), float64(v1[1]), float64(v1[2])),
			geometry.NewVector3(float64(v2[0]), float64(v2[1]), float64(v2[2])),
			geometry.NewVector3(float64(v3[0]), float64(v3[1]), float64(v3[2])),
		)
		m.AddTriangle(triangle)
	}

	return m, nil
}
