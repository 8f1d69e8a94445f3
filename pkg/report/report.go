// Package report produces a structured JSON description of a slicing
// run for inspection and diagnostics.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/slicer"
)

// Summary describes one slicing run: the configuration it ran under,
// the mesh extents, and per-layer contour and infill counts.
type Summary struct {
	LayerHeight   float64      `json:"layerHeight"`
	InfillDensity float64      `json:"infillDensity"`
	TotalLayers   int          `json:"totalLayers"`
	BoundingBox   [6]float64   `json:"boundingBox"`
	Layers        []LayerEntry `json:"layers"`
}

// LayerEntry is the per-layer line of the summary.
type LayerEntry struct {
	Height       float64 `json:"height"`
	ContourCount int     `json:"contourCount"`
	InfillCount  int     `json:"infillCount"`
}

// Build assembles the summary value for a layer sequence.
func Build(layers []slicer.Layer, bbox geometry.BoundingBox, cfg slicer.Config) Summary {
	s := Summary{
		LayerHeight:   cfg.LayerHeight,
		InfillDensity: cfg.InfillDensity,
		TotalLayers:   len(layers),
		BoundingBox:   bbox.Array(),
		Layers:        make([]LayerEntry, 0, len(layers)),
	}
	for _, layer := range layers {
		s.Layers = append(s.Layers, LayerEntry{
			Height:       layer.Height,
			ContourCount: len(layer.Contours),
			InfillCount:  len(layer.Infill),
		})
	}
	return s
}

// Generate renders the summary as indented JSON text.
func Generate(layers []slicer.Layer, bbox geometry.BoundingBox, cfg slicer.Config) (string, error) {
	data, err := json.MarshalIndent(Build(layers, bbox, cfg), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	return string(data), nil
}
