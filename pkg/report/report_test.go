package report

import (
	"encoding/json"
	"testing"

	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/slicer"
)

func TestBuild(t *testing.T) {
	cfg := slicer.DefaultConfig()
	cfg.LayerHeight = 2
	cfg.InfillDensity = 20

	m := mesh.Cube(10)
	res := slicer.Slice(m, cfg)

	s := Build(res.Layers, m.BoundingBox(), cfg)

	if s.LayerHeight != 2 || s.InfillDensity != 20 {
		t.Errorf("config echo wrong: %+v", s)
	}
	if s.TotalLayers != len(res.Layers) {
		t.Errorf("totalLayers %d != layer count %d", s.TotalLayers, len(res.Layers))
	}
	if s.BoundingBox != [6]float64{-5, -5, -5, 5, 5, 5} {
		t.Errorf("bounding box wrong: %v", s.BoundingBox)
	}
	if len(s.Layers) != len(res.Layers) {
		t.Fatalf("layer entries %d != layer count %d", len(s.Layers), len(res.Layers))
	}
	for i, entry := range s.Layers {
		if entry.Height != res.Layers[i].Height {
			t.Errorf("layer %d height mismatch: %v vs %v", i, entry.Height, res.Layers[i].Height)
		}
		if entry.ContourCount != len(res.Layers[i].Contours) {
			t.Errorf("layer %d contour count mismatch", i)
		}
		if entry.InfillCount != len(res.Layers[i].Infill) {
			t.Errorf("layer %d infill count mismatch", i)
		}
	}
}

func TestGenerateShape(t *testing.T) {
	cfg := slicer.DefaultConfig()
	cfg.LayerHeight = 2

	m := mesh.Cube(10)
	res := slicer.Slice(m, cfg)

	text, err := Generate(res.Layers, m.BoundingBox(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{"layerHeight", "infillDensity", "totalLayers", "boundingBox", "layers"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	if bbox, ok := decoded["boundingBox"].([]any); !ok || len(bbox) != 6 {
		t.Errorf("boundingBox must be a 6-element array, got %v", decoded["boundingBox"])
	}
	if layers, ok := decoded["layers"].([]any); !ok || len(layers) != len(res.Layers) {
		t.Errorf("layers must list every layer, got %v", decoded["layers"])
	}
}

func TestGenerateEmptyRun(t *testing.T) {
	m := mesh.New("empty")
	text, err := Generate(nil, m.BoundingBox(), slicer.DefaultConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var s Summary
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if s.TotalLayers != 0 || len(s.Layers) != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
	if s.BoundingBox != [6]float64{} {
		t.Errorf("expected all-zero bounding box, got %v", s.BoundingBox)
	}
}
