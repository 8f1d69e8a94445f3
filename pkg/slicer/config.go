package slicer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InfillMode selects how infill lines are generated for a layer.
type InfillMode string

const (
	// InfillRaster spans the full mesh bounding box, ignoring the
	// contour shape. This is the historical behavior.
	InfillRaster InfillMode = "raster"

	// InfillContour clips each infill line to the layer contour
	// by even-odd crossing parity.
	InfillContour InfillMode = "contour"
)

// Config holds the slicing parameters for one run. It is set by the
// caller before slicing and read-only while a run is in flight; the
// engine itself performs no validation, so degenerate values propagate
// as described on the individual operations.
type Config struct {
	LayerHeight   float64    `yaml:"layerHeight"`
	InfillDensity float64    `yaml:"infillDensity"`
	InfillMode    InfillMode `yaml:"infillMode"`
}

// DefaultConfig returns the standard print settings:
// 0.2mm layers, 20% raster infill.
func DefaultConfig() Config {
	return Config{
		LayerHeight:   0.2,
		InfillDensity: 20.0,
		InfillMode:    InfillRaster,
	}
}

// Validate checks the configuration for values the engine would
// propagate as degenerate output. Hosts that want hard failures call
// this at their boundary; library callers may skip it and accept the
// documented propagation semantics.
func (c Config) Validate() error {
	if c.LayerHeight <= 0 {
		return fmt.Errorf("layer height must be positive, got %g", c.LayerHeight)
	}
	if c.InfillDensity < 0 {
		return fmt.Errorf("infill density must not be negative, got %g", c.InfillDensity)
	}
	switch c.InfillMode {
	case InfillRaster, InfillContour:
	default:
		return fmt.Errorf("unknown infill mode %q", c.InfillMode)
	}
	return nil
}

// LoadProfile reads a YAML print profile and returns the resulting
// configuration. Fields absent from the file keep their defaults.
func LoadProfile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read profile: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return cfg, nil
}
