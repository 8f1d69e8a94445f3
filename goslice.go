// Package goslice ties the slicing pipeline together behind the
// boundary the host layer consumes: configure, load a mesh, slice to
// G-code or a JSON summary. Hosts own all file and network IO; this
// package only transforms an in-memory mesh into text.
package goslice

import (
	"fmt"

	"github.com/philipparndt/goslice/pkg/gcode"
	"github.com/philipparndt/goslice/pkg/mesh"
	"github.com/philipparndt/goslice/pkg/report"
	"github.com/philipparndt/goslice/pkg/slicer"
)

// Slicer holds one configuration and one installed mesh. It is not
// safe for concurrent use; give each run its own Slicer, or make sure
// the mesh and configuration are not touched while a run is in flight.
type Slicer struct {
	cfg  slicer.Config
	mesh *mesh.Mesh
}

// New creates a slicer with the default configuration
func New() *Slicer {
	return &Slicer{cfg: slicer.DefaultConfig()}
}

// NewWithConfig creates a slicer with an explicit configuration
func NewWithConfig(cfg slicer.Config) *Slicer {
	return &Slicer{cfg: cfg}
}

// Configure sets the layer height and infill density for subsequent
// runs. No validation is performed; degenerate values propagate the
// way the engine documents. Hosts wanting hard failures run
// Config.Validate at their own boundary.
func (s *Slicer) Configure(layerHeight, infillDensity float64) {
	s.cfg.LayerHeight = layerHeight
	s.cfg.InfillDensity = infillDensity
}

// Config returns the current configuration
func (s *Slicer) Config() slicer.Config {
	return s.cfg
}

// SetConfig replaces the whole configuration between runs
func (s *Slicer) SetConfig(cfg slicer.Config) {
	s.cfg = cfg
}

// LoadMesh installs the mesh produced by the source. The pipeline
// slices whatever mesh this call installs; there is no fallback
// geometry when the source fails.
func (s *Slicer) LoadMesh(src slicer.MeshSource) error {
	m, err := src.Mesh()
	if err != nil {
		return fmt.Errorf("failed to load mesh: %w", err)
	}
	s.mesh = m
	return nil
}

// Mesh returns the installed mesh, or nil when none is loaded
func (s *Slicer) Mesh() *mesh.Mesh {
	return s.mesh
}

// BoundingBox returns the mesh extents as
// [minX, minY, minZ, maxX, maxY, maxZ]. With no mesh installed, or an
// empty one, all six values are zero.
func (s *Slicer) BoundingBox() [6]float64 {
	if s.mesh == nil {
		return [6]float64{}
	}
	return s.mesh.BoundingBox().Array()
}

// Slice runs the engine over the installed mesh and returns the full
// layer sequence with any geometry warnings.
func (s *Slicer) Slice() (slicer.Result, error) {
	if s.mesh == nil {
		return slicer.Result{}, slicer.ErrNoMesh
	}
	return slicer.Slice(s.mesh, s.cfg), nil
}

// GCode runs the full pipeline and returns the toolpath text.
func (s *Slicer) GCode() (string, error) {
	res, err := s.Slice()
	if err != nil {
		return "", err
	}
	return gcode.Generate(res.Layers, s.cfg), nil
}

// Summary runs the full pipeline and returns the JSON layer summary.
func (s *Slicer) Summary() (string, error) {
	res, err := s.Slice()
	if err != nil {
		return "", err
	}
	return report.Generate(res.Layers, s.mesh.BoundingBox(), s.cfg)
}
