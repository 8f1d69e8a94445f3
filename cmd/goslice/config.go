package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goslice"
	"github.com/philipparndt/goslice/pkg/slicer"
	"github.com/philipparndt/goslice/pkg/stl"
	"github.com/spf13/cobra"
)

// addConfigFlags registers the print-settings flags shared by the
// slicing commands.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("layer-height", "l", 0.2, "layer height in mm")
	cmd.Flags().Float64P("infill-density", "d", 20.0, "infill density in percent")
	cmd.Flags().String("infill-mode", "raster", "infill strategy: raster or contour")
	cmd.Flags().StringP("profile", "p", "", "YAML print profile file")
}

// resolveConfig builds the slicer configuration from an optional
// profile file with explicit flags layered on top.
func resolveConfig(cmd *cobra.Command) (slicer.Config, error) {
	cfg := slicer.DefaultConfig()

	if profile, _ := cmd.Flags().GetString("profile"); profile != "" {
		loaded, err := slicer.LoadProfile(profile)
		if err != nil {
			return slicer.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("layer-height") {
		cfg.LayerHeight, _ = cmd.Flags().GetFloat64("layer-height")
	}
	if cmd.Flags().Changed("infill-density") {
		cfg.InfillDensity, _ = cmd.Flags().GetFloat64("infill-density")
	}
	if cmd.Flags().Changed("infill-mode") {
		mode, _ := cmd.Flags().GetString("infill-mode")
		cfg.InfillMode = slicer.InfillMode(mode)
	}

	if err := cfg.Validate(); err != nil {
		return slicer.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadSlicer reads an STL file and returns a slicer with the mesh
// installed.
func loadSlicer(filename string, cfg slicer.Config) (*goslice.Slicer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	s := goslice.NewWithConfig(cfg)
	if err := s.LoadMesh(stl.NewSource(data)); err != nil {
		return nil, err
	}
	return s, nil
}

// printWarnings reports geometry warnings to stderr without failing
// the run.
func printWarnings(warnings []slicer.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
