package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goslice/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goslice",
	Short: "A CLI tool for slicing STL models into printer toolpaths",
	Long: `goslice converts triangulated 3D models into horizontal layers and
serializes them as G-code motion instructions for additive manufacturing.
It supports both ASCII and binary STL input, straight-line infill with
configurable density, and a JSON layer summary for diagnostics.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
