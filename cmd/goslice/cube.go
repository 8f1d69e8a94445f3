package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goslice"
	"github.com/philipparndt/goslice/pkg/slicer"
	"github.com/spf13/cobra"
)

var cubeCmd = &cobra.Command{
	Use:   "cube",
	Short: "Slice the built-in demo cube",
	Long: `Slice a synthetic cube centered at the origin, without any input
file. Useful for trying out print settings and inspecting the G-code
the pipeline produces.`,
	Args: cobra.NoArgs,
	Run:  runCube,
}

func init() {
	addConfigFlags(cubeCmd)
	cubeCmd.Flags().Float64("size", 10.0, "cube side length in mm")
	cubeCmd.Flags().Bool("summary", false, "print the JSON layer summary instead of G-code")
	rootCmd.AddCommand(cubeCmd)
}

func runCube(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size, _ := cmd.Flags().GetFloat64("size")
	asSummary, _ := cmd.Flags().GetBool("summary")

	s := goslice.NewWithConfig(cfg)
	if err := s.LoadMesh(slicer.CubeSource{Size: size}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if asSummary {
		text, err := s.Summary()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	text, err := s.GCode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(text)
}
