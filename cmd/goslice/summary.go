package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Slice an STL file and print a JSON layer summary",
	Long: `Run the slicing pipeline and print a JSON description of the result:
configuration, layer count, bounding box, and per-layer contour and
infill counts.`,
	Args: cobra.ExactArgs(1),
	Run:  runSummary,
}

func init() {
	addConfigFlags(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := loadSlicer(args[0], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text, err := s.Summary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(text)
}
