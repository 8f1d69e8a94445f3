package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/goslice/pkg/gcode"
	"github.com/philipparndt/goslice/pkg/slicer"
	"github.com/philipparndt/goslice/pkg/watcher"
	"github.com/spf13/cobra"
)

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Slice an STL file and emit G-code",
	Long: `Slice a 3D model into horizontal layers and serialize the result as
G-code motion instructions. Output goes to stdout unless -o is given.`,
	Args: cobra.ExactArgs(1),
	Run:  runSlice,
}

func init() {
	addConfigFlags(sliceCmd)
	sliceCmd.Flags().StringP("output", "o", "", "write G-code to a file instead of stdout")
	sliceCmd.Flags().BoolP("watch", "w", false, "re-slice whenever the input file changes")
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, _ := cmd.Flags().GetString("output")
	watch, _ := cmd.Flags().GetBool("watch")

	if err := sliceOnce(filename, output, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !watch {
		return
	}

	fw, err := watcher.New(filename, 250*time.Millisecond, func() {
		fmt.Fprintf(os.Stderr, "%s changed, re-slicing\n", filename)
		if err := sliceOnce(filename, output, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()
	fw.Start()

	fmt.Fprintf(os.Stderr, "Watching %s, press Ctrl+C to stop\n", filename)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

func sliceOnce(filename, output string, cfg slicer.Config) error {
	s, err := loadSlicer(filename, cfg)
	if err != nil {
		return err
	}

	res, err := s.Slice()
	if err != nil {
		return err
	}
	printWarnings(res.Warnings)

	text := gcode.Generate(res.Layers, cfg)
	if output == "" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d layers to %s\n", len(res.Layers), output)
	return nil
}
