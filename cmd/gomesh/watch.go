package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a mesh file and re-measure it on every change",
	Long: `Watch a mesh file and print an updated measurement summary whenever it
changes on disk. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]
	printSummary(filename)

	w, err := watcher.New(300 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()
	w.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	}

	if err := w.Add(filename, func(string) {
		fmt.Printf("\n%s changed at %s\n", filename, time.Now().Format(time.TimeOnly))
		printSummary(filename)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
		os.Exit(1)
	}
	w.Start()

	fmt.Printf("\nWatching %s (press Ctrl-C to stop)\n", filename)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}

// printSummary re-parses the file and prints a compact measurement
// summary. Parse failures do not stop the watch; the next change may
// fix the file.
func printSummary(filename string) {
	m := mesh.New()
	if err := obj.ReadFile(filename, m, diagnostics); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		return
	}

	result := analysis.Analyze(m)
	fmt.Printf("Faces: %d  Points: %d  Edges: %d\n",
		result.FaceCount, result.PointCount, result.EdgeCount)
	fmt.Printf("Surface Area: %.6f  Volume: %.6f\n", result.SurfaceArea, result.Volume)
	fmt.Printf("Bounding Box: %s - %s\n",
		analysis.FormatVector(result.BoundingBox.Min),
		analysis.FormatVector(result.BoundingBox.Max))
}
