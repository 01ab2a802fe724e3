package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "A CLI tool for inspecting, measuring, and transforming triangle meshes",
	Long: `gomesh analyzes indexed triangle meshes stored in the OBJ text format.
It measures dimensions, surface area, and volume, answers closest-point and
surface-sampling queries, synthesizes normals, and converts between the text
format and a compact binary snapshot.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
