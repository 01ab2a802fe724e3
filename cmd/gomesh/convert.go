package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert between the OBJ text format and the binary snapshot",
	Long: `Convert a mesh file between formats. Files with a .obj extension use the
text format; any other extension uses the binary snapshot.`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func isObj(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".obj")
}

func runConvert(cmd *cobra.Command, args []string) {
	input, output := args[0], args[1]

	var m *mesh.Mesh
	if isObj(input) {
		m = loadMesh(input)
	} else {
		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", input, err)
			os.Exit(1)
		}
		m = mesh.New()
		if err := m.UnmarshalBinary(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %s: %v\n", input, err)
			os.Exit(1)
		}
	}

	if isObj(output) {
		if err := obj.WriteFile(output, m); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
	} else {
		data, err := m.MarshalBinary()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding mesh: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Converted %s (%d faces) to %s\n", input, m.FaceCount(), output)
}
