package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/obj"
	"gonum.org/v1/gonum/spatial/r3"
)

// diagnostics routes the parser's advisory callbacks to stderr
var diagnostics = &obj.ReadOptions{
	Warning: func(line int, msg string) {
		fmt.Fprintf(os.Stderr, "Warning (line %d): %s\n", line, msg)
	},
	Error: func(line int, msg string) {
		fmt.Fprintf(os.Stderr, "Error (line %d): %s\n", line, msg)
	},
}

// loadMesh parses the mesh file, exiting on failure
func loadMesh(path string) *mesh.Mesh {
	m := mesh.New()
	if err := obj.ReadFile(path, m, diagnostics); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		os.Exit(1)
	}
	return m
}

// saveMesh writes the mesh, exiting on failure
func saveMesh(path string, m *mesh.Mesh) {
	if err := obj.WriteFile(path, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing mesh file: %v\n", err)
		os.Exit(1)
	}
}

// parseVec parses a comma-separated "x,y,z" flag value
func parseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var c [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("component %q: %w", part, err)
		}
		c[i] = v
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}
