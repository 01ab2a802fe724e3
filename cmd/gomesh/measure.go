package main

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	measureX float64
	measureY float64
	measureZ float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure the distance from a point to the mesh surface",
	Long: `Find the point on the mesh surface closest to the given query point,
the distance to it, the surface normal there, and the nearest vertex.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&measureX, "x", 0.0, "X coordinate of the query point")
	measureCmd.Flags().Float64Var(&measureY, "y", 0.0, "Y coordinate of the query point")
	measureCmd.Flags().Float64Var(&measureZ, "z", 0.0, "Z coordinate of the query point")
}

func runMeasure(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])
	p := r3.Vec{X: measureX, Y: measureY, Z: measureZ}

	fmt.Println("Surface Measurement")
	fmt.Println("===================")
	fmt.Printf("Query point: %s\n\n", analysis.FormatVector(p))

	closest := m.ClosestPoint(p)
	distance := m.ClosestDistance(p)
	normal := m.ClosestNormal(p)

	fmt.Printf("Closest surface point: %s\n", analysis.FormatVector(closest))
	fmt.Printf("Distance to surface: %.6f units\n", distance)
	fmt.Printf("Surface normal: %s\n", analysis.FormatVector(normal))

	vertex, vertexDistance := analysis.NearestVertex(m, p)
	fmt.Printf("\nNearest vertex: %s\n", analysis.FormatVector(vertex))
	fmt.Printf("Distance to vertex: %.6f units\n", vertexDistance)
}
