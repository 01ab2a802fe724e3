package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is one directed edge of a face
type Edge struct {
	Start  r3.Vec
	End    r3.Vec
	Length float64
	Face   int
}

// Result aggregates the measurements of a mesh
type Result struct {
	BoundingBox geometry.Box
	Dimensions  r3.Vec
	SurfaceArea float64
	Volume      float64

	FaceCount   int
	PointCount  int
	NormalCount int
	UvCount     int

	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []Edge
}

// Analyze measures the mesh in one pass over its faces: bounding box,
// surface area, enclosed volume, and per-edge statistics. The volume is
// meaningful only for a closed mesh with consistent winding.
func Analyze(m *mesh.Mesh) *Result {
	result := &Result{
		BoundingBox: geometry.NewBox(),
		FaceCount:   m.FaceCount(),
		PointCount:  m.PointCount(),
		NormalCount: m.NormalCount(),
		UvCount:     m.UvCount(),
		Edges:       make([]Edge, 0, 3*m.FaceCount()),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < m.FaceCount(); i++ {
		tri := m.Triangle(i)

		result.SurfaceArea += tri.Area()
		result.Volume += r3.Dot(tri.Points[0], r3.Cross(tri.Points[1], tri.Points[2])) / 6
		for _, p := range tri.Points {
			result.BoundingBox.Extend(p)
		}

		for j := 0; j < 3; j++ {
			start := tri.Points[j]
			end := tri.Points[(j+1)%3]
			length := r3.Norm(r3.Sub(end, start))

			result.Edges = append(result.Edges, Edge{
				Start:  start,
				End:    end,
				Length: length,
				Face:   i,
			})

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.Dimensions = result.BoundingBox.Size()
	result.EdgeCount = len(result.Edges)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// EdgesByLength returns all edges whose length lies in [minLength, maxLength]
func EdgesByLength(result *Result, minLength, maxLength float64) []Edge {
	var edges []Edge
	for _, edge := range result.Edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// LongestEdges returns the n longest edges
func LongestEdges(result *Result, n int) []Edge {
	edges := make([]Edge, len(result.Edges))
	copy(edges, result.Edges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// ShortestEdges returns the n shortest edges
func ShortestEdges(result *Result, n int) []Edge {
	edges := make([]Edge, len(result.Edges))
	copy(edges, result.Edges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// NearestVertex finds the face-referenced vertex nearest to point.
// Points in the attribute table that no face references are skipped.
// On a mesh without faces the distance is math.MaxFloat64.
func NearestVertex(m *mesh.Mesh, point r3.Vec) (r3.Vec, float64) {
	var nearest r3.Vec
	minDistance := math.MaxFloat64

	for i := 0; i < m.FaceCount(); i++ {
		f := m.PointFace(i)
		for j := 0; j < 3; j++ {
			vertex := m.Point(f[j])
			if distance := r3.Norm(r3.Sub(point, vertex)); distance < minDistance {
				minDistance = distance
				nearest = vertex
			}
		}
	}

	return nearest, minDistance
}

// FormatVector formats a 3D vector for display
func FormatVector(v r3.Vec) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatUv formats a UV coordinate for display
func FormatUv(v r2.Vec) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
