package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 3, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 4, Z: 0},
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 3, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 4, Z: 0},
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 3, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 4, Z: 0},
	)

	perimeter := tri.Perimeter()
	expected := 12.0

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleFaceNormal(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)

	normal := tri.FaceNormal()
	expected := r3.Vec{X: 0, Y: 0, Z: 1}

	if r3.Norm(r3.Sub(normal, expected)) > 1e-10 {
		t.Errorf("FaceNormal failed: expected %v, got %v", expected, normal)
	}

	// Reversed winding flips the normal
	flipped := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
	)
	if n := flipped.FaceNormal(); r3.Norm(r3.Sub(n, r3.Vec{X: 0, Y: 0, Z: -1})) > 1e-10 {
		t.Errorf("FaceNormal winding failed: expected (0,0,-1), got %v", n)
	}
}

func TestTriangleFaceNormalDegenerate(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 2, Y: 0, Z: 0},
	)

	normal := tri.FaceNormal()
	if !math.IsNaN(normal.X) || !math.IsNaN(normal.Y) || !math.IsNaN(normal.Z) {
		t.Errorf("degenerate FaceNormal: expected NaN vector, got %v", normal)
	}
}

func TestTriangleClosestPoint(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)

	tests := []struct {
		name  string
		point r3.Vec
		want  r3.Vec
	}{
		{"interior", r3.Vec{X: 0.25, Y: 0.25, Z: 1}, r3.Vec{X: 0.25, Y: 0.25, Z: 0}},
		{"above vertex far away", r3.Vec{X: 0, Y: 0, Z: 5}, r3.Vec{X: 0, Y: 0, Z: 0}},
		{"vertex A region", r3.Vec{X: -1, Y: -1, Z: 0}, r3.Vec{X: 0, Y: 0, Z: 0}},
		{"vertex B region", r3.Vec{X: 2, Y: -1, Z: 0}, r3.Vec{X: 1, Y: 0, Z: 0}},
		{"vertex C region", r3.Vec{X: -0.5, Y: 2, Z: 0}, r3.Vec{X: 0, Y: 1, Z: 0}},
		{"edge AB region", r3.Vec{X: 0.5, Y: -1, Z: 0}, r3.Vec{X: 0.5, Y: 0, Z: 0}},
		{"edge AC region", r3.Vec{X: -1, Y: 0.5, Z: 0}, r3.Vec{X: 0, Y: 0.5, Z: 0}},
		{"edge BC region", r3.Vec{X: 1, Y: 1, Z: 0}, r3.Vec{X: 0.5, Y: 0.5, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tri.ClosestPoint(tt.point)
			if r3.Norm(r3.Sub(got, tt.want)) > 1e-10 {
				t.Errorf("ClosestPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestTriangleClosestPointDegenerate(t *testing.T) {
	// Two coincident vertices: the filled "triangle" collapses to a segment
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
	)

	got := tri.ClosestPoint(r3.Vec{X: 0.5, Y: 1, Z: 0})
	want := r3.Vec{X: 0.5, Y: 0, Z: 0}
	if r3.Norm(r3.Sub(got, want)) > 1e-10 {
		t.Errorf("ClosestPoint on degenerate triangle = %v, want %v", got, want)
	}

	// Fully collapsed triangle
	point := NewTriangle(
		r3.Vec{X: 1, Y: 2, Z: 3},
		r3.Vec{X: 1, Y: 2, Z: 3},
		r3.Vec{X: 1, Y: 2, Z: 3},
	)
	got = point.ClosestPoint(r3.Vec{X: 5, Y: 5, Z: 5})
	want = r3.Vec{X: 1, Y: 2, Z: 3}
	if r3.Norm(r3.Sub(got, want)) > 1e-10 {
		t.Errorf("ClosestPoint on point triangle = %v, want %v", got, want)
	}
}

func TestTriangleClosestNormal(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)
	tri.Normals = [3]r3.Vec{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}

	// Vertex region: the stored normal, exactly
	got := tri.ClosestNormal(r3.Vec{X: -1, Y: -1, Z: 0})
	if got != tri.Normals[0] {
		t.Errorf("vertex region normal: expected %v, got %v", tri.Normals[0], got)
	}

	got = tri.ClosestNormal(r3.Vec{X: 2, Y: -1, Z: 0})
	if got != tri.Normals[1] {
		t.Errorf("vertex region normal: expected %v, got %v", tri.Normals[1], got)
	}

	// Edge AB midpoint: normalized blend of the endpoint normals
	got = tri.ClosestNormal(r3.Vec{X: 0.5, Y: -1, Z: 0})
	want := r3.Unit(r3.Vec{X: 0.5, Y: 0, Z: 0.5})
	if r3.Norm(r3.Sub(got, want)) > 1e-10 {
		t.Errorf("edge region normal: expected %v, got %v", want, got)
	}
}

func TestTriangleClosestDistance(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)

	dist := tri.ClosestDistance(r3.Vec{X: 0, Y: 0, Z: 5})
	if math.Abs(dist-5.0) > 1e-10 {
		t.Errorf("ClosestDistance failed: expected 5.0, got %v", dist)
	}

	dist = tri.ClosestDistance(r3.Vec{X: 0.25, Y: 0.25, Z: 0})
	if math.Abs(dist) > 1e-10 {
		t.Errorf("ClosestDistance on surface: expected 0, got %v", dist)
	}
}

func TestTriangleClosestIntersection(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)

	ray := NewRay(r3.Vec{X: 0.2, Y: 0.2, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1})
	hit := tri.ClosestIntersection(ray)

	if !hit.Hit() {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-5.0) > 1e-10 {
		t.Errorf("hit parameter failed: expected 5.0, got %v", hit.T)
	}
	expectedPoint := r3.Vec{X: 0.2, Y: 0.2, Z: 0}
	if r3.Norm(r3.Sub(hit.Point, expectedPoint)) > 1e-10 {
		t.Errorf("hit point failed: expected %v, got %v", expectedPoint, hit.Point)
	}
	expectedNormal := r3.Vec{X: 0, Y: 0, Z: 1}
	if r3.Norm(r3.Sub(hit.Normal, expectedNormal)) > 1e-10 {
		t.Errorf("hit normal failed: expected %v, got %v", expectedNormal, hit.Normal)
	}
}

func TestTriangleIntersectionMiss(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)

	tests := []struct {
		name string
		ray  Ray
	}{
		{"pointing away", NewRay(r3.Vec{X: 0.2, Y: 0.2, Z: 5}, r3.Vec{X: 0, Y: 0, Z: 1})},
		{"parallel to plane", NewRay(r3.Vec{X: 0, Y: 0, Z: 1}, r3.Vec{X: 1, Y: 0, Z: 0})},
		{"outside the triangle", NewRay(r3.Vec{X: 2, Y: 2, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tri.Intersects(tt.ray) {
				t.Error("expected no intersection")
			}
			hit := tri.ClosestIntersection(tt.ray)
			if hit.Hit() {
				t.Errorf("expected T = +Inf, got %v", hit.T)
			}
		})
	}
}

func TestTriangleSample(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
	)

	// u1 = 0 collapses the sample onto the first vertex
	point, normal := tri.Sample(0, 0.7)
	if r3.Norm(r3.Sub(point, tri.Points[0])) > 1e-10 {
		t.Errorf("Sample(0, u2) should return the first vertex, got %v", point)
	}
	if r3.Norm(r3.Sub(normal, r3.Vec{X: 0, Y: 0, Z: 1})) > 1e-10 {
		t.Errorf("sampled normal failed: got %v", normal)
	}

	// Every sample lands inside the triangle
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			u1 := float64(i) / 10
			u2 := float64(j) / 10
			p, _ := tri.Sample(u1, u2)
			if p.X < -1e-12 || p.Y < -1e-12 || p.X+p.Y > 1+1e-12 || math.Abs(p.Z) > 1e-12 {
				t.Fatalf("Sample(%v, %v) = %v escapes the triangle", u1, u2, p)
			}
		}
	}
}

func TestTriangleBoundingBox(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: -1, Y: 2, Z: 0},
		r3.Vec{X: 3, Y: 0, Z: -2},
		r3.Vec{X: 1, Y: 5, Z: 4},
	)

	box := tri.BoundingBox()
	wantMin := r3.Vec{X: -1, Y: 0, Z: -2}
	wantMax := r3.Vec{X: 3, Y: 5, Z: 4}

	if box.Min != wantMin {
		t.Errorf("Min failed: expected %v, got %v", wantMin, box.Min)
	}
	if box.Max != wantMax {
		t.Errorf("Max failed: expected %v, got %v", wantMax, box.Max)
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(
		r3.Vec{X: 0, Y: 0, Z: 0},
		r3.Vec{X: 3, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 3, Z: 0},
	)

	centroid := tri.Centroid()
	expected := r3.Vec{X: 1, Y: 1, Z: 0}

	if r3.Norm(r3.Sub(centroid, expected)) > 1e-10 {
		t.Errorf("Centroid failed: expected %v, got %v", expected, centroid)
	}
}
