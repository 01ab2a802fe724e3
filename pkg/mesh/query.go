package mesh

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Every query below is a linear scan over the faces. With n faces a query
// costs O(n); there is no acceleration structure.

// ClosestPoint returns the point on the mesh surface nearest to p. Ties
// keep the earliest-scanned face. On a mesh without faces every component
// of the result is math.MaxFloat64.
func (m *Mesh) ClosestPoint(p r3.Vec) r3.Vec {
	best := r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	bestDist2 := math.MaxFloat64

	for i := 0; i < m.FaceCount(); i++ {
		q := m.Triangle(i).ClosestPoint(p)
		if d2 := r3.Norm2(r3.Sub(p, q)); d2 < bestDist2 {
			bestDist2 = d2
			best = q
		}
	}
	return best
}

// ClosestNormal returns the surface normal at the point on the mesh nearest
// to p. On a mesh without faces the result is (1, 0, 0).
func (m *Mesh) ClosestNormal(p r3.Vec) r3.Vec {
	best := r3.Vec{X: 1, Y: 0, Z: 0}
	bestDist2 := math.MaxFloat64

	for i := 0; i < m.FaceCount(); i++ {
		tri := m.Triangle(i)
		q := tri.ClosestPoint(p)
		if d2 := r3.Norm2(r3.Sub(p, q)); d2 < bestDist2 {
			bestDist2 = d2
			best = tri.ClosestNormal(p)
		}
	}
	return best
}

// ClosestDistance returns the distance from p to the mesh surface, or
// math.MaxFloat64 for a mesh without faces
func (m *Mesh) ClosestDistance(p r3.Vec) float64 {
	best := math.MaxFloat64
	for i := 0; i < m.FaceCount(); i++ {
		if d := m.Triangle(i).ClosestDistance(p); d < best {
			best = d
		}
	}
	return best
}

// Intersects reports whether the ray hits any face, returning on the first
// hit found in scan order
func (m *Mesh) Intersects(ray geometry.Ray) bool {
	for i := 0; i < m.FaceCount(); i++ {
		if m.Triangle(i).Intersects(ray) {
			return true
		}
	}
	return false
}

// ClosestIntersection returns the nearest intersection of the ray with the
// mesh. When no face is hit, the result carries T = +Inf.
func (m *Mesh) ClosestIntersection(ray geometry.Ray) geometry.Intersection {
	best := geometry.Intersection{T: math.Inf(1)}
	for i := 0; i < m.FaceCount(); i++ {
		if hit := m.Triangle(i).ClosestIntersection(ray); hit.T < best.T {
			best = hit
		}
	}
	return best
}

// BoundingBox returns the axis-aligned box over all face vertices. Points
// never referenced by a face do not contribute.
func (m *Mesh) BoundingBox() geometry.Box {
	box := geometry.NewBox()
	for _, f := range m.pointFaces {
		box.Extend(m.points[f[0]])
		box.Extend(m.points[f[1]])
		box.Extend(m.points[f[2]])
	}
	return box
}

// Area returns the total surface area of the mesh
func (m *Mesh) Area() float64 {
	total := 0.0
	for i := 0; i < m.FaceCount(); i++ {
		total += m.Triangle(i).Area()
	}
	return total
}

// Volume returns the signed enclosed volume, summing the tetrahedron
// volumes spanned by each face and the origin. The result is meaningful
// only for a closed mesh with consistent winding.
func (m *Mesh) Volume() float64 {
	volume := 0.0
	for i := 0; i < m.FaceCount(); i++ {
		tri := m.Triangle(i)
		volume += r3.Dot(tri.Points[0], r3.Cross(tri.Points[1], tri.Points[2])) / 6
	}
	return volume
}
