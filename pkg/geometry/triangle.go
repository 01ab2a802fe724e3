package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a snapshot of one triangular face: three ordered points with
// their normals and UV coordinates. It is a value type, materialized on
// demand and never stored.
type Triangle struct {
	Points  [3]r3.Vec
	Normals [3]r3.Vec
	Uvs     [3]r2.Vec
}

// NewTriangle creates a triangle from three points. All three normals are
// set to the geometric face normal; UVs are zero.
func NewTriangle(p0, p1, p2 r3.Vec) Triangle {
	t := Triangle{Points: [3]r3.Vec{p0, p1, p2}}
	n := t.FaceNormal()
	t.Normals = [3]r3.Vec{n, n, n}
	return t
}

// FaceNormal returns the unit normal of the plane spanned by the triangle,
// following the winding order of the points. For a degenerate (zero-area)
// triangle the cross product is zero and the result is a NaN vector.
func (t Triangle) FaceNormal() r3.Vec {
	e1 := r3.Sub(t.Points[1], t.Points[0])
	e2 := r3.Sub(t.Points[2], t.Points[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	e1 := r3.Sub(t.Points[1], t.Points[0])
	e2 := r3.Sub(t.Points[2], t.Points[0])
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}

// closestWeights returns the barycentric weights of the point on the filled
// triangle nearest to p. The classification walks the seven regions (three
// vertices, three edges, interior); degenerate triangles with zero-length
// edges resolve to a vertex instead of dividing by zero.
func (t Triangle) closestWeights(p r3.Vec) (w0, w1, w2 float64) {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]

	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	ap := r3.Sub(p, a)
	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return 1, 0, 0
	}

	bp := r3.Sub(p, b)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return 0, 1, 0
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		// A zero denominator means edge AB has zero length; let the
		// remaining regions claim the point instead.
		if denom := d1 - d3; denom > 0 {
			v := d1 / denom
			return 1 - v, v, 0
		}
	}

	cp := r3.Sub(p, c)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return 0, 0, 1
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		if denom := d2 - d6; denom > 0 {
			w := d2 / denom
			return 1 - w, 0, w
		}
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		if denom := (d4 - d3) + (d5 - d6); denom > 0 {
			w := (d4 - d3) / denom
			return 0, 1 - w, w
		}
	}

	if denom := va + vb + vc; denom > 0 {
		v := vb / denom
		w := vc / denom
		return 1 - v - w, v, w
	}

	// Fully degenerate triangle: no region test resolved, fall back to the
	// nearest vertex.
	da := r3.Norm2(ap)
	db := r3.Norm2(bp)
	dc := r3.Norm2(cp)
	switch {
	case da <= db && da <= dc:
		return 1, 0, 0
	case db <= dc:
		return 0, 1, 0
	default:
		return 0, 0, 1
	}
}

// ClosestPoint returns the point on the filled triangle nearest to p
func (t Triangle) ClosestPoint(p r3.Vec) r3.Vec {
	w0, w1, w2 := t.closestWeights(p)
	return t.blendPoints(w0, w1, w2)
}

// ClosestNormal returns the surface normal at ClosestPoint(p). A vertex
// region yields that vertex's stored normal exactly; edge and interior
// regions yield the normalized barycentric blend of the stored normals.
func (t Triangle) ClosestNormal(p r3.Vec) r3.Vec {
	w0, w1, w2 := t.closestWeights(p)
	switch {
	case w1 == 0 && w2 == 0:
		return t.Normals[0]
	case w0 == 0 && w2 == 0:
		return t.Normals[1]
	case w0 == 0 && w1 == 0:
		return t.Normals[2]
	}
	return r3.Unit(t.blendNormals(w0, w1, w2))
}

// ClosestDistance returns the distance from p to the nearest point on the
// filled triangle
func (t Triangle) ClosestDistance(p r3.Vec) float64 {
	return r3.Norm(r3.Sub(p, t.ClosestPoint(p)))
}

// rayEps rejects near-parallel rays and hits at the ray origin.
const rayEps = 1e-7

// intersect runs the Möller–Trumbore test. On a hit it returns the ray
// parameter and the barycentric coordinates of the hit point.
func (t Triangle) intersect(r Ray) (tHit, u, v float64, ok bool) {
	e1 := r3.Sub(t.Points[1], t.Points[0])
	e2 := r3.Sub(t.Points[2], t.Points[0])

	h := r3.Cross(r.Dir, e2)
	det := r3.Dot(e1, h)
	if det > -rayEps && det < rayEps {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	s := r3.Sub(r.Origin, t.Points[0])
	u = invDet * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := r3.Cross(s, e1)
	v = invDet * r3.Dot(r.Dir, q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	tHit = invDet * r3.Dot(e2, q)
	if tHit <= rayEps {
		return 0, 0, 0, false
	}
	return tHit, u, v, true
}

// Intersects reports whether the ray hits the triangle
func (t Triangle) Intersects(r Ray) bool {
	_, _, _, ok := t.intersect(r)
	return ok
}

// ClosestIntersection returns the intersection of the ray with the triangle.
// When the ray misses, the result carries T = +Inf and the remaining fields
// are unspecified.
func (t Triangle) ClosestIntersection(r Ray) Intersection {
	tHit, u, v, ok := t.intersect(r)
	if !ok {
		return Intersection{T: math.Inf(1)}
	}
	return Intersection{
		T:      tHit,
		Point:  r.At(tHit),
		Normal: r3.Unit(t.blendNormals(1-u-v, u, v)),
	}
}

// Sample returns a point uniformly distributed over the triangle's area,
// along with the interpolated surface normal there. u1 and u2 are
// independent uniforms in [0, 1).
func (t Triangle) Sample(u1, u2 float64) (point, normal r3.Vec) {
	su := math.Sqrt(u1)
	w0 := 1 - su
	w1 := su * (1 - u2)
	w2 := su * u2
	return t.blendPoints(w0, w1, w2), r3.Unit(t.blendNormals(w0, w1, w2))
}

// BoundingBox returns the axis-aligned box enclosing the triangle
func (t Triangle) BoundingBox() Box {
	box := NewBox()
	box.Extend(t.Points[0])
	box.Extend(t.Points[1])
	box.Extend(t.Points[2])
	return box
}

// Centroid returns the center of mass of the triangle
func (t Triangle) Centroid() r3.Vec {
	sum := r3.Add(r3.Add(t.Points[0], t.Points[1]), t.Points[2])
	return r3.Scale(1.0/3.0, sum)
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		r3.Norm(r3.Sub(t.Points[1], t.Points[0])),
		r3.Norm(r3.Sub(t.Points[2], t.Points[1])),
		r3.Norm(r3.Sub(t.Points[0], t.Points[2])),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

func (t Triangle) blendPoints(w0, w1, w2 float64) r3.Vec {
	return r3.Add(
		r3.Add(r3.Scale(w0, t.Points[0]), r3.Scale(w1, t.Points[1])),
		r3.Scale(w2, t.Points[2]),
	)
}

func (t Triangle) blendNormals(w0, w1, w2 float64) r3.Vec {
	return r3.Add(
		r3.Add(r3.Scale(w0, t.Normals[0]), r3.Scale(w1, t.Normals[1])),
		r3.Scale(w2, t.Normals[2]),
	)
}
