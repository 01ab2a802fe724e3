package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray is a half-line with an origin and a unit direction
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// NewRay creates a ray; dir is normalized
func NewRay(origin, dir r3.Vec) Ray {
	return Ray{Origin: origin, Dir: r3.Unit(dir)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// Intersection is the result of a ray query. T is the ray parameter of the
// hit; a miss is reported as T = +Inf, in which case Point and Normal are
// unspecified.
type Intersection struct {
	T      float64
	Point  r3.Vec
	Normal r3.Vec
}

// Hit reports whether the intersection represents an actual hit
func (i Intersection) Hit() bool {
	return !math.IsInf(i.T, 1)
}
