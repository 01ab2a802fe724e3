package mesh

import (
	"errors"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNoFaces is returned when sampling a mesh without any faces
var ErrNoFaces = errors.New("mesh: no faces to sample")

// cacheValid reports whether the area cache matches the current topology.
// The cache is valid only when its length is faceCount+1 and it was built
// at the current mesh version.
func (m *Mesh) cacheValid() bool {
	return len(m.areaCache) == m.FaceCount()+1 && m.cacheVersion == m.version
}

func (m *Mesh) ensureAreaCache() {
	if m.cacheValid() {
		return
	}
	m.rebuildAreaCache()
}

// rebuildAreaCache recomputes the normalized cumulative area distribution:
// cache[0] = 0, cache[i] = sum of the first i face areas, scaled so the
// last entry is exactly 1.
func (m *Mesh) rebuildAreaCache() {
	n := m.FaceCount()
	areas := make([]float64, n)
	for i := range areas {
		areas[i] = m.Triangle(i).Area()
	}

	cache := make([]float64, n+1)
	floats.CumSum(cache[1:], areas)
	if total := cache[n]; total > 0 {
		floats.Scale(1/total, cache)
	}

	m.areaCache = cache
	m.cacheVersion = m.version
	m.cacheRebuilds++
}

// Sample returns a point uniformly distributed over the mesh surface area,
// along with the surface normal there. u1 selects the face through the
// cumulative area distribution; u2 and u3 place the point on it. All three
// are independent uniforms in [0, 1). Sampling a mesh without faces
// returns ErrNoFaces.
func (m *Mesh) Sample(u1, u2, u3 float64) (point, normal r3.Vec, err error) {
	if m.FaceCount() == 0 {
		return r3.Vec{}, r3.Vec{}, ErrNoFaces
	}
	m.ensureAreaCache()

	// Lower bound: the first cache entry >= u1 marks the selected face.
	face := sort.SearchFloat64s(m.areaCache, u1)
	if face > 0 {
		face--
	}
	if face >= m.FaceCount() {
		face = m.FaceCount() - 1
	}

	point, normal = m.Triangle(face).Sample(u2, u3)
	return point, normal, nil
}

// SampleRand draws the three uniforms from rng and samples the surface
func (m *Mesh) SampleRand(rng *rand.Rand) (point, normal r3.Vec, err error) {
	return m.Sample(rng.Float64(), rng.Float64(), rng.Float64())
}
