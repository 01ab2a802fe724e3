package mesh

import (
	"github.com/philipparndt/gomesh/internal/parallel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scale multiplies every point by factor. The points are updated in
// parallel; the call returns after all of them are written.
func (m *Mesh) Scale(factor float64) {
	parallel.For(0, len(m.points), func(i int) {
		m.points[i] = r3.Scale(factor, m.points[i])
	})
	m.version++
}

// Translate adds offset to every point
func (m *Mesh) Translate(offset r3.Vec) {
	parallel.For(0, len(m.points), func(i int) {
		m.points[i] = r3.Add(m.points[i], offset)
	})
	m.version++
}

// Rotate applies the rotation to every point and every normal
func (m *Mesh) Rotate(rot r3.Rotation) {
	parallel.For(0, len(m.points), func(i int) {
		m.points[i] = rot.Rotate(m.points[i])
	})
	parallel.For(0, len(m.normals), func(i int) {
		m.normals[i] = rot.Rotate(m.normals[i])
	})
	m.version++
}
