package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SetFaceNormals replaces the normal table with flat per-face normals: one
// slot per point, every face writing its geometric normal into all three
// referenced slots. Faces sharing a point overwrite each other in face
// order, so the last face wins. The normal faces become a copy of the
// point faces.
func (m *Mesh) SetFaceNormals() {
	m.normals = make([]r3.Vec, len(m.points))
	m.normalFaces = append([]Face(nil), m.pointFaces...)

	for i := range m.pointFaces {
		n := m.Triangle(i).FaceNormal()
		f := m.pointFaces[i]
		m.normals[f[0]] = n
		m.normals[f[1]] = n
		m.normals[f[2]] = n
	}
}

// SetAngleWeightedNormals replaces the normal table with per-vertex
// pseudo-normals: every face corner contributes its face normal weighted
// by the interior angle at that corner, and each point's accumulated
// normal is divided by its total angle weight. Points referenced by no
// face keep a zero normal. Zero-area faces contribute nothing. The normal
// faces become a copy of the point faces.
func (m *Mesh) SetAngleWeightedNormals() {
	pseudoNormals := make([]r3.Vec, len(m.points))
	angleWeights := make([]float64, len(m.points))

	for _, f := range m.pointFaces {
		for j := 0; j < 3; j++ {
			cur := m.points[f[j]]
			next := m.points[f[(j+1)%3]]
			prev := m.points[f[(j+2)%3]]

			e0 := r3.Unit(r3.Sub(next, cur))
			e1 := r3.Unit(r3.Sub(prev, cur))
			cross := r3.Cross(e0, e1)
			c2 := r3.Norm2(cross)
			if !(c2 > 0) {
				continue
			}
			normal := r3.Scale(1/math.Sqrt(c2), cross)

			cosAngle := r3.Dot(e0, e1)
			if cosAngle < -1 {
				cosAngle = -1
			} else if cosAngle > 1 {
				cosAngle = 1
			}
			angle := math.Acos(cosAngle)

			angleWeights[f[j]] += angle
			pseudoNormals[f[j]] = r3.Add(pseudoNormals[f[j]], r3.Scale(angle, normal))
		}
	}

	for i := range pseudoNormals {
		if angleWeights[i] > 0 {
			pseudoNormals[i] = r3.Scale(1/angleWeights[i], pseudoNormals[i])
		}
	}

	m.normals = pseudoNormals
	m.normalFaces = append([]Face(nil), m.pointFaces...)
}
