package mesh

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Face names three indices into one of the attribute tables
type Face [3]int

// Mesh is an indexed triangle mesh. Points, normals, and UVs live in three
// independent attribute tables; three face tables of index triples define
// the triangles. The point face table is authoritative for the face count;
// the normal and UV face tables are either empty or of equal length
// (normals and UVs are optional per mesh, not per face).
//
// The mesh is not safe for concurrent mutation. Single writer, many
// readers.
type Mesh struct {
	points  []r3.Vec
	normals []r3.Vec
	uvs     []r2.Vec

	pointFaces  []Face
	normalFaces []Face
	uvFaces     []Face

	// version counts mutations of points and pointFaces; the area cache
	// records the version it was built at.
	version       uint64
	areaCache     []float64
	cacheVersion  uint64
	cacheRebuilds int
}

// New creates an empty mesh
func New() *Mesh {
	return &Mesh{}
}

// AddPoint appends a point to the point table
func (m *Mesh) AddPoint(p r3.Vec) {
	m.points = append(m.points, p)
	m.version++
}

// AddNormal appends a normal to the normal table
func (m *Mesh) AddNormal(n r3.Vec) {
	m.normals = append(m.normals, n)
}

// AddUv appends a UV coordinate to the UV table
func (m *Mesh) AddUv(uv r2.Vec) {
	m.uvs = append(m.uvs, uv)
}

// AddPointFace appends a face with point indices only.
// Panics if the mesh already carries normal or UV faces.
func (m *Mesh) AddPointFace(f Face) {
	if len(m.normalFaces) > 0 {
		panic("mesh: point-only face added to a mesh with normal faces")
	}
	if len(m.uvFaces) > 0 {
		panic("mesh: point-only face added to a mesh with uv faces")
	}
	m.pointFaces = append(m.pointFaces, f)
	m.version++
}

// AddPointNormalFace appends a face with point and normal indices.
// Panics if the face tables would fall out of step.
func (m *Mesh) AddPointNormalFace(pf, nf Face) {
	if len(m.normalFaces) != len(m.pointFaces) {
		panic("mesh: normal face table out of step with point faces")
	}
	if len(m.uvFaces) > 0 {
		panic("mesh: point-normal face added to a mesh with uv faces")
	}
	m.pointFaces = append(m.pointFaces, pf)
	m.normalFaces = append(m.normalFaces, nf)
	m.version++
}

// AddPointUvFace appends a face with point and UV indices.
// Panics if the face tables would fall out of step.
func (m *Mesh) AddPointUvFace(pf, uf Face) {
	if len(m.uvFaces) != len(m.pointFaces) {
		panic("mesh: uv face table out of step with point faces")
	}
	if len(m.normalFaces) > 0 {
		panic("mesh: point-uv face added to a mesh with normal faces")
	}
	m.pointFaces = append(m.pointFaces, pf)
	m.uvFaces = append(m.uvFaces, uf)
	m.version++
}

// AddPointNormalUvFace appends a face with point, normal, and UV indices.
// Panics if the face tables would fall out of step.
func (m *Mesh) AddPointNormalUvFace(pf, nf, uf Face) {
	if len(m.normalFaces) != len(m.pointFaces) {
		panic("mesh: normal face table out of step with point faces")
	}
	if len(m.uvFaces) != len(m.pointFaces) {
		panic("mesh: uv face table out of step with point faces")
	}
	m.pointFaces = append(m.pointFaces, pf)
	m.normalFaces = append(m.normalFaces, nf)
	m.uvFaces = append(m.uvFaces, uf)
	m.version++
}

// AddTriangle appends the triangle's points, normals, and UVs to the
// attribute tables and one entry to every face table referencing them
func (m *Mesh) AddTriangle(t geometry.Triangle) {
	vStart := len(m.points)
	nStart := len(m.normals)
	uvStart := len(m.uvs)
	for j := 0; j < 3; j++ {
		m.points = append(m.points, t.Points[j])
		m.normals = append(m.normals, t.Normals[j])
		m.uvs = append(m.uvs, t.Uvs[j])
	}
	m.AddPointNormalUvFace(
		Face{vStart, vStart + 1, vStart + 2},
		Face{nStart, nStart + 1, nStart + 2},
		Face{uvStart, uvStart + 1, uvStart + 2},
	)
}

// Point returns the i-th point
func (m *Mesh) Point(i int) r3.Vec { return m.points[i] }

// SetPoint replaces the i-th point
func (m *Mesh) SetPoint(i int, p r3.Vec) {
	m.points[i] = p
	m.version++
}

// Normal returns the i-th normal
func (m *Mesh) Normal(i int) r3.Vec { return m.normals[i] }

// SetNormal replaces the i-th normal
func (m *Mesh) SetNormal(i int, n r3.Vec) { m.normals[i] = n }

// Uv returns the i-th UV coordinate
func (m *Mesh) Uv(i int) r2.Vec { return m.uvs[i] }

// SetUv replaces the i-th UV coordinate
func (m *Mesh) SetUv(i int, uv r2.Vec) { m.uvs[i] = uv }

// PointFace returns the i-th point face
func (m *Mesh) PointFace(i int) Face { return m.pointFaces[i] }

// NormalFace returns the i-th normal face
func (m *Mesh) NormalFace(i int) Face { return m.normalFaces[i] }

// UvFace returns the i-th UV face
func (m *Mesh) UvFace(i int) Face { return m.uvFaces[i] }

// PointCount returns the number of points
func (m *Mesh) PointCount() int { return len(m.points) }

// NormalCount returns the number of normals
func (m *Mesh) NormalCount() int { return len(m.normals) }

// UvCount returns the number of UV coordinates
func (m *Mesh) UvCount() int { return len(m.uvs) }

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int { return len(m.pointFaces) }

// HasNormals reports whether the normal table is non-empty
func (m *Mesh) HasNormals() bool { return len(m.normals) > 0 }

// HasUvs reports whether the UV table is non-empty
func (m *Mesh) HasUvs() bool { return len(m.uvs) > 0 }

// HasNormalFaces reports whether faces carry normal indices
func (m *Mesh) HasNormalFaces() bool { return len(m.normalFaces) > 0 }

// HasUvFaces reports whether faces carry UV indices
func (m *Mesh) HasUvFaces() bool { return len(m.uvFaces) > 0 }

// Triangle materializes face i as a value. When the mesh carries no normal
// faces, all three normals are the face's geometric normal; without UV
// faces, UVs are zero.
func (m *Mesh) Triangle(i int) geometry.Triangle {
	var tri geometry.Triangle

	pf := m.pointFaces[i]
	for j := 0; j < 3; j++ {
		tri.Points[j] = m.points[pf[j]]
	}

	if m.HasUvFaces() {
		uf := m.uvFaces[i]
		for j := 0; j < 3; j++ {
			tri.Uvs[j] = m.uvs[uf[j]]
		}
	}

	if m.HasNormalFaces() {
		nf := m.normalFaces[i]
		for j := 0; j < 3; j++ {
			tri.Normals[j] = m.normals[nf[j]]
		}
	} else {
		n := tri.FaceNormal()
		for j := 0; j < 3; j++ {
			tri.Normals[j] = n
		}
	}

	return tri
}

// Clear resets the mesh to empty, dropping the area cache
func (m *Mesh) Clear() {
	m.points = nil
	m.normals = nil
	m.uvs = nil
	m.pointFaces = nil
	m.normalFaces = nil
	m.uvFaces = nil
	m.areaCache = nil
	m.version++
}

// Set replaces the mesh contents with a deep copy of other
func (m *Mesh) Set(other *Mesh) {
	cacheValid := other.cacheValid()

	m.points = append([]r3.Vec(nil), other.points...)
	m.normals = append([]r3.Vec(nil), other.normals...)
	m.uvs = append([]r2.Vec(nil), other.uvs...)
	m.pointFaces = append([]Face(nil), other.pointFaces...)
	m.normalFaces = append([]Face(nil), other.normalFaces...)
	m.uvFaces = append([]Face(nil), other.uvFaces...)

	m.version++
	if cacheValid {
		m.areaCache = append([]float64(nil), other.areaCache...)
		m.cacheVersion = m.version
	} else {
		m.areaCache = nil
	}
}

// Swap exchanges the contents of the two meshes
func (m *Mesh) Swap(other *Mesh) {
	*m, *other = *other, *m
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	c := New()
	c.Set(m)
	return c
}
