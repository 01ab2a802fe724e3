package mesh

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Binary layout: six arrays in fixed order (points, normals, uvs, point
// faces, normal faces, uv faces). Each array is an 8-byte little-endian
// element count followed by the raw elements; vector components are
// float64, face indices uint64. The area cache is derived state and is
// not stored.

// MarshalBinary encodes the mesh tables
func (m *Mesh) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range [][]r3.Vec{m.points, m.normals} {
		if err := writeVecs(&buf, s); err != nil {
			return nil, err
		}
	}
	if err := writeUvs(&buf, m.uvs); err != nil {
		return nil, err
	}
	for _, s := range [][]Face{m.pointFaces, m.normalFaces, m.uvFaces} {
		if err := writeFaces(&buf, s); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the mesh contents with the encoded tables.
// Declared element counts are checked against the remaining input before
// allocation; face indices are not range-checked.
func (m *Mesh) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	points, err := readVecs(r)
	if err != nil {
		return fmt.Errorf("points: %w", err)
	}
	normals, err := readVecs(r)
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}
	uvs, err := readUvs(r)
	if err != nil {
		return fmt.Errorf("uvs: %w", err)
	}
	pointFaces, err := readFaces(r)
	if err != nil {
		return fmt.Errorf("point faces: %w", err)
	}
	normalFaces, err := readFaces(r)
	if err != nil {
		return fmt.Errorf("normal faces: %w", err)
	}
	uvFaces, err := readFaces(r)
	if err != nil {
		return fmt.Errorf("uv faces: %w", err)
	}

	m.points = points
	m.normals = normals
	m.uvs = uvs
	m.pointFaces = pointFaces
	m.normalFaces = normalFaces
	m.uvFaces = uvFaces
	m.areaCache = nil
	m.version++
	return nil
}

func writeVecs(w io.Writer, s []r3.Vec) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func writeUvs(w io.Writer, s []r2.Vec) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, s)
}

func writeFaces(w io.Writer, s []Face) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s))); err != nil {
		return err
	}
	idx := make([]uint64, 0, 3*len(s))
	for _, f := range s {
		idx = append(idx, uint64(f[0]), uint64(f[1]), uint64(f[2]))
	}
	return binary.Write(w, binary.LittleEndian, idx)
}

// readCount reads an element count and rejects counts that cannot fit in
// the remaining input
func readCount(r *bytes.Reader, elemSize int) (int, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, fmt.Errorf("failed to read element count: %w", err)
	}
	if n > uint64(r.Len())/uint64(elemSize) {
		return 0, fmt.Errorf("element count %d exceeds remaining data", n)
	}
	return int(n), nil
}

func readVecs(r *bytes.Reader) ([]r3.Vec, error) {
	n, err := readCount(r, 24)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	s := make([]r3.Vec, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, fmt.Errorf("failed to read elements: %w", err)
	}
	return s, nil
}

func readUvs(r *bytes.Reader) ([]r2.Vec, error) {
	n, err := readCount(r, 16)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	s := make([]r2.Vec, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, fmt.Errorf("failed to read elements: %w", err)
	}
	return s, nil
}

func readFaces(r *bytes.Reader) ([]Face, error) {
	n, err := readCount(r, 24)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	idx := make([]uint64, 3*n)
	if err := binary.Read(r, binary.LittleEndian, idx); err != nil {
		return nil, fmt.Errorf("failed to read elements: %w", err)
	}
	s := make([]Face, n)
	for i := range s {
		s[i] = Face{int(idx[3*i]), int(idx[3*i+1]), int(idx[3*i+2])}
	}
	return s, nil
}
