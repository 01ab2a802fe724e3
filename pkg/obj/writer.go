package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Write serializes the mesh to the text format: all points, then UVs
// and normals when present, then one face line per face. Face slots are
// written as p, p/t, p//n, or p/t/n with 1-based indices; the bare //
// keeps the normal index in third position when the mesh has no UVs.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < m.PointCount(); i++ {
		p := m.Point(i)
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	for i := 0; i < m.UvCount(); i++ {
		uv := m.Uv(i)
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(uv.X), ftoa(uv.Y))
	}
	for i := 0; i < m.NormalCount(); i++ {
		n := m.Normal(i)
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n.X), ftoa(n.Y), ftoa(n.Z))
	}

	hasUvs := m.HasUvFaces()
	hasNormals := m.HasNormalFaces()
	for i := 0; i < m.FaceCount(); i++ {
		pf := m.PointFace(i)
		var nf, uf mesh.Face
		if hasNormals {
			nf = m.NormalFace(i)
		}
		if hasUvs {
			uf = m.UvFace(i)
		}

		bw.WriteString("f")
		for j := 0; j < 3; j++ {
			switch {
			case hasUvs && hasNormals:
				fmt.Fprintf(bw, " %d/%d/%d", pf[j]+1, uf[j]+1, nf[j]+1)
			case hasNormals:
				fmt.Fprintf(bw, " %d//%d", pf[j]+1, nf[j]+1)
			case hasUvs:
				fmt.Fprintf(bw, " %d/%d", pf[j]+1, uf[j]+1)
			default:
				fmt.Fprintf(bw, " %d", pf[j]+1)
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// WriteFile serializes the mesh to the file at path
func WriteFile(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ftoa formats a coordinate with the shortest representation that
// round-trips exactly through ParseFloat
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
