package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Event classifies one line of the interchange format.
type Event int

const (
	// EventIgnored covers blank lines, comments, unknown keywords, and
	// face lines with more than three vertices. Quadrilateral and
	// polygonal faces are syntactically accepted but produce no stored
	// face.
	EventIgnored Event = iota
	EventVertex
	EventUv
	EventNormal
	EventFace
)

// Classify maps the whitespace-split fields of a line to its event.
// An empty or comment line classifies as EventIgnored.
func Classify(fields []string) Event {
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return EventIgnored
	}
	switch fields[0] {
	case "v":
		return EventVertex
	case "vt":
		return EventUv
	case "vn":
		return EventNormal
	case "f":
		if len(fields) > 4 {
			return EventIgnored
		}
		return EventFace
	}
	return EventIgnored
}

// ReadOptions carries advisory line-numbered diagnostic callbacks. They
// never abort the parse; the error return of Read is the sole failure
// signal. A nil options pointer and nil callbacks are allowed.
type ReadOptions struct {
	Info    func(line int, msg string)
	Warning func(line int, msg string)
	Error   func(line int, msg string)
}

func (o *ReadOptions) info(line int, msg string) {
	if o != nil && o.Info != nil {
		o.Info(line, msg)
	}
}

func (o *ReadOptions) warning(line int, msg string) {
	if o != nil && o.Warning != nil {
		o.Warning(line, msg)
	}
}

func (o *ReadOptions) errorf(line int, msg string) {
	if o != nil && o.Error != nil {
		o.Error(line, msg)
	}
}

// Read streams the text format from r and appends every recognized
// geometric event to m. On failure the mesh keeps everything appended
// before the failing line; there is no rollback.
func Read(r io.Reader, m *mesh.Mesh, opts *ReadOptions) error {
	rd := reader{mesh: m, opts: opts}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rd.line++
		if err := rd.dispatch(sc.Text()); err != nil {
			opts.errorf(rd.line, err.Error())
			return fmt.Errorf("line %d: %w", rd.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// ReadFile reads the file at path into m
func ReadFile(path string, m *mesh.Mesh, opts *ReadOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, m, opts)
}

type reader struct {
	mesh *mesh.Mesh
	opts *ReadOptions
	line int
}

// dispatch classifies one line and routes it to the matching handler.
// The ignored branch is deliberate: quad and polygon faces are accepted
// by the grammar but add no face, and unknown keywords are skipped.
func (rd *reader) dispatch(text string) error {
	fields := strings.Fields(text)

	switch Classify(fields) {
	case EventVertex:
		return rd.vertex(fields)
	case EventUv:
		return rd.uv(fields)
	case EventNormal:
		return rd.normal(fields)
	case EventFace:
		return rd.face(fields)
	}

	if len(fields) > 0 && !strings.HasPrefix(fields[0], "#") {
		if fields[0] == "f" {
			rd.opts.warning(rd.line, fmt.Sprintf("face with %d vertices ignored", len(fields)-1))
		} else {
			rd.opts.info(rd.line, fmt.Sprintf("keyword %q skipped", fields[0]))
		}
	}
	return nil
}

func (rd *reader) vertex(fields []string) error {
	c, err := components(fields, 3)
	if err != nil {
		return err
	}
	rd.mesh.AddPoint(r3.Vec{X: c[0], Y: c[1], Z: c[2]})
	return nil
}

func (rd *reader) uv(fields []string) error {
	c, err := components(fields, 2)
	if err != nil {
		return err
	}
	rd.mesh.AddUv(r2.Vec{X: c[0], Y: c[1]})
	return nil
}

func (rd *reader) normal(fields []string) error {
	c, err := components(fields, 3)
	if err != nil {
		return err
	}
	rd.mesh.AddNormal(r3.Vec{X: c[0], Y: c[1], Z: c[2]})
	return nil
}

// components parses n float fields after the keyword. Extra fields
// (such as the optional w on a vertex) are allowed and ignored.
func components(fields []string, n int) ([]float64, error) {
	if len(fields) < n+1 {
		return nil, fmt.Errorf("%s needs %d components, got %d", fields[0], n, len(fields)-1)
	}
	c := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s component %q: %w", fields[0], fields[i+1], err)
		}
		c[i] = v
	}
	return c, nil
}

// faceSlot is one corner of a face line: a point index with optional
// UV and normal indices.
type faceSlot struct {
	point, uv, normal int
	hasUv, hasNormal  bool
}

// parseSlot parses "p", "p/t", "p//n", or "p/t/n"
func parseSlot(s string) (faceSlot, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return faceSlot{}, fmt.Errorf("face slot %q has too many index fields", s)
	}

	var slot faceSlot
	var err error
	if slot.point, err = strconv.Atoi(parts[0]); err != nil {
		return faceSlot{}, fmt.Errorf("face slot %q: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if slot.uv, err = strconv.Atoi(parts[1]); err != nil {
			return faceSlot{}, fmt.Errorf("face slot %q: %w", s, err)
		}
		slot.hasUv = true
	}
	if len(parts) > 2 && parts[2] != "" {
		if slot.normal, err = strconv.Atoi(parts[2]); err != nil {
			return faceSlot{}, fmt.Errorf("face slot %q: %w", s, err)
		}
		slot.hasNormal = true
	}
	return slot, nil
}

// fixIndex translates a 1-based index, negative meaning relative from
// the end of a table of the given size, to an absolute 0-based index
func fixIndex(idx, count int, kind string) (int, error) {
	switch {
	case idx > 0:
		if idx > count {
			return 0, fmt.Errorf("%s index %d out of range (have %d)", kind, idx, count)
		}
		return idx - 1, nil
	case idx < 0:
		if -idx > count {
			return 0, fmt.Errorf("%s index %d out of range (have %d)", kind, idx, count)
		}
		return count + idx, nil
	}
	return 0, fmt.Errorf("%s index 0 is not valid", kind)
}

func (rd *reader) face(fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("face needs 3 vertices, got %d", len(fields)-1)
	}

	var slots [3]faceSlot
	for i := 0; i < 3; i++ {
		slot, err := parseSlot(fields[i+1])
		if err != nil {
			return err
		}
		if i > 0 && (slot.hasUv != slots[0].hasUv || slot.hasNormal != slots[0].hasNormal) {
			return fmt.Errorf("face mixes index styles: %q vs %q", fields[1], fields[i+1])
		}
		slots[i] = slot
	}

	m := rd.mesh
	if m.FaceCount() > 0 {
		if slots[0].hasNormal != m.HasNormalFaces() || slots[0].hasUv != m.HasUvFaces() {
			return fmt.Errorf("face style differs from previous faces")
		}
	}

	var pf, nf, uf mesh.Face
	for i, slot := range slots {
		var err error
		if pf[i], err = fixIndex(slot.point, m.PointCount(), "point"); err != nil {
			return err
		}
		if slot.hasUv {
			if uf[i], err = fixIndex(slot.uv, m.UvCount(), "uv"); err != nil {
				return err
			}
		}
		if slot.hasNormal {
			if nf[i], err = fixIndex(slot.normal, m.NormalCount(), "normal"); err != nil {
				return err
			}
		}
	}

	switch {
	case slots[0].hasUv && slots[0].hasNormal:
		m.AddPointNormalUvFace(pf, nf, uf)
	case slots[0].hasNormal:
		m.AddPointNormalFace(pf, nf)
	case slots[0].hasUv:
		m.AddPointUvFace(pf, uf)
	default:
		m.AddPointFace(pf)
	}
	return nil
}
