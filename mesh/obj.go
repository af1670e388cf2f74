package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/uvalign/uv"
)

// ErrOBJSyntax is wrapped by every OBJ parse error.
var ErrOBJSyntax = errors.New("mesh: malformed obj")

// ReadOBJ builds a mesh from Wavefront OBJ data. Only positions (v), texture
// coordinates (vt) and faces (f) are read; other statements are ignored.
// Polygons are kept as-is, not triangulated.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := New()
	var uvs []uv.Vec2
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			xyz, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrOBJSyntax, line, err)
			}
			m.AddVert(r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		case "vt":
			st, err := parseFloats(fields[1:], 1)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrOBJSyntax, line, err)
			}
			p := uv.V(st[0], 0)
			if len(st) > 1 {
				p.Y = st[1]
			}
			uvs = append(uvs, p)
		case "f":
			verts, corners, err := parseFace(fields[1:], m.NumVerts(), uvs)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrOBJSyntax, line, err)
			}
			if _, err := m.AddFace(verts, corners); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseFloats(fields []string, min int) ([]float64, error) {
	if len(fields) < min {
		return nil, fmt.Errorf("want %d values, got %d", min, len(fields))
	}
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseFace reads the v, v/vt, v//vn and v/vt/vn corner forms. Corners
// without a texture index get a zero UV.
func parseFace(fields []string, nverts int, uvs []uv.Vec2) ([]VertID, []uv.Vec2, error) {
	verts := make([]VertID, len(fields))
	corners := make([]uv.Vec2, len(fields))
	for i, s := range fields {
		parts := strings.Split(s, "/")
		vi, err := resolveIndex(parts[0], nverts)
		if err != nil {
			return nil, nil, fmt.Errorf("vertex %q: %v", s, err)
		}
		verts[i] = VertID(vi)
		if len(parts) > 1 && parts[1] != "" {
			ti, err := resolveIndex(parts[1], len(uvs))
			if err != nil {
				return nil, nil, fmt.Errorf("texture coordinate %q: %v", s, err)
			}
			corners[i] = uvs[ti]
		}
	}
	return verts, corners, nil
}

// resolveIndex converts a 1-based or negative (relative) OBJ index to a
// 0-based index into a list of length n.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
}

// WriteOBJ writes the mesh as Wavefront OBJ. Every loop gets its own vt
// statement so per-corner UVs survive seams.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# uvalign: %d vertices, %d faces\n", len(m.verts), len(m.faces))
	for _, v := range m.verts {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v.co.X), ftoa(v.co.Y), ftoa(v.co.Z))
	}
	for _, l := range m.loops {
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(l.uv.X), ftoa(l.uv.Y))
	}
	for _, f := range m.faces {
		bw.WriteString("f")
		for _, l := range f.loops {
			fmt.Fprintf(bw, " %d/%d", m.loops[l].vert+1, l+1)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
