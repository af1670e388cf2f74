package uvalign

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

const eps = 1e-9

// newGrid builds cols x rows quads over vertices (i, j). Face (i, j) has id
// j*cols+i and corners (i,j), (i+1,j), (i+1,j+1), (i,j+1). uvf and posf
// default to (i, j). All faces are selected.
func newGrid(t *testing.T, cols, rows int, uvf func(i, j int) uv.Vec2, posf func(i, j int) r3.Vec) *mesh.Mesh {
	t.Helper()
	if uvf == nil {
		uvf = func(i, j int) uv.Vec2 { return uv.V(float64(i), float64(j)) }
	}
	if posf == nil {
		posf = func(i, j int) r3.Vec { return r3.Vec{X: float64(i), Y: float64(j)} }
	}
	m := mesh.New()
	vid := func(i, j int) mesh.VertID { return mesh.VertID(j*(cols+1) + i) }
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			m.AddVert(posf(i, j))
		}
	}
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			f, err := m.AddFace(
				[]mesh.VertID{vid(i, j), vid(i+1, j), vid(i+1, j+1), vid(i, j+1)},
				[]uv.Vec2{uvf(i, j), uvf(i+1, j), uvf(i+1, j+1), uvf(i, j+1)},
			)
			if err != nil {
				t.Fatal(err)
			}
			m.SelectFace(f, true)
		}
	}
	return m
}

// newPolygon builds one selected face whose corners sit at pts in both 3D
// and UV space.
func newPolygon(t *testing.T, pts ...uv.Vec2) *mesh.Mesh {
	t.Helper()
	m := mesh.New()
	verts := make([]mesh.VertID, len(pts))
	for i, p := range pts {
		verts[i] = m.AddVert(r3.Vec{X: p.X, Y: p.Y})
	}
	f, err := m.AddFace(verts, pts)
	if err != nil {
		t.Fatal(err)
	}
	m.SelectFace(f, true)
	return m
}

// selectCorners UV-selects the given corners of face f.
func selectCorners(m *mesh.Mesh, f mesh.FaceID, corners ...int) {
	for _, c := range corners {
		m.SetUVSelected(m.FaceLoop(f, c), true)
	}
}

// selectRow UV-selects every loop on grid row j, in every face.
func selectRow(m *mesh.Mesh, cols, j int) {
	for i := 0; i <= cols; i++ {
		for _, l := range m.VertLoops(mesh.VertID(j*(cols+1) + i)) {
			m.SetUVSelected(l, true)
		}
	}
}

func snapshotUVs(m *mesh.Mesh) []uv.Vec2 {
	out := make([]uv.Vec2, m.NumLoops())
	for i := range out {
		out[i] = m.UV(mesh.LoopID(i))
	}
	return out
}

func assertUVsUnchanged(t *testing.T, m *mesh.Mesh, before []uv.Vec2) {
	t.Helper()
	for i, want := range before {
		if got := m.UV(mesh.LoopID(i)); got != want {
			t.Errorf("loop %d UV = %v, want unchanged %v", i, got, want)
		}
	}
	if m.UVVersion() != 0 {
		t.Errorf("UVVersion = %d, want 0", m.UVVersion())
	}
}

func near(a, b uv.Vec2) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
