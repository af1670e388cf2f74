package island

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

// strip builds three quads in a row. When split is true the middle and last
// faces are offset in UV so the shared edge between them becomes a seam.
func strip(t *testing.T, split bool) *mesh.Mesh {
	t.Helper()
	m := mesh.New()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			m.AddVert(r3.Vec{X: float64(x), Y: float64(y)})
		}
	}
	for x := 0; x < 3; x++ {
		off := 0.0
		if split && x == 2 {
			off = 10
		}
		fx := float64(x) + off
		verts := []mesh.VertID{mesh.VertID(x), mesh.VertID(x + 1), mesh.VertID(x + 5), mesh.VertID(x + 4)}
		uvs := []uv.Vec2{uv.V(fx, 0), uv.V(fx+1, 0), uv.V(fx+1, 1), uv.V(fx, 1)}
		if _, err := m.AddFace(verts, uvs); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func TestUVPartitioner_Connected(t *testing.T) {
	m := strip(t, false)
	islands := UVPartitioner{}.Partition(m)
	if len(islands) != 1 {
		t.Fatalf("got %d islands, want 1", len(islands))
	}
	if len(islands[0].Faces) != 3 {
		t.Errorf("island has %d faces, want 3", len(islands[0].Faces))
	}
}

func TestUVPartitioner_Seam(t *testing.T) {
	m := strip(t, true)
	islands := UVPartitioner{}.Partition(m)
	if len(islands) != 2 {
		t.Fatalf("got %d islands, want 2", len(islands))
	}
	if got := islands[0].Faces; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("island 0 faces = %v, want [0 1]", got)
	}
	if got := islands[1].Faces; len(got) != 1 || got[0] != 2 {
		t.Errorf("island 1 faces = %v, want [2]", got)
	}
}

func TestUVPartitioner_InterleavedFaces(t *testing.T) {
	m := mesh.New()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			m.AddVert(r3.Vec{X: float64(x), Y: float64(y)})
		}
	}
	// Faces are added left, right, middle. The right face is moved away in
	// UV, so faces 0 and 2 form one island and face 1 another.
	for _, c := range []struct{ x, off int }{{0, 0}, {2, 10}, {1, 0}} {
		fx := float64(c.x + c.off)
		verts := []mesh.VertID{mesh.VertID(c.x), mesh.VertID(c.x + 1), mesh.VertID(c.x + 5), mesh.VertID(c.x + 4)}
		uvs := []uv.Vec2{uv.V(fx, 0), uv.V(fx+1, 0), uv.V(fx+1, 1), uv.V(fx, 1)}
		if _, err := m.AddFace(verts, uvs); err != nil {
			t.Fatal(err)
		}
	}

	for run := 0; run < 5; run++ {
		islands := UVPartitioner{}.Partition(m)
		if len(islands) != 2 {
			t.Fatalf("got %d islands, want 2", len(islands))
		}
		if got := islands[0].Faces; len(got) != 2 || got[0] != 0 || got[1] != 2 {
			t.Errorf("island 0 faces = %v, want [0 2]", got)
		}
		if got := islands[1].Faces; len(got) != 1 || got[0] != 1 {
			t.Errorf("island 1 faces = %v, want [1]", got)
		}
	}
}

func TestIndex(t *testing.T) {
	m := strip(t, true)
	idx := NewIndex(m, UVPartitioner{}.Partition(m))

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
	l0 := m.FaceLoop(0, 0)
	l1 := m.FaceLoop(1, 1)
	l2 := m.FaceLoop(2, 0)
	if idx.Of(l0) != 0 || idx.Of(l1) != 0 || idx.Of(l2) != 1 {
		t.Errorf("Of = %d, %d, %d, want 0, 0, 1", idx.Of(l0), idx.Of(l1), idx.Of(l2))
	}
	if got := idx.OfPair(l0, l1); got != 0 {
		t.Errorf("OfPair(same island) = %d, want 0", got)
	}
	if got := idx.OfPair(l1, l2); got != Unassigned {
		t.Errorf("OfPair(across seam) = %d, want Unassigned", got)
	}
	if got := idx.Of(mesh.LoopID(999)); got != Unassigned {
		t.Errorf("Of(unknown) = %d, want Unassigned", got)
	}
}

func TestPartitionerFunc(t *testing.T) {
	m := strip(t, false)
	p := PartitionerFunc(func(m mesh.Accessor) []Island {
		var out []Island
		for _, f := range m.Faces() {
			out = append(out, Island{Faces: []mesh.FaceID{f}})
		}
		return out
	})
	if got := len(p.Partition(m)); got != 3 {
		t.Errorf("Partition() returned %d islands, want 3", got)
	}
}
