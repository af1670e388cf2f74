package uvalign

import (
	"testing"

	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

func TestBuildLoopPairs_Row(t *testing.T) {
	m := newGrid(t, 3, 1, nil, nil)
	selectRow(m, 3, 0)

	pairs := buildLoopPairs(m, m.FaceLoop(0, 0))
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3: %v", len(pairs), pairs)
	}
	for f := 0; f < 3; f++ {
		want := LoopPair{A: m.FaceLoop(mesh.FaceID(f), 0), B: m.FaceLoop(mesh.FaceID(f), 1)}
		found := false
		for _, p := range pairs {
			if p == want || p == want.Reverse() {
				found = true
			}
		}
		if !found {
			t.Errorf("missing bottom edge pair of face %d", f)
		}
	}
	for _, p := range pairs {
		if !m.UVSelected(p.A) || !m.UVSelected(p.B) {
			t.Errorf("pair %v has an unselected loop", p)
		}
		if m.LoopNext(p.A) != p.B && m.LoopPrev(p.A) != p.B {
			t.Errorf("pair %v is not a face edge", p)
		}
	}
}

func TestBuildLoopPairs_NoDuplicates(t *testing.T) {
	m := newPolygon(t, uv.V(0, 0), uv.V(1, 0), uv.V(2, 1), uv.V(0, 2))
	selectCorners(m, 0, 0, 1, 2)

	pairs := buildLoopPairs(m, m.FaceLoop(0, 1))
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2: %v", len(pairs), pairs)
	}
	seen := make(map[pairKey]bool)
	for _, p := range pairs {
		k := keyOf(p.A, p.B)
		if seen[k] {
			t.Errorf("pair %v reported twice", p)
		}
		seen[k] = true
	}
}

func TestBuildLoopPairs_Empty(t *testing.T) {
	m := newPolygon(t, uv.V(0, 0), uv.V(1, 0), uv.V(0, 1))
	if pairs := buildLoopPairs(m, m.FaceLoop(0, 0)); len(pairs) != 0 {
		t.Errorf("got %v, want no pairs without selection", pairs)
	}
}

func TestLoopPair_Reverse(t *testing.T) {
	p := LoopPair{A: 3, B: 7}
	if r := p.Reverse(); r.A != 7 || r.B != 3 {
		t.Errorf("Reverse() = %v", r)
	}
}
