package uvalign

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/uvalign/island"
	"github.com/gogpu/uvalign/layout"
	"github.com/gogpu/uvalign/mesh"
)

// seamDistance is the UV gap above which two loops at one vertex are on
// opposite sides of a UV seam.
const seamDistance = 1e-9

// LoopSequence is a column of loop pairs walked away from a selected edge,
// one face at a time. Pairs 2k-1 and 2k are the same mesh edge seen from
// the two faces on either side of it. Every pair lies in Island.
type LoopSequence struct {
	Island int
	Pairs  []LoopPair
}

type vertEdge [2]mesh.VertID

func edgeOf(m mesh.Accessor, p LoopPair) vertEdge {
	a, b := m.LoopVert(p.A), m.LoopVert(p.B)
	if a < b {
		return vertEdge{a, b}
	}
	return vertEdge{b, a}
}

// sortLoopPairs chains pairs so that each pair's B vertex is the next pair's
// A vertex. It returns the chain and the pairs that could not be attached.
//
// When two pairs cover the same mesh edge only one is chained; pairs on
// selected faces win. A chain that closes on itself is rotated to start at
// its first UV seam.
func sortLoopPairs(m mesh.Accessor, pairs []LoopPair) (chain, rest []LoopPair, err error) {
	if len(pairs) == 0 {
		return nil, nil, nil
	}

	selected := make(map[mesh.FaceID]bool)
	for _, f := range m.SelectedFaces() {
		selected[f] = true
	}
	ordered := append([]LoopPair(nil), pairs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return selected[m.LoopFace(ordered[i].A)] && !selected[m.LoopFace(ordered[j].A)]
	})

	edges := make(map[vertEdge]bool, len(ordered))
	for _, p := range ordered {
		e := edgeOf(m, p)
		if edges[e] {
			continue
		}
		edges[e] = true
		rest = append(rest, p)
	}
	if dropped := len(ordered) - len(rest); dropped > 0 {
		Logger().Debug("uvalign: dropped pairs on shared edges", "count", dropped)
	}

	chain = []LoopPair{rest[0]}
	rest = rest[1:]

	// prepend
	for {
		head := m.LoopVert(chain[0].A)
		i, p, ok := findPair(m, rest, head)
		if !ok {
			break
		}
		if m.LoopVert(p.A) == head {
			p = p.Reverse()
		}
		chain = append([]LoopPair{p}, chain...)
		rest = append(rest[:i], rest[i+1:]...)
	}

	// append
	for {
		tail := m.LoopVert(chain[len(chain)-1].B)
		i, p, ok := findPair(m, rest, tail)
		if !ok {
			break
		}
		if m.LoopVert(p.B) == tail {
			p = p.Reverse()
		}
		chain = append(chain, p)
		rest = append(rest[:i], rest[i+1:]...)
	}

	if m.LoopVert(chain[0].A) != m.LoopVert(chain[len(chain)-1].B) {
		return chain, rest, nil
	}
	chain, err = rotateToSeam(m, chain)
	return chain, rest, err
}

// findPair returns the first pair in rest touching vertex v.
func findPair(m mesh.Accessor, rest []LoopPair, v mesh.VertID) (int, LoopPair, bool) {
	for i, p := range rest {
		if m.LoopVert(p.A) == v || m.LoopVert(p.B) == v {
			return i, p, true
		}
	}
	return -1, LoopPair{}, false
}

// rotateToSeam rotates a closed chain so that it starts right after the
// first junction whose two loops have different UVs. A closed chain without
// any such junction has no start and is a looped selection.
func rotateToSeam(m mesh.Accessor, chain []LoopPair) ([]LoopPair, error) {
	for i := 0; i+1 < len(chain); i++ {
		if m.UV(chain[i+1].A).Distance(m.UV(chain[i].B)) > seamDistance {
			rotated := make([]LoopPair, 0, len(chain))
			rotated = append(rotated, chain[i+1:]...)
			rotated = append(rotated, chain[:i+1]...)
			return rotated, nil
		}
	}
	if m.UV(chain[len(chain)-1].B).Distance(m.UV(chain[0].A)) > seamDistance {
		return chain, nil
	}
	return nil, ErrLoopedSelection
}

// nextLoopPair returns the pair on the opposite side of the face of p: the
// loop before A and the loop after B, keeping A and B columns aligned.
func nextLoopPair(m mesh.Accessor, p LoopPair) (LoopPair, bool) {
	va, vb := m.LoopVert(p.A), m.LoopVert(p.B)

	a := m.LoopPrev(p.A)
	if m.LoopVert(a) == vb {
		a = m.LoopNext(p.A)
	}
	b := m.LoopNext(p.B)
	if m.LoopVert(b) == va {
		b = m.LoopPrev(p.B)
	}
	if a == b || m.LoopVert(a) == vb || m.LoopVert(b) == va {
		return LoopPair{}, false
	}
	return LoopPair{A: a, B: b}, true
}

// nextPolyLoopPair returns the same mesh edge as p seen from the adjacent
// face.
func nextPolyLoopPair(m mesh.Accessor, p LoopPair) (LoopPair, bool) {
	for _, l1 := range m.VertLoops(m.LoopVert(p.A)) {
		if l1 == p.A {
			continue
		}
		for _, l2 := range m.VertLoops(m.LoopVert(p.B)) {
			if l2 == p.B {
				continue
			}
			if m.LoopNext(l1) == l2 || m.LoopPrev(l1) == l2 {
				return LoopPair{A: l1, B: l2}, true
			}
		}
	}
	return LoopPair{}, false
}

// buildLoopSequences extends every chained pair into a sequence, crossing
// faces until the mesh boundary or an island change.
func buildLoopSequences(m mesh.Accessor, chain []LoopPair, idx *island.Index) ([]LoopSequence, error) {
	maxSteps := m.NumVerts()
	seqs := make([]LoopSequence, 0, len(chain))

	for _, start := range chain {
		isl := idx.OfPair(start.A, start.B)
		if isl == island.Unassigned {
			return nil, fmt.Errorf("%w: loops %d and %d", ErrAmbiguousIsland, start.A, start.B)
		}
		seq := LoopSequence{Island: isl, Pairs: []LoopPair{start}}
		seen := map[pairKey]bool{keyOf(start.A, start.B): true}

		accept := func(p LoopPair) (bool, error) {
			if idx.OfPair(p.A, p.B) != isl || seen[keyOf(p.A, p.B)] {
				return false, nil
			}
			if m.UVSelected(p.A) || m.UVSelected(p.B) {
				return false, fmt.Errorf("%w: loops %d and %d", ErrSelectionNotOnEndEdge, p.A, p.B)
			}
			seen[keyOf(p.A, p.B)] = true
			seq.Pairs = append(seq.Pairs, p)
			return true, nil
		}

		p := start
		for step := 0; step < maxSteps; step++ {
			nlp, ok := nextLoopPair(m, p)
			if !ok {
				break
			}
			if ok, err := accept(nlp); err != nil {
				return nil, err
			} else if !ok {
				break
			}
			nplp, ok := nextPolyLoopPair(m, nlp)
			if !ok {
				break
			}
			if ok, err := accept(nplp); err != nil {
				return nil, err
			} else if !ok {
				break
			}
			p = nplp
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

// groupByIsland splits sequences into runs sharing an island, in order of
// first appearance.
func groupByIsland(seqs []LoopSequence) [][]LoopSequence {
	var groups [][]LoopSequence
	pos := make(map[int]int)
	for _, s := range seqs {
		i, ok := pos[s.Island]
		if !ok {
			i = len(groups)
			pos[s.Island] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}

// levelRatios returns, for each level of seq, the share of the 3D distance
// from the selected edge to the far end of the column at end A.
// A sequence without levels has no ratios.
func levelRatios(m mesh.Accessor, seq LoopSequence) ([]float64, error) {
	levels := layout.Level(len(seq.Pairs) - 1)
	if levels == 0 {
		return nil, nil
	}
	steps := make([]float64, levels)
	prev := m.VertCo(m.LoopVert(seq.Pairs[0].A))
	for k := 1; k <= levels; k++ {
		co := m.VertCo(m.LoopVert(seq.Pairs[2*k-1].A))
		steps[k-1] = r3.Norm(r3.Sub(co, prev))
		prev = co
	}
	return layout.CumulativeRatios(steps)
}
