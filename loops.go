package uvalign

import (
	"github.com/gogpu/uvalign/mesh"
)

// candidateLoops returns the UV-selected loops of the selected faces, in
// face order then boundary order.
func candidateLoops(m mesh.Accessor) []mesh.LoopID {
	var cand []mesh.LoopID
	for _, f := range m.SelectedFaces() {
		for _, l := range m.FaceLoops(f) {
			if m.UVSelected(l) {
				cand = append(cand, l)
			}
		}
	}
	return cand
}

// orderedLoops recovers the linear order of the candidate loops.
//
// The first loop is the first candidate whose boundary predecessor is not a
// candidate. From there the walk follows LoopNext while loops stay
// UV-selected. The walk must visit every candidate exactly once.
func orderedLoops(m mesh.Accessor, minLoops int) ([]mesh.LoopID, error) {
	cand := candidateLoops(m)
	if len(cand) < minLoops {
		return nil, &InsufficientSelectionError{Min: minLoops, Got: len(cand)}
	}

	inCand := make(map[mesh.LoopID]bool, len(cand))
	for _, l := range cand {
		inCand[l] = true
	}

	first := mesh.LoopID(-1)
	for _, l := range cand {
		if !inCand[m.LoopPrev(l)] {
			first = l
			break
		}
	}
	if first < 0 {
		return nil, ErrLoopedSelection
	}

	ordered := []mesh.LoopID{first}
	seen := map[mesh.LoopID]bool{first: true}
	for next := m.LoopNext(first); m.UVSelected(next); next = m.LoopNext(next) {
		if seen[next] {
			return nil, ErrLoopedSelection
		}
		seen[next] = true
		ordered = append(ordered, next)
	}

	if len(ordered) != len(cand) {
		return nil, &IsolatedSelectionError{Expected: len(ordered), Found: len(cand)}
	}
	Logger().Debug("uvalign: ordered loops", "count", len(ordered), "first", first)
	return ordered, nil
}
