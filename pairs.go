package uvalign

import (
	"github.com/gogpu/uvalign/mesh"
)

// LoopPair is an edge of the selected-UV adjacency graph: two UV-selected
// loops next to each other on one face boundary.
type LoopPair struct {
	A, B mesh.LoopID
}

// Reverse returns the pair with its ends swapped.
func (p LoopPair) Reverse() LoopPair {
	return LoopPair{A: p.B, B: p.A}
}

type pairKey [2]mesh.LoopID

func keyOf(a, b mesh.LoopID) pairKey {
	if a < b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// buildLoopPairs collects every loop pair reachable from start.
//
// Starting at start, every loop sharing a vertex with an expanded loop is
// examined together with its boundary successor and predecessor. A pair is
// recorded when both loops are UV-selected; the neighbour is then queued
// for expansion. Each loop is expanded at most once.
func buildLoopPairs(m mesh.Accessor, start mesh.LoopID) []LoopPair {
	var pairs []LoopPair
	seen := make(map[pairKey]bool)
	expanded := make(map[mesh.LoopID]bool)

	add := func(a, b mesh.LoopID) bool {
		if !m.UVSelected(a) || !m.UVSelected(b) {
			return false
		}
		if k := keyOf(a, b); !seen[k] {
			seen[k] = true
			pairs = append(pairs, LoopPair{A: a, B: b})
		}
		return true
	}

	stack := []mesh.LoopID{start}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if expanded[l] {
			continue
		}
		expanded[l] = true

		for _, ll := range m.VertLoops(m.LoopVert(l)) {
			if next := m.LoopNext(ll); add(ll, next) && !expanded[next] {
				stack = append(stack, next)
			}
			if prev := m.LoopPrev(ll); add(prev, ll) && !expanded[prev] {
				stack = append(stack, prev)
			}
		}
	}
	return pairs
}
