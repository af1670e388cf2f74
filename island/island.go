// Package island groups faces into UV islands: maximal sets of faces
// connected through edges whose UVs coincide on both sides.
package island

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/gogpu/uvalign/mesh"
)

// DefaultEpsilon is the UV distance under which two corners are treated as
// the same UV point.
const DefaultEpsilon = 1e-6

// Island is one connected UV region.
type Island struct {
	Faces []mesh.FaceID
}

// Partitioner splits a mesh into UV islands.
// Hosts with their own island detection implement it directly.
type Partitioner interface {
	Partition(m mesh.Accessor) []Island
}

// PartitionerFunc adapts a function to the Partitioner interface.
type PartitionerFunc func(m mesh.Accessor) []Island

// Partition calls f(m).
func (f PartitionerFunc) Partition(m mesh.Accessor) []Island {
	return f(m)
}

// UVPartitioner joins two faces when they share a mesh edge and the UVs at
// both ends of that edge match within Epsilon in each face.
type UVPartitioner struct {
	// Epsilon is the UV match tolerance. Zero means DefaultEpsilon.
	Epsilon float64
}

type edgeKey [2]mesh.VertID

type faceEdge struct {
	face   mesh.FaceID
	la, lb mesh.LoopID
}

func sortedEdge(a, b mesh.VertID) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Partition returns islands in order of their lowest face, each listing its
// faces in ascending order.
func (p UVPartitioner) Partition(m mesh.Accessor) []Island {
	eps := p.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}

	faces := m.Faces()
	edges := make(map[edgeKey][]faceEdge)
	g := simple.NewUndirectedGraph()
	for _, f := range faces {
		g.AddNode(simple.Node(f))
		for _, l := range m.FaceLoops(f) {
			n := m.LoopNext(l)
			k := sortedEdge(m.LoopVert(l), m.LoopVert(n))
			edges[k] = append(edges[k], faceEdge{face: f, la: l, lb: n})
		}
	}

	for _, list := range edges {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				a, b := list[i].face, list[j].face
				if a == b || g.HasEdgeBetween(int64(a), int64(b)) {
					continue
				}
				if uvEdgeMatches(m, list[i], list[j], eps) {
					g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
				}
			}
		}
	}

	comps := topo.ConnectedComponents(g)
	islands := make([]Island, 0, len(comps))
	for _, c := range comps {
		isl := Island{Faces: make([]mesh.FaceID, len(c))}
		for i, n := range c {
			isl.Faces[i] = mesh.FaceID(n.ID())
		}
		sort.Slice(isl.Faces, func(i, j int) bool { return isl.Faces[i] < isl.Faces[j] })
		islands = append(islands, isl)
	}
	sort.Slice(islands, func(i, j int) bool { return islands[i].Faces[0] < islands[j].Faces[0] })
	return islands
}

// uvEdgeMatches compares the UVs of one shared edge as seen from two faces.
func uvEdgeMatches(m mesh.Accessor, e1, e2 faceEdge, eps float64) bool {
	a1, b1 := e1.la, e1.lb
	a2, b2 := e2.la, e2.lb
	if m.LoopVert(a1) != m.LoopVert(a2) {
		a2, b2 = b2, a2
	}
	return m.UV(a1).Approx(m.UV(a2), eps) && m.UV(b1).Approx(m.UV(b2), eps)
}

// Unassigned is returned by Index lookups for loops outside every island.
const Unassigned = -1

// Index maps each loop to the island containing its face.
type Index struct {
	byLoop map[mesh.LoopID]int
	count  int
}

// NewIndex builds the loop lookup for islands in a single pass over their
// faces' loops. A loop listed in more than one island keeps the first.
func NewIndex(m mesh.Accessor, islands []Island) *Index {
	idx := &Index{byLoop: make(map[mesh.LoopID]int), count: len(islands)}
	for i, isl := range islands {
		for _, f := range isl.Faces {
			for _, l := range m.FaceLoops(f) {
				if _, ok := idx.byLoop[l]; !ok {
					idx.byLoop[l] = i
				}
			}
		}
	}
	return idx
}

// Len returns the number of islands.
func (idx *Index) Len() int {
	return idx.count
}

// Of returns the island of l, or Unassigned.
func (idx *Index) Of(l mesh.LoopID) int {
	if i, ok := idx.byLoop[l]; ok {
		return i
	}
	return Unassigned
}

// OfPair returns the island shared by a and b, or Unassigned when either is
// unassigned or they belong to different islands.
func (idx *Index) OfPair(a, b mesh.LoopID) int {
	ia, ib := idx.Of(a), idx.Of(b)
	if ia == Unassigned || ia != ib {
		return Unassigned
	}
	return ia
}
