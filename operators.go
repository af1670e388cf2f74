package uvalign

import (
	"fmt"

	"github.com/gogpu/uvalign/island"
	"github.com/gogpu/uvalign/layout"
	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

// Operator names used by the registry.
const (
	OpCircle         = "circle"
	OpSmooth         = "smooth"
	OpStraighten     = "straighten"
	OpStraightenGrid = "straighten-grid"
	OpAxis           = "axis"
)

// Result describes a completed operator call.
type Result struct {
	// Operator is the registry name of the operator that ran.
	Operator string
	// Moved is the number of loops whose UV was written.
	Moved int
}

func finish(m mesh.Accessor, op string, b *uvBatch, o options) (*Result, error) {
	if err := b.commit(m, o.selectMoved); err != nil {
		return nil, err
	}
	Logger().Debug("uvalign: operator done", "op", op, "moved", b.Len())
	return &Result{Operator: op, Moved: b.Len()}, nil
}

func uvsOf(m mesh.Accessor, loops []mesh.LoopID) []uv.Vec2 {
	pts := make([]uv.Vec2, len(loops))
	for i, l := range loops {
		pts[i] = m.UV(l)
	}
	return pts
}

// Circle arranges the UVs of every selected face evenly on the circle
// through the face's first three UVs, starting at the first UV.
func Circle(m mesh.Accessor, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	b := newUVBatch()
	for _, f := range m.SelectedFaces() {
		loops := m.FaceLoops(f)
		if len(loops) < 3 {
			return nil, &InsufficientSelectionError{Min: 3, Got: len(loops)}
		}
		pts := uvsOf(m, loops)
		c, err := layout.FitCircle(pts[0], pts[1], pts[2])
		if err != nil {
			return nil, fmt.Errorf("uvalign: face %d: %w", f, err)
		}
		for i, p := range layout.DistributeOnCircle(c, pts[0], len(pts)) {
			b.set(loops[i], p)
		}
	}
	return finish(m, OpCircle, b, o)
}

// Smooth respaces the selected run of UVs evenly by arc length along its
// current path. The end points stay in place.
func Smooth(m mesh.Accessor, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	loops, err := orderedLoops(m, 2)
	if err != nil {
		return nil, err
	}
	pts, err := layout.Smooth(uvsOf(m, loops))
	if err != nil {
		return nil, err
	}
	b := newUVBatch()
	for i := 1; i < len(loops)-1; i++ {
		b.set(loops[i], pts[i])
	}
	return finish(m, OpSmooth, b, o)
}

// Straighten places the selected run of UVs on the segment between its end
// points, evenly spaced by index.
func Straighten(m mesh.Accessor, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	loops, err := orderedLoops(m, 3)
	if err != nil {
		return nil, err
	}
	pts := layout.Straighten(uvsOf(m, loops))
	b := newUVBatch()
	for i := 1; i < len(loops)-1; i++ {
		b.set(loops[i], pts[i])
	}
	return finish(m, OpStraighten, b, o)
}

// Axis lines the selected run of UVs up with the longer side of its bounding
// box. WithAlign picks the position on the shorter side.
func Axis(m mesh.Accessor, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	loops, err := orderedLoops(m, 3)
	if err != nil {
		return nil, err
	}
	pts := layout.AlignAxis(uvsOf(m, loops), o.align)
	b := newUVBatch()
	for i, l := range loops {
		b.set(l, pts[i])
	}
	return finish(m, OpAxis, b, o)
}

// StraightenGrid straightens a selected edge row. With WithTransmission the
// faces reached by walking away from the row, one face at a time, are laid
// out as a regular grid over the row; WithVertexInfluence spaces the grid
// rows by 3D edge length.
//
// Each island touched by the selection is laid out on its own.
func StraightenGrid(m mesh.Accessor, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	cand := candidateLoops(m)
	if len(cand) < 2 {
		return nil, &InsufficientSelectionError{Min: 2, Got: len(cand)}
	}

	pairs := buildLoopPairs(m, cand[0])
	if len(pairs) == 0 {
		Logger().Debug("uvalign: no loop pairs", "start", cand[0])
		return &Result{Operator: OpStraightenGrid}, nil
	}
	chain, rest, err := sortLoopPairs(m, pairs)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		Logger().Warn("uvalign: selected pairs off the main chain were ignored", "count", len(rest))
	}

	idx := island.NewIndex(m, o.partitioner.Partition(m))
	seqs, err := buildLoopSequences(m, chain, idx)
	if err != nil {
		return nil, err
	}
	Logger().Debug("uvalign: loop sequences", "pairs", len(pairs), "chain", len(chain), "islands", idx.Len())

	b := newUVBatch()
	for _, group := range groupByIsland(seqs) {
		if err := straightenGroup(m, group, o, b); err != nil {
			return nil, err
		}
	}
	weldCoincident(m, b, idx)
	return finish(m, OpStraightenGrid, b, o)
}

// weldCoincident stages the target of every staged loop for the other loops
// of selected faces that share its vertex, island and current UV. Rows picked
// from one side of an edge would otherwise tear away from the faces on the
// other side.
func weldCoincident(m mesh.Accessor, b *uvBatch, idx *island.Index) {
	selected := make(map[mesh.FaceID]bool)
	for _, f := range m.SelectedFaces() {
		selected[f] = true
	}
	staged := append([]mesh.LoopID(nil), b.order...)
	welded := 0
	for _, l := range staged {
		old, target, isl := m.UV(l), b.uvs[l], idx.Of(l)
		for _, ll := range m.VertLoops(m.LoopVert(l)) {
			if b.has(ll) || !selected[m.LoopFace(ll)] || idx.Of(ll) != isl {
				continue
			}
			if !m.UV(ll).Approx(old, island.DefaultEpsilon) {
				continue
			}
			b.set(ll, target)
			welded++
		}
	}
	if welded > 0 {
		Logger().Debug("uvalign: welded coincident loops", "count", welded)
	}
}

func straightenGroup(m mesh.Accessor, group []LoopSequence, o options, b *uvBatch) error {
	rows := make([][]layout.Cell, len(group))
	for r, seq := range group {
		rows[r] = make([]layout.Cell, len(seq.Pairs))
		for c, p := range seq.Pairs {
			rows[r][c] = layout.Cell{m.UV(p.A), m.UV(p.B)}
		}
	}

	gopts := layout.GridOptions{Transmission: o.transmission}
	if o.transmission && o.vertexInfluence {
		ratios, err := levelRatios(m, group[0])
		if err != nil {
			return err
		}
		gopts.LevelRatios = ratios
	}

	out, err := layout.StraightenGrid(rows, gopts)
	if err != nil {
		return err
	}
	for r, seq := range group {
		pairs := seq.Pairs
		if !o.transmission {
			pairs = pairs[:1]
		}
		for c, p := range pairs {
			b.set(p.A, out[r][c][0])
			b.set(p.B, out[r][c][1])
		}
	}
	return nil
}
