package uvalign

import (
	"fmt"

	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

// uvBatch stages UV writes so an operator either applies all of them or
// none.
type uvBatch struct {
	order []mesh.LoopID
	uvs   map[mesh.LoopID]uv.Vec2
}

func newUVBatch() *uvBatch {
	return &uvBatch{uvs: make(map[mesh.LoopID]uv.Vec2)}
}

// set stages p for l. A later set for the same loop replaces the value.
func (b *uvBatch) set(l mesh.LoopID, p uv.Vec2) {
	if _, ok := b.uvs[l]; !ok {
		b.order = append(b.order, l)
	}
	b.uvs[l] = p
}

func (b *uvBatch) has(l mesh.LoopID) bool {
	_, ok := b.uvs[l]
	return ok
}

// Len returns the number of distinct loops staged.
func (b *uvBatch) Len() int {
	return len(b.order)
}

// commit checks every staged UV, then writes them in staging order and
// signals the host once. Nothing is written if any value is not finite.
func (b *uvBatch) commit(m mesh.Accessor, selectMoved bool) error {
	for _, l := range b.order {
		if p := b.uvs[l]; !p.IsFinite() {
			return fmt.Errorf("%w: loop %d would move to %v", ErrDegenerateGeometry, l, p)
		}
	}
	if len(b.order) == 0 {
		return nil
	}
	for _, l := range b.order {
		m.SetUV(l, b.uvs[l])
		if selectMoved {
			m.SetUVSelected(l, true)
		}
	}
	m.UVChanged()
	return nil
}
