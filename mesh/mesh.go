package mesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/uvalign/uv"
)

// LoopID identifies a loop (face corner) within a mesh.
type LoopID int

// FaceID identifies a face within a mesh.
type FaceID int

// VertID identifies a vertex within a mesh.
type VertID int

// Accessor is the mesh interface the UV operators consume.
//
// Loop navigation (LoopNext, LoopPrev) stays within one face boundary and is
// circular. VertLoops returns every loop at a vertex across all faces.
type Accessor interface {
	// Faces returns all faces in a stable order.
	Faces() []FaceID
	// SelectedFaces returns the selected faces in a stable order.
	SelectedFaces() []FaceID
	// FaceLoops returns the loops of f in boundary order.
	FaceLoops(f FaceID) []LoopID

	LoopFace(l LoopID) FaceID
	LoopVert(l LoopID) VertID
	LoopNext(l LoopID) LoopID
	LoopPrev(l LoopID) LoopID

	// VertLoops returns every loop using v, across all faces.
	VertLoops(v VertID) []LoopID
	// VertCo returns the 3D position of v.
	VertCo(v VertID) r3.Vec
	// NumVerts returns the number of vertices.
	NumVerts() int

	UV(l LoopID) uv.Vec2
	SetUV(l LoopID, p uv.Vec2)
	UVSelected(l LoopID) bool
	SetUVSelected(l LoopID, selected bool)

	// UVChanged informs the host that the UV layer was modified and derived
	// data must be refreshed.
	UVChanged()
}

// Errors returned while building a mesh.
var (
	// ErrFaceTooSmall is returned when a face has fewer than three corners.
	ErrFaceTooSmall = errors.New("mesh: face needs at least 3 vertices")

	// ErrUVCountMismatch is returned when a face is given a different number
	// of UVs than vertices.
	ErrUVCountMismatch = errors.New("mesh: uv count does not match vertex count")
)

// InvalidVertexError is returned when a face references a vertex that does
// not exist or references the same vertex twice.
type InvalidVertexError struct {
	Vert   VertID
	Reason string
}

func (e *InvalidVertexError) Error() string {
	return fmt.Sprintf("mesh: vertex %d: %s", e.Vert, e.Reason)
}

type vert struct {
	co    r3.Vec
	loops []LoopID
}

type face struct {
	loops    []LoopID
	selected bool
}

type loop struct {
	face       FaceID
	vert       VertID
	next, prev LoopID
	uv         uv.Vec2
	uvSelected bool
}

// Mesh is an arena-indexed half-edge mesh implementing Accessor.
// Identifiers are indices into the arenas and are never reused.
//
// Mesh is not safe for concurrent use.
type Mesh struct {
	verts []vert
	faces []face
	loops []loop

	uvVersion uint64
	onChange  func()
}

var _ Accessor = (*Mesh)(nil)

// New creates an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddVert appends a vertex at co and returns its id.
func (m *Mesh) AddVert(co r3.Vec) VertID {
	m.verts = append(m.verts, vert{co: co})
	return VertID(len(m.verts) - 1)
}

// AddFace appends a face over verts in boundary order. uvs holds one UV per
// corner; pass nil to start every corner at the origin.
func (m *Mesh) AddFace(verts []VertID, uvs []uv.Vec2) (FaceID, error) {
	if len(verts) < 3 {
		return -1, ErrFaceTooSmall
	}
	if uvs != nil && len(uvs) != len(verts) {
		return -1, ErrUVCountMismatch
	}
	seen := make(map[VertID]bool, len(verts))
	for _, v := range verts {
		if v < 0 || int(v) >= len(m.verts) {
			return -1, &InvalidVertexError{Vert: v, Reason: "out of range"}
		}
		if seen[v] {
			return -1, &InvalidVertexError{Vert: v, Reason: "used twice in one face"}
		}
		seen[v] = true
	}

	f := FaceID(len(m.faces))
	first := LoopID(len(m.loops))
	n := LoopID(len(verts))
	fc := face{loops: make([]LoopID, len(verts))}
	for i, v := range verts {
		l := first + LoopID(i)
		lp := loop{
			face: f,
			vert: v,
			next: first + (LoopID(i)+1)%n,
			prev: first + (LoopID(i)+n-1)%n,
		}
		if uvs != nil {
			lp.uv = uvs[i]
		}
		m.loops = append(m.loops, lp)
		m.verts[v].loops = append(m.verts[v].loops, l)
		fc.loops[i] = l
	}
	m.faces = append(m.faces, fc)
	return f, nil
}

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumLoops returns the number of loops.
func (m *Mesh) NumLoops() int { return len(m.loops) }

// NumVerts returns the number of vertices.
func (m *Mesh) NumVerts() int { return len(m.verts) }

// Faces returns all face ids in creation order.
func (m *Mesh) Faces() []FaceID {
	ids := make([]FaceID, len(m.faces))
	for i := range m.faces {
		ids[i] = FaceID(i)
	}
	return ids
}

// SelectedFaces returns the selected face ids in creation order.
func (m *Mesh) SelectedFaces() []FaceID {
	var ids []FaceID
	for i, f := range m.faces {
		if f.selected {
			ids = append(ids, FaceID(i))
		}
	}
	return ids
}

// SelectFace sets the selection state of f.
func (m *Mesh) SelectFace(f FaceID, selected bool) {
	m.faces[f].selected = selected
}

// FaceSelected reports whether f is selected.
func (m *Mesh) FaceSelected(f FaceID) bool {
	return m.faces[f].selected
}

// FaceLoops returns the loops of f in boundary order. The slice must not be
// modified.
func (m *Mesh) FaceLoops(f FaceID) []LoopID {
	return m.faces[f].loops
}

// FaceLoop returns the loop at corner i of face f.
func (m *Mesh) FaceLoop(f FaceID, i int) LoopID {
	return m.faces[f].loops[i]
}

func (m *Mesh) LoopFace(l LoopID) FaceID { return m.loops[l].face }
func (m *Mesh) LoopVert(l LoopID) VertID { return m.loops[l].vert }
func (m *Mesh) LoopNext(l LoopID) LoopID { return m.loops[l].next }
func (m *Mesh) LoopPrev(l LoopID) LoopID { return m.loops[l].prev }

// VertLoops returns the loops using v in face creation order. The slice must
// not be modified.
func (m *Mesh) VertLoops(v VertID) []LoopID {
	return m.verts[v].loops
}

// VertCo returns the position of v.
func (m *Mesh) VertCo(v VertID) r3.Vec {
	return m.verts[v].co
}

func (m *Mesh) UV(l LoopID) uv.Vec2 { return m.loops[l].uv }

func (m *Mesh) SetUV(l LoopID, p uv.Vec2) { m.loops[l].uv = p }

func (m *Mesh) UVSelected(l LoopID) bool { return m.loops[l].uvSelected }

func (m *Mesh) SetUVSelected(l LoopID, selected bool) { m.loops[l].uvSelected = selected }

// UVChanged bumps the UV version and calls the change hook, if any.
func (m *Mesh) UVChanged() {
	m.uvVersion++
	if m.onChange != nil {
		m.onChange()
	}
}

// UVVersion returns how many times UVChanged has been called.
func (m *Mesh) UVVersion() uint64 {
	return m.uvVersion
}

// OnUVChange registers fn to run after every UVChanged call.
// Pass nil to remove the hook.
func (m *Mesh) OnUVChange(fn func()) {
	m.onChange = fn
}

// ClearSelection deselects every face and every loop UV.
func (m *Mesh) ClearSelection() {
	for i := range m.faces {
		m.faces[i].selected = false
	}
	for i := range m.loops {
		m.loops[i].uvSelected = false
	}
}
