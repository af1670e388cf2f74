package layout

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/gogpu/uvalign/uv"
)

// Align selects where AlignAxis places points on the minor axis of the
// bounding box.
type Align int

const (
	// AlignLeftTop uses the left edge for a vertical line and the top edge
	// for a horizontal one.
	AlignLeftTop Align = iota
	// AlignMiddle uses the centre of the bounding box.
	AlignMiddle
	// AlignRightBottom uses the right edge for a vertical line and the bottom
	// edge for a horizontal one.
	AlignRightBottom
)

var alignNames = [...]string{
	AlignLeftTop:     "left-top",
	AlignMiddle:      "middle",
	AlignRightBottom: "right-bottom",
}

// String returns the alignment name accepted by ParseAlign.
func (a Align) String() string {
	if a >= 0 && int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// ParseAlign parses "left-top", "middle" or "right-bottom" (case-insensitive,
// underscores accepted).
func ParseAlign(s string) (Align, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range alignNames {
		if norm == name {
			return Align(i), nil
		}
	}
	return AlignMiddle, fmt.Errorf("layout: unknown alignment %q", s)
}

// Bounds returns the axis-aligned bounding box of pts.
func Bounds(pts []uv.Vec2) r2.Rect {
	rp := make([]r2.Point, len(pts))
	for i, p := range pts {
		rp[i] = p.R2()
	}
	return r2.RectFromPoints(rp...)
}

// AlignAxis lines the points up along the longer side of their bounding box.
//
// When the box is wider than tall, X is spread evenly by index from the left
// edge to the right edge and Y is fixed by align; otherwise Y is spread from
// the bottom edge to the top edge and X is fixed. Applying AlignAxis to its
// own output with the same align returns the same points.
func AlignAxis(pts []uv.Vec2, align Align) []uv.Vec2 {
	n := len(pts)
	out := make([]uv.Vec2, n)
	copy(out, pts)
	if n < 2 {
		return out
	}

	box := Bounds(pts)
	lo, hi, size := box.Lo(), box.Hi(), box.Size()
	fr := IndexFractions(n)

	if size.X > size.Y {
		var y float64
		switch align {
		case AlignLeftTop:
			y = hi.Y
		case AlignRightBottom:
			y = lo.Y
		default:
			y = lo.Y + size.Y*0.5
		}
		for i := range out {
			out[i] = uv.V(lo.X+size.X*fr[i], y)
		}
		return out
	}

	var x float64
	switch align {
	case AlignLeftTop:
		x = lo.X
	case AlignRightBottom:
		x = hi.X
	default:
		x = lo.X + size.X*0.5
	}
	for i := range out {
		out[i] = uv.V(x, lo.Y+size.Y*fr[i])
	}
	return out
}
