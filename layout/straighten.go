package layout

import (
	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/uvalign/uv"
)

// Straighten places the points evenly on the segment from the first to the
// last point, by index rather than by distance.
func Straighten(pts []uv.Vec2) []uv.Vec2 {
	n := len(pts)
	out := make([]uv.Vec2, n)
	copy(out, pts)
	if n < 2 {
		return out
	}
	first, last := pts[0], pts[n-1]
	for i, t := range IndexFractions(n) {
		out[i] = first.Lerp(last, t)
	}
	return out
}

// IndexFractions returns i/(n-1) for i in [0, n). The first value is exactly
// 0 and the last exactly 1. n must be at least 2.
func IndexFractions(n int) []float64 {
	return floats.Span(make([]float64, n), 0, 1)
}
