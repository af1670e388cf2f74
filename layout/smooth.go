package layout

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/uvalign/uv"
)

// Smooth respaces the interior points of an open polyline so that point i
// sits at arc length L*i/(n-1) along the original polyline, where L is its
// total length. The first and last points are returned unchanged.
func Smooth(pts []uv.Vec2) ([]uv.Vec2, error) {
	n := len(pts)
	out := make([]uv.Vec2, n)
	copy(out, pts)
	if n < 3 {
		return out, nil
	}

	acc := ArcLengths(pts)
	full := acc[n-1]
	if full == 0 {
		return nil, fmt.Errorf("%w: polyline has zero length", ErrDegenerateGeometry)
	}

	for i := 1; i < n-1; i++ {
		target := full * float64(i) / float64(n-1)
		p, ok := pointAtLength(pts, acc, target)
		if !ok {
			return nil, fmt.Errorf("%w: point %d at length %g", ErrInterpolation, i, target)
		}
		out[i] = p
	}
	return out, nil
}

// ArcLengths returns the cumulative length of the polyline at each point.
// The first entry is zero.
func ArcLengths(pts []uv.Vec2) []float64 {
	seg := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		seg[i] = pts[i].Distance(pts[i-1])
	}
	return floats.CumSum(make([]float64, len(pts)), seg)
}

// pointAtLength finds the segment j with acc[j] <= target < acc[j+1] and
// interpolates inside it. Zero-length segments never bracket a target.
func pointAtLength(pts []uv.Vec2, acc []float64, target float64) (uv.Vec2, bool) {
	for j := 0; j < len(acc)-1; j++ {
		if acc[j] <= target && acc[j+1] > target {
			t := (target - acc[j]) / (acc[j+1] - acc[j])
			return pts[j].Lerp(pts[j+1], t), true
		}
	}
	return uv.Vec2{}, false
}
