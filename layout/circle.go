package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/uvalign/uv"
)

// collinearTolerance is the relative cross-product magnitude below which
// three points are treated as collinear.
const collinearTolerance = 1e-12

// Circle is a circle in UV space.
type Circle struct {
	Center uv.Vec2
	Radius float64
}

// FitCircle returns the circle through p0, p1 and p2.
//
// The centre is the intersection of the perpendicular bisectors of the
// chords p0-p1 and p1-p2. Each bisector starts at its chord midpoint and
// points along the chord angle plus pi/2. The radius is the distance from
// the centre to p0.
func FitCircle(p0, p1, p2 uv.Vec2) (Circle, error) {
	c1 := p0.Sub(p1)
	c2 := p1.Sub(p2)
	l1, l2 := c1.Length(), c2.Length()
	if l1 == 0 || l2 == 0 || p0 == p2 {
		return Circle{}, fmt.Errorf("%w: coincident circle points", ErrDegenerateGeometry)
	}
	if math.Abs(c1.Cross(c2)) <= collinearTolerance*l1*l2 {
		return Circle{}, fmt.Errorf("%w: collinear circle points", ErrDegenerateGeometry)
	}

	alpha := math.Atan2(c1.Y, c1.X) + math.Pi/2
	beta := math.Atan2(c2.Y, c2.X) + math.Pi/2
	e := p0.Lerp(p1, 0.5)
	f := p1.Lerp(p2, 0.5)

	// e + s*(cos alpha, sin alpha) = f + t*(cos beta, sin beta)
	a := mat.NewDense(2, 2, []float64{
		math.Cos(alpha), -math.Cos(beta),
		math.Sin(alpha), -math.Sin(beta),
	})
	b := mat.NewVecDense(2, []float64{f.X - e.X, f.Y - e.Y})
	var st mat.VecDense
	if err := st.SolveVec(a, b); err != nil {
		return Circle{}, fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}

	s := st.AtVec(0)
	center := e.Add(uv.V(math.Cos(alpha), math.Sin(alpha)).Mul(s))
	if !center.IsFinite() {
		return Circle{}, fmt.Errorf("%w: circle centre is not finite", ErrDegenerateGeometry)
	}
	return Circle{Center: center, Radius: p0.Distance(center)}, nil
}

// DistributeOnCircle places n points on c at equal angular steps of 2*pi/n.
//
// Points are written as Center + Radius*(sin a, cos a). The starting angle
// is the angle of first in that same convention, so when first lies on c the
// first returned point equals first.
func DistributeOnCircle(c Circle, first uv.Vec2, n int) []uv.Vec2 {
	if n <= 0 {
		return nil
	}
	d := first.Sub(c.Center)
	theta := math.Atan2(d.X, d.Y)
	out := make([]uv.Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		angle := theta + float64(i)*step
		out[i] = uv.V(
			c.Center.X+c.Radius*math.Sin(angle),
			c.Center.Y+c.Radius*math.Cos(angle),
		)
	}
	return out
}
