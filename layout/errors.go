package layout

import "errors"

// Sentinel errors for layout package.
var (
	// ErrDegenerateGeometry is returned when the input has no usable shape:
	// collinear or coincident circle points, a zero-length polyline, or a
	// zero total distance for proportional spacing.
	ErrDegenerateGeometry = errors.New("layout: degenerate geometry")

	// ErrInterpolation is returned when no polyline segment brackets a
	// target arc length.
	ErrInterpolation = errors.New("layout: failed to get target UV")

	// ErrEmptyGrid is returned when StraightenGrid is given no cells.
	ErrEmptyGrid = errors.New("layout: empty grid")
)
