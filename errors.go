package uvalign

import (
	"errors"
	"fmt"

	"github.com/gogpu/uvalign/layout"
)

// Sentinel errors for uvalign package.
var (
	// ErrLoopedSelection is returned when the selected UVs form a closed ring
	// with no place to start a linear order.
	ErrLoopedSelection = errors.New("uvalign: selected UVs are looped")

	// ErrIsolatedSelection is returned when some selected UVs are not
	// reachable from the start of the ordered run, or the run branches.
	// The concrete error is an *IsolatedSelectionError.
	ErrIsolatedSelection = errors.New("uvalign: isolated UVs are found")

	// ErrInsufficientSelection is returned when fewer UVs are selected than
	// the operator needs. The concrete error is an *InsufficientSelectionError.
	ErrInsufficientSelection = errors.New("uvalign: not enough UVs selected")

	// ErrAmbiguousIsland is returned when a loop pair cannot be assigned to
	// exactly one UV island.
	ErrAmbiguousIsland = errors.New("uvalign: can not find the island or invalid island")

	// ErrSelectionNotOnEndEdge is returned when extending a selected edge
	// across faces runs into another selected UV.
	ErrSelectionNotOnEndEdge = errors.New("uvalign: selected UV does not belong to the end edge")

	// ErrDegenerateGeometry is returned when the selected UVs have no usable
	// shape (collinear circle points, zero-length paths).
	ErrDegenerateGeometry = layout.ErrDegenerateGeometry

	// ErrInterpolation is returned when a smoothing target cannot be placed
	// on the original path.
	ErrInterpolation = layout.ErrInterpolation
)

// IsolatedSelectionError reports how many loops the ordered run reached
// compared with how many were selected.
type IsolatedSelectionError struct {
	Expected int
	Found    int
}

func (e *IsolatedSelectionError) Error() string {
	return fmt.Sprintf("uvalign: isolated UVs are found (expected %d but %d)", e.Expected, e.Found)
}

func (e *IsolatedSelectionError) Unwrap() error { return ErrIsolatedSelection }

// InsufficientSelectionError reports the minimum and actual selection size.
type InsufficientSelectionError struct {
	Min int
	Got int
}

func (e *InsufficientSelectionError) Error() string {
	return fmt.Sprintf("uvalign: at least %d UVs must be selected, got %d", e.Min, e.Got)
}

func (e *InsufficientSelectionError) Unwrap() error { return ErrInsufficientSelection }

// OperatorNotFoundError indicates a named operator is not registered.
type OperatorNotFoundError struct {
	Name string
}

func (e *OperatorNotFoundError) Error() string {
	return "uvalign: operator not found: " + e.Name
}
