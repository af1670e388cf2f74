package uvalign

import (
	"github.com/gogpu/uvalign/island"
	"github.com/gogpu/uvalign/layout"
)

// Align selects where Axis places UVs on the minor axis.
type Align = layout.Align

// Alignment targets for Axis.
const (
	AlignLeftTop     = layout.AlignLeftTop
	AlignMiddle      = layout.AlignMiddle
	AlignRightBottom = layout.AlignRightBottom
)

// Option configures an operator call.
//
// Example:
//
//	uvalign.Axis(m, uvalign.WithAlign(uvalign.AlignLeftTop))
//	uvalign.StraightenGrid(m, uvalign.WithTransmission(true), uvalign.WithVertexInfluence(true))
type Option func(*options)

type options struct {
	align           Align
	transmission    bool
	vertexInfluence bool
	selectMoved     bool
	partitioner     island.Partitioner
}

// defaultOptions returns the default operator options.
func defaultOptions() options {
	return options{
		align:       AlignMiddle,
		partitioner: island.UVPartitioner{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlign sets the Axis alignment target. Default is AlignMiddle.
func WithAlign(a Align) Option {
	return func(o *options) {
		o.align = a
	}
}

// WithTransmission makes StraightenGrid lay out every face reached from the
// selected edge, giving uniform spacing across faces. Without it only the
// selected edge row moves.
func WithTransmission(on bool) Option {
	return func(o *options) {
		o.transmission = on
	}
}

// WithVertexInfluence makes StraightenGrid space rows vertically in
// proportion to the 3D distance between mesh vertices instead of evenly.
// Only meaningful together with WithTransmission.
func WithVertexInfluence(on bool) Option {
	return func(o *options) {
		o.vertexInfluence = on
	}
}

// WithSelect marks every loop whose UV was written as UV-selected.
func WithSelect(on bool) Option {
	return func(o *options) {
		o.selectMoved = on
	}
}

// WithPartitioner replaces the island detection used by StraightenGrid.
// Hosts with their own island data should pass it here. A nil partitioner
// keeps the default.
func WithPartitioner(p island.Partitioner) Option {
	return func(o *options) {
		if p != nil {
			o.partitioner = p
		}
	}
}
