package uvalign

import (
	"testing"

	"github.com/gogpu/uvalign/island"
	"github.com/gogpu/uvalign/mesh"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.align != AlignMiddle {
		t.Errorf("align = %v, want middle", o.align)
	}
	if o.transmission || o.vertexInfluence || o.selectMoved {
		t.Errorf("boolean options should default to false: %+v", o)
	}
	if _, ok := o.partitioner.(island.UVPartitioner); !ok {
		t.Errorf("partitioner = %T, want island.UVPartitioner", o.partitioner)
	}
}

func TestOptions(t *testing.T) {
	custom := island.PartitionerFunc(func(mesh.Accessor) []island.Island { return nil })
	o := applyOptions([]Option{
		WithAlign(AlignRightBottom),
		WithTransmission(true),
		WithVertexInfluence(true),
		WithSelect(true),
		WithPartitioner(custom),
	})
	if o.align != AlignRightBottom {
		t.Errorf("align = %v, want right-bottom", o.align)
	}
	if !o.transmission || !o.vertexInfluence || !o.selectMoved {
		t.Errorf("boolean options not applied: %+v", o)
	}
	if _, ok := o.partitioner.(island.PartitionerFunc); !ok {
		t.Errorf("partitioner = %T, want the custom one", o.partitioner)
	}
}

func TestWithPartitionerNilKeepsDefault(t *testing.T) {
	o := applyOptions([]Option{WithPartitioner(nil)})
	if o.partitioner == nil {
		t.Fatal("WithPartitioner(nil) cleared the partitioner")
	}
}
