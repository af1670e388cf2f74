package uvalign

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/uvalign/mesh"
	"github.com/gogpu/uvalign/uv"
)

func TestBuiltinOperators(t *testing.T) {
	want := []struct {
		name, label string
	}{
		{OpAxis, "XY-Axis"},
		{OpCircle, "Circle"},
		{OpSmooth, "Smooth"},
		{OpStraighten, "Straighten"},
		{OpStraightenGrid, "Straighten (grid)"},
	}
	ops := List()
	if len(ops) != len(want) {
		t.Fatalf("List() returned %d operators, want %d", len(ops), len(want))
	}
	for i, w := range want {
		if ops[i].Name != w.name || ops[i].Label != w.label {
			t.Errorf("List()[%d] = %s/%s, want %s/%s", i, ops[i].Name, ops[i].Label, w.name, w.label)
		}
		if ops[i].Run == nil || ops[i].Description == "" {
			t.Errorf("operator %s is missing Run or Description", ops[i].Name)
		}
	}
}

func TestRunByName(t *testing.T) {
	m := newPolygon(t, uv.V(0, 0), uv.V(1, 0.5), uv.V(2, 0), uv.V(1, 3))
	selectCorners(m, 0, 0, 1, 2)

	res, err := Run(OpStraighten, m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Operator != OpStraighten || res.Moved != 1 {
		t.Errorf("result = %+v", res)
	}
	if got := m.UV(m.FaceLoop(0, 1)); !near(got, uv.V(1, 0)) {
		t.Errorf("middle corner = %v, want (1, 0)", got)
	}
}

func TestRunUnknown(t *testing.T) {
	_, err := Run("mirror", newPolygon(t, uv.V(0, 0), uv.V(1, 0), uv.V(0, 1)))
	var nf *OperatorNotFoundError
	if !errors.As(err, &nf) || nf.Name != "mirror" {
		t.Fatalf("err = %v, want OperatorNotFoundError for mirror", err)
	}
	if nf.Error() != "uvalign: operator not found: mirror" {
		t.Errorf("Error() = %q", nf.Error())
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register(Operator{Name: "noop", Run: func(mesh.Accessor, ...Option) (*Result, error) {
		calls++
		return &Result{Operator: "noop"}, nil
	}})

	if _, ok := r.Lookup("noop"); !ok {
		t.Fatal("Lookup(noop) failed after Register")
	}
	if _, err := r.Run("noop", nil); err != nil || calls != 1 {
		t.Errorf("Run(noop) = %v, calls = %d", err, calls)
	}

	r.Unregister("noop")
	if _, ok := r.Lookup("noop"); ok {
		t.Error("Lookup(noop) succeeded after Unregister")
	}
	if len(r.List()) != 0 {
		t.Errorf("List() = %v, want empty", r.List())
	}

	var zero Registry
	zero.Register(Operator{Name: "late"})
	if _, err := zero.Run("late", nil); err == nil {
		t.Error("operator without Run should not be runnable")
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(Operator{Name: "op"})
		}()
		go func() {
			defer wg.Done()
			r.List()
		}()
	}
	wg.Wait()
}
