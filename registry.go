// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uvalign

import (
	"sort"
	"sync"

	"github.com/gogpu/uvalign/mesh"
)

// RunFunc runs an operator on a mesh.
type RunFunc func(m mesh.Accessor, opts ...Option) (*Result, error)

// Operator describes a named UV operator.
type Operator struct {
	// Name is the unique identifier, e.g. "smooth".
	Name string

	// Label is the short human-readable title.
	Label string

	// Description is a one-line summary for help output.
	Description string

	// Run executes the operator.
	Run RunFunc
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

func init() {
	for _, op := range []Operator{
		{Name: OpCircle, Label: "Circle", Description: "Align UV coordinates to Circle", Run: Circle},
		{Name: OpSmooth, Label: "Smooth", Description: "Smooth UV coordinates", Run: Smooth},
		{Name: OpStraighten, Label: "Straighten", Description: "Align UV coordinates to Straight", Run: Straighten},
		{Name: OpStraightenGrid, Label: "Straighten (grid)", Description: "Straighten an edge row and the faces beyond it", Run: StraightenGrid},
		{Name: OpAxis, Label: "XY-Axis", Description: "Align UV to XY-axis", Run: Axis},
	} {
		globalRegistry.Register(op)
	}
}

// Registry maps operator names to operators.
//
// Example registration:
//
//	func init() {
//	    uvalign.Register(uvalign.Operator{Name: "mirror", Run: mirror})
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Operator
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Run.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Operator),
	}
}

// Register adds an operator to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(op Operator) {
	globalRegistry.Register(op)
}

// Unregister removes an operator from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Lookup returns the operator registered under name.
func Lookup(name string) (Operator, bool) {
	return globalRegistry.Lookup(name)
}

// List returns all registered operators sorted by name.
func List() []Operator {
	return globalRegistry.List()
}

// Run runs the operator registered under name.
func Run(name string, m mesh.Accessor, opts ...Option) (*Result, error) {
	return globalRegistry.Run(name, m, opts...)
}

// Register adds an operator to this registry.
func (r *Registry) Register(op Operator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]Operator)
	}
	r.entries[op.Name] = op
}

// Unregister removes an operator from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Lookup returns the operator registered under name.
func (r *Registry) Lookup(name string) (Operator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.entries[name]
	return op, ok
}

// List returns all operators sorted by name.
func (r *Registry) List() []Operator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operator, 0, len(r.entries))
	for _, op := range r.entries {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name < ops[j].Name
	})
	return ops
}

// Run looks up name and runs it on m.
func (r *Registry) Run(name string, m mesh.Accessor, opts ...Option) (*Result, error) {
	op, ok := r.Lookup(name)
	if !ok || op.Run == nil {
		return nil, &OperatorNotFoundError{Name: name}
	}
	return op.Run(m, opts...)
}
