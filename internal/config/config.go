// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads uvalign job files.
//
// A job names one operator, its options and the selection to apply it to:
//
//	op = "straighten-grid"
//	align = "middle"
//	transmission = true
//	vertex_influence = false
//	select = false
//
//	[selection]
//	faces = [0, 1, 2]
//	loops = [[0, 0], [0, 1]]   # [face, corner]
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/uvalign"
	"github.com/gogpu/uvalign/layout"
	"github.com/gogpu/uvalign/mesh"
)

// Errors returned while loading or applying a job.
var (
	// ErrMissingOperator is returned when a job does not name an operator.
	ErrMissingOperator = errors.New("config: op is required")

	// ErrUnknownKey is returned when a job file has keys this package does
	// not understand.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidSelection is returned when the selection refers to faces or
	// corners the mesh does not have.
	ErrInvalidSelection = errors.New("config: invalid selection")
)

// Job is one operator invocation.
type Job struct {
	Op              string    `toml:"op"`
	Align           string    `toml:"align"`
	Transmission    bool      `toml:"transmission"`
	VertexInfluence bool      `toml:"vertex_influence"`
	Select          bool      `toml:"select"`
	Selection       Selection `toml:"selection"`
}

// Selection lists the selected faces and the UV-selected corners.
type Selection struct {
	// AllFaces selects every face and overrides Faces.
	AllFaces bool `toml:"all_faces"`
	// Faces are face indices.
	Faces []int `toml:"faces"`
	// Loops are [face, corner] pairs.
	Loops [][]int `toml:"loops"`
}

// Load reads a job from the TOML file at path.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a job from TOML.
func Decode(r io.Reader) (*Job, error) {
	var j Job
	md, err := toml.NewDecoder(r).Decode(&j)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks the operator name and alignment.
func (j *Job) Validate() error {
	if j.Op == "" {
		return ErrMissingOperator
	}
	if _, ok := uvalign.Lookup(j.Op); !ok {
		return &uvalign.OperatorNotFoundError{Name: j.Op}
	}
	if j.Align != "" {
		if _, err := layout.ParseAlign(j.Align); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, l := range j.Selection.Loops {
		if len(l) != 2 {
			return fmt.Errorf("%w: loop entry %v is not [face, corner]", ErrInvalidSelection, l)
		}
	}
	return nil
}

// Options converts the job settings into operator options.
func (j *Job) Options() ([]uvalign.Option, error) {
	align := uvalign.AlignMiddle
	if j.Align != "" {
		a, err := layout.ParseAlign(j.Align)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		align = a
	}
	return []uvalign.Option{
		uvalign.WithAlign(align),
		uvalign.WithTransmission(j.Transmission),
		uvalign.WithVertexInfluence(j.VertexInfluence),
		uvalign.WithSelect(j.Select),
	}, nil
}

// ApplySelection replaces the selection of m with the job's selection.
func (j *Job) ApplySelection(m *mesh.Mesh) error {
	s := j.Selection
	for _, f := range s.Faces {
		if f < 0 || f >= m.NumFaces() {
			return fmt.Errorf("%w: face %d out of range", ErrInvalidSelection, f)
		}
	}
	for _, fc := range s.Loops {
		if len(fc) != 2 || fc[0] < 0 || fc[0] >= m.NumFaces() {
			return fmt.Errorf("%w: loop %v", ErrInvalidSelection, fc)
		}
		if n := len(m.FaceLoops(mesh.FaceID(fc[0]))); fc[1] < 0 || fc[1] >= n {
			return fmt.Errorf("%w: face %d has %d corners, got corner %d", ErrInvalidSelection, fc[0], n, fc[1])
		}
	}

	m.ClearSelection()
	if s.AllFaces {
		for _, f := range m.Faces() {
			m.SelectFace(f, true)
		}
	}
	for _, f := range s.Faces {
		m.SelectFace(mesh.FaceID(f), true)
	}
	for _, fc := range s.Loops {
		m.SetUVSelected(m.FaceLoop(mesh.FaceID(fc[0]), fc[1]), true)
	}
	return nil
}
