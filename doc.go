// Package uvalign provides UV alignment operators for half-edge meshes.
//
// # Overview
//
// Each operator reads the current face and UV selection of a mesh, works out
// which loops (face corners) to move, computes their new UV coordinates and
// writes them back. The mesh is accessed only through [mesh.Accessor], so a
// host editor can plug in its own mesh structures.
//
// # Quick Start
//
//	m, _ := mesh.ReadOBJ(f)
//	m.SelectFace(0, true)
//	// ... mark UV-selected loops with m.SetUVSelected ...
//
//	res, err := uvalign.Smooth(m)
//	if err != nil {
//	    // errors.Is(err, uvalign.ErrLoopedSelection), ...
//	}
//	fmt.Println(res.Moved, "UVs moved")
//
// # Operators
//
//   - [Circle]: every selected face becomes a regular polygon on the circle
//     through its first three UVs.
//   - [Smooth]: the selected run of UVs in one face is respaced evenly by arc
//     length along its current path.
//   - [Straighten]: the selected run is placed evenly on the line between its
//     ends.
//   - [StraightenGrid]: a selected edge row is straightened and, with
//     transmission, the faces above it are laid out as a regular grid.
//   - [Axis]: the selected run is lined up with the X or Y axis.
//
// Operators are also available by name through the registry ([Run],
// [List], [Lookup]).
//
// # Failure
//
// Operators validate the selection and compute every new coordinate before
// writing anything. On error the mesh is left untouched. Errors wrap the
// sentinels in errors.go; see [ErrLoopedSelection] and friends.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route diagnostics to
// a [log/slog] logger.
package uvalign
