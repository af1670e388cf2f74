// Package mesh describes the half-edge mesh contract consumed by the UV
// operators and provides an in-memory implementation of it.
//
// A mesh is made of vertices, faces and loops. A loop is one corner of a
// face: it references the face, the vertex at that corner, and the next and
// previous loops along the face boundary. Each loop carries its own UV
// coordinate and UV selection flag, so two faces that share a vertex in 3D
// may still be disjoint in UV space.
//
// Host editors implement [Accessor] over their own structures. [Mesh] is an
// arena-indexed implementation used by the CLI and by tests; it can be read
// from and written to Wavefront OBJ with [ReadOBJ] and [Mesh.WriteOBJ].
package mesh
