// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import "cogentcore.org/core/math32"

// Vertex2D is the vertex format produced by the 2D solvers: an interleaved
// pair of float32 coordinates in world space, uploadable as-is.
// Ribbon solvers emit 6 vertices (two triangles) per curve segment;
// the implicit solver emits independent points that a renderer typically
// expands into camera-facing quads via instancing.
type Vertex2D struct {
	Position math32.Vector2
}

// Vertex3D is the vertex format produced by the 3D solvers: interleaved
// float32 position and unit normal.
type Vertex3D struct {
	Position math32.Vector3
	Normal   math32.Vector3
}

// Mesh is an indexed triangle (or line) mesh produced by the 3D solvers.
// Every index refers into Vertices; for triangle topology len(Indices) is a
// multiple of 3, for line topology a multiple of 2.
type Mesh struct {
	Vertices []Vertex3D
	Indices  []uint32
}

// NumTriangles returns the number of triangles in the index buffer.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices) / 3
}

// IsValid checks the index invariants: every index is within the vertex
// buffer, and the index count is a multiple of 3 (or 2 for line topology).
func (ms *Mesh) IsValid() bool {
	if len(ms.Indices)%3 != 0 && len(ms.Indices)%2 != 0 {
		return false
	}
	n := uint32(len(ms.Vertices))
	for _, ix := range ms.Indices {
		if ix >= n {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of all vertex positions.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range ms.Vertices {
		bb.ExpandByPoint(v.Position)
	}
	return bb
}

// appendMesh appends the vertices and indices of other onto ms, rebasing
// the appended indices by the current vertex count. This is the serial
// merge step for the parallel solvers.
func (ms *Mesh) appendMesh(other *Mesh) {
	base := uint32(len(ms.Vertices))
	ms.Vertices = append(ms.Vertices, other.Vertices...)
	for _, ix := range other.Indices {
		ms.Indices = append(ms.Indices, base+ix)
	}
}

// NewAxes returns a line-topology mesh of the three coordinate axes from
// the origin, each of the given length. Normals are zero: axes are drawn
// unlit.
func NewAxes(length float32) *Mesh {
	ms := &Mesh{}
	ms.Vertices = []Vertex3D{
		{Position: math32.Vector3{}},
		{Position: math32.Vec3(length, 0, 0)},
		{Position: math32.Vec3(0, length, 0)},
		{Position: math32.Vec3(0, 0, length)},
	}
	ms.Indices = []uint32{0, 1, 0, 2, 0, 3}
	return ms
}

// NewPlane returns a unit-normal square plane of the given total size,
// centered on the origin in the XY plane.
func NewPlane(size float32) *Mesh {
	h := size / 2
	n := math32.Vec3(0, 0, 1)
	ms := &Mesh{}
	ms.Vertices = []Vertex3D{
		{Position: math32.Vec3(-h, -h, 0), Normal: n},
		{Position: math32.Vec3(h, -h, 0), Normal: n},
		{Position: math32.Vec3(h, h, 0), Normal: n},
		{Position: math32.Vec3(-h, h, 0), Normal: n},
	}
	ms.Indices = []uint32{0, 1, 2, 0, 2, 3}
	return ms
}
