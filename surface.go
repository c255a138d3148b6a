// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// SurfaceFunc is a parametric surface (u,v) ↦ (x,y,z). Must be pure.
type SurfaceFunc func(u, v float64) (x, y, z float64)

// surfaceEps is the forward-difference step for parametric surface
// normals. The differences are divided back by the step so the tangents
// keep their geometric magnitude before the cross product.
const surfaceEps = 1e-9

// surfaceDefaultNormal is used when a neighbor sample needed for the
// finite-difference normal is non-finite.
var surfaceDefaultNormal = math32.Vec3(0, 0, 1)

// SolveParametricSurface samples f on a regular (usegs+1)×(vsegs+1) grid
// and builds an indexed mesh of two triangles per grid cell, with normals
// from forward differences of the surface.
//
// A sample with a non-finite component is stored as a NaN-tagged vertex
// with a zero normal; it keeps its slot in the vertex buffer (so indexing
// stays regular) but every triangle touching it is dropped. A triangle is
// also dropped when any of its edges is longer than √Options.SurfaceJumpSq
// in world units, which trims triangles bridging discontinuities such as
// branch cuts. The index buffer length is therefore at most
// 6·usegs·vsegs. Grid rows are sampled in parallel.
//
// Returns an empty mesh for degenerate ranges or non-positive segment
// counts.
func SolveParametricSurface(f SurfaceFunc, urange, vrange minmax.F64, usegs, vsegs int, opts *Options) *Mesh {
	ms := &Mesh{}
	if usegs <= 0 || vsegs <= 0 || urange.Range() <= 0 || vrange.Range() <= 0 {
		return ms
	}
	ustep := urange.Range() / float64(usegs)
	vstep := vrange.Range() / float64(vsegs)
	nv := vsegs + 1

	verts := make([]Vertex3D, (usegs+1)*nv)
	parallelChunks(usegs+1, opts.Workers, func(_, start, end int) {
		for i := start; i < end; i++ {
			u := urange.Min + float64(i)*ustep
			for j := range nv {
				v := vrange.Min + float64(j)*vstep
				verts[i*nv+j] = surfaceVertex(f, u, v)
			}
		}
	})
	ms.Vertices = verts

	maxEdgeSq := float32(opts.SurfaceJumpSq)
	ms.Indices = make([]uint32, 0, 6*usegs*vsegs)
	for i := range usegs {
		for j := range vsegs {
			row1 := uint32(i * nv)
			row2 := uint32((i + 1) * nv)
			a := row1 + uint32(j)
			b := a + 1
			d := row2 + uint32(j)
			c := d + 1
			ms.Indices = appendSurfaceTri(ms.Indices, verts, maxEdgeSq, a, d, b)
			ms.Indices = appendSurfaceTri(ms.Indices, verts, maxEdgeSq, b, d, c)
		}
	}
	return ms
}

// surfaceVertex samples one grid vertex: position from f(u,v), normal from
// the cross product of the forward-difference tangents.
func surfaceVertex(f SurfaceFunc, u, v float64) Vertex3D {
	px, py, pz := f(u, v)
	p := f3(px, py, pz)
	if !p.IsFinite() {
		nan := float32(math.NaN())
		return Vertex3D{Position: math32.Vec3(nan, nan, nan)}
	}
	vtx := Vertex3D{Position: p.Vector3()}

	ux, uy, uz := f(u+surfaceEps, v)
	vx, vy, vz := f(u, v+surfaceEps)
	pu := f3(ux, uy, uz)
	pv := f3(vx, vy, vz)
	if !pu.IsFinite() || !pv.IsFinite() {
		vtx.Normal = surfaceDefaultNormal
		return vtx
	}
	du := pu.Sub(p).MulScalar(1 / surfaceEps)
	dv := pv.Sub(p).MulScalar(1 / surfaceEps)
	vtx.Normal = du.Cross(dv).Unit().Vector3()
	return vtx
}

// appendSurfaceTri appends triangle (a, b, c) only if all three vertices
// are finite and all three edges are within the jump threshold.
func appendSurfaceTri(idxs []uint32, verts []Vertex3D, maxEdgeSq float32, a, b, c uint32) []uint32 {
	pa := verts[a].Position
	pb := verts[b].Position
	pc := verts[c].Position
	if vecNaN(pa) || vecNaN(pb) || vecNaN(pc) {
		return idxs
	}
	if pa.DistanceToSquared(pb) > maxEdgeSq ||
		pb.DistanceToSquared(pc) > maxEdgeSq ||
		pc.DistanceToSquared(pa) > maxEdgeSq {
		return idxs
	}
	return append(idxs, a, b, c)
}

// vecNaN reports whether any component of v is NaN (the sentinel tag for
// an invalid surface sample).
func vecNaN(v math32.Vector3) bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}
