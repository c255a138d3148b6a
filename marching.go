// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"

	"cogentcore.org/core/math32"
)

// FieldFunc is a scalar field whose zero isosurface is extracted by
// [SolveImplicitSurface]. Negative values are inside. Must be pure.
type FieldFunc func(x, y, z float64) float64

// SolveImplicitSurface runs marching cubes on f over the given volume with
// an N³-cell voxel grid ((N+1)³ sample points) and returns an indexed
// triangle mesh with per-vertex normals from the numerical gradient of f.
//
// The field is first evaluated once per grid point, in parallel by z-slice;
// cells are then triangulated in parallel by z-layer, each worker building
// a private mesh; the private meshes are concatenated serially with index
// rebasing, which is the only synchronization. Complexity is O(N³);
// N around 100 is a practical ceiling for interactive rates.
//
// Returns an empty mesh for a non-positive resolution or degenerate volume.
// Cells with a non-finite corner sample are skipped.
func SolveImplicitSurface(f FieldFunc, vol Volume, resolution int, opts *Options) *Mesh {
	ms := &Mesh{}
	if resolution <= 0 || !vol.IsValid() {
		return ms
	}
	n1 := resolution + 1
	sx := vol.X.Range() / float64(resolution)
	sy := vol.Y.Range() / float64(resolution)
	sz := vol.Z.Range() / float64(resolution)

	// Phase 1: sample the scalar field, one z-slice per work item.
	values := make([]float64, n1*n1*n1)
	parallelChunks(n1, opts.Workers, func(_, kstart, kend int) {
		for k := kstart; k < kend; k++ {
			z := vol.Z.Min + float64(k)*sz
			for j := range n1 {
				y := vol.Y.Min + float64(j)*sy
				row := k*n1*n1 + j*n1
				for i := range n1 {
					values[row+i] = f(vol.X.Min+float64(i)*sx, y, z)
				}
			}
		}
	})

	// Phase 2: march the cells, one block of z-layers per worker.
	nw := workerCount(opts.Workers, resolution)
	parts := make([]*Mesh, nw)
	parallelChunks(resolution, nw, func(w, kstart, kend int) {
		parts[w] = marchLayers(f, vol, resolution, values, kstart, kend, sx, sy, sz, opts.GradientEps)
	})

	// Phase 3: serial merge with index rebasing.
	for _, pt := range parts {
		if pt != nil {
			ms.appendMesh(pt)
		}
	}
	return ms
}

// mcCorners is the cell corner layout in the classic Paul Bourke order:
// corners 0-3 on the lower y face (counterclockwise in x/z), 4-7 above.
var mcCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1},
	{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1},
}

// mcEdgeCorners gives the two corner indices joined by each of the 12 cell
// edges, matching the bit order of mcEdgeTable.
var mcEdgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// marchLayers triangulates the cells in z-layers [kstart, kend) into a
// fresh local mesh, reading the precomputed values grid.
func marchLayers(f FieldFunc, vol Volume, res int, values []float64, kstart, kend int, sx, sy, sz, gradEps float64) *Mesh {
	n1 := res + 1
	ms := &Mesh{}
	var vals [8]float64
	var pos [8]float3
	var verts [12]float3
	for k := kstart; k < kend; k++ {
		for j := range res {
			for i := range res {
				cubeIndex := 0
				ok := true
				for n := range 8 {
					co := mcCorners[n]
					gi := (k+co[2])*n1*n1 + (j+co[1])*n1 + (i + co[0])
					v := values[gi]
					if !finite(v) {
						ok = false
						break
					}
					vals[n] = v
					pos[n] = f3(
						vol.X.Min+float64(i+co[0])*sx,
						vol.Y.Min+float64(j+co[1])*sy,
						vol.Z.Min+float64(k+co[2])*sz)
					if v < 0 { // isovalue = 0
						cubeIndex |= 1 << n
					}
				}
				if !ok {
					continue
				}
				edges := mcEdgeTable[cubeIndex]
				if edges == 0 { // fully inside or outside
					continue
				}
				for e := range 12 {
					if edges&(1<<e) != 0 {
						ec := mcEdgeCorners[e]
						verts[e] = edgeLerp(pos[ec[0]], vals[ec[0]], pos[ec[1]], vals[ec[1]])
					}
				}
				tri := &mcTriTable[cubeIndex]
				for t := 0; t < 16 && tri[t] >= 0; t += 3 {
					base := uint32(len(ms.Vertices))
					for n := range 3 {
						p := verts[tri[t+n]]
						ms.Vertices = append(ms.Vertices, Vertex3D{
							Position: p.Vector3(),
							Normal:   gradientNormal(f, p, gradEps),
						})
					}
					ms.Indices = append(ms.Indices, base, base+1, base+2)
				}
			}
		}
	}
	return ms
}

// edgeLerp returns the zero crossing between two corner samples, falling
// back to the first corner when the values are too close to divide safely.
func edgeLerp(p1 float3, v1 float64, p2 float3, v2 float64) float3 {
	if math.Abs(v2-v1) < degenEps {
		return p1
	}
	mu := (0 - v1) / (v2 - v1)
	return p1.Add(p2.Sub(p1).MulScalar(mu))
}

// gradientNormal computes the unit surface normal at p as the central
// difference gradient of the field; the normal of f(x,y,z)=0 is ∇f.
// A non-finite or vanishing gradient yields the zero vector.
func gradientNormal(f FieldFunc, p float3, eps float64) (n math32.Vector3) {
	g := f3(
		f(p.X+eps, p.Y, p.Z)-f(p.X-eps, p.Y, p.Z),
		f(p.X, p.Y+eps, p.Z)-f(p.X, p.Y-eps, p.Z),
		f(p.X, p.Y, p.Z+eps)-f(p.X, p.Y, p.Z-eps))
	if !g.IsFinite() {
		return
	}
	return g.Unit().Vector3()
}
