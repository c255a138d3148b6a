// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"

	"cogentcore.org/core/math32"
)

// ImplicitFunc is an implicit 2D curve f(x,y) = 0. Must be pure.
type ImplicitFunc func(x, y float64) float64

// SolveImplicit finds the zero set of f on a grid covering the view and
// returns it as a point cloud: for every grid edge whose endpoint values
// change sign, a point is placed at the linearly interpolated crossing.
// There is no segment connectivity (this is root finding, not full
// marching squares); renderers draw the points as camera-facing quads.
// The grid resolution is half the screen resolution per axis, clamped to
// [Options.GridMin, Options.GridMax] as a performance ceiling.
// Grid columns are processed in parallel. Returns nil for a degenerate
// range or zero screen dimension.
func SolveImplicit(f ImplicitFunc, view *View, opts *Options) []Vertex2D {
	if view.XRange.Range() <= 0 || view.YRange.Range() <= 0 ||
		view.Size.X <= 0 || view.Size.Y <= 0 {
		return nil
	}
	gw := min(max(view.Size.X/2, opts.GridMin), opts.GridMax)
	gh := min(max(view.Size.Y/2, opts.GridMin), opts.GridMax)

	xstep := view.XRange.Range() / float64(gw)
	ystep := view.YRange.Range() / float64(gh)

	nw := workerCount(opts.Workers, gw)
	locals := make([][]Vertex2D, nw)
	parallelChunks(gw, nw, func(w, start, end int) {
		pts := make([]Vertex2D, 0, 16*(end-start))
		for i := start; i < end; i++ {
			x := view.XRange.Min + float64(i)*xstep
			for j := range gh {
				y := view.YRange.Min + float64(j)*ystep
				v00 := f(x, y)
				v10 := f(x+xstep, y)
				v01 := f(x, y+ystep)
				// NaN values fail both comparisons, breaking the curve
				// locally as required.
				if v00*v10 <= 0 {
					t := zeroCross(v00, v10)
					pts = append(pts, Vertex2D{math32.Vec2(float32(x+t*xstep), float32(y))})
				}
				if v00*v01 <= 0 {
					t := zeroCross(v00, v01)
					pts = append(pts, Vertex2D{math32.Vec2(float32(x), float32(y+t*ystep))})
				}
			}
		}
		locals[w] = pts
	})

	var vtxs []Vertex2D
	for _, pts := range locals {
		vtxs = append(vtxs, pts...)
	}
	return vtxs
}

// zeroCross returns the parameter in [0, 1] where the line from v0 to v1
// crosses zero, or the midpoint 0.5 when the edge is numerically flat.
func zeroCross(v0, v1 float64) float64 {
	diff := v1 - v0
	if math.Abs(diff) < 1e-15 {
		return 0.5
	}
	return math.Min(math.Max(-v0/diff, 0), 1)
}
