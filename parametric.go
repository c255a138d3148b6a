// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"cogentcore.org/core/math32/minmax"
)

// ParametricFunc is a parametric 2D curve t ↦ (x, y). Must be pure.
type ParametricFunc func(t float64) (x, y float64)

// SolveParametric tessellates the curve over trange into a triangle ribbon
// of constant screen width, sampling Options.PathDensity points per unit t
// (at least 200 total). Segment pairs are skipped when either point is
// non-finite, when the points nearly coincide (squared distance < 1e-12),
// or when the squared distance exceeds (Options.PathJumpFactor viewport
// heights)², the asymptote guard for curves like (t, 1/t).
// Returns nil for a degenerate t range or screen.
func SolveParametric(f ParametricFunc, trange minmax.F64, view *View, opts *Options) []Vertex2D {
	tlen := trange.Range()
	if tlen <= 0 || view.Size.X <= 0 || view.Size.Y <= 0 {
		return nil
	}
	ns := int(tlen * opts.PathDensity)
	ns = max(ns, 200)
	step := tlen / float64(ns)

	xs := make([]float64, ns+1)
	ys := make([]float64, ns+1)
	parallelChunks(ns+1, opts.Workers, func(_, start, end int) {
		for i := start; i < end; i++ {
			xs[i], ys[i] = f(trange.Min + float64(i)*step)
		}
	})

	maxJumpSq := view.WorldHeight() * opts.PathJumpFactor
	maxJumpSq *= maxJumpSq
	half := view.HalfStroke()

	vtxs := make([]Vertex2D, 0, ns*6)
	for i := range ns {
		x0, y0 := xs[i], ys[i]
		x1, y1 := xs[i+1], ys[i+1]
		if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
			continue
		}
		dx := x1 - x0
		dy := y1 - y0
		distSq := dx*dx + dy*dy
		if distSq < 1e-12 { // coincident samples
			continue
		}
		if distSq > maxJumpSq {
			continue
		}
		vtxs = appendRibbon(vtxs, x0, y0, x1, y1, half)
	}
	return vtxs
}
