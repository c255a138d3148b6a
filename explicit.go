// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"

	"cogentcore.org/core/math32"
)

// ExplicitFunc is an explicit curve y = f(x). Like all function closures
// passed to the solvers, it must be pure: it is evaluated from multiple
// goroutines in unspecified order.
type ExplicitFunc func(x float64) float64

// SolveExplicit tessellates y = f(x) across the view's x range into a
// triangle ribbon of constant screen width (6 vertices per segment).
// The ribbon breaks wherever a sample is NaN/Inf or where adjacent samples
// differ in y by more than Options.JumpFactor viewport heights, which hides
// vertical asymptotes without any symbolic knowledge of the function.
// Returns nil for a degenerate x range or zero screen width.
func SolveExplicit(f ExplicitFunc, view *View, opts *Options) []Vertex2D {
	xlen := view.XRange.Range()
	if xlen <= 0 || view.Size.X <= 0 || view.Size.Y <= 0 {
		return nil
	}
	ns := int(math.Ceil(float64(view.Size.X) * opts.Density))
	ns = max(ns, 100)
	step := xlen / float64(ns)

	ys := make([]float64, ns+1)
	parallelChunks(ns+1, opts.Workers, func(_, start, end int) {
		for i := start; i < end; i++ {
			ys[i] = f(view.XRange.Min + float64(i)*step)
		}
	})

	jump := view.WorldHeight() * opts.JumpFactor
	half := view.HalfStroke()

	vtxs := make([]Vertex2D, 0, ns*6)
	for i := range ns {
		y0, y1 := ys[i], ys[i+1]
		if !finite(y0) || !finite(y1) {
			continue
		}
		if math.Abs(y1-y0) > jump {
			continue
		}
		x0 := view.XRange.Min + float64(i)*step
		vtxs = appendRibbon(vtxs, x0, y0, x0+step, y1, half)
	}
	return vtxs
}

// appendRibbon extrudes the segment (x0,y0)-(x1,y1) by half on each side
// of its unit normal and appends the two resulting triangles (6 vertices).
// Degenerate segments shorter than degenEps are skipped.
func appendRibbon(vtxs []Vertex2D, x0, y0, x1, y1, half float64) []Vertex2D {
	dx := x1 - x0
	dy := y1 - y0
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < degenEps {
		return vtxs
	}
	ox := -dy / ln * half
	oy := dx / ln * half

	p0l := Vertex2D{math32.Vec2(float32(x0+ox), float32(y0+oy))}
	p0r := Vertex2D{math32.Vec2(float32(x0-ox), float32(y0-oy))}
	p1l := Vertex2D{math32.Vec2(float32(x1+ox), float32(y1+oy))}
	p1r := Vertex2D{math32.Vec2(float32(x1-ox), float32(y1-oy))}

	return append(vtxs, p0l, p1l, p0r, p0r, p1l, p1r)
}
