// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package grapher tessellates mathematical functions into renderable geometry.

It turns one of six function forms into flat vertex buffers that can be
uploaded to a GPU verbatim:

  - Implicit 2D curves f(x,y) = 0 → a point cloud on the zero set
  - Explicit curves y = f(x) → a constant-screen-width triangle ribbon
  - Parametric 2D curves t ↦ (x,y) → a triangle ribbon
  - Implicit surfaces f(x,y,z) = 0 → an indexed triangle mesh (marching cubes)
  - Parametric surfaces (u,v) ↦ (x,y,z) → an indexed triangle mesh
  - Parametric space curves t ↦ (x,y,z) → an indexed tube mesh

All solvers are pure and synchronous: they take a function closure plus a
snapshot of the domain and viewport, run sampling and triangulation across
multiple goroutines internally, and return a freshly allocated buffer.
Nothing is cached and no view state is retained, so a caller re-solves
whenever its [View] snapshot changes (comparing View values replaces any
dirty-flag machinery). Function closures must be side-effect free: they are
evaluated from many goroutines in unspecified order.

The solvers are deliberately robust to badly behaved functions: NaN or Inf
samples break connectivity locally instead of corrupting the buffer, and
viewport-relative jump thresholds suppress the spurious vertical segments
that asymptotes such as tan(x) would otherwise produce. See [Options] for
the tunable sampling densities and thresholds.

The [Function] type bundles a closure with its form tag and domain
parameters, and dispatches to the matching solver:

	fn := grapher.NewExplicit(math.Sin)
	view := grapher.NewView()
	view.XRange.Set(-10, 10)
	verts := fn.Solve2D(view, grapher.NewOptions())
*/
package grapher
