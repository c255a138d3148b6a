// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// Options holds the tunable tessellation parameters shared by the solvers.
// The zero value is not usable; use [NewOptions] or call Defaults.
type Options struct {

	// Density is the number of explicit-curve samples per screen pixel.
	Density float64 `default:"1"`

	// JumpFactor breaks an explicit curve when adjacent samples differ in y
	// by more than this multiple of the viewport world height. It
	// discriminates asymptotes from merely steep functions: 10 filters
	// tan(x) without cutting steep but continuous curves.
	JumpFactor float64 `default:"10"`

	// PathDensity is the number of parametric-curve samples per unit of t.
	PathDensity float64 `default:"20"`

	// PathJumpFactor breaks a parametric curve when adjacent samples are
	// farther apart than this multiple of the viewport world height.
	PathJumpFactor float64 `default:"2"`

	// GridMin and GridMax clamp the implicit-curve grid resolution per
	// axis. The grid tracks half the screen resolution between these
	// bounds; GridMax is a performance ceiling.
	GridMin int `default:"100"`
	GridMax int `default:"700"`

	// GradientEps is the central-difference step for the numerical field
	// gradient that provides implicit surface normals.
	GradientEps float64 `default:"1e-6"`

	// SurfaceJumpSq is the squared world-space edge length above which a
	// parametric surface triangle is discarded, trimming triangles that
	// would bridge a discontinuity such as a branch cut.
	SurfaceJumpSq float64 `default:"100"`

	// Workers is the number of goroutines used for parallel sampling and
	// triangulation; 0 uses GOMAXPROCS.
	Workers int
}

// NewOptions returns Options with Defaults set.
func NewOptions() *Options {
	op := &Options{}
	op.Defaults()
	return op
}

func (op *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(op))
}
