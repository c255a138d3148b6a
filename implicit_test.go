// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImplicitCircle(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	vtxs := SolveImplicit(func(x, y float64) float64 { return x*x + y*y - 1 }, vw, op)

	// Default 800x600 screen gives a 400x300 grid over the 4x4 window.
	assert.Greater(t, len(vtxs), 100)
	xstep := vw.XRange.Range() / 400
	ystep := vw.YRange.Range() / 300
	tol := 2 * math.Max(xstep, ystep)
	for _, vt := range vtxs {
		r := math.Hypot(float64(vt.Position.X), float64(vt.Position.Y))
		assert.InDelta(t, 1, r, tol)
	}
}

func TestImplicitNoCurve(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	// Strictly positive everywhere: no zero set in the window.
	vtxs := SolveImplicit(func(x, y float64) float64 { return x*x + y*y + 1 }, vw, op)
	assert.Empty(t, vtxs)
}

func TestImplicitDeterminism(t *testing.T) {
	f := func(x, y float64) float64 { return math.Sin(x*x+y*y) - math.Cos(x*y) }
	vw := NewView()

	op1 := NewOptions()
	op1.Workers = 1
	op8 := NewOptions()
	op8.Workers = 8
	assert.Equal(t, SolveImplicit(f, vw, op1), SolveImplicit(f, vw, op8))
}

func TestImplicitDegenerate(t *testing.T) {
	op := NewOptions()
	f := func(x, y float64) float64 { return x + y }

	vw := NewView()
	vw.YRange.Set(2, 2)
	assert.Nil(t, SolveImplicit(f, vw, op))

	vw = NewView()
	vw.Size.Y = 0
	assert.Nil(t, SolveImplicit(f, vw, op))
}
