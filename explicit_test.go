// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplicitLine(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	vtxs := SolveExplicit(func(x float64) float64 { return x }, vw, op)

	ns := 800 // Size.X * Density
	assert.Equal(t, 6*ns, len(vtxs))

	// Every ribbon vertex is within half a stroke of the line y = x.
	half := vw.HalfStroke()
	for _, vt := range vtxs {
		d := math.Abs(float64(vt.Position.Y-vt.Position.X)) / math.Sqrt2
		assert.LessOrEqual(t, d, half+1e-4)
	}
}

func TestExplicitAsymptote(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	vtxs := SolveExplicit(math.Tan, vw, op)

	// tan has an asymptote at ±π/2 inside the default window; the ribbon
	// must break there, dropping at least one segment on each.
	assert.NotEmpty(t, vtxs)
	assert.Zero(t, len(vtxs)%6)
	assert.Less(t, len(vtxs), 6*800)

	// No emitted quad bridges a pole.
	jump := vw.WorldHeight() * op.JumpFactor
	for i := 0; i+6 <= len(vtxs); i += 6 {
		dy := float64(vtxs[i+1].Position.Y - vtxs[i].Position.Y)
		assert.LessOrEqual(t, math.Abs(dy), jump+1e-6)
	}
}

func TestExplicitNaN(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	// Defined only on [-1, 1]; NaN outside.
	vtxs := SolveExplicit(func(x float64) float64 { return math.Sqrt(1 - x*x) }, vw, op)

	assert.NotEmpty(t, vtxs)
	step := vw.XRange.Range() / 800
	for _, vt := range vtxs {
		assert.False(t, math.IsNaN(float64(vt.Position.Y)))
		assert.LessOrEqual(t, math.Abs(float64(vt.Position.X)), 1+step)
	}
}

func TestExplicitDegenerate(t *testing.T) {
	op := NewOptions()
	f := func(x float64) float64 { return x }

	vw := NewView()
	vw.XRange.Set(1, 1)
	assert.Nil(t, SolveExplicit(f, vw, op))

	vw = NewView()
	vw.Size.X = 0
	assert.Nil(t, SolveExplicit(f, vw, op))
}
