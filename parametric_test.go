// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestParametricCircle(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	vtxs := SolveParametric(func(t float64) (x, y float64) {
		return math.Cos(t), math.Sin(t)
	}, minmax.F64{Min: 0, Max: 2 * math.Pi}, vw, op)

	// The unit circle is smooth and well inside the jump threshold, so no
	// segment is dropped: 200 minimum samples, 6 vertices each.
	assert.Equal(t, 6*200, len(vtxs))
	half := vw.HalfStroke()
	for _, vt := range vtxs {
		r := math.Hypot(float64(vt.Position.X), float64(vt.Position.Y))
		assert.InDelta(t, 1, r, half+1e-3)
	}
}

func TestParametricHyperbola(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	// (t, 1/t) blows up at t = 0; the two branches must not be connected.
	vtxs := SolveParametric(func(t float64) (x, y float64) {
		return t, 1 / t
	}, minmax.F64{Min: -10, Max: 10}, vw, op)

	assert.NotEmpty(t, vtxs)
	assert.Zero(t, len(vtxs)%6)
	assert.Less(t, len(vtxs), 6*400)

	// No emitted segment bridges the discontinuity: a bridge would put
	// vertices with huge |y| of both signs adjacent in the buffer.
	maxJump := vw.WorldHeight() * op.PathJumpFactor
	for i := 0; i+6 <= len(vtxs); i += 6 {
		y0 := float64(vtxs[i].Position.Y)
		y1 := float64(vtxs[i+1].Position.Y)
		assert.LessOrEqual(t, math.Abs(y1-y0), maxJump+1e-6)
	}
}

func TestParametricStationary(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	// A constant curve produces coincident samples only: nothing to draw.
	vtxs := SolveParametric(func(t float64) (x, y float64) {
		return 1, 1
	}, minmax.F64{Min: 0, Max: 1}, vw, op)
	assert.Empty(t, vtxs)
}

func TestParametricDegenerate(t *testing.T) {
	vw := NewView()
	op := NewOptions()
	f := func(t float64) (x, y float64) { return t, t }

	assert.Nil(t, SolveParametric(f, minmax.F64{Min: 1, Max: 1}, vw, op))

	vw.Size.X = 0
	assert.Nil(t, SolveParametric(f, minmax.F64{Min: 0, Max: 1}, vw, op))
}
