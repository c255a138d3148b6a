// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

var unit = minmax.F64{Min: 0, Max: 1}

func TestSurfacePlane(t *testing.T) {
	op := NewOptions()
	ms := SolveParametricSurface(func(u, v float64) (x, y, z float64) {
		return u, v, 0
	}, unit, unit, 4, 4, op)

	assert.True(t, ms.IsValid())
	assert.Equal(t, 25, len(ms.Vertices))
	assert.Equal(t, 32, ms.NumTriangles())
	for _, vt := range ms.Vertices {
		tolassert.EqualTol(t, 0, vt.Normal.X, 1e-4)
		tolassert.EqualTol(t, 0, vt.Normal.Y, 1e-4)
		tolassert.EqualTol(t, 1, vt.Normal.Z, 1e-4)
	}
}

func TestSurfaceSphereNormals(t *testing.T) {
	op := NewOptions()
	ms := SolveParametricSurface(func(u, v float64) (x, y, z float64) {
		return math.Sin(v) * math.Cos(u), math.Sin(v) * math.Sin(u), math.Cos(v)
	}, minmax.F64{Min: 0, Max: 2 * math.Pi}, minmax.F64{Min: 0.2, Max: math.Pi - 0.2}, 16, 16, op)

	assert.True(t, ms.IsValid())
	// On a unit sphere the normal is radial (inward or outward depending
	// on parameterization handedness).
	for _, vt := range ms.Vertices {
		p := vt.Position
		dot := math.Abs(float64(vt.Normal.X*p.X + vt.Normal.Y*p.Y + vt.Normal.Z*p.Z))
		assert.Greater(t, dot, 0.999)
	}
}

func TestSurfaceNaNVertex(t *testing.T) {
	op := NewOptions()
	// Undefined at exactly one interior grid point (u, v) = (0.5, 0.5).
	ms := SolveParametricSurface(func(u, v float64) (x, y, z float64) {
		if u == 0.5 && v == 0.5 {
			return math.NaN(), 0, 0
		}
		return u, v, 0
	}, unit, unit, 4, 4, op)

	assert.True(t, ms.IsValid())
	// The vertex keeps its slot; exactly the 6 triangles touching it are
	// dropped out of the full 32.
	assert.Equal(t, 25, len(ms.Vertices))
	assert.Equal(t, 26, ms.NumTriangles())

	// No emitted triangle references the NaN vertex.
	for _, ix := range ms.Indices {
		assert.False(t, vecNaN(ms.Vertices[ix].Position))
	}
}

func TestSurfaceJump(t *testing.T) {
	op := NewOptions()
	// A cliff of height 50 at u = 0.5; edges spanning it exceed the
	// default jump threshold and the bridging column of cells drops.
	ms := SolveParametricSurface(func(u, v float64) (x, y, z float64) {
		if u < 0.5 {
			return u, v, 0
		}
		return u, v, 50
	}, unit, unit, 4, 4, op)

	assert.True(t, ms.IsValid())
	assert.Equal(t, 24, ms.NumTriangles())
}

func TestSurfaceDegenerate(t *testing.T) {
	op := NewOptions()
	f := func(u, v float64) (x, y, z float64) { return u, v, 0 }

	ms := SolveParametricSurface(f, unit, unit, 0, 4, op)
	assert.Empty(t, ms.Vertices)

	ms = SolveParametricSurface(f, minmax.F64{Min: 1, Max: 1}, unit, 4, 4, op)
	assert.Empty(t, ms.Vertices)
}
