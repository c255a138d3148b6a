// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sphereField(x, y, z float64) float64 {
	return x*x + y*y + z*z - 1
}

// meshVolume returns the volume enclosed by a closed mesh as the absolute
// sum of signed tetrahedra against the origin.
func meshVolume(ms *Mesh) float64 {
	var sum float64
	for i := 0; i+2 < len(ms.Indices); i += 3 {
		a := ms.Vertices[ms.Indices[i]].Position
		b := ms.Vertices[ms.Indices[i+1]].Position
		c := ms.Vertices[ms.Indices[i+2]].Position
		av := f3(float64(a.X), float64(a.Y), float64(a.Z))
		bv := f3(float64(b.X), float64(b.Y), float64(b.Z))
		cv := f3(float64(c.X), float64(c.Y), float64(c.Z))
		sum += av.Dot(bv.Cross(cv)) / 6
	}
	return math.Abs(sum)
}

func TestMarchingSphere(t *testing.T) {
	op := NewOptions()
	ms := SolveImplicitSurface(sphereField, NewVolume(-1.5, 1.5), 40, op)

	assert.True(t, ms.IsValid())
	assert.Greater(t, ms.NumTriangles(), 100)

	for _, vt := range ms.Vertices {
		p := vt.Position
		r := math.Sqrt(float64(p.X*p.X + p.Y*p.Y + p.Z*p.Z))
		// Linear interpolation of the quadratic field along cell edges
		// stays within a small fraction of the cell size.
		assert.InDelta(t, 1, r, 0.05)

		// The gradient normal of x²+y²+z²-1 points radially outward.
		dot := float64(vt.Normal.X*p.X+vt.Normal.Y*p.Y+vt.Normal.Z*p.Z) / r
		assert.Greater(t, dot, 0.99)
	}

	vol := meshVolume(ms)
	exact := 4 * math.Pi / 3
	assert.InDelta(t, exact, vol, 0.05*exact)
}

func TestMarchingEmptyField(t *testing.T) {
	op := NewOptions()
	// Nowhere zero: no surface.
	ms := SolveImplicitSurface(func(x, y, z float64) float64 { return 1 }, NewVolume(-1, 1), 16, op)
	assert.Empty(t, ms.Vertices)
	assert.Empty(t, ms.Indices)
}

func TestMarchingNaNField(t *testing.T) {
	op := NewOptions()
	// The field is undefined in an octant; cells touching it are skipped
	// but the rest of the sphere still comes out.
	ms := SolveImplicitSurface(func(x, y, z float64) float64 {
		if x > 0 && y > 0 && z > 0 {
			return math.NaN()
		}
		return sphereField(x, y, z)
	}, NewVolume(-1.5, 1.5), 32, op)

	assert.True(t, ms.IsValid())
	assert.Greater(t, ms.NumTriangles(), 100)
	for _, vt := range ms.Vertices {
		assert.False(t, vecNaN(vt.Position))
	}
}

func TestMarchingDeterminism(t *testing.T) {
	vol := NewVolume(-1.5, 1.5)

	op1 := NewOptions()
	op1.Workers = 1
	op8 := NewOptions()
	op8.Workers = 8
	assert.Equal(t,
		SolveImplicitSurface(sphereField, vol, 24, op1),
		SolveImplicitSurface(sphereField, vol, 24, op8))
}

func TestMarchingDegenerate(t *testing.T) {
	op := NewOptions()
	ms := SolveImplicitSurface(sphereField, NewVolume(-1, 1), 0, op)
	assert.Empty(t, ms.Vertices)

	ms = SolveImplicitSurface(sphereField, NewVolume(1, 1), 16, op)
	assert.Empty(t, ms.Vertices)
}
