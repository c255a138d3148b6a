// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestTubeDefaults(t *testing.T) {
	tb := NewTube()
	assert.Equal(t, 0.05, tb.Radius)
	assert.Equal(t, 16, tb.Segments)
	assert.Equal(t, 200, tb.PathSegments)
}

func TestTubeCircle(t *testing.T) {
	tb := NewTube()
	// Sweeping the tube along the unit circle produces a torus.
	ms := SolveSpaceCurve(func(t float64) (x, y, z float64) {
		return math.Cos(t), math.Sin(t), 0
	}, minmax.F64{Min: 0, Max: 2 * math.Pi}, tb)

	assert.True(t, ms.IsValid())
	assert.Equal(t, (tb.PathSegments+1)*(tb.Segments+1), len(ms.Vertices))
	assert.Equal(t, 2*tb.PathSegments*tb.Segments, ms.NumTriangles())

	ring := tb.Segments + 1
	step := 2 * math.Pi / float64(tb.PathSegments)
	for i, vt := range ms.Vertices {
		p := vt.Position
		// Distance from the center circle of the torus is the tube radius.
		d := math.Hypot(math.Hypot(float64(p.X), float64(p.Y))-1, float64(p.Z))
		assert.InDelta(t, tb.Radius, d, 1e-4)

		// Radial offsets double as unit normals.
		n := vt.Normal
		ln := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
		assert.InDelta(t, 1, ln, 1e-4)

		// Each ring lies in the plane perpendicular to the curve tangent.
		ct := float64(i/ring) * step
		dot := -math.Sin(ct)*float64(n.X) + math.Cos(ct)*float64(n.Y)
		assert.Less(t, math.Abs(dot), 1e-6)
	}
}

func TestTubeVerticalTangent(t *testing.T) {
	tb := NewTube()
	// A straight vertical line exercises the reference-vector flip for
	// near-vertical tangents; the frame must stay well conditioned.
	ms := SolveSpaceCurve(func(t float64) (x, y, z float64) {
		return 0, t, 0
	}, minmax.F64{Min: 0, Max: 1}, tb)

	assert.True(t, ms.IsValid())
	assert.Equal(t, 2*tb.PathSegments*tb.Segments, ms.NumTriangles())
	for _, vt := range ms.Vertices {
		p := vt.Position
		d := math.Hypot(float64(p.X), float64(p.Z))
		assert.InDelta(t, tb.Radius, d, 1e-4)
	}
}

func TestTubeNaNRing(t *testing.T) {
	tb := NewTube()
	tb.PathSegments = 20
	// Undefined in the middle of the range: the affected rings keep their
	// slots but no quads touch them.
	ms := SolveSpaceCurve(func(t float64) (x, y, z float64) {
		if t > 0.45 && t < 0.55 {
			return math.NaN(), 0, 0
		}
		return t, 0, 0
	}, minmax.F64{Min: 0, Max: 1}, tb)

	assert.True(t, ms.IsValid())
	assert.Equal(t, (tb.PathSegments+1)*(tb.Segments+1), len(ms.Vertices))
	assert.Less(t, ms.NumTriangles(), 2*tb.PathSegments*tb.Segments)
	for _, ix := range ms.Indices {
		assert.False(t, vecNaN(ms.Vertices[ix].Position))
	}
}

func TestTubeDegenerate(t *testing.T) {
	f := func(t float64) (x, y, z float64) { return t, 0, 0 }

	tb := NewTube()
	ms := SolveSpaceCurve(f, minmax.F64{Min: 1, Max: 1}, tb)
	assert.Empty(t, ms.Vertices)

	tb.Radius = 0
	ms = SolveSpaceCurve(f, minmax.F64{Min: 0, Max: 1}, tb)
	assert.Empty(t, ms.Vertices)
}
