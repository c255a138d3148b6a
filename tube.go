// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32/minmax"
)

// CurveFunc is a parametric space curve t ↦ (x,y,z). Must be pure.
type CurveFunc func(t float64) (x, y, z float64)

// Tube holds the tube-extrusion parameters for [SolveSpaceCurve].
type Tube struct {

	// Radius is the tube radius in world units.
	Radius float64 `default:"0.05"`

	// Segments is the number of sides of each circular cross section.
	Segments int `default:"16"`

	// PathSegments is the number of segments along the curve.
	PathSegments int `default:"200"`
}

// NewTube returns a new [Tube] with default parameters.
func NewTube() *Tube {
	tb := &Tube{}
	tb.Defaults()
	return tb
}

// Defaults sets default parameter values from their default tags.
func (tb *Tube) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(tb))
}

// SolveSpaceCurve sweeps a circular cross section along the curve f,
// producing a tube mesh with PathSegments+1 rings of Segments+1 vertices
// (the first and last vertex of each ring coincide so the texture seam
// closes). Vertex normals are the radial offsets, which are exact for a
// circular tube.
//
// The frame at each ring is built from the forward-difference tangent and
// a fixed up reference, not parallel transport, so the tube can twist
// where the tangent passes close to the reference; the reference flips
// from +Y to +Z when the tangent is nearly vertical to avoid a degenerate
// cross product. Rings with a non-finite center or tangent keep their
// vertex slots but all quads touching them are dropped.
//
// Returns an empty mesh when the t range is degenerate or the tube
// parameters are non-positive.
func SolveSpaceCurve(f CurveFunc, trange minmax.F64, tb *Tube) *Mesh {
	ms := &Mesh{}
	tlen := trange.Range()
	if tlen <= 0 || tb.Radius <= 0 || tb.Segments < 3 || tb.PathSegments < 1 {
		return ms
	}
	step := tlen / float64(tb.PathSegments)
	ring := tb.Segments + 1

	ms.Vertices = make([]Vertex3D, (tb.PathSegments+1)*ring)
	ringOK := make([]bool, tb.PathSegments+1)
	for i := 0; i <= tb.PathSegments; i++ {
		t := trange.Min + float64(i)*step
		cx, cy, cz := f(t)
		center := f3(cx, cy, cz)
		tangent, ok := curveTangent(f, t, center)
		if !center.IsFinite() || !ok {
			continue
		}
		// Fixed reference frame; flip to +Z when the tangent is nearly
		// vertical so the cross product stays well conditioned.
		helper := f3(0, 1, 0)
		if math.Abs(tangent.Dot(helper)) > 0.99 {
			helper = f3(0, 0, 1)
		}
		normal := tangent.Cross(helper).Unit()
		binormal := tangent.Cross(normal).Unit()
		ringOK[i] = true

		for j := 0; j < ring; j++ {
			theta := 2 * math.Pi * float64(j) / float64(tb.Segments)
			offset := normal.MulScalar(math.Cos(theta)).Add(binormal.MulScalar(math.Sin(theta)))
			ms.Vertices[i*ring+j] = Vertex3D{
				Position: center.Add(offset.MulScalar(tb.Radius)).Vector3(),
				Normal:   offset.Vector3(),
			}
		}
	}

	ms.Indices = make([]uint32, 0, 6*tb.PathSegments*tb.Segments)
	for i := range tb.PathSegments {
		if !ringOK[i] || !ringOK[i+1] {
			continue
		}
		row1 := uint32(i * ring)
		row2 := uint32((i + 1) * ring)
		for j := range tb.Segments {
			a := row1 + uint32(j)
			b := a + 1
			d := row2 + uint32(j)
			c := d + 1
			ms.Indices = append(ms.Indices, a, d, b, b, d, c)
		}
	}
	return ms
}

// curveTangent returns the unit forward-difference tangent of f at t,
// reporting false when the neighbor sample is non-finite or the tangent
// vanishes. The difference is divided back by the step so its magnitude
// is the actual curve speed before the degeneracy check.
func curveTangent(f CurveFunc, t float64, p float3) (float3, bool) {
	nx, ny, nz := f(t + degenEps)
	next := f3(nx, ny, nz)
	if !next.IsFinite() {
		return float3{}, false
	}
	d := next.Sub(p).MulScalar(1 / degenEps)
	if d.Length() < degenEps {
		return float3{}, false
	}
	return d.Unit(), true
}
