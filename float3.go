// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"math"

	"cogentcore.org/core/math32"
)

// float3 is a float64 3-vector used for internal sampling math, where the
// 1e-9 and 1e-6 finite-difference steps are below float32 resolution.
// It mirrors the [math32.Vector3] API and converts to it at mesh emission.
type float3 struct {
	X, Y, Z float64
}

func f3(x, y, z float64) float3 {
	return float3{x, y, z}
}

func (a float3) Add(b float3) float3 {
	return float3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a float3) Sub(b float3) float3 {
	return float3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a float3) MulScalar(s float64) float3 {
	return float3{a.X * s, a.Y * s, a.Z * s}
}

func (a float3) Dot(b float3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a float3) Cross(b float3) float3 {
	return float3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a float3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Unit returns the unit vector, or the zero vector if the length is below
// degenEps.
func (a float3) Unit() float3 {
	ln := a.Length()
	if ln < degenEps {
		return float3{}
	}
	return a.MulScalar(1 / ln)
}

// IsFinite returns whether all three components are finite.
func (a float3) IsFinite() bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

// Vector3 converts to the float32 GPU vector type.
func (a float3) Vector3() math32.Vector3 {
	return math32.Vec3(float32(a.X), float32(a.Y), float32(a.Z))
}

// finite returns whether v is neither NaN nor Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// degenEps is the length below which a segment or vector is considered
// degenerate and skipped, avoiding zero-area triangles with undefined
// normals.
const degenEps = 1e-9
