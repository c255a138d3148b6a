// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"cogentcore.org/core/math32/minmax"
)

// Forms are the supported mathematical function forms.
type Forms int32 //enums:enum

const (
	// Implicit is an implicit 2D curve f(x,y) = 0.
	Implicit Forms = iota

	// Explicit is an explicit 2D curve y = f(x).
	Explicit

	// Parametric is a parametric 2D curve t ↦ (x,y).
	Parametric

	// ImplicitSurface is a 3D isosurface f(x,y,z) = 0.
	ImplicitSurface

	// ParametricSurface is a parametric 3D surface (u,v) ↦ (x,y,z).
	ParametricSurface

	// SpaceCurve is a parametric 3D curve t ↦ (x,y,z) rendered as a tube.
	SpaceCurve
)

// Is3D returns whether this form produces a 3D mesh (solved with
// [Function.Solve3D]) rather than 2D screen geometry ([Function.Solve2D]).
func (fr Forms) Is3D() bool {
	return fr >= ImplicitSurface
}

// Function bundles one function of any [Forms] with the domain parameters
// its solver needs, so callers can hold a heterogeneous list of plots.
// Exactly one of the function fields is set, per Form; the others are nil.
type Function struct {

	// Form selects which function field and solver are used.
	Form Forms

	// Implicit is the function for the [Implicit] form.
	Implicit ImplicitFunc

	// Explicit is the function for the [Explicit] form.
	Explicit ExplicitFunc

	// Parametric is the function for the [Parametric] form.
	Parametric ParametricFunc

	// Field is the scalar field for the [ImplicitSurface] form.
	Field FieldFunc

	// Surface is the function for the [ParametricSurface] form.
	Surface SurfaceFunc

	// Curve is the function for the [SpaceCurve] form.
	Curve CurveFunc

	// TRange is the parameter range for [Parametric] and [SpaceCurve].
	TRange minmax.F64

	// URange and VRange are the parameter ranges for [ParametricSurface].
	URange minmax.F64
	VRange minmax.F64

	// Volume is the bounding box sampled for [ImplicitSurface].
	Volume Volume

	// Resolution is the voxel grid resolution for [ImplicitSurface].
	Resolution int

	// USegments and VSegments are the grid segment counts for
	// [ParametricSurface].
	USegments int
	VSegments int

	// Tube holds the extrusion parameters for [SpaceCurve].
	Tube Tube
}

// NewImplicit returns a [Function] plotting the implicit curve f(x,y) = 0.
func NewImplicit(f ImplicitFunc) *Function {
	return &Function{Form: Implicit, Implicit: f}
}

// NewExplicit returns a [Function] plotting the explicit curve y = f(x).
func NewExplicit(f ExplicitFunc) *Function {
	return &Function{Form: Explicit, Explicit: f}
}

// NewParametric returns a [Function] plotting the parametric curve f over
// the given t range.
func NewParametric(f ParametricFunc, trange minmax.F64) *Function {
	return &Function{Form: Parametric, Parametric: f, TRange: trange}
}

// NewImplicitSurface returns a [Function] extracting the zero isosurface
// of f over vol with the given voxel resolution.
func NewImplicitSurface(f FieldFunc, vol Volume, resolution int) *Function {
	return &Function{Form: ImplicitSurface, Field: f, Volume: vol, Resolution: resolution}
}

// NewParametricSurface returns a [Function] tessellating the parametric
// surface f over the given u and v ranges with the given segment counts.
func NewParametricSurface(f SurfaceFunc, urange, vrange minmax.F64, usegs, vsegs int) *Function {
	return &Function{Form: ParametricSurface, Surface: f,
		URange: urange, VRange: vrange, USegments: usegs, VSegments: vsegs}
}

// NewSpaceCurve returns a [Function] sweeping a tube along the space
// curve f over the given t range, with default [Tube] parameters.
func NewSpaceCurve(f CurveFunc, trange minmax.F64) *Function {
	fn := &Function{Form: SpaceCurve, Curve: f, TRange: trange}
	fn.Tube.Defaults()
	return fn
}

// Solve2D runs the solver for a 2D form and returns its screen geometry.
// It returns nil for 3D forms or a missing function field.
func (fn *Function) Solve2D(view *View, opts *Options) []Vertex2D {
	switch fn.Form {
	case Implicit:
		if fn.Implicit != nil {
			return SolveImplicit(fn.Implicit, view, opts)
		}
	case Explicit:
		if fn.Explicit != nil {
			return SolveExplicit(fn.Explicit, view, opts)
		}
	case Parametric:
		if fn.Parametric != nil {
			return SolveParametric(fn.Parametric, fn.TRange, view, opts)
		}
	}
	return nil
}

// Solve3D runs the solver for a 3D form and returns its mesh.
// It returns an empty mesh for 2D forms or a missing function field.
func (fn *Function) Solve3D(opts *Options) *Mesh {
	switch fn.Form {
	case ImplicitSurface:
		if fn.Field != nil {
			return SolveImplicitSurface(fn.Field, fn.Volume, fn.Resolution, opts)
		}
	case ParametricSurface:
		if fn.Surface != nil {
			return SolveParametricSurface(fn.Surface, fn.URange, fn.VRange,
				fn.USegments, fn.VSegments, opts)
		}
	case SpaceCurve:
		if fn.Curve != nil {
			return SolveSpaceCurve(fn.Curve, fn.TRange, &fn.Tube)
		}
	}
	return &Mesh{}
}
