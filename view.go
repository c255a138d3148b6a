// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"image"

	"cogentcore.org/core/math32/minmax"
)

// View is a snapshot of the 2D camera and screen state that the 2D solvers
// sample relative to. It is a plain comparable value: callers hold the View
// used for the last solve and re-solve when the current one differs, which
// replaces any notion of a dirty flag inside the engine.
type View struct {

	// XRange is the world-coordinate window along x.
	XRange minmax.F64

	// YRange is the world-coordinate window along y.
	YRange minmax.F64

	// Size is the screen size in pixels.
	Size image.Point

	// Zoom is the camera zoom factor: the visible world height is 2/Zoom.
	Zoom float32

	// StrokeWidth is the requested curve stroke width in pixels; ribbons
	// are extruded to this width regardless of zoom.
	StrokeWidth float32
}

// NewView returns a View with Defaults set.
func NewView() *View {
	vw := &View{}
	vw.Defaults()
	return vw
}

func (vw *View) Defaults() {
	vw.XRange.Set(-2, 2)
	vw.YRange.Set(-2, 2)
	vw.Size = image.Pt(800, 600)
	vw.Zoom = 1
	vw.StrokeWidth = 4
}

// Aspect returns the width / height aspect ratio of the screen.
func (vw *View) Aspect() float32 {
	if vw.Size.Y == 0 {
		return 0
	}
	return float32(vw.Size.X) / float32(vw.Size.Y)
}

// WorldHeight returns the height of the viewport in world units (2/Zoom).
func (vw *View) WorldHeight() float64 {
	if vw.Zoom == 0 {
		return 0
	}
	return 2 / float64(vw.Zoom)
}

// PixelSize returns the size of one screen pixel in world units.
func (vw *View) PixelSize() float64 {
	if vw.Size.Y == 0 {
		return 0
	}
	return vw.WorldHeight() / float64(vw.Size.Y)
}

// HalfStroke returns half of the requested stroke width in world units,
// which is the ribbon extrusion distance on each side of a curve.
func (vw *View) HalfStroke() float64 {
	return 0.5 * float64(vw.StrokeWidth) * vw.PixelSize()
}

// Volume is the axis-aligned world region sampled by the implicit surface
// solver.
type Volume struct {
	X minmax.F64
	Y minmax.F64
	Z minmax.F64
}

// NewVolume returns a Volume spanning min..max on all three axes.
func NewVolume(min, max float64) Volume {
	vl := Volume{}
	vl.X.Set(min, max)
	vl.Y.Set(min, max)
	vl.Z.Set(min, max)
	return vl
}

// IsValid returns whether all three ranges have positive length.
func (vl *Volume) IsValid() bool {
	return vl.X.Range() > 0 && vl.Y.Range() > 0 && vl.Z.Range() > 0
}
