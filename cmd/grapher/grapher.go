// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command grapher tessellates sample mathematical functions into
// triangle meshes and saves them as Wavefront OBJ files.
package main

import (
	"fmt"
	"math"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/grapher"
)

// Config is the configuration information for the grapher cli.
type Config struct {

	// Demo is the name of the demo mesh to generate:
	// sphere, torus, helix, knot, gyroid, or riemann.
	Demo string `posarg:"0" default:"sphere"`

	// Output is the OBJ file to write the mesh to.
	Output string `flag:"o,output" default:"mesh.obj"`

	// Resolution is the voxel grid resolution for isosurface demos.
	Resolution int `default:"88"`

	// Workers is the number of worker goroutines; 0 means GOMAXPROCS.
	Workers int
}

func main() {
	opts := cli.DefaultOptions("grapher", "Grapher tessellates mathematical functions into triangle meshes.")
	cli.Run(opts, &Config{}, Render)
}

// Render generates the selected demo mesh and saves it as OBJ.
func Render(c *Config) error { //cli:cmd -root
	fn, err := demoFunction(c)
	if err != nil {
		return err
	}
	op := grapher.NewOptions()
	op.Workers = c.Workers

	start := time.Now()
	ms := fn.Solve3D(op)
	logx.PrintfDebug("solved %s in %v\n", c.Demo, time.Since(start))

	if !ms.IsValid() {
		return fmt.Errorf("demo %q produced an invalid mesh", c.Demo)
	}
	if err := ms.SaveObj(c.Output); err != nil {
		return err
	}
	fmt.Printf("%s: %d vertices, %d triangles -> %s\n",
		c.Demo, len(ms.Vertices), ms.NumTriangles(), c.Output)
	return nil
}

// demoFunction returns the demo [grapher.Function] named by the config.
func demoFunction(c *Config) (*grapher.Function, error) {
	tau := 2 * math.Pi
	switch c.Demo {
	case "sphere":
		return grapher.NewParametricSurface(func(u, v float64) (x, y, z float64) {
			const r = 2
			return r * math.Sin(v) * math.Cos(u), r * math.Sin(v) * math.Sin(u), r * math.Cos(v)
		}, minmax.F64{Min: 0, Max: tau}, minmax.F64{Min: 0, Max: math.Pi}, 40, 40), nil
	case "torus":
		return grapher.NewParametricSurface(func(u, v float64) (x, y, z float64) {
			const rMajor, rMinor = 3.0, 1.2
			return (rMajor + rMinor*math.Cos(v)) * math.Cos(u),
				(rMajor + rMinor*math.Cos(v)) * math.Sin(u),
				rMinor * math.Sin(v)
		}, minmax.F64{Min: 0, Max: tau}, minmax.F64{Min: 0, Max: tau}, 60, 30), nil
	case "helix":
		fn := grapher.NewSpaceCurve(func(t float64) (x, y, z float64) {
			return math.Cos(t), math.Sin(t), t / 4.5
		}, minmax.F64{Min: 0, Max: 6 * math.Pi})
		fn.Tube.Radius = 0.05
		fn.Tube.Segments = 15
		fn.Tube.PathSegments = 200
		return fn, nil
	case "knot":
		fn := grapher.NewSpaceCurve(func(t float64) (x, y, z float64) {
			return math.Cos(t) + 2*math.Cos(2*t),
				math.Sin(t) - 2*math.Sin(2*t),
				2 * math.Sin(3*t)
		}, minmax.F64{Min: 0, Max: tau})
		fn.Tube.Radius = 0.3
		fn.Tube.Segments = 16
		fn.Tube.PathSegments = 300
		return fn, nil
	case "gyroid":
		return grapher.NewImplicitSurface(func(x, y, z float64) float64 {
			return x*x + y*y + z*z + math.Sin(4*x) + math.Sin(4*y) + math.Sin(4*z) - 1.7
		}, grapher.NewVolume(-3, 2), c.Resolution), nil
	case "riemann":
		// Riemann surface of log z: the imaginary part of
		// log(r e^{iθ}) = ln r + iθ as height, with θ unwrapped over
		// several turns instead of clamped to (-π, π].
		return grapher.NewParametricSurface(func(u, v float64) (x, y, z float64) {
			return u * math.Cos(v), u * math.Sin(v), v
		}, minmax.F64{Min: 0.1, Max: 3}, minmax.F64{Min: 0, Max: 12 * math.Pi}, 60, 120), nil
	}
	return nil, fmt.Errorf("unknown demo %q", c.Demo)
}
