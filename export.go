// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteObj writes the mesh to w in Wavefront OBJ format, with positions,
// normals, and v//vn faces. OBJ indices are 1-based.
func (ms *Mesh) WriteObj(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, vt := range ms.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", vt.Position.X, vt.Position.Y, vt.Position.Z)
	}
	for _, vt := range ms.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", vt.Normal.X, vt.Normal.Y, vt.Normal.Z)
	}
	for i := 0; i+2 < len(ms.Indices); i += 3 {
		a := ms.Indices[i] + 1
		b := ms.Indices[i+1] + 1
		c := ms.Indices[i+2] + 1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}

// SaveObj saves the mesh to the given file in Wavefront OBJ format.
func (ms *Mesh) SaveObj(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return ms.WriteObj(f)
}
