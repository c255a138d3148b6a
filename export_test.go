// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteObj(t *testing.T) {
	ms := NewPlane(2)
	var b bytes.Buffer
	assert.NoError(t, ms.WriteObj(&b))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	var nv, nn, nf int
	for _, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "vn "):
			nn++
		case strings.HasPrefix(ln, "v "):
			nv++
		case strings.HasPrefix(ln, "f "):
			nf++
		}
	}
	assert.Equal(t, 4, nv)
	assert.Equal(t, 4, nn)
	assert.Equal(t, 2, nf)
	// OBJ faces are 1-based v//vn references.
	assert.Equal(t, "f 1//1 2//2 3//3", lines[len(lines)-2])
}

func TestSaveObj(t *testing.T) {
	ms := NewPlane(1)
	fname := filepath.Join(t.TempDir(), "plane.obj")
	assert.NoError(t, ms.SaveObj(fname))

	data, err := os.ReadFile(fname)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "v -0.5 -0.5 0")
}
