// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerCount(t *testing.T) {
	assert.Equal(t, 4, workerCount(4, 100))
	assert.Equal(t, 3, workerCount(4, 3))
	assert.Equal(t, 1, workerCount(4, 0))
	assert.GreaterOrEqual(t, workerCount(0, 100), 1)
}

func TestParallelChunks(t *testing.T) {
	for _, workers := range []int{1, 3, 8, 100} {
		n := 37
		out := make([]int, n)
		parallelChunks(n, workers, func(_, start, end int) {
			for i := start; i < end; i++ {
				out[i] = i * i
			}
		})
		// Every index is covered exactly once, for any worker count.
		for i, v := range out {
			assert.Equal(t, i*i, v)
		}
	}
}
