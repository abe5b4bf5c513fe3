// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-9
}

// probGrid holds marginals that are exactly representable in binary,
// so the Fréchet–Hoeffding bound arithmetic inside the library is
// exact and the partition identities hold to full precision even at
// correlation extremes.
var probGrid = []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}

// probGridInterior is probGrid without the degenerate endpoints.
var probGridInterior = probGrid[1 : len(probGrid)-1]

var corrGrid = []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}
