// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import "math"

// ClipNeither clamps v, a candidate probability that neither of two
// events occurs, to the Fréchet–Hoeffding bounds implied by the
// marginals. u1 and u2 are the probabilities that the respective
// events do not occur.
//
// The lower bound max(u1+u2-1, 0) is the countermonotonic copula and
// the upper bound min(u1, u2) is the comonotonic copula; no joint
// distribution with the given marginals can put less or more mass on
// the "neither" cell. For u1, u2 in [0, 1] the result is therefore in
// [0, 1] no matter how extreme v is. Non-finite arguments propagate
// as NaN.
func ClipNeither(u1, u2, v float64) float64 {
	upper := math.Min(u1, u2)
	lower := math.Max(u1+u2-1, 0)
	return math.Min(math.Max(v, lower), upper)
}

// ClipNeitherEach returns ClipNeither applied elementwise. Each
// argument must have the common length or length 1, which is
// broadcast.
func ClipNeitherEach(u1, u2, v []float64) []float64 {
	n := broadcastLen(len(u1), len(u2), len(v))
	u1, u2, v = expand(u1, n), expand(u2, n), expand(v, n)
	out := make([]float64, n)
	for i := range out {
		out[i] = ClipNeither(u1[i], u2[i], v[i])
	}
	return out
}
