// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import "math"

// PairNeither returns the probability that neither of two correlated
// Bernoulli events occurs, given the probabilities q1 and q2 that
// each event individually does not occur and the correlation r of the
// events' latent Gaussian variables.
//
// This is equation 2 of Lin, Chaganty, "Multivariate distributions of
// correlated binary variables generated by pair-copulas", Journal of
// Statistical Distributions and Applications 8 (2021), evaluated for
// the cell where both variables are zero. At r=0 the closed form
// reduces to the independent product q1*q2; the square-root term
// shifts mass toward or away from the diagonal as r moves from 0. The
// closed form is not bounded for extreme argument combinations, so
// the result is clamped to the Fréchet–Hoeffding interval by
// ClipNeither.
//
// r is nominally in [-1, 1] but is used as given, without clamping.
// Arguments outside their nominal domains are not rejected; they can
// drive the product under the square root negative and produce NaN.
func PairNeither(q1, q2, r float64) float64 {
	p1, p2 := 1-q1, 1-q2
	raw := 1 - p1 - p2 + p1*p2 + r*math.Sqrt(p1*p2*q1*q2)
	return ClipNeither(q1, q2, raw)
}

// PairNeitherEach returns PairNeither applied elementwise. Each
// argument must have the common length or length 1, which is
// broadcast.
func PairNeitherEach(q1, q2, r []float64) []float64 {
	n := broadcastLen(len(q1), len(q2), len(r))
	q1, q2, r = expand(q1, n), expand(q2, n), expand(r, n)
	out := make([]float64, n)
	for i := range out {
		out[i] = PairNeither(q1[i], q2[i], r[i])
	}
	return out
}
