// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import "gonum.org/v1/gonum/floats"

// A BernoulliPair is the joint distribution of two correlated
// Bernoulli events with marginal occurrence probabilities P1 and P2
// and correlation R.
//
// The four joint outcome probabilities are derived from the single
// PairNeither kernel evaluation, so they always sum to 1 up to
// floating-point error. Only the kernel itself is clamped to the
// Fréchet–Hoeffding bounds; the derived terms are returned as
// computed and can stray outside [0, 1] by a rounding error under
// adversarial inputs.
type BernoulliPair struct {
	// P1 and P2 are the marginal probabilities that the first and
	// second event occur. 0 <= P <= 1.
	P1, P2 float64

	// R is the correlation between the events. Nominally in
	// [-1, 1]; see PairNeither.
	R float64
}

// PNeither returns the probability that neither event occurs.
func (d BernoulliPair) PNeither() float64 {
	return PairNeither(1-d.P1, 1-d.P2, d.R)
}

// POnlyFirst returns the probability that the first event occurs and
// the second does not.
func (d BernoulliPair) POnlyFirst() float64 {
	q1, q2 := 1-d.P1, 1-d.P2
	return q2 - PairNeither(q1, q2, d.R)
}

// POnlySecond returns the probability that the second event occurs
// and the first does not.
func (d BernoulliPair) POnlySecond() float64 {
	q1, q2 := 1-d.P1, 1-d.P2
	return q1 - PairNeither(q1, q2, d.R)
}

// PBoth returns the probability that both events occur.
func (d BernoulliPair) PBoth() float64 {
	q1, q2 := 1-d.P1, 1-d.P2
	return 1 - q1 - q2 + PairNeither(q1, q2, d.R)
}

// PAny returns the probability that at least one event occurs.
func (d BernoulliPair) PAny() float64 {
	return 1 - d.PNeither()
}

// PAll returns the probability that both events occur. It is
// identical to PBoth.
func (d BernoulliPair) PAll() float64 {
	return d.PBoth()
}

// PMF returns the probability of the joint outcome in which the
// first and second event occur as indicated.
func (d BernoulliPair) PMF(first, second bool) float64 {
	switch {
	case first && second:
		return d.PBoth()
	case first:
		return d.POnlyFirst()
	case second:
		return d.POnlySecond()
	}
	return d.PNeither()
}

// A BernoulliPairs computes the BernoulliPair outcome probabilities
// elementwise over vectors of marginals and correlations.
//
// Each field must have the common length or length 1, which is
// broadcast; any other length panics. Element i of every result
// depends only on element i of the inputs.
type BernoulliPairs struct {
	P1, P2 []float64
	R      []float64
}

// expand resolves broadcasting and returns the complement marginals
// and correlation, all with the common length.
func (d BernoulliPairs) expand() (q1, q2, r []float64) {
	n := broadcastLen(len(d.P1), len(d.P2), len(d.R))
	q1 = complements(expand(d.P1, n))
	q2 = complements(expand(d.P2, n))
	r = expand(d.R, n)
	return
}

// PNeitherEach returns PNeither for each element.
func (d BernoulliPairs) PNeitherEach() []float64 {
	q1, q2, r := d.expand()
	return PairNeitherEach(q1, q2, r)
}

// POnlyFirstEach returns POnlyFirst for each element.
func (d BernoulliPairs) POnlyFirstEach() []float64 {
	q1, q2, r := d.expand()
	out := make([]float64, len(q1))
	floats.SubTo(out, q2, PairNeitherEach(q1, q2, r))
	return out
}

// POnlySecondEach returns POnlySecond for each element.
func (d BernoulliPairs) POnlySecondEach() []float64 {
	q1, q2, r := d.expand()
	out := make([]float64, len(q1))
	floats.SubTo(out, q1, PairNeitherEach(q1, q2, r))
	return out
}

// PBothEach returns PBoth for each element.
func (d BernoulliPairs) PBothEach() []float64 {
	q1, q2, r := d.expand()
	out := PairNeitherEach(q1, q2, r)
	floats.Sub(out, q1)
	floats.Sub(out, q2)
	floats.AddConst(1, out)
	return out
}

// PAnyEach returns PAny for each element.
func (d BernoulliPairs) PAnyEach() []float64 {
	out := d.PNeitherEach()
	floats.Scale(-1, out)
	floats.AddConst(1, out)
	return out
}

// PAllEach returns PAll for each element.
func (d BernoulliPairs) PAllEach() []float64 {
	return d.PBothEach()
}

// PMFEach returns PMF(first, second) for each element.
func (d BernoulliPairs) PMFEach(first, second bool) []float64 {
	switch {
	case first && second:
		return d.PBothEach()
	case first:
		return d.POnlyFirstEach()
	case second:
		return d.POnlySecondEach()
	}
	return d.PNeitherEach()
}
