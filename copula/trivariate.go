// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A BernoulliTriple is the joint distribution of three correlated
// Bernoulli events with marginal occurrence probabilities P1, P2 and
// P3.
//
// The dependence structure is given by four pairwise correlations
// rather than a full correlation matrix: the three-event distribution
// is built by conditioning on the second event, so the correlation of
// events 1 and 3 is specified separately for each outcome of event 2.
// Every outcome probability is assembled from three PairNeither
// evaluations: events 1-2, events 2-3, and events 1-3 on marginals
// transformed by the conditioning. Outcomes whose conditional branch
// has (near-)zero mass are defined as 0; see the individual methods.
//
// The eight outcome probabilities sum to 1 up to floating-point error
// whenever neither P2 nor its complement is within the degenerate
// tolerance of zero. No per-outcome clamping is applied beyond the
// kernel's own bounds.
type BernoulliTriple struct {
	// P1, P2 and P3 are the marginal probabilities that each
	// event occurs. 0 <= P <= 1.
	P1, P2, P3 float64

	// R12 and R23 are the correlations of events 1 and 2 and of
	// events 2 and 3.
	R12, R23 float64

	// R13Without2 is the correlation of events 1 and 3
	// conditional on event 2 not occurring; R13With2 is their
	// correlation conditional on event 2 occurring.
	R13Without2, R13With2 float64
}

// pairTerms returns the complement marginals and the two
// unconditional kernel evaluations shared by every outcome.
func (d BernoulliTriple) pairTerms() (q1, q2, q3, c12, c23 float64) {
	q1, q2, q3 = 1-d.P1, 1-d.P2, 1-d.P3
	c12 = PairNeither(q1, q2, d.R12)
	c23 = PairNeither(q2, q3, d.R23)
	return
}

// degenerate reports whether a conditioning denominator has
// effectively zero mass.
func degenerate(x float64) bool {
	return math.Abs(x) <= degenerateTol
}

// PNone returns the probability that none of the three events
// occurs. It is 0 when event 2 occurs almost surely.
func (d BernoulliTriple) PNone() float64 {
	_, q2, _, c12, c23 := d.pairTerms()
	if degenerate(q2) {
		return 0
	}
	c130 := PairNeither(c12/q2, c23/q2, d.R13Without2)
	return q2 * c130
}

// POnlyThird returns the probability that only the third event
// occurs. It is 0 when event 2 occurs almost surely.
func (d BernoulliTriple) POnlyThird() float64 {
	_, q2, _, c12, c23 := d.pairTerms()
	if degenerate(q2) {
		return 0
	}
	c130 := PairNeither(c12/q2, c23/q2, d.R13Without2)
	return c12 - q2*c130
}

// POnlySecond returns the probability that only the second event
// occurs. It is 0 when event 2 almost surely does not occur.
func (d BernoulliTriple) POnlySecond() float64 {
	q1, _, q3, c12, c23 := d.pairTerms()
	p2 := d.P2
	if degenerate(p2) {
		return 0
	}
	c131 := PairNeither((q1-c12)/p2, (q3-c23)/p2, d.R13With2)
	return p2 * c131
}

// PSecondThird returns the probability that exactly the second and
// third events occur. It is 0 when event 2 almost surely does not
// occur.
func (d BernoulliTriple) PSecondThird() float64 {
	q1, _, q3, c12, c23 := d.pairTerms()
	p2 := d.P2
	if degenerate(p2) {
		return 0
	}
	c131 := PairNeither((q1-c12)/p2, (q3-c23)/p2, d.R13With2)
	return q1 - c12 - p2*c131
}

// POnlyFirst returns the probability that only the first event
// occurs. It is 0 when event 2 occurs almost surely.
func (d BernoulliTriple) POnlyFirst() float64 {
	_, q2, _, c12, c23 := d.pairTerms()
	if degenerate(q2) {
		return 0
	}
	c130 := PairNeither(c12/q2, c23/q2, d.R13Without2)
	return c23 - q2*c130
}

// PFirstThird returns the probability that exactly the first and
// third events occur. It is 0 when event 2 occurs almost surely.
func (d BernoulliTriple) PFirstThird() float64 {
	_, q2, _, c12, c23 := d.pairTerms()
	if degenerate(q2) {
		return 0
	}
	c130 := PairNeither(c12/q2, c23/q2, d.R13Without2)
	return q2 - c23 - c12 + q2*c130
}

// PFirstSecond returns the probability that exactly the first and
// second events occur.
//
// The degenerate guard here tests the complement of P2 even though
// the conditional marginals divide by P2 itself, so a P2 of exactly
// zero yields NaN rather than 0.
func (d BernoulliTriple) PFirstSecond() float64 {
	q1, q2, q3, c12, c23 := d.pairTerms()
	p2 := d.P2
	if degenerate(q2) {
		return 0
	}
	c131 := PairNeither((q1-c12)/p2, (q3-c23)/p2, d.R13With2)
	return q3 - c23 - p2*c131
}

// PAll returns the probability that all three events occur.
//
// As in PFirstSecond, the degenerate guard tests the complement of
// P2, not the P2 denominator.
func (d BernoulliTriple) PAll() float64 {
	q1, q2, q3, c12, c23 := d.pairTerms()
	p2 := d.P2
	if degenerate(q2) {
		return 0
	}
	c131 := PairNeither((q1-c12)/p2, (q3-c23)/p2, d.R13With2)
	return 1 - q1 - q2 - q3 + c12 + c23 + p2*c131
}

// PAny returns the probability that at least one of the three events
// occurs. It is 0 when event 2 occurs almost surely, by the same
// guard as PNone.
func (d BernoulliTriple) PAny() float64 {
	_, q2, _, c12, c23 := d.pairTerms()
	if degenerate(q2) {
		return 0
	}
	c130 := PairNeither(c12/q2, c23/q2, d.R13Without2)
	return 1 - q2*c130
}

// PMF returns the probability of the joint outcome in which the
// first, second and third event occur as indicated.
func (d BernoulliTriple) PMF(first, second, third bool) float64 {
	switch {
	case first && second && third:
		return d.PAll()
	case first && second:
		return d.PFirstSecond()
	case first && third:
		return d.PFirstThird()
	case second && third:
		return d.PSecondThird()
	case first:
		return d.POnlyFirst()
	case second:
		return d.POnlySecond()
	case third:
		return d.POnlyThird()
	}
	return d.PNone()
}

// A BernoulliTriples computes the BernoulliTriple outcome
// probabilities elementwise over vectors of marginals and
// correlations.
//
// Each field must have the common length or length 1, which is
// broadcast; any other length panics. Element i of every result
// depends only on element i of the inputs.
type BernoulliTriples struct {
	P1, P2, P3            []float64
	R12, R23              []float64
	R13Without2, R13With2 []float64
}

// tripleTerms holds the broadcast inputs and the shared kernel
// evaluations for the vector outcome methods.
type tripleTerms struct {
	p2, q1, q2, q3 []float64
	c12, c23       []float64
	r130, r131     []float64
}

// expand resolves broadcasting and evaluates the shared pair
// kernels.
func (d BernoulliTriples) expand() tripleTerms {
	n := broadcastLen(len(d.P1), len(d.P2), len(d.P3),
		len(d.R12), len(d.R23), len(d.R13Without2), len(d.R13With2))
	t := tripleTerms{
		p2:   expand(d.P2, n),
		q1:   complements(expand(d.P1, n)),
		q3:   complements(expand(d.P3, n)),
		r130: expand(d.R13Without2, n),
		r131: expand(d.R13With2, n),
	}
	t.q2 = complements(t.p2)
	t.c12 = PairNeitherEach(t.q1, t.q2, expand(d.R12, n))
	t.c23 = PairNeitherEach(t.q2, t.q3, expand(d.R23, n))
	return t
}

// c130 evaluates the kernel on the marginals conditioned on event 2
// not occurring. Elements with a (near-)zero denominator come out as
// Inf or NaN; callers zero them afterwards.
func (t tripleTerms) c130() []float64 {
	n := len(t.q2)
	q10 := make([]float64, n)
	q30 := make([]float64, n)
	floats.DivTo(q10, t.c12, t.q2)
	floats.DivTo(q30, t.c23, t.q2)
	return PairNeitherEach(q10, q30, t.r130)
}

// c131 evaluates the kernel on the marginals conditioned on event 2
// occurring.
func (t tripleTerms) c131() []float64 {
	n := len(t.p2)
	q11 := make([]float64, n)
	q31 := make([]float64, n)
	floats.SubTo(q11, t.q1, t.c12)
	floats.Div(q11, t.p2)
	floats.SubTo(q31, t.q3, t.c23)
	floats.Div(q31, t.p2)
	return PairNeitherEach(q11, q31, t.r131)
}

// PNoneEach returns PNone for each element.
func (d BernoulliTriples) PNoneEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.q2))
	floats.MulTo(out, t.q2, t.c130())
	zeroWhereDegenerate(out, t.q2)
	return out
}

// POnlyThirdEach returns POnlyThird for each element.
func (d BernoulliTriples) POnlyThirdEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.q2))
	floats.MulTo(out, t.q2, t.c130())
	floats.SubTo(out, t.c12, out)
	zeroWhereDegenerate(out, t.q2)
	return out
}

// POnlySecondEach returns POnlySecond for each element.
func (d BernoulliTriples) POnlySecondEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.p2))
	floats.MulTo(out, t.p2, t.c131())
	zeroWhereDegenerate(out, t.p2)
	return out
}

// PSecondThirdEach returns PSecondThird for each element.
func (d BernoulliTriples) PSecondThirdEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.p2))
	floats.MulTo(out, t.p2, t.c131())
	floats.Add(out, t.c12)
	floats.SubTo(out, t.q1, out)
	zeroWhereDegenerate(out, t.p2)
	return out
}

// POnlyFirstEach returns POnlyFirst for each element.
func (d BernoulliTriples) POnlyFirstEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.q2))
	floats.MulTo(out, t.q2, t.c130())
	floats.SubTo(out, t.c23, out)
	zeroWhereDegenerate(out, t.q2)
	return out
}

// PFirstThirdEach returns PFirstThird for each element.
func (d BernoulliTriples) PFirstThirdEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.q2))
	floats.MulTo(out, t.q2, t.c130())
	floats.Add(out, t.q2)
	floats.Sub(out, t.c23)
	floats.Sub(out, t.c12)
	zeroWhereDegenerate(out, t.q2)
	return out
}

// PFirstSecondEach returns PFirstSecond for each element. The
// degenerate guard tests the complement of P2, as in the scalar
// method.
func (d BernoulliTriples) PFirstSecondEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.p2))
	floats.MulTo(out, t.p2, t.c131())
	floats.Add(out, t.c23)
	floats.SubTo(out, t.q3, out)
	zeroWhereDegenerate(out, t.q2)
	return out
}

// PAllEach returns PAll for each element. The degenerate guard tests
// the complement of P2, as in the scalar method.
func (d BernoulliTriples) PAllEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.p2))
	floats.MulTo(out, t.p2, t.c131())
	floats.Add(out, t.c12)
	floats.Add(out, t.c23)
	floats.Sub(out, t.q1)
	floats.Sub(out, t.q2)
	floats.Sub(out, t.q3)
	floats.AddConst(1, out)
	zeroWhereDegenerate(out, t.q2)
	return out
}

// PAnyEach returns PAny for each element.
func (d BernoulliTriples) PAnyEach() []float64 {
	t := d.expand()
	out := make([]float64, len(t.q2))
	floats.MulTo(out, t.q2, t.c130())
	floats.Scale(-1, out)
	floats.AddConst(1, out)
	zeroWhereDegenerate(out, t.q2)
	return out
}

// PMFEach returns PMF(first, second, third) for each element.
func (d BernoulliTriples) PMFEach(first, second, third bool) []float64 {
	switch {
	case first && second && third:
		return d.PAllEach()
	case first && second:
		return d.PFirstSecondEach()
	case first && third:
		return d.PFirstThirdEach()
	case second && third:
		return d.PSecondThirdEach()
	case first:
		return d.POnlyFirstEach()
	case second:
		return d.POnlySecondEach()
	case third:
		return d.POnlyThirdEach()
	}
	return d.PNoneEach()
}
