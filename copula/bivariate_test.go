// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestBernoulliPairPartition(t *testing.T) {
	for _, p1 := range probGrid {
		for _, p2 := range probGrid {
			for _, r := range corrGrid {
				d := BernoulliPair{P1: p1, P2: p2, R: r}
				sum := d.PNeither() + d.POnlyFirst() + d.POnlySecond() + d.PBoth()
				if !aeq(1, sum) {
					t.Errorf("outcomes of %+v sum to %v, want 1", d, sum)
				}
			}
		}
	}
}

func TestBernoulliPairIndependent(t *testing.T) {
	d := BernoulliPair{P1: 0.2, P2: 0.3, R: 0}
	check := func(name string, got, want float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s of %+v = %v, want %v", name, d, got, want)
		}
	}
	check("PNeither", d.PNeither(), 0.8*0.7)
	check("POnlyFirst", d.POnlyFirst(), 0.2*0.7)
	check("POnlySecond", d.POnlySecond(), 0.8*0.3)
	check("PBoth", d.PBoth(), 0.2*0.3)
	check("PAny", d.PAny(), 1-0.8*0.7)
}

func TestBernoulliPairCorrelated(t *testing.T) {
	// Worked example: the correlation term is
	// 0.5*sqrt(0.2*0.3*0.8*0.7), added to the independent product
	// 0.56, and the result stays inside [0.5, 0.7].
	d := BernoulliPair{P1: 0.2, P2: 0.3, R: 0.5}
	check := func(name string, got, want float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s of %+v = %v, want %v", name, d, got, want)
		}
	}
	check("PNeither", d.PNeither(), 0.6516515138991168)
	check("POnlyFirst", d.POnlyFirst(), 0.04834848610088316)
	check("POnlySecond", d.POnlySecond(), 0.14834848610088325)
	check("PBoth", d.PBoth(), 0.1516515138991168)
}

func TestBernoulliPairAggregates(t *testing.T) {
	for _, p1 := range probGrid {
		for _, p2 := range probGrid {
			for _, r := range corrGrid {
				d := BernoulliPair{P1: p1, P2: p2, R: r}
				if got, want := d.PAny(), 1-d.PNeither(); got != want {
					t.Errorf("PAny of %+v = %v, want 1-PNeither = %v", d, got, want)
				}
				if got, want := d.PAll(), d.PBoth(); got != want {
					t.Errorf("PAll of %+v = %v, want PBoth = %v", d, got, want)
				}
			}
		}
	}
}

func TestBernoulliPairPMF(t *testing.T) {
	d := BernoulliPair{P1: 0.375, P2: 0.625, R: -0.25}
	for _, c := range []struct {
		first, second bool
		want          float64
	}{
		{false, false, d.PNeither()},
		{false, true, d.POnlySecond()},
		{true, false, d.POnlyFirst()},
		{true, true, d.PBoth()},
	} {
		if got := d.PMF(c.first, c.second); got != c.want {
			t.Errorf("PMF(%v, %v) = %v, want %v", c.first, c.second, got, c.want)
		}
	}
}

func TestBernoulliPairsEach(t *testing.T) {
	var p1, p2, r []float64
	for _, a := range probGrid {
		for _, b := range probGrid {
			for _, c := range corrGrid {
				p1 = append(p1, a)
				p2 = append(p2, b)
				r = append(r, c)
			}
		}
	}
	v := BernoulliPairs{P1: p1, P2: p2, R: r}

	for _, m := range []struct {
		name   string
		each   func() []float64
		scalar func(BernoulliPair) float64
	}{
		{"PNeither", v.PNeitherEach, BernoulliPair.PNeither},
		{"POnlyFirst", v.POnlyFirstEach, BernoulliPair.POnlyFirst},
		{"POnlySecond", v.POnlySecondEach, BernoulliPair.POnlySecond},
		{"PBoth", v.PBothEach, BernoulliPair.PBoth},
		{"PAny", v.PAnyEach, BernoulliPair.PAny},
		{"PAll", v.PAllEach, BernoulliPair.PAll},
	} {
		want := make([]float64, len(p1))
		for i := range want {
			want[i] = m.scalar(BernoulliPair{P1: p1[i], P2: p2[i], R: r[i]})
		}
		if got := m.each(); !floats.EqualApprox(got, want, 1e-12) {
			t.Errorf("%sEach disagrees with scalar %s", m.name, m.name)
		}
	}

	// A length-1 field broadcasts.
	got := BernoulliPairs{P1: p1, P2: p2, R: []float64{0.5}}.PBothEach()
	want := BernoulliPairs{P1: p1, P2: p2, R: expand([]float64{0.5}, len(p1))}.PBothEach()
	if !floats.EqualApprox(got, want, 1e-15) {
		t.Errorf("broadcast PBothEach disagrees with expanded form")
	}

	mustPanic(t, "BernoulliPairs with mismatched lengths", func() {
		BernoulliPairs{P1: p1, P2: p2[:2], R: r}.PNeitherEach()
	})
}
