// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// degenerateTol is the absolute tolerance below which a conditioning
// denominator is treated as zero and the dependent term is defined as
// 0 instead of computed.
const degenerateTol = 1e-8

// broadcastLen returns the common length of a set of vector
// arguments. A length of 1 is compatible with any common length (the
// single element is broadcast). It panics if the lengths are
// incompatible or if any argument is empty.
func broadcastLen(lens ...int) int {
	n := 1
	for _, l := range lens {
		if l == 0 {
			panic("copula: empty vector argument")
		}
		if l == 1 || l == n {
			continue
		}
		if n == 1 {
			n = l
			continue
		}
		panic(fmt.Sprintf("copula: vector arguments have incompatible lengths %d and %d", n, l))
	}
	return n
}

// expand returns xs broadcast to length n. It returns xs itself when
// it already has length n.
func expand(xs []float64, n int) []float64 {
	if len(xs) == n {
		return xs
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = xs[0]
	}
	return out
}

// complements returns 1-xs[i] for each i.
func complements(xs []float64) []float64 {
	out := make([]float64, len(xs))
	floats.ScaleTo(out, -1, xs)
	floats.AddConst(1, out)
	return out
}

// zeroWhereDegenerate zeroes dst wherever the conditioning
// denominator is within degenerateTol of zero.
func zeroWhereDegenerate(dst, denom []float64) {
	for i, d := range denom {
		if math.Abs(d) <= degenerateTol {
			dst[i] = 0
		}
	}
}
