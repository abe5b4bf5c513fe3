// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// copula computes joint occurrence probabilities for correlated
// Bernoulli events from their marginal probabilities and pairwise
// correlations, using the bivariate Gaussian copula approximation of
// Lin and Chaganty.
package copula // import "github.com/probkit/go-jointprob/copula"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
