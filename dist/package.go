// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist defines the capabilities a probability distribution
// may offer (sampling, bounds, density, mass, cumulative and inverse
// cumulative probability) and implements them for a collection of
// common distributions.
//
// Each capability is a separate interface. A distribution implements
// only the capabilities it can honestly provide: Binomial, for
// example, has no closed-form quantile function and so does not
// implement InverseCDF. Quantile constructs a numerical one for any
// univariate distribution.
//
// Density, mass and inverse CDF queries come in unchecked and checked
// forms. Unchecked methods (PDF, LnPDF, PMF, LnPMF, InverseCDF) assume
// the caller has already established that the argument is valid and
// panic with an *Error if it is structurally invalid. Checked methods
// (CheckedPDF and friends) report the same conditions as an error.
// Both forms return 0 density (or -Inf log density) for arguments
// that are merely outside the support, except that the checked forms
// report those as OutOfDomain.
//
// Distribution values are immutable once constructed and may be used
// concurrently. Sampling takes the random source explicitly;
// SampleDefault supplies one for callers that don't care.
package dist // import "github.com/aclements/go-moredist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// logSqrt2Pi is log(sqrt(2*pi)).
const logSqrt2Pi = 0.91893853320467274178032973640561763986139747363778341281715154
