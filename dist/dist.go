// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Sampler draws outcomes of type T from a distribution.
type Sampler[T any] interface {
	// Sample draws a single outcome using the randomness source
	// r. It consumes a distribution-specific (and possibly
	// variable) number of values from r.
	//
	// Sample has no failure mode: the distribution was validated
	// when it was constructed.
	Sample(r Rand) T
}

// Bounded is implemented by distributions with known support.
type Bounded[T any] interface {
	// Min returns the smallest value in the support of this
	// distribution. For distributions unbounded below, this is
	// -Inf.
	Min() T

	// Max returns the largest value in the support of this
	// distribution. For distributions unbounded above, this is
	// +Inf, or math.MaxInt64 for integer-valued distributions.
	//
	// Min() <= Max(). The PDF or PMF is zero outside [Min(),
	// Max()], the CDF is 0 below Min() and 1 at or above Max().
	Max() T
}

// A Univariate distribution has a scalar outcome with a cumulative
// distribution function.
//
// T is the type of the support bounds and K is the type at which the
// CDF is evaluated and samples are drawn. Continuous distributions
// implement Univariate[float64, float64]. Discrete distributions
// implement Univariate[int64, float64]: their support is integral, but
// their CDF is defined over the whole real line.
type Univariate[T, K any] interface {
	Sampler[K]
	Bounded[T]

	// CDF returns the cumulative probability Pr[X <= x].
	//
	// For discrete distributions, this is the sum of the PMF at
	// all points up to and including floor(x).
	//
	// The CDF is non-decreasing, in [0, 1], 0 below Min() and 1
	// at or above Max(). It returns NaN if x is NaN.
	//
	// There is no checked form of CDF: every real x is a valid
	// argument.
	CDF(x K) float64
}

// InverseCDF is implemented by distributions with a closed-form
// quantile function. It is independent of Univariate: many
// distributions with a cheap CDF don't have a cheap inverse.
type InverseCDF[T any] interface {
	// InverseCDF returns the smallest x in the support such that
	// CDF(x) >= p. InverseCDF(0) is Min(). For distributions with
	// support unbounded above, InverseCDF(1) is Max().
	//
	// InverseCDF panics with an *Error if p is outside [0, 1] or
	// is NaN.
	InverseCDF(p float64) T
}

// CheckedInverseCDF is the checked form of InverseCDF.
type CheckedInverseCDF[T any] interface {
	// CheckedInverseCDF is like InverseCDF, but returns an
	// OutOfDomain error if p is outside [0, 1].
	CheckedInverseCDF(p float64) (T, error)
}

// Continuous is implemented by distributions with a probability
// density function over points of type T.
type Continuous[T any] interface {
	// PDF returns the probability density at x. It returns 0 if
	// x is outside the support.
	//
	// PDF panics with an *Error if x is structurally invalid (for
	// example, has the wrong dimension) or if the density at x is
	// undefined.
	PDF(x T) float64

	// LnPDF returns the natural logarithm of PDF(x). It returns
	// -Inf if x is outside the support and panics under the same
	// conditions as PDF.
	//
	// LnPDF remains accurate where PDF underflows to 0.
	LnPDF(x T) float64
}

// CheckedContinuous is the checked form of Continuous.
//
// Where the unchecked method returns a value, the checked method
// returns the same value and a nil error, except that points outside
// the support are reported as OutOfDomain.
type CheckedContinuous[T any] interface {
	CheckedPDF(x T) (float64, error)
	CheckedLnPDF(x T) (float64, error)
}

// Discrete is implemented by distributions with a probability mass
// function over points of type T.
type Discrete[T any] interface {
	// PMF returns the probability Pr[X = x]. It returns 0 if x is
	// outside the support.
	//
	// PMF panics with an *Error if x is structurally invalid.
	PMF(x T) float64

	// LnPMF returns the natural logarithm of PMF(x). It returns
	// -Inf if x is outside the support and panics under the same
	// conditions as PMF.
	LnPMF(x T) float64
}

// CheckedDiscrete is the checked form of Discrete.
type CheckedDiscrete[T any] interface {
	CheckedPMF(x T) (float64, error)
	CheckedLnPMF(x T) (float64, error)
}

// Moments is implemented by univariate distributions with known
// mean and variance. Undefined moments are NaN and divergent
// moments are +Inf.
type Moments interface {
	Mean() float64
	Variance() float64
}
