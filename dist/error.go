// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// A Reason classifies why a distribution query or construction
// failed.
type Reason int

const (
	_ Reason = iota

	// OutOfDomain means an argument lies outside the declared
	// domain: a point outside the support, or a probability
	// outside [0, 1].
	OutOfDomain

	// BadStructure means an argument has the wrong shape, such
	// as a vector of the wrong dimension.
	BadStructure

	// Undefined means the result is numerically undefined, such
	// as a density that requires raising 0 to a negative power.
	Undefined

	// BadParameter means a distribution parameter was rejected
	// at construction.
	BadParameter
)

func (r Reason) String() string {
	switch r {
	case OutOfDomain:
		return "out of domain"
	case BadStructure:
		return "bad structure"
	case Undefined:
		return "undefined"
	case BadParameter:
		return "bad parameter"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// An Error describes a failed distribution operation. It is returned
// by checked methods and constructors, and is the value unchecked
// methods panic with.
type Error struct {
	// Op is the failed operation, such as "Normal.CheckedPDF".
	Op string

	Reason Reason

	// Detail describes the offending argument or parameter.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "dist: " + e.Op + ": " + e.Reason.String()
	}
	return "dist: " + e.Op + ": " + e.Reason.String() + ": " + e.Detail
}

// Is reports whether target is one of the Err* sentinels with the
// same Reason as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Op == "" && t.Detail == "" && t.Reason == e.Reason
}

// Sentinel errors for use with errors.Is.
var (
	ErrOutOfDomain  = &Error{Reason: OutOfDomain}
	ErrBadStructure = &Error{Reason: BadStructure}
	ErrUndefined    = &Error{Reason: Undefined}
	ErrBadParameter = &Error{Reason: BadParameter}
)

func newError(op string, reason Reason, format string, args ...any) *Error {
	return &Error{Op: op, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func paramError(op, format string, args ...any) *Error {
	return newError(op, BadParameter, format, args...)
}

// checkSupport returns an OutOfDomain error if x is NaN or outside
// [min, max].
func checkSupport(op string, x, min, max float64) error {
	if math.IsNaN(x) || x < min || x > max {
		return newError(op, OutOfDomain, "x=%v outside [%v, %v]", x, min, max)
	}
	return nil
}

// checkProb returns an OutOfDomain error if p is not a probability.
func checkProb(op string, p float64) error {
	if !(0 <= p && p <= 1) {
		return newError(op, OutOfDomain, "p=%v outside [0, 1]", p)
	}
	return nil
}

// mustProb panics if p is not a probability.
func mustProb(op string, p float64) {
	if err := checkProb(op, p); err != nil {
		panic(err)
	}
}

// undefinedDensity is the panic value of unchecked densities at
// singular points.
func undefinedDensity(op string, x float64) *Error {
	return newError(op, Undefined, "density is infinite at x=%v", x)
}

// checkedDensity is the common implementation of CheckedPDF and
// CheckedLnPDF for univariate continuous distributions. singular
// reports whether the density at x requires raising 0 to a negative
// power.
func checkedDensity(op string, x, min, max float64, singular bool, f func(float64) float64) (float64, error) {
	if err := checkSupport(op, x, min, max); err != nil {
		return 0, err
	}
	if singular {
		return 0, undefinedDensity(op, x)
	}
	return f(x), nil
}

// checkedMass is the common implementation of CheckedPMF and
// CheckedLnPMF for univariate discrete distributions.
func checkedMass(op string, k, min, max int64, f func(int64) float64) (float64, error) {
	if k < min || k > max {
		return 0, newError(op, OutOfDomain, "k=%d outside [%d, %d]", k, min, max)
	}
	return f(k), nil
}

// checkedInverse is the common implementation of CheckedInverseCDF.
func checkedInverse[T any](op string, p float64, f func(float64) T) (T, error) {
	if err := checkProb(op, p); err != nil {
		var zero T
		return zero, err
	}
	return f(p), nil
}
