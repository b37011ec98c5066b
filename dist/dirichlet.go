// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/aclements/go-moredist/mathx"
)

// simplexTolerance is how far the components of a point may sum from
// 1 and still lie on the simplex.
const simplexTolerance = 1e-9

// Dirichlet is the Dirichlet distribution with concentration
// parameters α. Its outcomes are points on the (k-1)-simplex: vectors
// of k non-negative components that sum to 1.
type Dirichlet struct {
	alpha []float64
	sum   float64 // Σα
	lnB   float64 // log of the multivariate beta function of α

	mv *distmv.Dirichlet
}

// NewDirichlet returns the Dirichlet distribution with the given
// concentration parameters. There must be at least two, and each
// must be positive and finite.
func NewDirichlet(alpha []float64) (Dirichlet, error) {
	const op = "NewDirichlet"
	if len(alpha) < 2 {
		return Dirichlet{}, paramError(op, "need at least 2 concentration parameters, got %d", len(alpha))
	}
	var errs *multierror.Error
	for i, a := range alpha {
		if !(a > 0) || math.IsInf(a, 1) {
			errs = multierror.Append(errs, paramError(op, "alpha %d must be positive and finite, got %v", i, a))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Dirichlet{}, err
	}

	d := Dirichlet{alpha: append([]float64(nil), alpha...)}
	for _, a := range alpha {
		d.sum += a
		d.lnB += mathx.Lgamma(a)
	}
	d.lnB -= mathx.Lgamma(d.sum)
	d.mv = distmv.NewDirichlet(d.alpha, nil)
	return d, nil
}

// Alpha returns the concentration parameters of d.
func (d Dirichlet) Alpha() []float64 {
	return append([]float64(nil), d.alpha...)
}

func (d Dirichlet) Min() []float64 {
	return make([]float64, len(d.alpha))
}

func (d Dirichlet) Max() []float64 {
	m := make([]float64, len(d.alpha))
	for i := range m {
		m[i] = 1
	}
	return m
}

// check classifies x. It returns a BadStructure error if x has the
// wrong length, an OutOfDomain error if x is not on the simplex, or
// an Undefined error if the density at x is infinite.
func (d Dirichlet) check(op string, x []float64) *Error {
	if len(x) != len(d.alpha) {
		return newError(op, BadStructure, "got %d components, want %d", len(x), len(d.alpha))
	}
	sum := 0.0
	for i, xi := range x {
		if !(0 <= xi && xi <= 1) {
			return newError(op, OutOfDomain, "component %d=%v outside [0, 1]", i, xi)
		}
		sum += xi
	}
	if math.Abs(sum-1) > simplexTolerance {
		return newError(op, OutOfDomain, "components sum to %v, want 1", sum)
	}
	for i, xi := range x {
		if xi == 0 && d.alpha[i] < 1 {
			return newError(op, Undefined, "density is infinite at component %d=0", i)
		}
	}
	return nil
}

func (d Dirichlet) PDF(x []float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d Dirichlet) LnPDF(x []float64) float64 {
	if err := d.check("Dirichlet.LnPDF", x); err != nil {
		if err.Reason == OutOfDomain {
			return -inf
		}
		panic(err)
	}
	return d.lnPDF(x)
}

func (d Dirichlet) lnPDF(x []float64) float64 {
	interior := true
	for _, xi := range x {
		if xi == 0 {
			interior = false
			break
		}
	}
	if interior {
		return d.mv.LogProb(x)
	}
	// On a face of the simplex. Components with α=1 contribute
	// nothing, where distmv would compute 0*log(0).
	l := -d.lnB
	for i, xi := range x {
		l += mathx.XLogY(d.alpha[i]-1, xi)
	}
	return l
}

func (d Dirichlet) CheckedPDF(x []float64) (float64, error) {
	if err := d.check("Dirichlet.CheckedPDF", x); err != nil {
		return 0, err
	}
	return math.Exp(d.lnPDF(x)), nil
}

func (d Dirichlet) CheckedLnPDF(x []float64) (float64, error) {
	if err := d.check("Dirichlet.CheckedLnPDF", x); err != nil {
		return 0, err
	}
	return d.lnPDF(x), nil
}

// Sample normalizes independent gamma variates.
func (d Dirichlet) Sample(r Rand) []float64 {
	x := make([]float64, len(d.alpha))
	sum := 0.0
	for i, a := range d.alpha {
		x[i] = stdGammaRand(r, a)
		sum += x[i]
	}
	if sum == 0 {
		// Every variate underflowed, which only happens for tiny
		// α. Put all the mass on one component, chosen with
		// probability proportional to α.
		u := uniformOC(r) * d.sum
		i := 0
		for ; i < len(d.alpha)-1; i++ {
			if u <= d.alpha[i] {
				break
			}
			u -= d.alpha[i]
		}
		x[i] = 1
		return x
	}
	for i := range x {
		x[i] /= sum
	}
	return x
}

// Mean returns the mean of each component.
func (d Dirichlet) Mean() []float64 {
	return d.mv.Mean(nil)
}

// Variance returns the marginal variance of each component.
func (d Dirichlet) Variance() []float64 {
	v := make([]float64, len(d.alpha))
	a0 := d.sum
	for i, a := range d.alpha {
		v[i] = a * (a0 - a) / (a0 * a0 * (a0 + 1))
	}
	return v
}

func (d Dirichlet) Entropy() float64 {
	k := float64(len(d.alpha))
	h := d.lnB + (d.sum-k)*mathx.Digamma(d.sum)
	for _, a := range d.alpha {
		h -= (a - 1) * mathx.Digamma(a)
	}
	return h
}
