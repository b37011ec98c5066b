// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// Beta is the beta distribution on [0, 1] with shape parameters α
// and β.
type Beta struct {
	alpha, beta float64
}

// NewBeta returns the beta distribution with shape parameters
// alpha > 0 and beta > 0.
func NewBeta(alpha, beta float64) (Beta, error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return Beta{}, paramError("NewBeta", "alpha must be positive and finite, got %v", alpha)
	}
	if !(beta > 0) || math.IsInf(beta, 1) {
		return Beta{}, paramError("NewBeta", "beta must be positive and finite, got %v", beta)
	}
	return Beta{alpha, beta}, nil
}

func (d Beta) Alpha() float64 { return d.alpha }
func (d Beta) Beta() float64  { return d.beta }

// uv returns d as a gonum distribution drawing from r.
func (d Beta) uv(r Rand) distuv.Beta {
	return distuv.Beta{Alpha: d.alpha, Beta: d.beta, Src: source(r)}
}

func (d Beta) Min() float64 { return 0 }
func (d Beta) Max() float64 { return 1 }

func (d Beta) singular(x float64) bool {
	return (x == 0 && d.alpha < 1) || (x == 1 && d.beta < 1)
}

func (d Beta) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d Beta) LnPDF(x float64) float64 {
	if x < 0 || x > 1 {
		return -inf
	}
	if d.singular(x) {
		panic(undefinedDensity("Beta.LnPDF", x))
	}
	return d.uv(nil).LogProb(x)
}

func (d Beta) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Beta.CheckedPDF", x, 0, 1, d.singular(x), d.PDF)
}

func (d Beta) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Beta.CheckedLnPDF", x, 0, 1, d.singular(x), d.LnPDF)
}

func (d Beta) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	return d.uv(nil).CDF(x)
}

func (d Beta) InverseCDF(p float64) float64 {
	mustProb("Beta.InverseCDF", p)
	return d.uv(nil).Quantile(p)
}

func (d Beta) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Beta.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Beta) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d Beta) Mean() float64 {
	return d.alpha / (d.alpha + d.beta)
}

func (d Beta) Variance() float64 {
	s := d.alpha + d.beta
	return d.alpha * d.beta / (s * s * (s + 1))
}

func (d Beta) StdDev() float64 { return math.Sqrt(d.Variance()) }

// Mode returns the mode of d, or NaN if the mode is not unique or
// lies at a singularity.
func (d Beta) Mode() float64 {
	if d.alpha <= 1 || d.beta <= 1 {
		return nan
	}
	return (d.alpha - 1) / (d.alpha + d.beta - 2)
}

func (d Beta) Skewness() float64 {
	a, b := d.alpha, d.beta
	return 2 * (b - a) * math.Sqrt(a+b+1) / ((a + b + 2) * math.Sqrt(a*b))
}

func (d Beta) Entropy() float64 {
	a, b := d.alpha, d.beta
	return mathx.Lbeta(a, b) - (a-1)*mathx.Digamma(a) - (b-1)*mathx.Digamma(b) + (a+b-2)*mathx.Digamma(a+b)
}
