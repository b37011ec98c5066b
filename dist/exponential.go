// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is the exponential distribution with rate λ, the
// distribution of waiting times in a Poisson process.
type Exponential struct {
	rate float64
}

// NewExponential returns the exponential distribution with the given
// rate > 0.
func NewExponential(rate float64) (Exponential, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Exponential{}, paramError("NewExponential", "rate must be positive and finite, got %v", rate)
	}
	return Exponential{rate}, nil
}

func (d Exponential) uv(r Rand) distuv.Exponential {
	return distuv.Exponential{Rate: d.rate, Src: source(r)}
}

func (d Exponential) Rate() float64 { return d.rate }

func (d Exponential) Min() float64 { return 0 }
func (d Exponential) Max() float64 { return inf }

func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.uv(nil).Prob(x)
}

func (d Exponential) LnPDF(x float64) float64 {
	return d.uv(nil).LogProb(x)
}

func (d Exponential) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Exponential.CheckedPDF", x, 0, inf, false, d.PDF)
}

func (d Exponential) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Exponential.CheckedLnPDF", x, 0, inf, false, d.LnPDF)
}

func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.uv(nil).CDF(x)
}

func (d Exponential) InverseCDF(p float64) float64 {
	mustProb("Exponential.InverseCDF", p)
	return d.uv(nil).Quantile(p)
}

func (d Exponential) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Exponential.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Exponential) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d Exponential) Mean() float64     { return 1 / d.rate }
func (d Exponential) Variance() float64 { return 1 / (d.rate * d.rate) }
func (d Exponential) StdDev() float64   { return 1 / d.rate }
func (d Exponential) Entropy() float64  { return 1 - math.Log(d.rate) }
func (d Exponential) Skewness() float64 { return 2 }
func (d Exponential) Median() float64   { return math.Ln2 / d.rate }
func (d Exponential) Mode() float64     { return 0 }
