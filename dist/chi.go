// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// Chi is the distribution of the Euclidean norm of k independent
// standard normal variables.
type Chi struct {
	freedom float64
}

// NewChi returns the chi distribution with freedom > 0 degrees of
// freedom.
func NewChi(freedom float64) (Chi, error) {
	if !(freedom > 0) || math.IsInf(freedom, 1) {
		return Chi{}, paramError("NewChi", "degrees of freedom must be positive and finite, got %v", freedom)
	}
	return Chi{freedom}, nil
}

func (d Chi) Freedom() float64 { return d.freedom }

func (d Chi) Min() float64 { return 0 }
func (d Chi) Max() float64 { return inf }

func (d Chi) singular(x float64) bool {
	return x == 0 && d.freedom < 1
}

func (d Chi) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d Chi) LnPDF(x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return -inf
	}
	if d.singular(x) {
		panic(undefinedDensity("Chi.LnPDF", x))
	}
	k := d.freedom
	return mathx.XLogY(k-1, x) - x*x/2 - (k/2-1)*math.Ln2 - mathx.Lgamma(k/2)
}

func (d Chi) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Chi.CheckedPDF", x, 0, inf, d.singular(x), d.PDF)
}

func (d Chi) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Chi.CheckedLnPDF", x, 0, inf, d.singular(x), d.LnPDF)
}

func (d Chi) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaIncP(d.freedom/2, x*x/2)
}

func (d Chi) InverseCDF(p float64) float64 {
	mustProb("Chi.InverseCDF", p)
	return math.Sqrt(2 * mathx.InvGammaIncP(d.freedom/2, p))
}

func (d Chi) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Chi.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Chi) Sample(r Rand) float64 {
	return distuv.Chi{K: d.freedom, Src: source(r)}.Rand()
}

func (d Chi) Mean() float64 {
	k := d.freedom
	return math.Sqrt2 * math.Exp(mathx.Lgamma((k+1)/2)-mathx.Lgamma(k/2))
}

func (d Chi) Variance() float64 {
	mu := d.Mean()
	return d.freedom - mu*mu
}

func (d Chi) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d Chi) Mode() float64 {
	if d.freedom < 1 {
		return 0
	}
	return math.Sqrt(d.freedom - 1)
}

func (d Chi) Skewness() float64 {
	mu, sigma := d.Mean(), d.StdDev()
	return mu * (1 - 2*sigma*sigma) / (sigma * sigma * sigma)
}

func (d Chi) Entropy() float64 {
	k := d.freedom
	return mathx.Lgamma(k/2) + (k-math.Ln2-(k-1)*mathx.Digamma(k/2))/2
}
