// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// FisherSnedecor is the F-distribution with d1 and d2 degrees of
// freedom: the distribution of the ratio of two independent
// chi-squared variables, each divided by its degrees of freedom.
type FisherSnedecor struct {
	d1, d2 float64
}

// NewFisherSnedecor returns the F-distribution with d1 > 0 and d2 > 0
// degrees of freedom.
func NewFisherSnedecor(d1, d2 float64) (FisherSnedecor, error) {
	if !(d1 > 0) || math.IsInf(d1, 1) {
		return FisherSnedecor{}, paramError("NewFisherSnedecor", "d1 must be positive and finite, got %v", d1)
	}
	if !(d2 > 0) || math.IsInf(d2, 1) {
		return FisherSnedecor{}, paramError("NewFisherSnedecor", "d2 must be positive and finite, got %v", d2)
	}
	return FisherSnedecor{d1, d2}, nil
}

func (d FisherSnedecor) Freedom() (d1, d2 float64) { return d.d1, d.d2 }

func (d FisherSnedecor) Min() float64 { return 0 }
func (d FisherSnedecor) Max() float64 { return inf }

func (d FisherSnedecor) singular(x float64) bool {
	return x == 0 && d.d1 < 2
}

func (d FisherSnedecor) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d FisherSnedecor) LnPDF(x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return -inf
	}
	if d.singular(x) {
		panic(undefinedDensity("FisherSnedecor.LnPDF", x))
	}
	d1, d2 := d.d1, d.d2
	return d1/2*math.Log(d1/d2) + mathx.XLogY(d1/2-1, x) -
		(d1+d2)/2*math.Log1p(d1*x/d2) - mathx.Lbeta(d1/2, d2/2)
}

func (d FisherSnedecor) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("FisherSnedecor.CheckedPDF", x, 0, inf, d.singular(x), d.PDF)
}

func (d FisherSnedecor) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("FisherSnedecor.CheckedLnPDF", x, 0, inf, d.singular(x), d.LnPDF)
}

func (d FisherSnedecor) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if math.IsInf(x, 1) {
		return 1
	}
	return mathx.BetaInc(d.d1*x/(d.d1*x+d.d2), d.d1/2, d.d2/2)
}

func (d FisherSnedecor) InverseCDF(p float64) float64 {
	mustProb("FisherSnedecor.InverseCDF", p)
	if p == 1 {
		return inf
	}
	y := mathx.InvBetaInc(p, d.d1/2, d.d2/2)
	return d.d2 * y / (d.d1 * (1 - y))
}

func (d FisherSnedecor) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("FisherSnedecor.CheckedInverseCDF", p, d.InverseCDF)
}

func (d FisherSnedecor) Sample(r Rand) float64 {
	return distuv.F{D1: d.d1, D2: d.d2, Src: source(r)}.Rand()
}

// Mean returns the mean of d, which is infinite for d2 <= 2.
func (d FisherSnedecor) Mean() float64 {
	if d.d2 <= 2 {
		return inf
	}
	return d.d2 / (d.d2 - 2)
}

// Variance returns the variance of d, which is infinite for
// 2 < d2 <= 4 and undefined (NaN) for d2 <= 2.
func (d FisherSnedecor) Variance() float64 {
	d1, d2 := d.d1, d.d2
	switch {
	case d2 <= 2:
		return nan
	case d2 <= 4:
		return inf
	}
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * (d2 - 2) * (d2 - 2) * (d2 - 4))
}

func (d FisherSnedecor) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d FisherSnedecor) Mode() float64 {
	if d.d1 <= 2 {
		return 0
	}
	return (d.d1 - 2) / d.d1 * d.d2 / (d.d2 + 2)
}

func (d FisherSnedecor) Skewness() float64 {
	d1, d2 := d.d1, d.d2
	if d2 <= 6 {
		return nan
	}
	return (2*d1 + d2 - 2) * math.Sqrt(8*(d2-4)) / ((d2 - 6) * math.Sqrt(d1*(d1+d2-2)))
}
