// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// eulerGamma is the Euler–Mascheroni constant.
const eulerGamma = 0.57721566490153286060651209008240243104215933593992

// Weibull is the Weibull distribution with shape k and scale λ.
type Weibull struct {
	shape, scale float64
}

// NewWeibull returns the Weibull distribution with shape > 0 and
// scale > 0.
func NewWeibull(shape, scale float64) (Weibull, error) {
	if !(shape > 0) || math.IsInf(shape, 1) {
		return Weibull{}, paramError("NewWeibull", "shape must be positive and finite, got %v", shape)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return Weibull{}, paramError("NewWeibull", "scale must be positive and finite, got %v", scale)
	}
	return Weibull{shape, scale}, nil
}

func (d Weibull) uv(r Rand) distuv.Weibull {
	return distuv.Weibull{K: d.shape, Lambda: d.scale, Src: source(r)}
}

func (d Weibull) Shape() float64 { return d.shape }
func (d Weibull) Scale() float64 { return d.scale }

func (d Weibull) Min() float64 { return 0 }
func (d Weibull) Max() float64 { return inf }

func (d Weibull) singular(x float64) bool {
	return x == 0 && d.shape < 1
}

func (d Weibull) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d Weibull) LnPDF(x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return -inf
	}
	if d.singular(x) {
		panic(undefinedDensity("Weibull.LnPDF", x))
	}
	if x == 0 && d.shape == 1 {
		// distuv gives 0 here whatever the scale.
		return -math.Log(d.scale)
	}
	return d.uv(nil).LogProb(x)
}

func (d Weibull) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Weibull.CheckedPDF", x, 0, inf, d.singular(x), d.PDF)
}

func (d Weibull) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Weibull.CheckedLnPDF", x, 0, inf, d.singular(x), d.LnPDF)
}

func (d Weibull) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.uv(nil).CDF(x)
}

func (d Weibull) InverseCDF(p float64) float64 {
	mustProb("Weibull.InverseCDF", p)
	return d.uv(nil).Quantile(p)
}

func (d Weibull) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Weibull.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Weibull) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

// moment returns Γ(1 + n/k), the n'th raw moment of the standard
// Weibull distribution.
func (d Weibull) moment(n float64) float64 {
	return math.Gamma(1 + n/d.shape)
}

func (d Weibull) Mean() float64 {
	return d.scale * d.moment(1)
}

func (d Weibull) Variance() float64 {
	g1 := d.moment(1)
	return d.scale * d.scale * (d.moment(2) - g1*g1)
}

func (d Weibull) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d Weibull) Median() float64 {
	return d.scale * math.Pow(math.Ln2, 1/d.shape)
}

func (d Weibull) Mode() float64 {
	if d.shape <= 1 {
		return 0
	}
	k := d.shape
	return d.scale * math.Pow((k-1)/k, 1/k)
}

func (d Weibull) Skewness() float64 {
	mu, sigma := d.Mean(), d.StdDev()
	l3 := d.scale * d.scale * d.scale
	return (d.moment(3)*l3 - 3*mu*sigma*sigma - mu*mu*mu) / (sigma * sigma * sigma)
}

func (d Weibull) Entropy() float64 {
	return eulerGamma*(1-1/d.shape) + math.Log(d.scale/d.shape) + 1
}
