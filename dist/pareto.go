// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Pareto is the Pareto (type I) distribution with scale xₘ and shape
// α. Its support is [xₘ, ∞).
type Pareto struct {
	scale, shape float64
}

// NewPareto returns the Pareto distribution with scale > 0 and
// shape > 0.
func NewPareto(scale, shape float64) (Pareto, error) {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return Pareto{}, paramError("NewPareto", "scale must be positive and finite, got %v", scale)
	}
	if !(shape > 0) || math.IsInf(shape, 1) {
		return Pareto{}, paramError("NewPareto", "shape must be positive and finite, got %v", shape)
	}
	return Pareto{scale, shape}, nil
}

func (d Pareto) uv(r Rand) distuv.Pareto {
	return distuv.Pareto{Xm: d.scale, Alpha: d.shape, Src: source(r)}
}

func (d Pareto) Scale() float64 { return d.scale }
func (d Pareto) Shape() float64 { return d.shape }

func (d Pareto) Min() float64 { return d.scale }
func (d Pareto) Max() float64 { return inf }

func (d Pareto) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d Pareto) LnPDF(x float64) float64 {
	if x < d.scale || math.IsInf(x, 1) {
		return -inf
	}
	return d.uv(nil).LogProb(x)
}

func (d Pareto) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Pareto.CheckedPDF", x, d.scale, inf, false, d.PDF)
}

func (d Pareto) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Pareto.CheckedLnPDF", x, d.scale, inf, false, d.LnPDF)
}

func (d Pareto) CDF(x float64) float64 {
	if x <= d.scale {
		return 0
	}
	return d.uv(nil).CDF(x)
}

func (d Pareto) InverseCDF(p float64) float64 {
	mustProb("Pareto.InverseCDF", p)
	if p == 1 {
		return inf
	}
	return d.uv(nil).Quantile(p)
}

func (d Pareto) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Pareto.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Pareto) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

// Mean returns the mean of d, which is infinite for α <= 1.
func (d Pareto) Mean() float64 {
	if d.shape <= 1 {
		return inf
	}
	return d.shape * d.scale / (d.shape - 1)
}

// Variance returns the variance of d, which is infinite for α <= 2.
func (d Pareto) Variance() float64 {
	a := d.shape
	if a <= 2 {
		return inf
	}
	return d.scale * d.scale * a / ((a - 1) * (a - 1) * (a - 2))
}

func (d Pareto) StdDev() float64 { return math.Sqrt(d.Variance()) }
func (d Pareto) Mode() float64   { return d.scale }
func (d Pareto) Median() float64 { return d.scale * math.Pow(2, 1/d.shape) }

func (d Pareto) Skewness() float64 {
	a := d.shape
	if a <= 3 {
		return nan
	}
	return 2 * (1 + a) / (a - 3) * math.Sqrt((a-2)/a)
}

func (d Pareto) Entropy() float64 {
	return math.Log(d.scale/d.shape) + 1/d.shape + 1
}
