// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [min, max].
type Uniform struct {
	min, max float64
}

// NewUniform returns the uniform distribution on [min, max]. min and
// max must be finite and min < max.
func NewUniform(min, max float64) (Uniform, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return Uniform{}, paramError("NewUniform", "bounds must be finite, got [%v, %v]", min, max)
	}
	if min >= max {
		return Uniform{}, paramError("NewUniform", "min %v must be less than max %v", min, max)
	}
	return Uniform{min, max}, nil
}

func (d Uniform) uv(r Rand) distuv.Uniform {
	return distuv.Uniform{Min: d.min, Max: d.max, Src: source(r)}
}

func (d Uniform) Min() float64 { return d.min }
func (d Uniform) Max() float64 { return d.max }

func (d Uniform) PDF(x float64) float64 {
	if !(d.min <= x && x <= d.max) {
		return 0
	}
	return d.uv(nil).Prob(x)
}

func (d Uniform) LnPDF(x float64) float64 {
	if !(d.min <= x && x <= d.max) {
		return -inf
	}
	return d.uv(nil).LogProb(x)
}

func (d Uniform) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Uniform.CheckedPDF", x, d.min, d.max, false, d.PDF)
}

func (d Uniform) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Uniform.CheckedLnPDF", x, d.min, d.max, false, d.LnPDF)
}

func (d Uniform) CDF(x float64) float64 {
	return d.uv(nil).CDF(x)
}

func (d Uniform) InverseCDF(p float64) float64 {
	mustProb("Uniform.InverseCDF", p)
	if p == 1 {
		return d.max
	}
	return d.uv(nil).Quantile(p)
}

func (d Uniform) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Uniform.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Uniform) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d Uniform) Mean() float64 { return (d.min + d.max) / 2 }

func (d Uniform) Variance() float64 {
	w := d.max - d.min
	return w * w / 12
}

func (d Uniform) StdDev() float64   { return math.Sqrt(d.Variance()) }
func (d Uniform) Entropy() float64  { return math.Log(d.max - d.min) }
func (d Uniform) Skewness() float64 { return 0 }
func (d Uniform) Median() float64   { return d.Mean() }
