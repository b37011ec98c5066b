// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Triangular is the triangular distribution on [min, max] with peak
// at mode.
type Triangular struct {
	min, max, mode float64
}

// NewTriangular returns the triangular distribution on [min, max] with
// the given mode. The parameters must be finite with
// min <= mode <= max and min < max.
func NewTriangular(min, max, mode float64) (Triangular, error) {
	for _, v := range []float64{min, max, mode} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Triangular{}, paramError("NewTriangular", "parameters must be finite, got min=%v max=%v mode=%v", min, max, mode)
		}
	}
	if min >= max {
		return Triangular{}, paramError("NewTriangular", "min %v must be less than max %v", min, max)
	}
	if mode < min || mode > max {
		return Triangular{}, paramError("NewTriangular", "mode %v outside [%v, %v]", mode, min, max)
	}
	return Triangular{min, max, mode}, nil
}

func (d Triangular) uv(r Rand) distuv.Triangle {
	return distuv.NewTriangle(d.min, d.max, d.mode, source(r))
}

func (d Triangular) Min() float64 { return d.min }
func (d Triangular) Max() float64 { return d.max }

func (d Triangular) PDF(x float64) float64 {
	return d.uv(nil).Prob(x)
}

func (d Triangular) LnPDF(x float64) float64 {
	return math.Log(d.PDF(x))
}

func (d Triangular) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Triangular.CheckedPDF", x, d.min, d.max, false, d.PDF)
}

func (d Triangular) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Triangular.CheckedLnPDF", x, d.min, d.max, false, d.LnPDF)
}

func (d Triangular) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	return d.uv(nil).CDF(x)
}

func (d Triangular) InverseCDF(p float64) float64 {
	mustProb("Triangular.InverseCDF", p)
	switch p {
	case 0:
		return d.min
	case 1:
		return d.max
	}
	return d.uv(nil).Quantile(p)
}

func (d Triangular) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Triangular.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Triangular) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d Triangular) Mean() float64 {
	return (d.min + d.max + d.mode) / 3
}

func (d Triangular) Variance() float64 {
	a, b, c := d.min, d.max, d.mode
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d Triangular) StdDev() float64 { return math.Sqrt(d.Variance()) }
func (d Triangular) Mode() float64   { return d.mode }

func (d Triangular) Median() float64 {
	a, b, c := d.min, d.max, d.mode
	if c >= (a+b)/2 {
		return a + math.Sqrt((b-a)*(c-a)/2)
	}
	return b - math.Sqrt((b-a)*(b-c)/2)
}

func (d Triangular) Skewness() float64 {
	a, b, c := d.min, d.max, d.mode
	q := a*a + b*b + c*c - a*b - a*c - b*c
	return math.Sqrt2 * (a + b - 2*c) * (2*a - b - c) * (a - 2*b + c) / (5 * math.Pow(q, 1.5))
}

func (d Triangular) Entropy() float64 {
	return 0.5 + math.Log((d.max-d.min)/2)
}
