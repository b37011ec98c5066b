// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormal is the distribution of exp(X) where X is normally
// distributed with mean Location and standard deviation Scale.
type LogNormal struct {
	location, scale float64
}

// NewLogNormal returns the log-normal distribution whose logarithm
// has mean location and standard deviation scale > 0.
func NewLogNormal(location, scale float64) (LogNormal, error) {
	if math.IsNaN(location) || math.IsInf(location, 0) {
		return LogNormal{}, paramError("NewLogNormal", "location must be finite, got %v", location)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return LogNormal{}, paramError("NewLogNormal", "scale must be positive and finite, got %v", scale)
	}
	return LogNormal{location, scale}, nil
}

func (d LogNormal) uv(r Rand) distuv.LogNormal {
	return distuv.LogNormal{Mu: d.location, Sigma: d.scale, Src: source(r)}
}

func (d LogNormal) Location() float64 { return d.location }
func (d LogNormal) Scale() float64    { return d.scale }

func (d LogNormal) Min() float64 { return 0 }
func (d LogNormal) Max() float64 { return inf }

func (d LogNormal) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d LogNormal) LnPDF(x float64) float64 {
	if x <= 0 || math.IsInf(x, 1) {
		return -inf
	}
	return d.uv(nil).LogProb(x)
}

func (d LogNormal) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("LogNormal.CheckedPDF", x, 0, inf, false, d.PDF)
}

func (d LogNormal) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("LogNormal.CheckedLnPDF", x, 0, inf, false, d.LnPDF)
}

func (d LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.uv(nil).CDF(x)
}

func (d LogNormal) InverseCDF(p float64) float64 {
	mustProb("LogNormal.InverseCDF", p)
	return d.uv(nil).Quantile(p)
}

func (d LogNormal) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("LogNormal.CheckedInverseCDF", p, d.InverseCDF)
}

func (d LogNormal) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d LogNormal) Mean() float64 {
	return math.Exp(d.location + d.scale*d.scale/2)
}

func (d LogNormal) Variance() float64 {
	s2 := d.scale * d.scale
	return math.Expm1(s2) * math.Exp(2*d.location+s2)
}

func (d LogNormal) StdDev() float64 { return math.Sqrt(d.Variance()) }
func (d LogNormal) Median() float64 { return math.Exp(d.location) }

func (d LogNormal) Mode() float64 {
	return math.Exp(d.location - d.scale*d.scale)
}

func (d LogNormal) Skewness() float64 {
	e := math.Exp(d.scale * d.scale)
	return (e + 2) * math.Sqrt(e-1)
}

func (d LogNormal) Entropy() float64 {
	return d.location + 0.5 + math.Log(d.scale) + logSqrt2Pi
}
