// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// StudentsT is the location-scale Student's t-distribution with ν
// degrees of freedom.
type StudentsT struct {
	location, scale, freedom float64
}

// NewStudentsT returns the t-distribution with the given location,
// scale > 0 and freedom > 0 degrees of freedom.
func NewStudentsT(location, scale, freedom float64) (StudentsT, error) {
	if math.IsNaN(location) || math.IsInf(location, 0) {
		return StudentsT{}, paramError("NewStudentsT", "location must be finite, got %v", location)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return StudentsT{}, paramError("NewStudentsT", "scale must be positive and finite, got %v", scale)
	}
	if !(freedom > 0) || math.IsInf(freedom, 1) {
		return StudentsT{}, paramError("NewStudentsT", "degrees of freedom must be positive and finite, got %v", freedom)
	}
	return StudentsT{location, scale, freedom}, nil
}

func (d StudentsT) Location() float64 { return d.location }
func (d StudentsT) Scale() float64    { return d.scale }
func (d StudentsT) Freedom() float64  { return d.freedom }

func (d StudentsT) Min() float64 { return -inf }
func (d StudentsT) Max() float64 { return inf }

func (d StudentsT) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d StudentsT) LnPDF(x float64) float64 {
	if math.IsInf(x, 0) {
		return -inf
	}
	v := d.freedom
	z := (x - d.location) / d.scale
	return mathx.Lgamma((v+1)/2) - mathx.Lgamma(v/2) - 0.5*math.Log(v*math.Pi) -
		math.Log(d.scale) - (v+1)/2*math.Log1p(z*z/v)
}

func (d StudentsT) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("StudentsT.CheckedPDF", x, -inf, inf, false, d.PDF)
}

func (d StudentsT) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("StudentsT.CheckedLnPDF", x, -inf, inf, false, d.LnPDF)
}

func (d StudentsT) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	z := (x - d.location) / d.scale
	v := d.freedom
	// The tail probability is I_h(v/2, 1/2)/2 with h = v/(v+z²).
	var tail float64
	if math.IsInf(z, 0) {
		tail = 0
	} else {
		tail = mathx.BetaInc(v/(v+z*z), v/2, 0.5) / 2
	}
	if z <= 0 {
		return tail
	}
	return 1 - tail
}

func (d StudentsT) InverseCDF(p float64) float64 {
	mustProb("StudentsT.InverseCDF", p)
	switch p {
	case 0:
		return -inf
	case 0.5:
		return d.location
	case 1:
		return inf
	}
	v := d.freedom
	tail, sign := p, -1.0
	if p > 0.5 {
		tail, sign = 1-p, 1
	}
	h := mathx.InvBetaInc(2*tail, v/2, 0.5)
	z := sign * math.Sqrt(v*(1-h)/h)
	return d.location + d.scale*z
}

func (d StudentsT) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("StudentsT.CheckedInverseCDF", p, d.InverseCDF)
}

func (d StudentsT) Sample(r Rand) float64 {
	return distuv.StudentsT{Mu: d.location, Sigma: d.scale, Nu: d.freedom, Src: source(r)}.Rand()
}

// Mean returns the mean of d, which is undefined (NaN) for ν <= 1.
func (d StudentsT) Mean() float64 {
	if d.freedom <= 1 {
		return nan
	}
	return d.location
}

// Variance returns the variance of d, which is infinite for
// 1 < ν <= 2 and undefined (NaN) for ν <= 1.
func (d StudentsT) Variance() float64 {
	v := d.freedom
	switch {
	case v <= 1:
		return nan
	case v <= 2:
		return inf
	}
	return d.scale * d.scale * v / (v - 2)
}

func (d StudentsT) StdDev() float64 { return math.Sqrt(d.Variance()) }
func (d StudentsT) Median() float64 { return d.location }
func (d StudentsT) Mode() float64   { return d.location }

func (d StudentsT) Skewness() float64 {
	if d.freedom <= 3 {
		return nan
	}
	return 0
}

func (d StudentsT) Entropy() float64 {
	v := d.freedom
	return (v+1)/2*(mathx.Digamma((v+1)/2)-mathx.Digamma(v/2)) +
		math.Log(math.Sqrt(v)) + mathx.Lbeta(v/2, 0.5) + math.Log(d.scale)
}
