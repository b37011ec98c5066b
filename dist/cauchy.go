// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Cauchy is the Cauchy (Lorentz) distribution with location x₀ and
// scale γ. Its mean and variance are undefined.
type Cauchy struct {
	location, scale float64
}

// NewCauchy returns the Cauchy distribution with the given location
// and scale > 0.
func NewCauchy(location, scale float64) (Cauchy, error) {
	if math.IsNaN(location) || math.IsInf(location, 0) {
		return Cauchy{}, paramError("NewCauchy", "location must be finite, got %v", location)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return Cauchy{}, paramError("NewCauchy", "scale must be positive and finite, got %v", scale)
	}
	return Cauchy{location, scale}, nil
}

func (d Cauchy) Location() float64 { return d.location }
func (d Cauchy) Scale() float64    { return d.scale }

func (d Cauchy) Min() float64 { return -inf }
func (d Cauchy) Max() float64 { return inf }

func (d Cauchy) PDF(x float64) float64 {
	z := (x - d.location) / d.scale
	return 1 / (math.Pi * d.scale * (1 + z*z))
}

func (d Cauchy) LnPDF(x float64) float64 {
	z := (x - d.location) / d.scale
	return -math.Log(math.Pi*d.scale) - math.Log1p(z*z)
}

func (d Cauchy) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Cauchy.CheckedPDF", x, -inf, inf, false, d.PDF)
}

func (d Cauchy) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Cauchy.CheckedLnPDF", x, -inf, inf, false, d.LnPDF)
}

func (d Cauchy) CDF(x float64) float64 {
	return 0.5 + math.Atan((x-d.location)/d.scale)/math.Pi
}

func (d Cauchy) InverseCDF(p float64) float64 {
	mustProb("Cauchy.InverseCDF", p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.location + d.scale*math.Tan(math.Pi*(p-0.5))
}

func (d Cauchy) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Cauchy.CheckedInverseCDF", p, d.InverseCDF)
}

// Sample draws from the stable distribution with α=1 and β=0, which
// is d.
func (d Cauchy) Sample(r Rand) float64 {
	return distuv.AlphaStable{Alpha: 1, Beta: 0, C: d.scale, Mu: d.location, Src: source(r)}.Rand()
}

func (d Cauchy) Mean() float64     { return nan }
func (d Cauchy) Variance() float64 { return nan }
func (d Cauchy) Median() float64   { return d.location }
func (d Cauchy) Mode() float64     { return d.location }
func (d Cauchy) Entropy() float64  { return math.Log(4 * math.Pi * d.scale) }
