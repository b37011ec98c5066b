// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	mu, sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = Normal{0, 1}

// NewNormal returns the normal distribution with mean mu and standard
// deviation sigma > 0.
func NewNormal(mu, sigma float64) (Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Normal{}, paramError("NewNormal", "mean must be finite, got %v", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return Normal{}, paramError("NewNormal", "standard deviation must be positive and finite, got %v", sigma)
	}
	return Normal{mu, sigma}, nil
}

// uv returns n as a gonum distribution drawing from r.
func (n Normal) uv(r Rand) distuv.Normal {
	return distuv.Normal{Mu: n.mu, Sigma: n.sigma, Src: source(r)}
}

func (n Normal) Mu() float64    { return n.mu }
func (n Normal) Sigma() float64 { return n.sigma }

func (n Normal) Min() float64 { return -inf }
func (n Normal) Max() float64 { return inf }

func (n Normal) PDF(x float64) float64 {
	return n.uv(nil).Prob(x)
}

func (n Normal) LnPDF(x float64) float64 {
	return n.uv(nil).LogProb(x)
}

func (n Normal) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("Normal.CheckedPDF", x, -inf, inf, false, n.PDF)
}

func (n Normal) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("Normal.CheckedLnPDF", x, -inf, inf, false, n.LnPDF)
}

func (n Normal) CDF(x float64) float64 {
	return n.uv(nil).CDF(x)
}

func (n Normal) InverseCDF(p float64) float64 {
	mustProb("Normal.InverseCDF", p)
	return n.uv(nil).Quantile(p)
}

func (n Normal) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Normal.CheckedInverseCDF", p, n.InverseCDF)
}

func (n Normal) Sample(r Rand) float64 {
	return n.uv(r).Rand()
}

func (n Normal) Mean() float64     { return n.mu }
func (n Normal) Variance() float64 { return n.sigma * n.sigma }
func (n Normal) StdDev() float64   { return n.sigma }
func (n Normal) Skewness() float64 { return 0 }
func (n Normal) Median() float64   { return n.mu }
func (n Normal) Mode() float64     { return n.mu }

func (n Normal) Entropy() float64 {
	return 0.5 + logSqrt2Pi + math.Log(n.sigma)
}
