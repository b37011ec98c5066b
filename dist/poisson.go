// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson is the distribution of the number of events in a fixed
// interval when events occur independently at mean rate λ.
type Poisson struct {
	lambda float64
}

// NewPoisson returns the Poisson distribution with mean lambda > 0.
func NewPoisson(lambda float64) (Poisson, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return Poisson{}, paramError("NewPoisson", "lambda must be positive and finite, got %v", lambda)
	}
	return Poisson{lambda}, nil
}

func (d Poisson) Lambda() float64 { return d.lambda }

// uv returns d as a gonum distribution drawing from r.
func (d Poisson) uv(r Rand) distuv.Poisson {
	return distuv.Poisson{Lambda: d.lambda, Src: source(r)}
}

func (d Poisson) Min() int64 { return 0 }
func (d Poisson) Max() int64 { return math.MaxInt64 }

func (d Poisson) PMF(k int64) float64 {
	return math.Exp(d.LnPMF(k))
}

func (d Poisson) LnPMF(k int64) float64 {
	if k < 0 {
		return -inf
	}
	return d.uv(nil).LogProb(float64(k))
}

func (d Poisson) CheckedPMF(k int64) (float64, error) {
	return checkedMass("Poisson.CheckedPMF", k, 0, math.MaxInt64, d.PMF)
}

func (d Poisson) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("Poisson.CheckedLnPMF", k, 0, math.MaxInt64, d.LnPMF)
}

func (d Poisson) CDF(x float64) float64 {
	return discreteCDF(x, 0, math.MaxInt64, func(k int64) float64 {
		return d.uv(nil).CDF(float64(k))
	})
}

func (d Poisson) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d Poisson) Mean() float64     { return d.lambda }
func (d Poisson) Variance() float64 { return d.lambda }
func (d Poisson) StdDev() float64   { return math.Sqrt(d.lambda) }
func (d Poisson) Skewness() float64 { return 1 / math.Sqrt(d.lambda) }
func (d Poisson) Mode() float64     { return math.Floor(d.lambda) }
