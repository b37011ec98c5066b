// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// Bernoulli is the distribution of a single trial that succeeds (1)
// with probability p and fails (0) otherwise.
type Bernoulli struct {
	p float64
}

// NewBernoulli returns the Bernoulli distribution with success
// probability p in [0, 1].
func NewBernoulli(p float64) (Bernoulli, error) {
	if !(0 <= p && p <= 1) {
		return Bernoulli{}, paramError("NewBernoulli", "p must be in [0, 1], got %v", p)
	}
	return Bernoulli{p}, nil
}

func (d Bernoulli) P() float64 { return d.p }

func (d Bernoulli) Min() int64 { return 0 }
func (d Bernoulli) Max() int64 { return 1 }

func (d Bernoulli) PMF(k int64) float64 {
	switch k {
	case 0:
		return 1 - d.p
	case 1:
		return d.p
	}
	return 0
}

func (d Bernoulli) LnPMF(k int64) float64 {
	return distuv.Bernoulli{P: d.p}.LogProb(float64(k))
}

func (d Bernoulli) CheckedPMF(k int64) (float64, error) {
	return checkedMass("Bernoulli.CheckedPMF", k, 0, 1, d.PMF)
}

func (d Bernoulli) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("Bernoulli.CheckedLnPMF", k, 0, 1, d.LnPMF)
}

func (d Bernoulli) CDF(x float64) float64 {
	return discreteCDF(x, 0, 1, func(int64) float64 { return 1 - d.p })
}

func (d Bernoulli) InverseCDF(p float64) float64 {
	mustProb("Bernoulli.InverseCDF", p)
	if p <= 1-d.p {
		return 0
	}
	return 1
}

func (d Bernoulli) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Bernoulli.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Bernoulli) Sample(r Rand) float64 {
	return distuv.Bernoulli{P: d.p, Src: source(r)}.Rand()
}

func (d Bernoulli) Mean() float64     { return d.p }
func (d Bernoulli) Variance() float64 { return d.p * (1 - d.p) }
func (d Bernoulli) StdDev() float64   { return math.Sqrt(d.Variance()) }

func (d Bernoulli) Skewness() float64 {
	q := 1 - d.p
	return (q - d.p) / math.Sqrt(d.p*q)
}

func (d Bernoulli) Entropy() float64 {
	return -mathx.XLogY(d.p, d.p) - mathx.XLogY(1-d.p, 1-d.p)
}

// Mode returns the most likely outcome, preferring 0 when both are
// equally likely.
func (d Bernoulli) Mode() float64 {
	if d.p > 0.5 {
		return 1
	}
	return 0
}
