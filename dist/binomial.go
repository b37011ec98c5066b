// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/aclements/go-moredist/mathx"
)

// Binomial is the distribution of the number of successes in n
// independent Bernoulli trials with success probability p.
//
// If n is 1, this is equivalent to the Bernoulli distribution.
type Binomial struct {
	p float64
	n int64
}

// NewBinomial returns the binomial distribution with success
// probability p in [0, 1] and n >= 0 trials.
func NewBinomial(p float64, n int64) (Binomial, error) {
	if !(0 <= p && p <= 1) {
		return Binomial{}, paramError("NewBinomial", "p must be in [0, 1], got %v", p)
	}
	if n < 0 {
		return Binomial{}, paramError("NewBinomial", "n must be non-negative, got %d", n)
	}
	return Binomial{p, n}, nil
}

func (d Binomial) P() float64 { return d.p }
func (d Binomial) N() int64   { return d.n }

func (d Binomial) Min() int64 { return 0 }
func (d Binomial) Max() int64 { return d.n }

// PMF is the probability of getting exactly k successes in d.N()
// independent Bernoulli trials with probability d.P().
func (d Binomial) PMF(k int64) float64 {
	return math.Exp(d.LnPMF(k))
}

func (d Binomial) LnPMF(k int64) float64 {
	if k < 0 || k > d.n {
		return -inf
	}
	switch d.p {
	case 0:
		if k == 0 {
			return 0
		}
		return -inf
	case 1:
		if k == d.n {
			return 0
		}
		return -inf
	}
	return mathx.Lchoose(int(d.n), int(k)) + float64(k)*math.Log(d.p) + float64(d.n-k)*math.Log1p(-d.p)
}

func (d Binomial) CheckedPMF(k int64) (float64, error) {
	return checkedMass("Binomial.CheckedPMF", k, 0, d.n, d.PMF)
}

func (d Binomial) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("Binomial.CheckedLnPMF", k, 0, d.n, d.LnPMF)
}

// CDF is the probability of getting x or fewer successes in d.N()
// independent Bernoulli trials with probability d.P().
func (d Binomial) CDF(x float64) float64 {
	return discreteCDF(x, 0, d.n, func(k int64) float64 {
		return mathx.BetaInc(1-d.p, float64(d.n-k), float64(k+1))
	})
}

func (d Binomial) Sample(r Rand) float64 {
	return float64(binomialRand(r, uint64(d.n), d.p))
}

func (d Binomial) Mean() float64 {
	return float64(d.n) * d.p
}

func (d Binomial) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

func (d Binomial) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d Binomial) Skewness() float64 {
	return (1 - 2*d.p) / d.StdDev()
}

func (d Binomial) Mode() float64 {
	return math.Min(math.Floor(float64(d.n+1)*d.p), float64(d.n))
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d. It fails if d has zero variance.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d Binomial) NormalApprox() (Normal, error) {
	return NewNormal(d.Mean(), d.StdDev())
}
