// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// Geometric is the distribution of the number of Bernoulli trials
// with success probability p needed to get the first success. Its
// support is {1, 2, ...}.
type Geometric struct {
	p float64
}

// NewGeometric returns the geometric distribution with success
// probability p in (0, 1].
func NewGeometric(p float64) (Geometric, error) {
	if !(0 < p && p <= 1) {
		return Geometric{}, paramError("NewGeometric", "p must be in (0, 1], got %v", p)
	}
	return Geometric{p}, nil
}

func (d Geometric) P() float64 { return d.p }

func (d Geometric) Min() int64 { return 1 }
func (d Geometric) Max() int64 { return math.MaxInt64 }

func (d Geometric) PMF(k int64) float64 {
	return math.Exp(d.LnPMF(k))
}

func (d Geometric) LnPMF(k int64) float64 {
	if k < 1 {
		return -inf
	}
	if d.p == 1 {
		if k == 1 {
			return 0
		}
		return -inf
	}
	return float64(k-1)*math.Log1p(-d.p) + math.Log(d.p)
}

func (d Geometric) CheckedPMF(k int64) (float64, error) {
	return checkedMass("Geometric.CheckedPMF", k, 1, math.MaxInt64, d.PMF)
}

func (d Geometric) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("Geometric.CheckedLnPMF", k, 1, math.MaxInt64, d.LnPMF)
}

func (d Geometric) cdf(k int64) float64 {
	if d.p == 1 {
		return 1
	}
	return -math.Expm1(float64(k) * math.Log1p(-d.p))
}

func (d Geometric) CDF(x float64) float64 {
	return discreteCDF(x, 1, math.MaxInt64, d.cdf)
}

func (d Geometric) InverseCDF(p float64) float64 {
	mustProb("Geometric.InverseCDF", p)
	if p == 0 || d.p == 1 {
		return 1
	} else if p == 1 {
		return math.MaxInt64
	}
	k := floatToInt64(math.Ceil(math.Log1p(-p) / math.Log1p(-d.p)))
	return float64(searchInt(d.cdf, 1, math.MaxInt64, k, p))
}

func (d Geometric) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Geometric.CheckedInverseCDF", p, d.InverseCDF)
}

func (d Geometric) Sample(r Rand) float64 {
	if d.p == 1 {
		return 1
	}
	e := distuv.Exponential{Rate: 1, Src: source(r)}.Rand()
	k := math.Ceil(e / -math.Log1p(-d.p))
	return math.Min(math.Max(k, 1), math.MaxInt64)
}

func (d Geometric) Mean() float64 { return 1 / d.p }
func (d Geometric) Mode() float64 { return 1 }

func (d Geometric) Variance() float64 {
	return (1 - d.p) / (d.p * d.p)
}

func (d Geometric) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d Geometric) Skewness() float64 {
	if d.p == 1 {
		return nan
	}
	return (2 - d.p) / math.Sqrt(1-d.p)
}

func (d Geometric) Entropy() float64 {
	q := 1 - d.p
	return -(mathx.XLogY(q, q) + mathx.XLogY(d.p, d.p)) / d.p
}
