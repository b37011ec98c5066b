// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// DiscreteUniform is the uniform distribution over the integers in
// [min, max].
type DiscreteUniform struct {
	min, max int64
}

// NewDiscreteUniform returns the uniform distribution over the
// integers in [min, max], where min <= max.
func NewDiscreteUniform(min, max int64) (DiscreteUniform, error) {
	if min > max {
		return DiscreteUniform{}, paramError("NewDiscreteUniform", "min %d must not exceed max %d", min, max)
	}
	return DiscreteUniform{min, max}, nil
}

func (d DiscreteUniform) Min() int64 { return d.min }
func (d DiscreteUniform) Max() int64 { return d.max }

// width returns max-min, which may not fit in an int64.
func (d DiscreteUniform) width() uint64 {
	return uint64(d.max) - uint64(d.min)
}

// count returns the number of points in the support.
func (d DiscreteUniform) count() float64 {
	return float64(d.width()) + 1
}

func (d DiscreteUniform) PMF(k int64) float64 {
	if k < d.min || k > d.max {
		return 0
	}
	return 1 / d.count()
}

func (d DiscreteUniform) LnPMF(k int64) float64 {
	return math.Log(d.PMF(k))
}

func (d DiscreteUniform) CheckedPMF(k int64) (float64, error) {
	return checkedMass("DiscreteUniform.CheckedPMF", k, d.min, d.max, d.PMF)
}

func (d DiscreteUniform) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("DiscreteUniform.CheckedLnPMF", k, d.min, d.max, d.LnPMF)
}

func (d DiscreteUniform) cdf(k int64) float64 {
	return (float64(uint64(k)-uint64(d.min)) + 1) / d.count()
}

func (d DiscreteUniform) CDF(x float64) float64 {
	return discreteCDF(x, d.min, d.max, d.cdf)
}

func (d DiscreteUniform) InverseCDF(p float64) float64 {
	mustProb("DiscreteUniform.InverseCDF", p)
	if p == 0 {
		return float64(d.min)
	}
	off := math.Ceil(p*d.count()) - 1
	if off >= float64(d.width()) {
		return float64(d.max)
	}
	k := d.min + int64(math.Max(off, 0))
	cdf := func(k int64) float64 {
		if k >= d.max {
			return 1
		}
		return d.cdf(k)
	}
	return float64(searchInt(cdf, d.min, d.max, k, p))
}

func (d DiscreteUniform) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("DiscreteUniform.CheckedInverseCDF", p, d.InverseCDF)
}

func (d DiscreteUniform) Sample(r Rand) float64 {
	return float64(int64(uint64(d.min) + uintn(r, d.width()+1)))
}

func (d DiscreteUniform) Mean() float64 {
	return float64(d.min)/2 + float64(d.max)/2
}

func (d DiscreteUniform) Variance() float64 {
	n := d.count()
	return (n*n - 1) / 12
}

func (d DiscreteUniform) StdDev() float64   { return math.Sqrt(d.Variance()) }
func (d DiscreteUniform) Median() float64   { return d.Mean() }
func (d DiscreteUniform) Skewness() float64 { return 0 }
func (d DiscreteUniform) Entropy() float64  { return math.Log(d.count()) }
