// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/stat/distuv"
)

// Categorical is the distribution over the indexes {0, ..., k-1} of a
// weight vector, where index i has probability proportional to its
// weight.
type Categorical struct {
	pmf []float64
	cdf []float64
	uv  distuv.Categorical
}

// NewCategorical returns the categorical distribution with the given
// weights. The weights need not sum to 1, but they must be
// non-negative and finite, and at least one must be positive.
func NewCategorical(weights []float64) (Categorical, error) {
	pmf, err := normalizeWeights("NewCategorical", weights)
	if err != nil {
		return Categorical{}, err
	}
	// The CDF is exactly 1 from the last positive weight on.
	last := len(pmf) - 1
	for pmf[last] == 0 {
		last--
	}
	cdf := make([]float64, len(pmf))
	sum := 0.0
	for i, p := range pmf {
		sum += p
		cdf[i] = math.Min(sum, 1)
		if i >= last {
			cdf[i] = 1
		}
	}
	return Categorical{pmf, cdf, distuv.NewCategorical(pmf, nil)}, nil
}

// normalizeWeights validates a weight vector and scales it to sum to
// 1. All invalid weights are reported together.
func normalizeWeights(op string, weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, paramError(op, "no weights")
	}
	var errs *multierror.Error
	sum := 0.0
	for i, w := range weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			errs = multierror.Append(errs, paramError(op, "weight %d must be non-negative and finite, got %v", i, w))
			continue
		}
		sum += w
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if sum == 0 {
		return nil, paramError(op, "weights sum to 0")
	} else if math.IsInf(sum, 1) {
		return nil, paramError(op, "weights sum overflows")
	}
	p := make([]float64, len(weights))
	for i, w := range weights {
		p[i] = w / sum
	}
	return p, nil
}

// Probs returns the normalized probability of each index.
func (d Categorical) Probs() []float64 {
	return append([]float64(nil), d.pmf...)
}

func (d Categorical) Min() int64 { return 0 }
func (d Categorical) Max() int64 { return int64(len(d.pmf) - 1) }

func (d Categorical) PMF(k int64) float64 {
	if k < 0 || k >= int64(len(d.pmf)) {
		return 0
	}
	return d.pmf[k]
}

func (d Categorical) LnPMF(k int64) float64 {
	return math.Log(d.PMF(k))
}

func (d Categorical) CheckedPMF(k int64) (float64, error) {
	return checkedMass("Categorical.CheckedPMF", k, 0, d.Max(), d.PMF)
}

func (d Categorical) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("Categorical.CheckedLnPMF", k, 0, d.Max(), d.LnPMF)
}

func (d Categorical) CDF(x float64) float64 {
	return discreteCDF(x, 0, d.Max(), func(k int64) float64 { return d.cdf[k] })
}

func (d Categorical) InverseCDF(p float64) float64 {
	mustProb("Categorical.InverseCDF", p)
	return float64(sort.SearchFloat64s(d.cdf, p))
}

func (d Categorical) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("Categorical.CheckedInverseCDF", p, d.InverseCDF)
}

// Sample never returns an index with zero weight. It inverts the CDF
// rather than using gonum's sampler, which can return a leading
// zero-weight index when the uniform draw is exactly 0.
func (d Categorical) Sample(r Rand) float64 {
	return float64(sort.SearchFloat64s(d.cdf, uniformOC(r)))
}

func (d Categorical) Mean() float64 { return d.uv.Mean() }

func (d Categorical) Variance() float64 {
	m, v := d.Mean(), 0.0
	for i, p := range d.pmf {
		x := float64(i) - m
		v += p * x * x
	}
	return v
}

func (d Categorical) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d Categorical) Entropy() float64 { return d.uv.Entropy() }

// Mode returns the smallest index with the greatest probability.
func (d Categorical) Mode() float64 {
	best := 0
	for i, p := range d.pmf {
		if p > d.pmf[best] {
			best = i
		}
	}
	return float64(best)
}
