// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/aclements/go-moredist/mathx"
)

// Multinomial is the distribution of the counts of each of k outcomes
// over n independent trials, where each trial produces outcome i with
// probability proportional to weight i.
//
// Outcomes are count vectors of length k that sum to n.
type Multinomial struct {
	p    []float64
	n    uint64
	last int // index of the last outcome with non-zero probability
}

// NewMultinomial returns the multinomial distribution over n trials
// with the given outcome weights. The weights need not sum to 1, but
// they must be non-negative and finite, and at least one must be
// positive.
func NewMultinomial(weights []float64, n uint64) (Multinomial, error) {
	p, err := normalizeWeights("NewMultinomial", weights)
	if err != nil {
		return Multinomial{}, err
	}
	last := 0
	for i, pi := range p {
		if pi > 0 {
			last = i
		}
	}
	return Multinomial{p, n, last}, nil
}

// Probs returns the normalized probability of each outcome.
func (d Multinomial) Probs() []float64 {
	return append([]float64(nil), d.p...)
}

// N returns the number of trials.
func (d Multinomial) N() uint64 { return d.n }

// Min returns the all-zero count vector.
func (d Multinomial) Min() []uint64 {
	return make([]uint64, len(d.p))
}

// Max returns, for each outcome, the largest count it can take.
func (d Multinomial) Max() []uint64 {
	m := make([]uint64, len(d.p))
	for i, pi := range d.p {
		if pi > 0 {
			m[i] = d.n
		}
	}
	return m
}

// check classifies x. It returns a BadStructure error if x has the
// wrong length, or an OutOfDomain error if x is not in the support.
func (d Multinomial) check(op string, x []uint64) *Error {
	if len(x) != len(d.p) {
		return newError(op, BadStructure, "got %d counts, want %d", len(x), len(d.p))
	}
	var sum uint64
	for i, xi := range x {
		if xi > d.n || (xi > 0 && d.p[i] == 0) {
			return newError(op, OutOfDomain, "count %d=%d is impossible", i, xi)
		}
		sum += xi
		if sum > d.n {
			break
		}
	}
	if sum != d.n {
		return newError(op, OutOfDomain, "counts must sum to %d", d.n)
	}
	return nil
}

func (d Multinomial) PMF(x []uint64) float64 {
	return math.Exp(d.LnPMF(x))
}

func (d Multinomial) LnPMF(x []uint64) float64 {
	if err := d.check("Multinomial.LnPMF", x); err != nil {
		if err.Reason == BadStructure {
			panic(err)
		}
		return -inf
	}
	return d.lnPMF(x)
}

func (d Multinomial) lnPMF(x []uint64) float64 {
	l := mathx.Lmultinomial(x)
	for i, xi := range x {
		l += mathx.XLogY(float64(xi), d.p[i])
	}
	return l
}

func (d Multinomial) CheckedPMF(x []uint64) (float64, error) {
	if err := d.check("Multinomial.CheckedPMF", x); err != nil {
		return 0, err
	}
	return math.Exp(d.lnPMF(x)), nil
}

func (d Multinomial) CheckedLnPMF(x []uint64) (float64, error) {
	if err := d.check("Multinomial.CheckedLnPMF", x); err != nil {
		return 0, err
	}
	return d.lnPMF(x), nil
}

// Sample draws each count from a binomial conditioned on the counts
// before it.
func (d Multinomial) Sample(r Rand) []uint64 {
	x := make([]uint64, len(d.p))
	rem, remP := d.n, 1.0
	for i := 0; i < d.last && rem > 0; i++ {
		q := 1.0
		if d.p[i] < remP {
			q = d.p[i] / remP
		}
		x[i] = binomialRand(r, rem, q)
		rem -= x[i]
		remP -= d.p[i]
	}
	x[d.last] += rem
	return x
}

// Mean returns the expected count of each outcome.
func (d Multinomial) Mean() []float64 {
	m := make([]float64, len(d.p))
	for i, pi := range d.p {
		m[i] = float64(d.n) * pi
	}
	return m
}

// Variance returns the variance of the count of each outcome.
func (d Multinomial) Variance() []float64 {
	v := make([]float64, len(d.p))
	for i, pi := range d.p {
		v[i] = float64(d.n) * pi * (1 - pi)
	}
	return v
}
