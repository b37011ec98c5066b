// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/aclements/go-moredist/mathx"
)

// Hypergeometric is the distribution of the number of successes in
// n draws without replacement from a population of size N containing
// K successes.
type Hypergeometric struct {
	population, successes, draws int64
}

// NewHypergeometric returns the hypergeometric distribution for
// population N >= 0 containing 0 <= K <= N successes, from which
// 0 <= n <= N items are drawn.
func NewHypergeometric(population, successes, draws int64) (Hypergeometric, error) {
	const op = "NewHypergeometric"
	if population < 0 {
		return Hypergeometric{}, paramError(op, "population must be non-negative, got %d", population)
	}
	if successes < 0 || successes > population {
		return Hypergeometric{}, paramError(op, "successes must be in [0, %d], got %d", population, successes)
	}
	if draws < 0 || draws > population {
		return Hypergeometric{}, paramError(op, "draws must be in [0, %d], got %d", population, draws)
	}
	return Hypergeometric{population, successes, draws}, nil
}

func (d Hypergeometric) Population() int64 { return d.population }
func (d Hypergeometric) Successes() int64  { return d.successes }
func (d Hypergeometric) Draws() int64      { return d.draws }

func (d Hypergeometric) Min() int64 {
	if k := d.draws + d.successes - d.population; k > 0 {
		return k
	}
	return 0
}

func (d Hypergeometric) Max() int64 {
	if d.successes < d.draws {
		return d.successes
	}
	return d.draws
}

func (d Hypergeometric) PMF(k int64) float64 {
	return math.Exp(d.LnPMF(k))
}

func (d Hypergeometric) LnPMF(k int64) float64 {
	if k < d.Min() || k > d.Max() {
		return -inf
	}
	N, K, n := int(d.population), int(d.successes), int(d.draws)
	return mathx.Lchoose(K, int(k)) + mathx.Lchoose(N-K, n-int(k)) - mathx.Lchoose(N, n)
}

func (d Hypergeometric) CheckedPMF(k int64) (float64, error) {
	return checkedMass("Hypergeometric.CheckedPMF", k, d.Min(), d.Max(), d.PMF)
}

func (d Hypergeometric) CheckedLnPMF(k int64) (float64, error) {
	return checkedMass("Hypergeometric.CheckedLnPMF", k, d.Min(), d.Max(), d.LnPMF)
}

func (d Hypergeometric) CDF(x float64) float64 {
	lo, hi := d.Min(), d.Max()
	return discreteCDF(x, lo, hi, func(k int64) float64 {
		// Sum whichever tail is shorter.
		p := 0.0
		if k-lo <= hi-k {
			for i := lo; i <= k; i++ {
				p += d.PMF(i)
			}
		} else {
			for i := k + 1; i <= hi; i++ {
				p += d.PMF(i)
			}
			p = 1 - p
		}
		return math.Max(0, math.Min(1, p))
	})
}

// Sample draws without replacement, one item at a time.
func (d Hypergeometric) Sample(r Rand) float64 {
	var k int64
	remK, remN := d.successes, d.population
	for i := int64(0); i < d.draws; i++ {
		if uintn(r, uint64(remN)) < uint64(remK) {
			k++
			remK--
		}
		remN--
	}
	return float64(k)
}

func (d Hypergeometric) Mean() float64 {
	if d.population == 0 {
		return 0
	}
	return float64(d.draws) * float64(d.successes) / float64(d.population)
}

func (d Hypergeometric) Variance() float64 {
	N, K, n := float64(d.population), float64(d.successes), float64(d.draws)
	if N <= 1 {
		return 0
	}
	return n * K / N * (N - K) / N * (N - n) / (N - 1)
}

func (d Hypergeometric) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d Hypergeometric) Mode() float64 {
	N, K, n := float64(d.population), float64(d.successes), float64(d.draws)
	return math.Floor((n + 1) * (K + 1) / (N + 2))
}
