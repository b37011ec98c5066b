// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
)

// maxUTable bounds the memory used while tabulating a MannWhitneyU
// distribution, in float64s.
const maxUTable = 1 << 23

// MannWhitneyU is the discrete probability distribution of the
// Mann-Whitney U statistic for a pair of samples of sizes n1 and n2
// with no ties, under the null hypothesis that both samples come from
// the same distribution.
//
// The details of computing this distribution can be found in Mann,
// Henry B.; Whitney, Donald R. (1947). "On a Test of Whether one of
// Two Random Variables is Stochastically Larger than the Other".
// Annals of Mathematical Statistics 18 (1): 50–60.
type MannWhitneyU struct {
	n1, n2 int

	// pmf and cdf are indexed by U in [0, n1*n2].
	pmf, cdf []float64
}

// NewMannWhitneyU returns the distribution of the U statistic for
// samples of sizes n1 >= 1 and n2 >= 1. The distribution is
// tabulated exactly, which takes O(n1² n2²) time.
func NewMannWhitneyU(n1, n2 int) (MannWhitneyU, error) {
	const op = "NewMannWhitneyU"
	if n1 < 1 || n2 < 1 {
		return MannWhitneyU{}, paramError(op, "sample sizes must be positive, got %d and %d", n1, n2)
	}
	small := n1
	if n2 < small {
		small = n2
	}
	if n1 > maxUTable/n2 || (small+1)*(n1*n2+1) > maxUTable {
		return MannWhitneyU{}, paramError(op, "sample sizes %d and %d are too large to tabulate", n1, n2)
	}

	pmf := uTable(n1, n2)
	nm := n1 * n2
	cdf := make([]float64, nm+1)
	// The distribution is symmetric around U = n1*n2/2. Sum up
	// whichever tail is smaller.
	lower, upper := 0.0, 0.0
	half := (nm + 1) / 2
	for u := 0; u < half; u++ {
		lower += pmf[u]
		cdf[u] = lower
	}
	for u := nm; u >= half; u-- {
		cdf[u] = math.Max(0, 1-upper)
		upper += pmf[u]
	}
	cdf[nm] = 1
	return MannWhitneyU{n1, n2, pmf, cdf}, nil
}

// uTable returns the p_{n1,n2} function defined by Mann, Whitney 1947
// for all values of U from 0 up to and including n1*n2.
//
// This algorithm runs in Θ(n1²n2²) time and is quite fast for small
// values of n1 and n2.
func uTable(n1, n2 int) []float64 {
	// This is a dynamic programming implementation of the
	// recursive recurrence definition given by Mann and Whitney:
	//
	//   p_{n,m}(U) = (n * p_{n-1,m}(U-m) + m * p_{n,m-1}(U)) / (n+m)
	//   p_{n,m}(U) = 0                           if U < 0
	//   p_{0,m}(U) = p{n,0}(U) = 1 / nCr(m+n, n) if U = 0
	//                          = 0               if U > 0
	//
	// (Note that there is a typo in the original paper. The first
	// recursive application of p should be for U-m, not U-M.)
	//
	// Since p{n,m} only depends on p{n-1,m} and p{n,m-1}, we only
	// need to store one "plane" of the three dimensional space at
	// a time.
	//
	// Furthermore, p_{n,m} = p_{m,n}, so we only construct values
	// for n <= m and obtain the rest through symmetry.
	//
	// We organize the computed values of p as followed:
	//
	//       n →   N
	//     m *
	//     ↓ * *
	//       * * *
	//       * * * *
	//       * * * *
	//     M * * * *
	//
	// where each * is a slice indexed by U. The code below
	// computes these left-to-right, top-to-bottom, so it only
	// stores one row of this matrix at a time. Computing an
	// element in a given U slice only depends on the same and
	// smaller values of U, so we can overwrite the U slice we're
	// computing in place as long as we start with the largest
	// value of U. The mirrored indexes are always available in
	// the current row, so mirroring does not interfere with
	// recycling state.
	N, M := n1, n2
	if N > M {
		N, M = M, N
	}
	U := N * M

	memo := make([][]float64, N+1)
	for n := range memo {
		memo[n] = make([]float64, U+1)
	}

	for m := 0; m <= M; m++ {
		// p_{0,m} is zero except for U=0.
		memo[0][0] = 1

		nlim := N
		if m < nlim {
			nlim = m
		}
		for n := 1; n <= nlim; n++ {
			lp := memo[n-1] // p_{n-1,m}
			var rp []float64
			if n <= m-1 {
				rp = memo[n] // p_{n,m-1}
			} else {
				rp = memo[m-1] // p{m-1,n} and m==n
			}

			// For a given n,m, U is at most n*m.
			ulim := n * m

			out := memo[n] // p_{n,m}
			nplusm := float64(n + m)
			for U1 := ulim; U1 >= 0; U1-- {
				l := 0.0
				if U1-m >= 0 {
					l = float64(n) * lp[U1-m]
				}
				r := float64(m) * rp[U1]
				out[U1] = (l + r) / nplusm
			}
		}
	}
	return memo[N]
}

// Sizes returns the sample sizes n1 and n2.
func (d MannWhitneyU) Sizes() (n1, n2 int) { return d.n1, d.n2 }

func (d MannWhitneyU) Min() int64 { return 0 }
func (d MannWhitneyU) Max() int64 { return int64(d.n1 * d.n2) }

func (d MannWhitneyU) PMF(u int64) float64 {
	if u < 0 || u > d.Max() {
		return 0
	}
	return d.pmf[u]
}

func (d MannWhitneyU) LnPMF(u int64) float64 {
	return math.Log(d.PMF(u))
}

func (d MannWhitneyU) CheckedPMF(u int64) (float64, error) {
	return checkedMass("MannWhitneyU.CheckedPMF", u, 0, d.Max(), d.PMF)
}

func (d MannWhitneyU) CheckedLnPMF(u int64) (float64, error) {
	return checkedMass("MannWhitneyU.CheckedLnPMF", u, 0, d.Max(), d.LnPMF)
}

func (d MannWhitneyU) CDF(u float64) float64 {
	return discreteCDF(u, 0, d.Max(), func(k int64) float64 { return d.cdf[k] })
}

func (d MannWhitneyU) Sample(r Rand) float64 {
	return float64(sort.SearchFloat64s(d.cdf, uniformOC(r)))
}

func (d MannWhitneyU) Mean() float64 {
	return float64(d.n1) * float64(d.n2) / 2
}

func (d MannWhitneyU) Variance() float64 {
	n1, n2 := float64(d.n1), float64(d.n2)
	return n1 * n2 * (n1 + n2 + 1) / 12
}

func (d MannWhitneyU) StdDev() float64   { return math.Sqrt(d.Variance()) }
func (d MannWhitneyU) Skewness() float64 { return 0 }
