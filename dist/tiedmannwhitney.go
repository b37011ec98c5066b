// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/aclements/go-moredist/mathx"
)

// TiedMannWhitneyU is the discrete probability distribution of the
// Mann-Whitney U statistic for samples of sizes n1 and n2 whose
// pooled values contain ties, under the null hypothesis that both
// samples come from the same distribution. A tied pair counts 0.5
// toward U, so U takes multiples of 0.5 in [0, n1*n2].
//
// The ties are described by a tie vector: ties[k] is the number of
// pooled values sharing the k'th smallest distinct value. Unlike the
// untied distribution, this one is not symmetric in general.
//
// Computing this distribution is described in Klotz, J. H. (1966).
// "The Wilcoxon, Ties, and the Computer". Journal of the American
// Statistical Association 61 (315): 772-787, and Cheung, Ying Kuen;
// Klotz, Jerome H. (1997). "The Mann Whitney Wilcoxon Distribution
// Using Linked Lists". Statistica Sinica 7: 805-813.
type TiedMannWhitneyU struct {
	n1, n2 int
	ties   []int

	// pmf and cdf are indexed by 2U in [0, 2*n1*n2].
	pmf, cdf []float64
}

// NewTiedMannWhitneyU returns the distribution of the U statistic for
// samples of sizes n1 >= 1 and n2 >= 1 with the given tie vector.
// Every entry of ties must be at least 1 and they must sum to
// n1+n2. A tie vector of all 1s gives the same distribution as
// NewMannWhitneyU.
func NewTiedMannWhitneyU(n1, n2 int, ties []int) (TiedMannWhitneyU, error) {
	const op = "NewTiedMannWhitneyU"
	if n1 < 1 || n2 < 1 {
		return TiedMannWhitneyU{}, paramError(op, "sample sizes must be positive, got %d and %d", n1, n2)
	}
	if n1 > maxUTable/n2 || (n1+1)*(2*n1*n2+1) > maxUTable {
		return TiedMannWhitneyU{}, paramError(op, "sample sizes %d and %d are too large to tabulate", n1, n2)
	}
	var errs *multierror.Error
	sum := 0
	for i, t := range ties {
		if t < 1 {
			errs = multierror.Append(errs, paramError(op, "tie count %d must be at least 1, got %d", i, t))
		}
		sum += t
	}
	if err := errs.ErrorOrNil(); err != nil {
		return TiedMannWhitneyU{}, err
	}
	if sum != n1+n2 {
		return TiedMannWhitneyU{}, paramError(op, "tie counts sum to %d, want %d", sum, n1+n2)
	}

	pmf := tiedUTable(n1, n2, ties)
	cdf := make([]float64, len(pmf))
	c := 0.0
	for i, p := range pmf {
		c += p
		cdf[i] = math.Min(c, 1)
	}
	last := len(pmf) - 1
	for pmf[last] == 0 {
		last--
	}
	for i := last; i < len(cdf); i++ {
		cdf[i] = 1
	}
	return TiedMannWhitneyU{n1, n2, append([]int(nil), ties...), pmf, cdf}, nil
}

// tiedUTable returns the probability of each value of 2U, from 0 up
// to and including 2*n1*n2.
//
// It adds one tie group at a time. If a group of t tied values
// contains u values from the first sample and v = t-u from the
// second, and b values of the second sample lie below the group,
// the group adds b*u + u*v/2 to U, and there are choose(t, u) ways
// to place the u values within the group.
func tiedUTable(n1, n2 int, ties []int) []float64 {
	w := 2 * n1 * n2
	// ways[j][2U] counts the arrangements of the groups seen so
	// far that put j values in the first sample.
	ways := make([][]float64, n1+1)
	next := make([][]float64, n1+1)
	for j := range ways {
		ways[j] = make([]float64, w+1)
		next[j] = make([]float64, w+1)
	}
	ways[0][0] = 1

	seen := 0
	for _, t := range ties {
		for j := range next {
			clear(next[j])
		}
		for j := 0; j <= n1 && j <= seen; j++ {
			below := seen - j // second-sample values below this group
			if below > n2 {
				continue
			}
			for u := max(0, t-(n2-below)); u <= t && j+u <= n1; u++ {
				v := t - u
				c := mathx.Choose(t, u)
				shift := 2*below*u + u*v
				dst := next[j+u]
				for x, n := range ways[j][:w+1-shift] {
					if n != 0 {
						dst[x+shift] += c * n
					}
				}
			}
		}
		ways, next = next, ways
		seen += t
	}

	pmf := ways[n1]
	total := mathx.Choose(n1+n2, n1)
	for i := range pmf {
		pmf[i] /= total
	}
	return pmf
}

// Sizes returns the sample sizes n1 and n2.
func (d TiedMannWhitneyU) Sizes() (n1, n2 int) { return d.n1, d.n2 }

// Ties returns the tie vector of d.
func (d TiedMannWhitneyU) Ties() []int { return append([]int(nil), d.ties...) }

func (d TiedMannWhitneyU) Min() float64 { return 0 }
func (d TiedMannWhitneyU) Max() float64 { return float64(d.n1 * d.n2) }

// index returns 2u as an index into d's tables, and whether u is a
// multiple of 0.5 in the support.
func (d TiedMannWhitneyU) index(u float64) (int, bool) {
	if !(0 <= u && u <= d.Max()) || u*2 != math.Floor(u*2) {
		return 0, false
	}
	return int(u * 2), true
}

// PMF returns the probability that U equals u. It is 0 unless u is a
// multiple of 0.5.
func (d TiedMannWhitneyU) PMF(u float64) float64 {
	i, ok := d.index(u)
	if !ok {
		return 0
	}
	return d.pmf[i]
}

func (d TiedMannWhitneyU) LnPMF(u float64) float64 {
	return math.Log(d.PMF(u))
}

func (d TiedMannWhitneyU) check(op string, u float64) error {
	if _, ok := d.index(u); !ok {
		return newError(op, OutOfDomain, "%v is not a multiple of 0.5 in [0, %d]", u, d.n1*d.n2)
	}
	return nil
}

func (d TiedMannWhitneyU) CheckedPMF(u float64) (float64, error) {
	if err := d.check("TiedMannWhitneyU.CheckedPMF", u); err != nil {
		return 0, err
	}
	return d.PMF(u), nil
}

func (d TiedMannWhitneyU) CheckedLnPMF(u float64) (float64, error) {
	if err := d.check("TiedMannWhitneyU.CheckedLnPMF", u); err != nil {
		return 0, err
	}
	return d.LnPMF(u), nil
}

func (d TiedMannWhitneyU) CDF(u float64) float64 {
	switch {
	case math.IsNaN(u):
		return nan
	case u < 0:
		return 0
	case u >= d.Max():
		return 1
	}
	return d.cdf[int(math.Floor(u*2))]
}

// Sample never returns a value with probability 0.
func (d TiedMannWhitneyU) Sample(r Rand) float64 {
	return float64(sort.SearchFloat64s(d.cdf, uniformOC(r))) / 2
}

func (d TiedMannWhitneyU) Mean() float64 {
	return float64(d.n1) * float64(d.n2) / 2
}

// Variance includes the reduction for ties.
func (d TiedMannWhitneyU) Variance() float64 {
	n1, n2 := float64(d.n1), float64(d.n2)
	n := n1 + n2
	t := 0.0
	for _, k := range d.ties {
		k := float64(k)
		t += k*k*k - k
	}
	return n1 * n2 * ((n + 1) - t/(n*(n-1))) / 12
}

func (d TiedMannWhitneyU) StdDev() float64 { return math.Sqrt(d.Variance()) }
