// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disttest checks that distributions implemented against
// package dist behave consistently.
//
// Each check takes a distribution and verifies the relationships
// between its capabilities: that the density agrees with its log,
// integrates to the CDF, inverts through InverseCDF, rejects points
// outside its support, and produces samples that follow its CDF.
package disttest

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"

	"github.com/aclements/go-moredist/dist"
)

// ContinuousDist is a univariate continuous distribution with
// checked and unchecked densities.
type ContinuousDist interface {
	dist.Univariate[float64, float64]
	dist.Continuous[float64]
	dist.CheckedContinuous[float64]
}

// DiscreteDist is a univariate discrete distribution with checked and
// unchecked masses.
type DiscreteDist interface {
	dist.Univariate[int64, float64]
	dist.Discrete[int64]
	dist.CheckedDiscrete[int64]
}

// Config controls a conformance check. The zero Config is valid.
type Config struct {
	// Seed seeds the randomness source for sample checks.
	Seed uint64

	// Samples is the number of samples to draw. If 0, it
	// defaults to 10000. If negative, samples are not checked.
	Samples int

	// Tol is the absolute tolerance when comparing an integrated
	// or summed density with the CDF. If 0, it defaults to 1e-7.
	Tol float64

	// KS is the largest allowed Kolmogorov-Smirnov distance
	// between the samples and the CDF. If 0, it defaults to
	// 0.025.
	KS float64
}

func (c Config) samples() int {
	if c.Samples == 0 {
		return 10000
	}
	return c.Samples
}

func (c Config) tol() float64 {
	if c.Tol == 0 {
		return 1e-7
	}
	return c.Tol
}

func (c Config) ks() float64 {
	if c.KS == 0 {
		return 0.025
	}
	return c.KS
}

// lnTol is the tolerance when comparing LnPDF(x) with log(PDF(x)).
const lnTol = 1e-12

// probes are the probabilities at which distributions are examined.
var probes = []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.4, 0.5, 0.6, 0.75, 0.9, 0.95, 0.99, 0.999}

// Continuous checks the consistency of continuous distribution d.
func Continuous(t *testing.T, d ContinuousDist, cfg Config) {
	t.Helper()
	lo, hi := d.Min(), d.Max()
	require.LessOrEqual(t, lo, hi, "Min() > Max()")

	// Examine d at its quantiles.
	q := dist.Quantile[float64](d)
	var xs []float64
	for _, p := range probes {
		x := q(p)
		if math.IsInf(x, 0) || (len(xs) > 0 && x <= xs[len(xs)-1]) {
			continue
		}
		xs = append(xs, x)
	}
	require.NotEmpty(t, xs, "no finite quantiles")

	t.Run("density", func(t *testing.T) {
		for _, x := range xs {
			checkDensity(t, d, x)
		}
		checkOutside(t, d, lo, hi)
	})

	t.Run("cdf", func(t *testing.T) {
		assert.InDelta(t, 0, d.CDF(lo), 1e-12, "CDF(Min())")
		assert.InDelta(t, 1, d.CDF(hi), 1e-12, "CDF(Max())")
		assert.True(t, math.IsNaN(d.CDF(math.NaN())), "CDF(NaN) is not NaN")
		prev := 0.0
		for _, x := range xs {
			c := d.CDF(x)
			assert.True(t, prev <= c && c <= 1, "CDF(%v)=%v not in [%v, 1]", x, c, prev)
			prev = c
		}
	})

	t.Run("integral", func(t *testing.T) {
		for i := 1; i < len(xs); i++ {
			a, b := xs[i-1], xs[i]
			got := integrate(d.PDF, a, b)
			want := d.CDF(b) - d.CDF(a)
			assert.InDelta(t, want, got, cfg.tol(), "∫PDF over [%v, %v]", a, b)
		}
	})

	if inv, ok := d.(dist.InverseCDF[float64]); ok {
		t.Run("inverse", func(t *testing.T) {
			assert.Equal(t, lo, inv.InverseCDF(0), "InverseCDF(0)")
			if math.IsInf(hi, 1) {
				assert.Equal(t, hi, inv.InverseCDF(1), "InverseCDF(1)")
			}
			for _, p := range probes {
				x := inv.InverseCDF(p)
				assert.InDelta(t, p, d.CDF(x), 1e-9, "CDF(InverseCDF(%v))", p)
			}
			checkInverseDomain(t, inv)
		})
	}

	if n := cfg.samples(); n > 0 {
		t.Run("sample", func(t *testing.T) {
			xs := dist.SampleN[float64](d, dist.NewRand(cfg.Seed), n)
			for _, x := range xs {
				if !(lo <= x && x <= hi) {
					t.Fatalf("sample %v outside [%v, %v]", x, lo, hi)
				}
			}
			sort.Float64s(xs)
			D := 0.0
			for i, x := range xs {
				c := d.CDF(x)
				D = math.Max(D, math.Max(float64(i+1)/float64(n)-c, c-float64(i)/float64(n)))
			}
			assert.Less(t, D, cfg.ks(), "Kolmogorov-Smirnov distance")
		})
	}
}

func checkDensity(t *testing.T, d ContinuousDist, x float64) {
	t.Helper()
	pdf, err := d.CheckedPDF(x)
	if errors.Is(err, dist.ErrUndefined) {
		assert.Panics(t, func() { d.PDF(x) }, "PDF(%v) at singular point", x)
		return
	}
	require.NoError(t, err, "CheckedPDF(%v)", x)
	assert.Equal(t, d.PDF(x), pdf, "CheckedPDF(%v) != PDF(%v)", x, x)
	assert.GreaterOrEqual(t, pdf, 0.0, "PDF(%v)", x)

	lnpdf, err := d.CheckedLnPDF(x)
	require.NoError(t, err, "CheckedLnPDF(%v)", x)
	assert.Equal(t, d.LnPDF(x), lnpdf, "CheckedLnPDF(%v) != LnPDF(%v)", x, x)
	if pdf > 0 && !math.IsInf(pdf, 0) {
		assert.True(t, scalar.EqualWithinAbsOrRel(math.Log(pdf), lnpdf, lnTol, lnTol),
			"LnPDF(%v)=%v, but log(PDF(%v))=%v", x, lnpdf, x, math.Log(pdf))
	}
}

func checkOutside(t *testing.T, d ContinuousDist, lo, hi float64) {
	t.Helper()
	var outside []float64
	if !math.IsInf(lo, -1) {
		outside = append(outside, math.Nextafter(lo, math.Inf(-1)))
	}
	if !math.IsInf(hi, 1) {
		outside = append(outside, math.Nextafter(hi, math.Inf(1)))
	}
	for _, x := range outside {
		assert.Equal(t, 0.0, d.PDF(x), "PDF(%v) outside support", x)
		assert.Equal(t, math.Inf(-1), d.LnPDF(x), "LnPDF(%v) outside support", x)
		_, err := d.CheckedPDF(x)
		assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedPDF(%v)", x)
		_, err = d.CheckedLnPDF(x)
		assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedLnPDF(%v)", x)
	}
	_, err := d.CheckedPDF(math.NaN())
	assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedPDF(NaN)")
}

func checkInverseDomain(t *testing.T, inv dist.InverseCDF[float64]) {
	t.Helper()
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		assert.Panics(t, func() { inv.InverseCDF(p) }, "InverseCDF(%v)", p)
		if c, ok := inv.(dist.CheckedInverseCDF[float64]); ok {
			_, err := c.CheckedInverseCDF(p)
			assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedInverseCDF(%v)", p)
		}
	}
}

// integrate returns the integral of f over [a, b] using composite
// Gauss-Legendre quadrature.
func integrate(f func(float64) float64, a, b float64) float64 {
	const pieces, order = 32, 16
	sum := 0.0
	for i := 0; i < pieces; i++ {
		x0 := a + (b-a)*float64(i)/pieces
		x1 := a + (b-a)*float64(i+1)/pieces
		sum += quad.Fixed(f, x0, x1, order, nil, 0)
	}
	return sum
}

// maxTerms bounds the number of support points Discrete examines.
const maxTerms = 5000

// Discrete checks the consistency of discrete distribution d.
func Discrete(t *testing.T, d DiscreteDist, cfg Config) {
	t.Helper()
	lo, hi := d.Min(), d.Max()
	require.LessOrEqual(t, lo, hi, "Min() > Max()")

	t.Run("mass", func(t *testing.T) {
		sum := 0.0
		for k, n := lo, 0; n < maxTerms; k, n = k+1, n+1 {
			pmf, err := d.CheckedPMF(k)
			require.NoError(t, err, "CheckedPMF(%d)", k)
			assert.Equal(t, d.PMF(k), pmf, "CheckedPMF(%d) != PMF(%d)", k, k)
			assert.True(t, 0 <= pmf && pmf <= 1, "PMF(%d)=%v", k, pmf)

			lnpmf, err := d.CheckedLnPMF(k)
			require.NoError(t, err, "CheckedLnPMF(%d)", k)
			assert.Equal(t, d.LnPMF(k), lnpmf, "CheckedLnPMF(%d) != LnPMF(%d)", k, k)
			if pmf > 0 {
				assert.True(t, scalar.EqualWithinAbsOrRel(math.Log(pmf), lnpmf, lnTol, lnTol),
					"LnPMF(%d)=%v, but log(PMF(%d))=%v", k, lnpmf, k, math.Log(pmf))
			}

			sum += pmf
			c := d.CDF(float64(k))
			assert.InDelta(t, sum, c, cfg.tol(), "Σ PMF up to %d vs CDF", k)
			assert.Equal(t, c, d.CDF(float64(k)+0.5), "CDF(%d) != CDF(%d.5)", k, k)
			if k == hi || c >= 1-1e-12 {
				break
			}
		}
		checkOutsideMass(t, d, lo, hi)
	})

	t.Run("cdf", func(t *testing.T) {
		assert.Equal(t, 0.0, d.CDF(float64(lo)-0.5), "CDF(Min()-0.5)")
		assert.Equal(t, 1.0, d.CDF(float64(hi)), "CDF(Max())")
		assert.True(t, math.IsNaN(d.CDF(math.NaN())), "CDF(NaN) is not NaN")
	})

	q := dist.Quantile[int64](d)
	t.Run("quantile", func(t *testing.T) {
		checkDiscreteQuantile(t, d, q)
	})

	if inv, ok := d.(dist.InverseCDF[float64]); ok {
		t.Run("inverse", func(t *testing.T) {
			checkDiscreteQuantile(t, d, inv.InverseCDF)
			checkInverseDomain(t, inv)
		})
	}

	if n := cfg.samples(); n > 0 {
		t.Run("sample", func(t *testing.T) {
			xs := dist.SampleN[float64](d, dist.NewRand(cfg.Seed), n)
			for _, x := range xs {
				if !(float64(lo) <= x && x <= float64(hi)) || x != math.Floor(x) {
					t.Fatalf("sample %v not in {%d..%d}", x, lo, hi)
				}
			}
			sort.Float64s(xs)
			D := 0.0
			for i, x := range xs {
				if i+1 < n && xs[i+1] == x {
					continue
				}
				D = math.Max(D, math.Abs(float64(i+1)/float64(n)-d.CDF(x)))
			}
			assert.Less(t, D, cfg.ks(), "Kolmogorov-Smirnov distance")
		})
	}
}

func checkOutsideMass(t *testing.T, d DiscreteDist, lo, hi int64) {
	t.Helper()
	var outside []int64
	if lo > math.MinInt64 {
		outside = append(outside, lo-1)
	}
	if hi < math.MaxInt64 {
		outside = append(outside, hi+1)
	}
	for _, k := range outside {
		assert.Equal(t, 0.0, d.PMF(k), "PMF(%d) outside support", k)
		assert.Equal(t, math.Inf(-1), d.LnPMF(k), "LnPMF(%d) outside support", k)
		_, err := d.CheckedPMF(k)
		assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedPMF(%d)", k)
		_, err = d.CheckedLnPMF(k)
		assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedLnPMF(%d)", k)
	}
}

// checkDiscreteQuantile checks that q(p) is the smallest support
// point whose CDF reaches p.
func checkDiscreteQuantile(t *testing.T, d DiscreteDist, q func(float64) float64) {
	t.Helper()
	assert.Equal(t, float64(d.Min()), q(0), "quantile(0)")
	for _, p := range probes {
		x := q(p)
		assert.Equal(t, math.Floor(x), x, "quantile(%v)=%v not integral", p, x)
		assert.GreaterOrEqual(t, d.CDF(x), p-1e-12, "CDF(quantile(%v))", p)
		if x > float64(d.Min()) {
			assert.Less(t, d.CDF(x-1), p+1e-12, "CDF(quantile(%v)-1)", p)
		}
	}
}

// Moments checks the sample mean and variance of xs against the
// moments of d. The mean must be within tol standard deviations and
// the variance within relative error tol.
func Moments(t *testing.T, d dist.Moments, xs []float64, tol float64) {
	t.Helper()
	mean, variance := stat.MeanVariance(xs, nil)
	want := d.Variance()
	assert.InDelta(t, d.Mean(), mean, tol*math.Sqrt(want)+1e-12, "sample mean")
	if want == 0 {
		assert.InDelta(t, 0, variance, 1e-12, "sample variance")
		return
	}
	assert.InEpsilon(t, want, variance, tol, "sample variance")
}
