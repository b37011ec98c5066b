// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-moredist/dist"
)

// panicReason returns the Reason of the *dist.Error f panics with, or
// 0 if f does not panic.
func panicReason(t *testing.T, f func()) (reason dist.Reason) {
	t.Helper()
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(*dist.Error)
			require.True(t, ok, "panic value %v is not a *dist.Error", v)
			reason = err.Reason
		}
	}()
	f()
	return 0
}

func TestUniform(t *testing.T) {
	d, err := dist.NewUniform(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.PDF(0.5))
	assert.Equal(t, 0.0, d.LnPDF(0.5))
	assert.Equal(t, 0.5, d.CDF(0.5))
	assert.Equal(t, 0.0, d.PDF(2))
	assert.Equal(t, math.Inf(-1), d.LnPDF(2))

	_, err = d.CheckedPDF(2)
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)

	// NaN is outside every support.
	assert.Equal(t, 0.0, d.PDF(math.NaN()))
	assert.Equal(t, math.Inf(-1), d.LnPDF(math.NaN()))
	_, err = d.CheckedPDF(math.NaN())
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)

	_, err = dist.NewUniform(1, 1)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewUniform(0, math.Inf(1))
	assert.ErrorIs(t, err, dist.ErrBadParameter)
}

func TestBinomial(t *testing.T) {
	d, err := dist.NewBinomial(0.5, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.24609375, d.PMF(5), 1e-14)
	assert.InDelta(t, math.Log(0.24609375), d.LnPMF(5), 1e-12)

	d, err = dist.NewBinomial(0.2, 5)
	require.NoError(t, err)
	for k, want := range map[int64]float64{
		-1000: 0,
		-1:    0,
		0:     0.32768,
		1:     0.4096,
		2:     0.2048,
		3:     0.0512,
		4:     0.0064,
		5:     math.Pow(0.2, 5),
		6:     0,
		1000:  0,
	} {
		assert.InDelta(t, want, d.PMF(k), 1e-12, "PMF(%d)", k)
	}

	// Degenerate success probabilities.
	d0 := must(dist.NewBinomial(0, 4))
	assert.Equal(t, 1.0, d0.PMF(0))
	assert.Equal(t, 0.0, d0.PMF(1))
	d1 := must(dist.NewBinomial(1, 4))
	assert.Equal(t, 1.0, d1.PMF(4))
	assert.Equal(t, 0.0, d1.CDF(3))

	_, err = dist.NewBinomial(1.5, 4)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewBinomial(0.5, -1)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
}

func TestBinomialNormalApprox(t *testing.T) {
	d := must(dist.NewBinomial(0.5, 30))
	norm, err := d.NormalApprox()
	require.NoError(t, err)
	for k := int64(10); k <= 20; k++ {
		b := d.PMF(k)
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		assert.InDelta(t, 1, b/n, 0.01, "want %v ≅ %v at %d", b, n, k)
	}

	_, err = must(dist.NewBinomial(0, 30)).NormalApprox()
	assert.ErrorIs(t, err, dist.ErrBadParameter)
}

func TestCategorical(t *testing.T) {
	d, err := dist.NewCategorical([]float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.InverseCDF(0.5))
	assert.Equal(t, 1.0, d.InverseCDF(1.0/4))
	assert.InDelta(t, 2.0/3, d.PMF(2), 1e-15)
	assert.Equal(t, 1.0, d.CDF(2))

	_, err = d.CheckedInverseCDF(-1)
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)
	var derr *dist.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dist.OutOfDomain, derr.Reason)
	assert.Equal(t, dist.OutOfDomain, panicReason(t, func() { d.InverseCDF(-1) }))

	// Zero-weight categories are never sampled.
	r := dist.NewRand(1)
	for i := 0; i < 1000; i++ {
		require.NotEqual(t, 0.0, d.Sample(r))
	}
}

func TestCategoricalTrailingZero(t *testing.T) {
	// The running sum of these normalized weights can round below 1
	// at the last positive weight.
	for _, w := range [][]float64{
		{0.4689, 0.2830, 0.2931, 0},
		{0.22, 0.42, 0.03, 0},
	} {
		d := must(dist.NewCategorical(w))
		assert.Equal(t, 1.0, d.CDF(2), "weights %v", w)
		assert.Equal(t, 2.0, d.InverseCDF(1), "weights %v", w)
		assert.Equal(t, 0.0, d.PMF(3))

		r := dist.NewRand(5)
		for i := 0; i < 10000; i++ {
			require.NotEqual(t, 3.0, d.Sample(r))
		}
	}
}

func TestCategoricalBadWeights(t *testing.T) {
	_, err := dist.NewCategorical([]float64{-1, math.NaN(), 1, math.Inf(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)

	_, err = dist.NewCategorical(nil)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewCategorical([]float64{0, 0})
	assert.ErrorIs(t, err, dist.ErrBadParameter)
}

func TestMultinomial(t *testing.T) {
	d, err := dist.NewMultinomial([]float64{0.3, 0.7}, 5)
	require.NoError(t, err)

	_, err = d.CheckedPMF([]uint64{1})
	assert.ErrorIs(t, err, dist.ErrBadStructure)
	assert.Equal(t, dist.BadStructure, panicReason(t, func() { d.PMF([]uint64{1}) }))

	p, err := d.CheckedPMF([]uint64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 10*0.09*0.343, p, 1e-14)
	assert.Equal(t, p, d.PMF([]uint64{2, 3}))

	// Counts that don't sum to n are outside the support.
	assert.Equal(t, 0.0, d.PMF([]uint64{2, 2}))
	assert.Equal(t, math.Inf(-1), d.LnPMF([]uint64{2, 2}))
	_, err = d.CheckedLnPMF([]uint64{2, 2})
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)

	assert.Equal(t, []uint64{0, 0}, d.Min())
	assert.Equal(t, []uint64{5, 5}, d.Max())
	assert.InDeltaSlice(t, []float64{1.5, 3.5}, d.Mean(), 1e-12)
	assert.InDeltaSlice(t, []float64{1.05, 1.05}, d.Variance(), 1e-12)

	r := dist.NewRand(2)
	sum := 0.0
	const n = 10000
	for i := 0; i < n; i++ {
		x := d.Sample(r)
		require.Equal(t, uint64(5), x[0]+x[1])
		sum += float64(x[0])
	}
	assert.InDelta(t, 1.5, sum/n, 0.05)
}

func TestMultinomialZeroWeight(t *testing.T) {
	d := must(dist.NewMultinomial([]float64{1, 0, 1, 0}, 20))
	assert.Equal(t, []uint64{20, 0, 20, 0}, d.Max())
	assert.Equal(t, 0.0, d.PMF([]uint64{10, 1, 9, 0}))

	r := dist.NewRand(3)
	for i := 0; i < 1000; i++ {
		x := d.Sample(r)
		require.Zero(t, x[1])
		require.Zero(t, x[3])
		require.Equal(t, uint64(20), x[0]+x[2])
	}
}

func TestDirichlet(t *testing.T) {
	d, err := dist.NewDirichlet([]float64{2, 3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 8.505, d.PDF([]float64{0.2, 0.3, 0.5}), 1e-10)
	assert.InDelta(t, math.Log(8.505), d.LnPDF([]float64{0.2, 0.3, 0.5}), 1e-12)

	_, err = d.CheckedPDF([]float64{0.5, 0.5})
	assert.ErrorIs(t, err, dist.ErrBadStructure)
	assert.Equal(t, dist.BadStructure, panicReason(t, func() { d.PDF([]float64{0.5, 0.5}) }))

	for _, x := range [][]float64{
		{0.5, 0.6, -0.1},
		{0.5, 0.5, 0.5},
		{0.5, 0.5, math.NaN()},
	} {
		assert.Equal(t, 0.0, d.PDF(x), "PDF(%v)", x)
		_, err := d.CheckedLnPDF(x)
		assert.ErrorIs(t, err, dist.ErrOutOfDomain, "CheckedLnPDF(%v)", x)
	}

	// Zero components are fine unless α < 1.
	assert.Equal(t, 0.0, d.PDF([]float64{0, 0.5, 0.5}))
	s := must(dist.NewDirichlet([]float64{0.5, 1, 2}))
	_, err = s.CheckedPDF([]float64{0, 0.5, 0.5})
	assert.ErrorIs(t, err, dist.ErrUndefined)
	assert.Equal(t, dist.Undefined, panicReason(t, func() { s.PDF([]float64{0, 0.5, 0.5}) }))

	// With α=1 the density on that face is finite and positive.
	f := must(dist.NewDirichlet([]float64{1, 2, 3}))
	p, err := f.CheckedPDF([]float64{0, 0.4, 0.6})
	require.NoError(t, err)
	assert.InDelta(t, 8.64, p, 1e-10)
	assert.InDelta(t, math.Log(8.64), f.LnPDF([]float64{0, 0.4, 0.6}), 1e-10)
	assert.InDelta(t, 8.64, f.PDF([]float64{1e-300, 0.4, 0.6}), 1e-10)

	r := dist.NewRand(4)
	mean := make([]float64, 3)
	const n = 10000
	for i := 0; i < n; i++ {
		x := d.Sample(r)
		require.InDelta(t, 1, x[0]+x[1]+x[2], 1e-12)
		for j := range x {
			mean[j] += x[j] / n
		}
	}
	assert.InDeltaSlice(t, d.Mean(), mean, 0.01)

	_, err = dist.NewDirichlet([]float64{1})
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewDirichlet([]float64{1, -1, 0})
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}

func TestSingularDensity(t *testing.T) {
	g := must(dist.NewGamma(0.5, 1))
	_, err := g.CheckedPDF(0)
	assert.ErrorIs(t, err, dist.ErrUndefined)
	assert.Equal(t, dist.Undefined, panicReason(t, func() { g.PDF(0) }))
	assert.Equal(t, dist.Undefined, panicReason(t, func() { g.LnPDF(0) }))

	// Densities that are finite at the boundary are not errors,
	// even if they are 0.
	e := must(dist.NewGamma(1, 2))
	assert.Equal(t, 2.0, e.PDF(0))
	g2 := must(dist.NewGamma(2, 1))
	p, err := g2.CheckedPDF(0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, p)

	b := must(dist.NewBeta(2, 0.5))
	_, err = b.CheckedLnPDF(1)
	assert.ErrorIs(t, err, dist.ErrUndefined)
	p, err = b.CheckedPDF(0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

func TestDensityAtBoundary(t *testing.T) {
	assert.InDelta(t, -1.0904574951155617, must(dist.NewGamma(3, 1.5)).LnPDF(2), 1e-14)
	assert.Equal(t, math.Inf(-1), must(dist.NewGamma(3, 1.5)).LnPDF(math.Inf(1)))

	w := must(dist.NewWeibull(1, 2))
	assert.InDelta(t, -math.Log(2), w.LnPDF(0), 1e-15)
	assert.InDelta(t, 0.5, w.PDF(0), 1e-15)

	ln := must(dist.NewLogNormal(0, 1))
	assert.Equal(t, math.Inf(-1), ln.LnPDF(0))
	assert.Equal(t, 0.0, ln.PDF(0))

	b := must(dist.NewBinomial(0, 10))
	assert.Equal(t, 1.0, b.PMF(0))
	assert.Equal(t, 0.0, b.PMF(1))
}

func TestErrorMessage(t *testing.T) {
	_, err := dist.NewNormal(0, -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dist: NewNormal: bad parameter: ")

	e := &dist.Error{Op: "Beta.PDF", Reason: dist.Undefined}
	assert.Equal(t, "dist: Beta.PDF: undefined", e.Error())
	assert.True(t, errors.Is(e, dist.ErrUndefined))
	assert.False(t, errors.Is(e, dist.ErrOutOfDomain))
	assert.Equal(t, "Reason(42)", dist.Reason(42).String())
}

func TestMannWhitneyU(t *testing.T) {
	makeTable := func(n int) [][]float64 {
		out := make([][]float64, 6)
		for U := 0; U < 6; U++ {
			out[U] = make([]float64, n)
			for m := 1; m <= n; m++ {
				out[U][m-1] = must(dist.NewMannWhitneyU(n, m)).CDF(float64(U))
			}
		}
		return out
	}

	// Compare against tables given in Mann, Whitney (1947).
	got3 := makeTable(3)
	if !aeqTable(got3, udist3) {
		t.Errorf("For n=3, want:\n%sgot:\n%s", fmtTable(udist3), fmtTable(got3))
	}

	got5 := makeTable(5)
	if !aeqTable(got5, udist5) {
		t.Errorf("For n=5, want:\n%sgot:\n%s", fmtTable(udist5), fmtTable(got5))
	}

	_, err := dist.NewMannWhitneyU(0, 3)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewMannWhitneyU(1<<20, 1<<20)
	assert.ErrorIs(t, err, dist.ErrBadParameter)
}

func BenchmarkMannWhitneyU(b *testing.B) {
	for i := 0; i < b.N; i++ {
		// R uses the exact distribution up to N=50.
		must(dist.NewMannWhitneyU(50, 50))
	}
}
