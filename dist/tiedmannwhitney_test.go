// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-moredist/dist"
)

func TestTiedMannWhitneyUNoTies(t *testing.T) {
	// A tie vector of all 1s is the untied distribution.
	for _, sz := range [][2]int{{1, 1}, {3, 4}, {5, 5}, {2, 7}} {
		n1, n2 := sz[0], sz[1]
		ones := make([]int, n1+n2)
		for i := range ones {
			ones[i] = 1
		}
		want := must(dist.NewMannWhitneyU(n1, n2))
		got := must(dist.NewTiedMannWhitneyU(n1, n2, ones))
		for u := int64(0); u <= want.Max(); u++ {
			assert.InDelta(t, want.PMF(u), got.PMF(float64(u)), 1e-14, "PMF(%d) for %v", u, sz)
			assert.InDelta(t, want.CDF(float64(u)), got.CDF(float64(u)), 1e-14, "CDF(%d) for %v", u, sz)
			assert.Zero(t, got.PMF(float64(u)+0.5))
		}
	}
}

func TestTiedMannWhitneyU(t *testing.T) {
	// Samples of size 2 and 2 with the middle two values tied.
	// U is 0.5, 2 or 3.5, each in 2 of the 6 arrangements.
	d := must(dist.NewTiedMannWhitneyU(2, 2, []int{1, 2, 1}))
	for _, u := range []float64{0.5, 2, 3.5} {
		assert.InDelta(t, 1.0/3, d.PMF(u), 1e-15, "PMF(%v)", u)
	}
	assert.Zero(t, d.PMF(1))
	assert.Zero(t, d.PMF(0.25))
	assert.Zero(t, d.CDF(0.4))
	assert.InDelta(t, 1.0/3, d.CDF(1.9), 1e-15)
	assert.InDelta(t, 2.0/3, d.CDF(2), 1e-15)
	assert.Equal(t, 1.0, d.CDF(3.5))
	assert.True(t, math.IsNaN(d.CDF(math.NaN())))

	_, err := d.CheckedPMF(0.25)
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)
	_, err = d.CheckedLnPMF(5)
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)
	p, err := d.CheckedLnPMF(2)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(3), p, 1e-15)

	r := dist.NewRand(6)
	for i := 0; i < 1000; i++ {
		u := d.Sample(r)
		require.Contains(t, []float64{0.5, 2, 3.5}, u)
	}

	// The first sample holds 4 of a run of 6 tied smallest values.
	a := must(dist.NewTiedMannWhitneyU(4, 5, []int{6, 1, 1, 1}))
	assert.InDelta(t, 5.0/42, a.PMF(4), 1e-15)
	assert.InDelta(t, 5.0/42, a.CDF(4.5), 1e-15)
	assert.InDelta(t, 1.0/21, a.PMF(17.5), 1e-15)
	assert.Zero(t, a.CDF(3.5))
}

func TestTiedMannWhitneyUVariance(t *testing.T) {
	d := must(dist.NewTiedMannWhitneyU(4, 6, []int{2, 1, 3, 1, 3}))
	mean, variance := 0.0, 0.0
	for twoU := 0; twoU <= 2*4*6; twoU++ {
		u := float64(twoU) / 2
		mean += u * d.PMF(u)
	}
	for twoU := 0; twoU <= 2*4*6; twoU++ {
		u := float64(twoU) / 2
		variance += (u - mean) * (u - mean) * d.PMF(u)
	}
	assert.InDelta(t, d.Mean(), mean, 1e-12)
	assert.InDelta(t, d.Variance(), variance, 1e-12)
}

func TestTiedMannWhitneyUBadParameters(t *testing.T) {
	_, err := dist.NewTiedMannWhitneyU(0, 3, []int{3})
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewTiedMannWhitneyU(2, 2, []int{1, 2})
	assert.ErrorIs(t, err, dist.ErrBadParameter)
	_, err = dist.NewTiedMannWhitneyU(2, 2, []int{0, 4, -1})
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}
