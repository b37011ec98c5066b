// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aclements/go-moredist/dist"
)

// cdfOnly hides every capability of a normal distribution except
// Univariate.
type cdfOnly struct {
	n dist.Normal
}

func (d cdfOnly) Min() float64               { return d.n.Min() }
func (d cdfOnly) Max() float64               { return d.n.Max() }
func (d cdfOnly) CDF(x float64) float64      { return d.n.CDF(x) }
func (d cdfOnly) Sample(r dist.Rand) float64 { return d.n.Sample(r) }

func TestQuantileNumeric(t *testing.T) {
	q := dist.Quantile[float64](cdfOnly{dist.StdNormal})
	assert.Equal(t, math.Inf(-1), q(0))
	assert.Equal(t, math.Inf(1), q(1))
	assert.InDelta(t, 0, q(0.5), 1e-12)
	assert.InDelta(t, 1.959963984540054, q(0.975), 1e-9)
	assert.InDelta(t, -1.959963984540054, q(0.025), 1e-9)
	assert.True(t, math.IsNaN(q(-0.1)))
	assert.True(t, math.IsNaN(q(math.NaN())))

	// Bounded support clamps the search.
	u := must(dist.NewUniform(10, 20))
	qu := dist.Quantile[float64](cdfOnly2{u})
	assert.InDelta(t, 12.5, qu(0.25), 1e-9)
	assert.Equal(t, 10.0, qu(0))
}

type cdfOnly2 struct {
	u dist.Uniform
}

func (d cdfOnly2) Min() float64               { return d.u.Min() }
func (d cdfOnly2) Max() float64               { return d.u.Max() }
func (d cdfOnly2) CDF(x float64) float64      { return d.u.CDF(x) }
func (d cdfOnly2) Sample(r dist.Rand) float64 { return d.u.Sample(r) }

func TestQuantileInverse(t *testing.T) {
	n := must(dist.NewNormal(1, 2))
	q := dist.Quantile[float64](n)
	for _, p := range []float64{0.01, 0.3, 0.5, 0.9} {
		assert.Equal(t, n.InverseCDF(p), q(p))
	}
	assert.True(t, math.IsNaN(q(2)), "out of range p must not panic")
}

func TestQuantileDiscrete(t *testing.T) {
	b := must(dist.NewBinomial(0.3, 20))
	q := dist.Quantile[int64](b)
	assert.Equal(t, 0.0, q(0))
	assert.Equal(t, 20.0, q(1))
	assert.Equal(t, 6.0, q(0.5))
	assert.True(t, math.IsNaN(q(1.5)))

	// Unbounded support.
	p := must(dist.NewPoisson(1000))
	qp := dist.Quantile[int64](p)
	k := qp(0.5)
	assert.GreaterOrEqual(t, p.CDF(k), 0.5)
	assert.Less(t, p.CDF(k-1), 0.5)
}
