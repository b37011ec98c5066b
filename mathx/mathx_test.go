// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestChoose(t *testing.T) {
	for _, tt := range []struct {
		n, k int
		want float64
	}{
		{5, -1, 0},
		{5, 0, 1},
		{5, 6, 0},
		{10, 5, 252},
		{10, 7, 120},
		{52, 5, 2598960},
		{60, 30, 118264581564861424},
	} {
		got := Choose(tt.n, tt.k)
		assert.Truef(t, scalar.EqualWithinRel(tt.want, got, 1e-11),
			"Choose(%d, %d) = %v, want %v", tt.n, tt.k, got, tt.want)
	}
}

func TestLchoose(t *testing.T) {
	assert.InDelta(t, math.Log(252), Lchoose(10, 5), 1e-13)
	assert.InDelta(t, 0, Lchoose(7, 0), 1e-15)
	assert.True(t, math.IsInf(Lchoose(3, 4), -1))
	assert.InDelta(t, math.Log(10), Lmultinomial([]uint64{2, 3}), 1e-13)
	assert.True(t, math.IsNaN(Lfactorial(-1)))
}

func TestBetaInc(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.3, 0.5, 0.9, 1} {
		// I_x(1, 1) = x and I_x(1, b) = 1 - (1-x)^b.
		assert.InDelta(t, x, BetaInc(x, 1, 1), 1e-12)
		assert.InDelta(t, 1-math.Pow(1-x, 3), BetaInc(x, 1, 3), 1e-12)
	}
	assert.InDelta(t, 0.5, BetaInc(0.5, 2, 2), 1e-12)
	assert.True(t, math.IsNaN(BetaInc(-0.1, 1, 1)))
	assert.True(t, math.IsNaN(BetaInc(1.1, 1, 1)))

	assert.InDelta(t, 0.3, InvBetaInc(0.657, 1, 3), 1e-9)
	assert.Equal(t, 0.0, InvBetaInc(0, 2, 3))
	assert.Equal(t, 1.0, InvBetaInc(1, 2, 3))
	assert.InDelta(t, math.Log(1.0/12), Lbeta(2, 3), 1e-13)
}

func TestGammaInc(t *testing.T) {
	for _, x := range []float64{0.1, 1, 2, 10} {
		// For a = 1 this is the exponential distribution.
		assert.InDelta(t, -math.Expm1(-x), GammaIncP(1, x), 1e-12)
		assert.InDelta(t, math.Exp(-x), GammaIncQ(1, x), 1e-12)
	}
	assert.Equal(t, 0.0, GammaIncP(2, 0))
	assert.Equal(t, 1.0, GammaIncQ(2, -1))
	assert.Equal(t, 1.0, GammaIncP(2, math.Inf(1)))

	assert.InDelta(t, 2, InvGammaIncP(1, -math.Expm1(-2)), 1e-9)
	assert.InDelta(t, 2, InvGammaIncQ(1, math.Exp(-2)), 1e-9)
	assert.True(t, math.IsInf(InvGammaIncP(3, 1), 1))
	assert.True(t, math.IsInf(InvGammaIncQ(3, 0), 1))
}

func TestXLogY(t *testing.T) {
	assert.Equal(t, 0.0, XLogY(0, 0))
	assert.Equal(t, 0.0, XLog1pY(0, -1))
	assert.InDelta(t, 2, XLogY(2, math.E), 1e-15)
	assert.True(t, math.IsInf(XLogY(1, 0), -1))
	assert.True(t, math.IsNaN(XLogY(0, math.NaN())))
}

func TestDigamma(t *testing.T) {
	const eulerGamma = 0.57721566490153286
	assert.InDelta(t, -eulerGamma, Digamma(1), 1e-12)
	assert.InDelta(t, 1-eulerGamma, Digamma(2), 1e-12)
	assert.InDelta(t, -eulerGamma-2*math.Ln2, Digamma(0.5), 1e-12)
	h9 := 0.0
	for k := 1.0; k <= 9; k++ {
		h9 += 1 / k
	}
	assert.InDelta(t, h9-eulerGamma, Digamma(10), 1e-12)
	assert.True(t, math.IsNaN(Digamma(-2)))
	assert.True(t, math.IsInf(Digamma(math.Inf(1)), 1))
}
