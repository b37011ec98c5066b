// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Lgamma returns the natural logarithm of |Γ(x)|, dropping the sign
// returned by math.Lgamma.
func Lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// Lfactorial returns log(n!). It returns NaN if n < 0.
func Lfactorial(n int) float64 {
	if n < 0 {
		return nan
	}
	if n < len(smallFactorials) {
		return math.Log(smallFactorials[n])
	}
	return Lgamma(float64(n) + 1)
}

// smallFactorials are the factorials that are exactly representable
// as float64.
var smallFactorials = [...]float64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
	39916800, 479001600, 6227020800, 87178291200, 1307674368000,
	20922789888000, 355687428096000, 6402373705728000,
}

// Lchoose returns math.Log(Choose(n, k)). It returns -Inf if k < 0
// or k > n.
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return Lfactorial(n) - Lfactorial(k) - Lfactorial(n-k)
}

// Choose returns the binomial coefficient of n and k. It returns 0
// if k < 0 or k > n.
//
// The result is exact for coefficients below about 1e13. Larger
// coefficients are computed from Lchoose.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if Lchoose(n, k) > 30 {
		// Too large for the intermediate products below to
		// stay under 2^53.
		return math.Exp(Lchoose(n, k))
	}
	// Each intermediate value is C(n-k+i, i), so the running
	// product stays integral.
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return math.Round(c)
}

// Lmultinomial returns the log of the multinomial coefficient
// (Σks)! / Π(ks[i]!).
func Lmultinomial(ks []uint64) float64 {
	var n uint64
	sum := 0.0
	for _, k := range ks {
		n += k
		sum -= Lgamma(float64(k) + 1)
	}
	return sum + Lgamma(float64(n)+1)
}
