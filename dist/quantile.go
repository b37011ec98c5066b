// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Real is the constraint on the support type of a univariate
// distribution.
type Real interface {
	~int64 | ~float64
}

// Quantile returns the quantile function of d. This is a function f
// such that f(p) is the smallest x in the support of d with
// d.CDF(x) >= p, and f(0) is d.Min(). If p is outside [0, 1], f
// returns NaN.
//
// If d implements InverseCDF[float64], this returns a wrapper around
// that method. Otherwise, it returns a function that uses a generic
// numerical method to invert d.CDF. For integer-valued distributions
// this is an exact search over the support; for real-valued
// distributions it may have poor precision around points of
// discontinuity.
func Quantile[T Real](d Univariate[T, float64]) func(p float64) float64 {
	if inv, ok := d.(InverseCDF[float64]); ok {
		return func(p float64) float64 {
			if !(0 <= p && p <= 1) {
				return nan
			}
			return inv.InverseCDF(p)
		}
	}

	lo, hi := d.Min(), d.Max()
	if one := T(1); one/2 == 0 {
		// T is an integer type.
		return func(p float64) float64 {
			if !(0 <= p && p <= 1) {
				return nan
			}
			return float64(intQuantile(d.CDF, int64(lo), int64(hi), p))
		}
	}
	return func(p float64) float64 {
		if !(0 <= p && p <= 1) {
			return nan
		}
		return realQuantile(d.CDF, float64(lo), float64(hi), p)
	}
}

// intQuantile returns the smallest k in [lo, hi] with cdf(k) >= p.
func intQuantile(cdf func(float64) float64, lo, hi int64, p float64) int64 {
	if p == 0 || cdf(float64(lo)) >= p {
		return lo
	}
	// Find an upper bound by doubling from lo, since hi may be
	// math.MaxInt64.
	step := int64(1)
	h := lo
	for {
		next := h + step
		if next > hi || next < h {
			next = hi
		}
		h = next
		if h == hi || cdf(float64(h)) >= p {
			break
		}
		lo = h
		step *= 2
	}
	// Invariant: cdf(lo) < p <= cdf(h).
	for h-lo > 1 {
		mid := lo + (h-lo)/2
		if cdf(float64(mid)) >= p {
			h = mid
		} else {
			lo = mid
		}
	}
	return h
}

// realQuantile returns the smallest x in [lo, hi] with cdf(x) >= p,
// to within floating-point resolution.
func realQuantile(cdf func(float64) float64, lo, hi, p float64) float64 {
	if p == 0 {
		return lo
	} else if p == 1 {
		return hi
	}

	// Find loX, hiX for which cdf(loX) < p <= cdf(hiX).
	var loX, hiX float64
	x1, y1 := 0.0, cdf(0)
	xdelta := 1.0
	if y1 < p {
		loX, hiX = x1, x1
		for cdf(hiX) < p && hiX != inf {
			loX, hiX = hiX, hiX+xdelta
			xdelta *= 2
		}
	} else {
		loX, hiX = x1, x1
		for p <= cdf(loX) && loX != -inf {
			hiX, loX = loX, loX-xdelta
			xdelta *= 2
		}
	}
	if loX == -inf {
		return loX
	} else if hiX == inf {
		return hiX
	}
	loX = math.Max(loX, lo)
	hiX = math.Min(hiX, hi)
	if cdf(loX) >= p {
		return loX
	}

	// Bisect down to adjacent floats.
	for {
		mid := loX + (hiX-loX)/2
		if mid == loX || mid == hiX {
			return hiX
		}
		if cdf(mid) < p {
			loX = mid
		} else {
			hiX = mid
		}
	}
}
