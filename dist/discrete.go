// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// discreteCDF evaluates the CDF of an integer-valued distribution
// with support in [min, max] at the real point x. cdf is called only
// for min <= k < max.
func discreteCDF(x float64, min, max int64, cdf func(k int64) float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < float64(min):
		return 0
	case x >= float64(max):
		return 1
	}
	k := int64(math.Floor(x))
	if k >= max {
		// float64(max) rounded down.
		return 1
	}
	return cdf(k)
}

// searchInt returns the smallest k in [lo, hi] with cdf(k) >= p,
// starting from the estimate k. It assumes cdf(hi) >= p.
func searchInt(cdf func(int64) float64, lo, hi, k int64, p float64) int64 {
	if k < lo {
		k = lo
	} else if k > hi {
		k = hi
	}
	for k < hi && cdf(k) < p {
		k++
	}
	for k > lo && cdf(k-1) >= p {
		k--
	}
	return k
}

// floatToInt64 converts x to an int64, saturating at the limits of
// int64.
func floatToInt64(x float64) int64 {
	switch {
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	return int64(x)
}
