// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
)

// UTestExactLimit is the largest sample size for which UTest uses
// the exact MannWhitneyU distribution when there are no ties.
var UTestExactLimit = 50

// UTestTiesExactLimit is the largest sample size for which UTest uses
// the exact TiedMannWhitneyU distribution when there are ties.
// Tabulating with ties costs more, so this is much lower than
// UTestExactLimit.
var UTestTiesExactLimit = 9

// A UTestResult is the result of a Mann-Whitney U-test.
type UTestResult struct {
	// N1 and N2 are the sizes of the input samples.
	N1, N2 int

	// U is the smaller of the two U statistics of the samples,
	// counting ties as 0.5. It is a multiple of 0.5 in
	// [0, N1*N2]. The other U statistic is N1*N2 - U.
	U float64

	// P is the two-tailed p-value.
	P float64

	// Exact reports whether P was computed from the exact U
	// distribution rather than the normal approximation.
	Exact bool
}

// UTest performs a Mann-Whitney U-test of the null hypothesis that x1
// and x2 come from the same population, against the alternative that
// one tends to have larger values than the other.
//
// Without ties and with both samples no larger than UTestExactLimit,
// the p-value comes from the exact MannWhitneyU distribution. With
// ties and both samples no larger than UTestTiesExactLimit, it comes
// from the exact TiedMannWhitneyU distribution for the samples' tie
// vector. Otherwise it uses a normal approximation with the tie and
// continuity corrections.
//
// UTest fails with BadStructure if either sample is empty, and with
// Undefined if all values are equal.
func UTest(x1, x2 []float64) (UTestResult, error) {
	const op = "UTest"
	n1, n2 := len(x1), len(x2)
	if n1 == 0 || n2 == 0 {
		return UTestResult{}, newError(op, BadStructure, "empty sample (sizes %d and %d)", n1, n2)
	}

	merged, from1 := mergeSorted(x1, x2)
	r1, ties, hasTies := 0.0, []int{}, false
	for i := 0; i < len(merged); {
		start, in1 := i, 0
		for ; i < len(merged) && merged[i] == merged[start]; i++ {
			if from1[i] {
				in1++
			}
		}
		// Tied values share the mean of their ranks. Ranks
		// start at 1.
		r1 += float64(start+1+i) / 2 * float64(in1)
		ties = append(ties, i-start)
		if i-start > 1 {
			hasTies = true
		}
	}
	if merged[0] == merged[len(merged)-1] {
		return UTestResult{}, newError(op, Undefined, "all %d values are equal", len(merged))
	}

	nm := float64(n1 * n2)
	u1 := r1 - float64(n1*(n1+1))/2
	u := math.Min(u1, nm-u1)
	res := UTestResult{N1: n1, N2: n2, U: u}

	if hasTies && n1 <= UTestTiesExactLimit && n2 <= UTestTiesExactLimit {
		d, err := NewTiedMannWhitneyU(n1, n2, ties)
		if err != nil {
			return UTestResult{}, err
		}
		// The tied distribution is not symmetric, so take the
		// smaller tail of U1 itself.
		lower := d.CDF(u1)
		upper := 1 - d.CDF(u1-0.5)
		res.Exact = true
		res.P = math.Min(1, 2*math.Min(lower, upper))
		return res, nil
	}

	if !hasTies && n1 <= UTestExactLimit && n2 <= UTestExactLimit {
		d, err := NewMannWhitneyU(n1, n2)
		if err != nil {
			return UTestResult{}, err
		}
		res.Exact = true
		if u == nm-u {
			// The whole distribution lies on one side or
			// the other of the median.
			res.P = 1
		} else {
			res.P = 2 * d.CDF(u)
		}
		return res, nil
	}

	n := float64(n1 + n2)
	sigma := math.Sqrt(nm * ((n + 1) - tieCorrection(merged)/(n*(n-1))) / 12)
	diff := u - nm/2
	if diff != 0 {
		diff -= math.Copysign(0.5, diff)
	}
	z := diff / sigma
	res.P = math.Min(1, 2*math.Min(StdNormal.CDF(z), 1-StdNormal.CDF(z)))
	return res, nil
}

// mergeSorted returns the sorted union of x1 and x2. from1[i] reports
// whether merged[i] came from x1.
func mergeSorted(x1, x2 []float64) (merged []float64, from1 []bool) {
	x1 = append([]float64(nil), x1...)
	x2 = append([]float64(nil), x2...)
	sort.Float64s(x1)
	sort.Float64s(x2)

	merged = make([]float64, 0, len(x1)+len(x2))
	from1 = make([]bool, 0, len(x1)+len(x2))
	i, j := 0, 0
	for i < len(x1) || j < len(x2) {
		if j == len(x2) || i < len(x1) && x1[i] < x2[j] {
			merged = append(merged, x1[i])
			from1 = append(from1, true)
			i++
		} else {
			merged = append(merged, x2[j])
			from1 = append(from1, false)
			j++
		}
	}
	return
}

// tieCorrection returns Σ (t³ - t) over the runs of t tied values in
// sorted xs.
func tieCorrection(xs []float64) float64 {
	t := 0
	for i := 0; i < len(xs); {
		start := i
		for ; i < len(xs) && xs[i] == xs[start]; i++ {
		}
		run := i - start
		t += run*run*run - run
	}
	return float64(t)
}
