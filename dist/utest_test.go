// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-moredist/dist"
)

func TestUTest(t *testing.T) {
	check := func(want dist.UTestResult, x1, x2 []float64) {
		t.Helper()
		got, err := dist.UTest(x1, x2)
		require.NoError(t, err)
		assert.Equal(t, want.N1, got.N1)
		assert.Equal(t, want.N2, got.N2)
		assert.InDelta(t, want.U, got.U, 1e-9)
		assert.InDelta(t, want.P, got.P, 1e-9, "p-value for %v vs %v", x1, x2)
		assert.Equal(t, want.Exact, got.Exact)
	}

	s1 := []float64{2, 1, 3, 5}
	s2 := []float64{12, 11, 13, 15}
	s3 := []float64{0, 4, 6, 7} // Interleaved with s1, but no ties
	s4 := []float64{2, 2, 2, 2}
	s5 := []float64{1, 1, 1, 1, 1}

	// Small samples, no ties.
	check(dist.UTestResult{4, 4, 0, 0.028571428571428577, true}, s1, s2)
	check(dist.UTestResult{4, 4, 0, 0.028571428571428577, true}, s2, s1)
	check(dist.UTestResult{4, 4, 5, 0.485714285714285770, true}, s1, s3)

	// Small samples with ties use the exact tied distribution.
	check(dist.UTestResult{4, 4, 8, 1, true}, s1, s1)
	check(dist.UTestResult{4, 4, 6, 5.0 / 7, true}, s1, s4)
	check(dist.UTestResult{4, 4, 6, 5.0 / 7, true}, s4, s1)
	check(dist.UTestResult{4, 5, 2.5, 2.0 / 21, true}, s1, s5)
	check(dist.UTestResult{5, 4, 2.5, 2.0 / 21, true}, s5, s1)
	check(dist.UTestResult{4, 5, 2.5, 1.0 / 9, true}, []float64{1, 1, 2, 3}, []float64{2, 3, 3, 4, 4})

	// Above UTestTiesExactLimit, ties fall back to the normal
	// approximation.
	defer func(limit int) { dist.UTestTiesExactLimit = limit }(dist.UTestTiesExactLimit)
	dist.UTestTiesExactLimit = 3
	check(dist.UTestResult{4, 4, 6, 0.6198391186854189, false}, s1, s4)
	check(dist.UTestResult{4, 5, 2.5, 0.04162006292836562, false}, s1, s5)

	// Large samples.
	l1 := make([]float64, 500)
	for i := range l1 {
		l1[i] = float64(i * 2)
	}
	l2 := make([]float64, 600)
	for i := range l2 {
		l2[i] = float64(i*2 - 41)
	}
	l3 := append([]float64{}, l2...)
	for i := 0; i < 30; i++ {
		l3[i] = l1[i]
	}
	// For comparing with R's wilcox.test:
	// l1 <- seq(0, 499)*2
	// l2 <- seq(0,599)*2-41
	// l3 <- l2; for (i in 1:30) { l3[i] = l1[i] }
	check(dist.UTestResult{500, 600, 135250, 0.0049335360814172224, false}, l1, l2)
	check(dist.UTestResult{500, 500, 125000, 1, false}, l1, l1)
	check(dist.UTestResult{500, 600, 134845, 0.0038703814239617884, false}, l1, l3)
}

func TestUTestErrors(t *testing.T) {
	_, err := dist.UTest(nil, []float64{1})
	assert.ErrorIs(t, err, dist.ErrBadStructure)

	_, err = dist.UTest([]float64{2, 2, 2, 2}, []float64{2, 2})
	assert.ErrorIs(t, err, dist.ErrUndefined)
}
