// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aclements/go-moredist/dist"
	"github.com/aclements/go-moredist/dist/disttest"
)

func must[T any](d T, err error) T {
	if err != nil {
		panic(err)
	}
	return d
}

var continuousDists = []disttest.ContinuousDist{
	must(dist.NewUniform(-1, 3)),
	must(dist.NewNormal(2, 3)),
	dist.StdNormal,
	must(dist.NewLogNormal(0, 0.5)),
	must(dist.NewExponential(2)),
	must(dist.NewGamma(0.5, 2)),
	must(dist.NewGamma(3, 1.5)),
	must(dist.NewErlang(3, 2)),
	must(dist.NewChiSquared(4)),
	must(dist.NewChi(3)),
	must(dist.NewInverseGamma(3, 2)),
	must(dist.NewBeta(2, 5)),
	must(dist.NewBeta(0.5, 0.5)),
	must(dist.NewStudentsT(0, 1, 5)),
	must(dist.NewStudentsT(1, 2, 30)),
	must(dist.NewFisherSnedecor(5, 10)),
	must(dist.NewCauchy(0, 1)),
	must(dist.NewPareto(1, 3)),
	must(dist.NewWeibull(1.5, 2)),
	must(dist.NewWeibull(0.7, 1)),
	must(dist.NewTriangular(0, 4, 1)),
}

func TestContinuousConformance(t *testing.T) {
	for i, d := range continuousDists {
		t.Run(fmt.Sprintf("%T/%d", d, i), func(t *testing.T) {
			disttest.Continuous(t, d, disttest.Config{Seed: uint64(i) + 1})
		})
	}
}

var discreteDists = []disttest.DiscreteDist{
	must(dist.NewBernoulli(0.3)),
	must(dist.NewBinomial(0.3, 20)),
	must(dist.NewBinomial(0.5, 200)),
	must(dist.NewDiscreteUniform(-3, 7)),
	must(dist.NewGeometric(0.2)),
	must(dist.NewGeometric(1)),
	must(dist.NewPoisson(3.5)),
	must(dist.NewPoisson(40)),
	must(dist.NewHypergeometric(50, 20, 10)),
	must(dist.NewCategorical([]float64{1, 0, 2, 3})),
	must(dist.NewMannWhitneyU(4, 6)),
}

func TestDiscreteConformance(t *testing.T) {
	for i, d := range discreteDists {
		t.Run(fmt.Sprintf("%T/%d", d, i), func(t *testing.T) {
			disttest.Discrete(t, d, disttest.Config{Seed: uint64(i) + 100})
		})
	}
}

func TestMoments(t *testing.T) {
	type momentDist interface {
		dist.Sampler[float64]
		dist.Moments
	}
	for i, d := range []momentDist{
		must(dist.NewUniform(-1, 3)),
		must(dist.NewNormal(2, 3)),
		must(dist.NewExponential(2)),
		must(dist.NewGamma(3, 1.5)),
		must(dist.NewBeta(2, 5)),
		must(dist.NewTriangular(0, 4, 1)),
		must(dist.NewWeibull(1.5, 2)),
		must(dist.NewBinomial(0.3, 20)),
		must(dist.NewBinomial(0.5, 200)),
		must(dist.NewPoisson(3.5)),
		must(dist.NewPoisson(40)),
		must(dist.NewHypergeometric(50, 20, 10)),
		must(dist.NewDiscreteUniform(-3, 7)),
		must(dist.NewCategorical([]float64{1, 0, 2, 3})),
		must(dist.NewMannWhitneyU(4, 6)),
		must(dist.NewTiedMannWhitneyU(4, 6, []int{2, 1, 3, 1, 3})),
	} {
		t.Run(fmt.Sprintf("%T/%d", d, i), func(t *testing.T) {
			xs := dist.SampleN[float64](d, dist.NewRand(uint64(i)+1000), 20000)
			require.Len(t, xs, 20000)
			disttest.Moments(t, d, xs, 0.1)
		})
	}
}
