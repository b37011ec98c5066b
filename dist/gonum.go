// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// randSource adapts a Rand to the rand.Source that gonum's
// distributions draw from.
type randSource struct {
	r Rand
}

func (s randSource) Uint64() uint64 { return s.r.Uint64() }

// Seed does nothing. The underlying Rand belongs to the caller.
func (s randSource) Seed(uint64) {}

// source returns r as a rand.Source. A nil r yields a nil Source,
// which is fine for gonum methods that do not sample.
func source(r Rand) rand.Source {
	if r == nil {
		return nil
	}
	return randSource{r}
}

// binomialRand returns a Binomial(n, p) variate. Probabilities at or
// beyond the ends of [0, 1] are exact.
func binomialRand(r Rand, n uint64, p float64) uint64 {
	switch {
	case n == 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	}
	k := distuv.Binomial{N: float64(n), P: p, Src: source(r)}.Rand()
	return uint64(k)
}

// stdGammaRand returns a Gamma(shape, 1) variate.
func stdGammaRand(r Rand, shape float64) float64 {
	return distuv.Gamma{Alpha: shape, Beta: 1, Src: source(r)}.Rand()
}
