// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Rand is a source of uniformly distributed random values. It is
// satisfied by *rand.Rand from golang.org/x/exp/rand and from
// math/rand/v2.
//
// A Rand is not safe for concurrent use unless its implementation
// says otherwise; each Sample call uses r exclusively until it
// returns.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// Uint64 returns 64 uniform random bits.
	Uint64() uint64
}

// NewRand returns a Rand seeded with seed. Two Rands with the same
// seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var defaultRands = sync.Pool{
	New: func() any { return NewRand(newSeed()) },
}

// newSeed returns a high-entropy seed, falling back to the clock if
// the system source fails.
func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SampleDefault draws one outcome from s using a process-default
// randomness source. The source is held exclusively for the duration
// of the call, so SampleDefault is safe for concurrent use.
//
// SampleDefault is a convenience. It is equivalent to calling
// s.Sample with a freshly seeded source, and code that needs
// reproducible results should do exactly that.
func SampleDefault[T any](s Sampler[T]) T {
	r := defaultRands.Get().(*rand.Rand)
	defer defaultRands.Put(r)
	return s.Sample(r)
}

// SampleN draws n outcomes from s using r.
func SampleN[T any](s Sampler[T], r Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s.Sample(r)
	}
	return out
}

// Sampling primitives shared by the distributions.

// uniformOC returns a uniform value in (0, 1].
func uniformOC(r Rand) float64 {
	return 1 - r.Float64()
}

// uintn returns a uniform value in [0, n). If n is 0, it returns a
// uniform value in [0, 2^64).
func uintn(r Rand, n uint64) uint64 {
	if n == 0 {
		return r.Uint64()
	}
	// Lemire, "Fast Random Integer Generation in an Interval"
	// (2019).
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}
