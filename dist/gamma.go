// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// Gamma is the gamma distribution with shape α and rate β.
//
// Erlang and ChiSquared are special cases of Gamma.
type Gamma struct {
	shape, rate float64

	// name is the distribution name used in errors, which
	// differs for the special cases.
	name string
}

// NewGamma returns the gamma distribution with shape > 0 and
// rate > 0.
func NewGamma(shape, rate float64) (Gamma, error) {
	return newGamma("Gamma", shape, rate)
}

func newGamma(name string, shape, rate float64) (Gamma, error) {
	op := "New" + name
	if !(shape > 0) || math.IsInf(shape, 1) {
		return Gamma{}, paramError(op, "shape must be positive and finite, got %v", shape)
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Gamma{}, paramError(op, "rate must be positive and finite, got %v", rate)
	}
	return Gamma{shape, rate, name}, nil
}

func (d Gamma) Shape() float64 { return d.shape }
func (d Gamma) Rate() float64  { return d.rate }

// uv returns d as a gonum distribution drawing from r.
func (d Gamma) uv(r Rand) distuv.Gamma {
	return distuv.Gamma{Alpha: d.shape, Beta: d.rate, Src: source(r)}
}

func (d Gamma) Min() float64 { return 0 }
func (d Gamma) Max() float64 { return inf }

// singular reports whether the density at x is infinite.
func (d Gamma) singular(x float64) bool {
	return x == 0 && d.shape < 1
}

func (d Gamma) PDF(x float64) float64 {
	if x == 0 {
		switch {
		case d.shape == 1:
			return d.rate
		case d.shape > 1:
			return 0
		}
		panic(undefinedDensity(d.name+".PDF", x))
	}
	return math.Exp(d.LnPDF(x))
}

func (d Gamma) LnPDF(x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return -inf
	}
	if d.singular(x) {
		panic(undefinedDensity(d.name+".LnPDF", x))
	}
	return d.uv(nil).LogProb(x)
}

func (d Gamma) CheckedPDF(x float64) (float64, error) {
	return checkedDensity(d.name+".CheckedPDF", x, 0, inf, d.singular(x), d.PDF)
}

func (d Gamma) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity(d.name+".CheckedLnPDF", x, 0, inf, d.singular(x), d.LnPDF)
}

func (d Gamma) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	case math.IsInf(x, 1):
		return 1
	}
	return d.uv(nil).CDF(x)
}

func (d Gamma) InverseCDF(p float64) float64 {
	mustProb(d.name+".InverseCDF", p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return d.uv(nil).Quantile(p)
}

func (d Gamma) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse(d.name+".CheckedInverseCDF", p, d.InverseCDF)
}

func (d Gamma) Sample(r Rand) float64 {
	return d.uv(r).Rand()
}

func (d Gamma) Mean() float64     { return d.shape / d.rate }
func (d Gamma) Variance() float64 { return d.shape / (d.rate * d.rate) }
func (d Gamma) StdDev() float64   { return math.Sqrt(d.shape) / d.rate }
func (d Gamma) Skewness() float64 { return 2 / math.Sqrt(d.shape) }

func (d Gamma) Mode() float64 {
	if d.shape < 1 {
		return 0
	}
	return (d.shape - 1) / d.rate
}

func (d Gamma) Entropy() float64 {
	return d.shape - math.Log(d.rate) + mathx.Lgamma(d.shape) + (1-d.shape)*mathx.Digamma(d.shape)
}

// Erlang is the distribution of the sum of k independent exponential
// variables with the same rate. It is a gamma distribution with
// integer shape.
type Erlang struct {
	Gamma
}

// NewErlang returns the Erlang distribution with shape k >= 1 and
// rate > 0.
func NewErlang(k int, rate float64) (Erlang, error) {
	if k < 1 {
		return Erlang{}, paramError("NewErlang", "shape must be at least 1, got %d", k)
	}
	g, err := newGamma("Erlang", float64(k), rate)
	return Erlang{g}, err
}

// K returns the integer shape of d.
func (d Erlang) K() int { return int(d.shape) }

// ChiSquared is the distribution of the sum of the squares of k
// independent standard normal variables. It is a gamma distribution
// with shape k/2 and rate 1/2.
type ChiSquared struct {
	Gamma
}

// NewChiSquared returns the chi-squared distribution with freedom > 0
// degrees of freedom. freedom need not be integral.
func NewChiSquared(freedom float64) (ChiSquared, error) {
	if !(freedom > 0) || math.IsInf(freedom, 1) {
		return ChiSquared{}, paramError("NewChiSquared", "degrees of freedom must be positive and finite, got %v", freedom)
	}
	g, err := newGamma("ChiSquared", freedom/2, 0.5)
	return ChiSquared{g}, err
}

// Freedom returns the degrees of freedom of d.
func (d ChiSquared) Freedom() float64 { return 2 * d.shape }

func (d ChiSquared) Sample(r Rand) float64 {
	return distuv.ChiSquared{K: d.Freedom(), Src: source(r)}.Rand()
}

func (d ChiSquared) Median() float64 {
	return d.InverseCDF(0.5)
}
