// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-moredist/mathx"
)

// InverseGamma is the distribution of 1/X where X has a gamma
// distribution with shape α and rate β. β is the scale of the
// inverse gamma distribution.
type InverseGamma struct {
	shape, scale float64
}

// NewInverseGamma returns the inverse gamma distribution with
// shape > 0 and scale > 0.
func NewInverseGamma(shape, scale float64) (InverseGamma, error) {
	if !(shape > 0) || math.IsInf(shape, 1) {
		return InverseGamma{}, paramError("NewInverseGamma", "shape must be positive and finite, got %v", shape)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return InverseGamma{}, paramError("NewInverseGamma", "scale must be positive and finite, got %v", scale)
	}
	return InverseGamma{shape, scale}, nil
}

func (d InverseGamma) Shape() float64 { return d.shape }
func (d InverseGamma) Scale() float64 { return d.scale }

func (d InverseGamma) Min() float64 { return 0 }
func (d InverseGamma) Max() float64 { return inf }

func (d InverseGamma) PDF(x float64) float64 {
	return math.Exp(d.LnPDF(x))
}

func (d InverseGamma) LnPDF(x float64) float64 {
	// The density vanishes faster than any power as x → 0.
	if x <= 0 || math.IsInf(x, 1) {
		return -inf
	}
	a, b := d.shape, d.scale
	return a*math.Log(b) - mathx.Lgamma(a) - (a+1)*math.Log(x) - b/x
}

func (d InverseGamma) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("InverseGamma.CheckedPDF", x, 0, inf, false, d.PDF)
}

func (d InverseGamma) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("InverseGamma.CheckedLnPDF", x, 0, inf, false, d.LnPDF)
}

func (d InverseGamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaIncQ(d.shape, d.scale/x)
}

func (d InverseGamma) InverseCDF(p float64) float64 {
	mustProb("InverseGamma.InverseCDF", p)
	return d.scale / mathx.InvGammaIncQ(d.shape, p)
}

func (d InverseGamma) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("InverseGamma.CheckedInverseCDF", p, d.InverseCDF)
}

func (d InverseGamma) Sample(r Rand) float64 {
	return distuv.InverseGamma{Alpha: d.shape, Beta: d.scale, Src: source(r)}.Rand()
}

func (d InverseGamma) Mean() float64 {
	if d.shape <= 1 {
		return inf
	}
	return d.scale / (d.shape - 1)
}

func (d InverseGamma) Variance() float64 {
	a := d.shape
	switch {
	case a <= 1:
		return nan
	case a <= 2:
		return inf
	}
	return d.scale * d.scale / ((a - 1) * (a - 1) * (a - 2))
}

func (d InverseGamma) StdDev() float64 { return math.Sqrt(d.Variance()) }
func (d InverseGamma) Mode() float64   { return d.scale / (d.shape + 1) }

func (d InverseGamma) Skewness() float64 {
	if d.shape <= 3 {
		return nan
	}
	return 4 * math.Sqrt(d.shape-2) / (d.shape - 3)
}

func (d InverseGamma) Entropy() float64 {
	a := d.shape
	return a + math.Log(d.scale) + mathx.Lgamma(a) - (1+a)*mathx.Digamma(a)
}
