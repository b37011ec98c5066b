// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"math"

	"github.com/aclements/go-moredist/dist"
)

type continuous interface {
	dist.Univariate[float64, float64]
	dist.Continuous[float64]
	dist.CheckedContinuous[float64]
}

type discrete interface {
	dist.Univariate[int64, float64]
	dist.Discrete[int64]
	dist.CheckedDiscrete[int64]
}

// A Dist is a univariate distribution constructed by name. It gives
// continuous and discrete distributions a common real-valued
// interface, and only uses the checked forms of their methods.
type Dist struct {
	name   string
	params map[string]float64

	// Exactly one of cont and disc is non-nil.
	cont continuous
	disc discrete

	quantile func(p float64) float64
}

func cont[D continuous](d D, err error) (Dist, error) {
	if err != nil {
		return Dist{}, err
	}
	return Dist{cont: d, quantile: dist.Quantile[float64](d)}, nil
}

func disc[D discrete](d D, err error) (Dist, error) {
	if err != nil {
		return Dist{}, err
	}
	return Dist{disc: d, quantile: dist.Quantile[int64](d)}, nil
}

// Name returns the registered name of d's family.
func (d Dist) Name() string { return d.name }

// Params returns the parameters d was constructed with, including
// defaults.
func (d Dist) Params() map[string]float64 {
	m := make(map[string]float64, len(d.params))
	for k, v := range d.params {
		m[k] = v
	}
	return m
}

// impl returns the underlying distribution.
func (d Dist) impl() any {
	if d.disc != nil {
		return d.disc
	}
	return d.cont
}

// IsDiscrete reports whether d is integer-valued.
func (d Dist) IsDiscrete() bool { return d.disc != nil }

// Bounds returns the support of d.
func (d Dist) Bounds() (lo, hi float64) {
	if d.disc != nil {
		return float64(d.disc.Min()), float64(d.disc.Max())
	}
	return d.cont.Min(), d.cont.Max()
}

// toK converts x to a support point of a discrete distribution.
func toK(op string, x float64) (int64, error) {
	if x != math.Trunc(x) || math.Abs(x) >= 1<<63 {
		return 0, &dist.Error{Op: op, Reason: dist.OutOfDomain, Detail: fmt.Sprintf("%v is not an integer", x)}
	}
	return int64(x), nil
}

// Density returns the probability density or mass of d at x.
func (d Dist) Density(x float64) (float64, error) {
	if d.cont != nil {
		return d.cont.CheckedPDF(x)
	}
	k, err := toK("registry.Density", x)
	if err != nil {
		return 0, err
	}
	return d.disc.CheckedPMF(k)
}

// LnDensity returns the log of the probability density or mass of d
// at x.
func (d Dist) LnDensity(x float64) (float64, error) {
	if d.cont != nil {
		return d.cont.CheckedLnPDF(x)
	}
	k, err := toK("registry.LnDensity", x)
	if err != nil {
		return 0, err
	}
	return d.disc.CheckedLnPMF(k)
}

// CDF returns Pr[X <= x].
func (d Dist) CDF(x float64) float64 {
	if d.cont != nil {
		return d.cont.CDF(x)
	}
	return d.disc.CDF(x)
}

// Quantile returns the smallest x in the support of d with
// CDF(x) >= p. It uses the distribution's closed-form inverse when
// there is one, and a numerical search otherwise.
func (d Dist) Quantile(p float64) (float64, error) {
	u := d.impl()
	if inv, ok := u.(dist.CheckedInverseCDF[float64]); ok {
		return inv.CheckedInverseCDF(p)
	}
	if !(0 <= p && p <= 1) {
		return 0, &dist.Error{Op: "registry.Quantile", Reason: dist.OutOfDomain, Detail: fmt.Sprintf("p=%v outside [0, 1]", p)}
	}
	return d.quantile(p), nil
}

// Sample draws one value from d using r.
func (d Dist) Sample(r dist.Rand) float64 {
	if d.cont != nil {
		return d.cont.Sample(r)
	}
	return d.disc.Sample(r)
}

// Stats returns the summary statistics d has closed forms for, keyed
// by name.
func (d Dist) Stats() map[string]float64 {
	u := d.impl()
	s := make(map[string]float64)
	if m, ok := u.(dist.Moments); ok {
		s["mean"] = m.Mean()
		s["variance"] = m.Variance()
	}
	if v, ok := u.(interface{ StdDev() float64 }); ok {
		s["stddev"] = v.StdDev()
	}
	if v, ok := u.(interface{ Skewness() float64 }); ok {
		s["skewness"] = v.Skewness()
	}
	if v, ok := u.(interface{ Entropy() float64 }); ok {
		s["entropy"] = v.Entropy()
	}
	if v, ok := u.(interface{ Median() float64 }); ok {
		s["median"] = v.Median()
	}
	if v, ok := u.(interface{ Mode() float64 }); ok {
		s["mode"] = v.Mode()
	}
	return s
}
