// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDE is a Gaussian kernel density estimate of the distribution a
// sample was drawn from.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of an unknown distribution ƒ(x) given a sample from that
// distribution. Unlike many techniques, kernel density estimation is
// non-parametric: in general, it doesn't assume any particular true
// distribution (note, however, that the resulting distribution
// depends deeply on the selected bandwidth, and many bandwidth
// estimation techniques assume normal reference rules).
//
// A kernel density estimate is similar to a histogram, except that it
// is a smooth probability estimate and does not require choosing a
// bin size and discretizing the data.
//
// By default a KDE has unbounded support. Reflect gives it a bounded
// support.
type KDE struct {
	xs        []float64 // sorted
	bandwidth float64

	// [min, max] is the support. If it is not the whole real
	// line, the estimate is reflected at the finite bounds.
	min, max float64
}

// NewKDE returns the kernel density estimate of the sample xs with a
// Gaussian kernel of the given bandwidth (its standard deviation).
// If bandwidth is 0, it is estimated from xs using BandwidthScott.
func NewKDE(xs []float64, bandwidth float64) (KDE, error) {
	const op = "NewKDE"
	if len(xs) == 0 {
		return KDE{}, newError(op, BadStructure, "empty sample")
	}
	var errs *multierror.Error
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			errs = multierror.Append(errs, paramError(op, "sample %d must be finite, got %v", i, x))
		}
	}
	if !(bandwidth >= 0) || math.IsInf(bandwidth, 1) {
		errs = multierror.Append(errs, paramError(op, "bandwidth must be non-negative and finite, got %v", bandwidth))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return KDE{}, err
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if bandwidth == 0 {
		bandwidth = BandwidthScott(sorted)
		if !(bandwidth > 0) {
			return KDE{}, paramError(op, "cannot estimate a bandwidth from %d samples with no spread", len(xs))
		}
	}
	return KDE{sorted, bandwidth, -inf, inf}, nil
}

// BandwidthSilverman estimates a KDE bandwidth for sample xs using
// Silverman's rule of thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(xs []float64) float64 {
	return 1.06 * stat.StdDev(xs, nil) * math.Pow(float64(len(xs)), -1.0/5)
}

// BandwidthScott estimates a KDE bandwidth for sample xs, which must
// be sorted, using Scott's rule. This is generally robust to
// outliers: it chooses the minimum between the sample's standard
// deviation and a robust estimator of a Gaussian distribution's
// standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(xs []float64) float64 {
	iqr := stat.Quantile(0.75, stat.LinInterp, xs, nil) - stat.Quantile(0.25, stat.LinInterp, xs, nil)
	hScale := 1.06 * math.Pow(float64(len(xs)), -1.0/5)
	stdDev := stat.StdDev(xs, nil)
	if len(xs) < 2 {
		stdDev = 0
	}
	if stdDev < iqr/1.349 || iqr == 0 {
		return hScale * stdDev
	}
	// IQR/1.349 estimates the standard deviation of a Gaussian.
	return hScale * (iqr / 1.349)
}

// Reflect returns d with support [min, max]. The estimate is
// reflected at each finite bound: for support [0, ∞), this is
// ƒ̂ᵣ(x) = ƒ̂(x) + ƒ̂(-x) for x >= 0. This is a simple and fast boundary
// correction, but it forces ƒ̂ᵣ'(0) = 0, so it may not suit all
// distributions.
//
// Every sample must lie in [min, max]. Passing -Inf and +Inf removes
// the bounds.
func (d KDE) Reflect(min, max float64) (KDE, error) {
	const op = "KDE.Reflect"
	if math.IsNaN(min) || math.IsNaN(max) || !(min < max) {
		return KDE{}, paramError(op, "bounds must satisfy min < max, got [%v, %v]", min, max)
	}
	if lo, hi := d.xs[0], d.xs[len(d.xs)-1]; lo < min || hi > max {
		return KDE{}, paramError(op, "samples span [%v, %v], outside [%v, %v]", lo, hi, min, max)
	}
	d.min, d.max = min, max
	return d, nil
}

// Bandwidth returns the standard deviation of d's kernel.
func (d KDE) Bandwidth() float64 { return d.bandwidth }

func (d KDE) Min() float64 { return d.min }
func (d KDE) Max() float64 { return d.max }

func (d KDE) kernel() distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: d.bandwidth}
}

// images sums the unreflected density f at x and at each reflection
// of x in d's finite bounds.
func (d KDE) images(x float64, f func(float64) float64) float64 {
	switch {
	case math.IsInf(d.min, -1) && math.IsInf(d.max, 1):
		return f(x)
	case math.IsInf(d.max, 1):
		return f(x) + f(2*d.min-x)
	case math.IsInf(d.min, -1):
		return f(x) + f(2*d.max-x)
	}
	p := 2 * (d.max - d.min)
	w := 2 * (x - d.min)
	return series(func(n float64) float64 {
		// Images at or above x.
		return f(x+n*p) + f(x+n*p-w)
	}) + series(func(n float64) float64 {
		// Images below x.
		return f(x-(n+1)*p+w) + f(x-(n+1)*p)
	})
}

// series returns the sum of the series f(0), f(1), ...
//
// This implementation is fast, but subject to round-off error.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}

// pdf is the unreflected density at x.
func (d KDE) pdf(x float64) float64 {
	k := d.kernel()
	sum := 0.0
	for _, xi := range d.xs {
		sum += k.Prob(x - xi)
	}
	return sum / float64(len(d.xs))
}

// cdf is the unreflected CDF at x.
func (d KDE) cdf(x float64) float64 {
	k := d.kernel()
	sum := 0.0
	for _, xi := range d.xs {
		sum += k.CDF(x - xi)
	}
	return sum / float64(len(d.xs))
}

func (d KDE) PDF(x float64) float64 {
	if !(d.min <= x && x <= d.max) {
		return 0
	}
	return d.images(x, d.pdf)
}

func (d KDE) LnPDF(x float64) float64 {
	return math.Log(d.PDF(x))
}

func (d KDE) CheckedPDF(x float64) (float64, error) {
	return checkedDensity("KDE.CheckedPDF", x, d.min, d.max, false, d.PDF)
}

func (d KDE) CheckedLnPDF(x float64) (float64, error) {
	return checkedDensity("KDE.CheckedLnPDF", x, d.min, d.max, false, d.LnPDF)
}

func (d KDE) CDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= d.min:
		return 0
	case x >= d.max:
		return 1
	}
	switch {
	case math.IsInf(d.min, -1) && math.IsInf(d.max, 1):
		return d.cdf(x)
	case math.IsInf(d.max, 1):
		return d.cdf(x) - d.cdf(2*d.min-x)
	case math.IsInf(d.min, -1):
		return d.cdf(x) + (1 - d.cdf(2*d.max-x))
	}
	p := 2 * (d.max - d.min)
	w := 2 * (x - d.min)
	return series(func(n float64) float64 {
		// Windows at or above x-w.
		return d.cdf(x+n*p) - d.cdf(x+n*p-w)
	}) + series(func(n float64) float64 {
		// Windows below x-w.
		return d.cdf(x-(n+1)*p) - d.cdf(x-(n+1)*p-w)
	})
}

// InverseCDF inverts the CDF numerically.
func (d KDE) InverseCDF(p float64) float64 {
	mustProb("KDE.InverseCDF", p)
	return realQuantile(d.CDF, d.min, d.max, p)
}

func (d KDE) CheckedInverseCDF(p float64) (float64, error) {
	return checkedInverse("KDE.CheckedInverseCDF", p, d.InverseCDF)
}

// Sample picks a sample point uniformly, perturbs it by the kernel,
// and folds the result back into the support.
func (d KDE) Sample(r Rand) float64 {
	xi := d.xs[uintn(r, uint64(len(d.xs)))]
	x := distuv.Normal{Mu: xi, Sigma: d.bandwidth, Src: source(r)}.Rand()
	return d.fold(x)
}

// fold maps x to its image in [d.min, d.max] under reflection at the
// bounds.
func (d KDE) fold(x float64) float64 {
	switch {
	case math.IsInf(d.min, -1) && math.IsInf(d.max, 1):
		return x
	case math.IsInf(d.max, 1):
		if x < d.min {
			x = 2*d.min - x
		}
		return x
	case math.IsInf(d.min, -1):
		if x > d.max {
			x = 2*d.max - x
		}
		return x
	}
	width := d.max - d.min
	y := math.Mod(x-d.min, 2*width)
	if y < 0 {
		y += 2 * width
	}
	if y > width {
		y = 2*width - y
	}
	return d.min + y
}
