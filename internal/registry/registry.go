// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry constructs univariate distributions by name from
// a parameter map.
package registry

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/aclements/go-moredist/dist"
)

// ErrUnknown is returned for distribution names that are not
// registered.
var ErrUnknown = errors.New("unknown distribution")

// A Param describes one named parameter of a distribution.
type Param struct {
	Name string

	// Default is used when the parameter is omitted. If it is
	// NaN, the parameter is required.
	Default float64
}

// Required reports whether p has no default.
func (p Param) Required() bool {
	return math.IsNaN(p.Default)
}

func req(name string) Param              { return Param{name, math.NaN()} }
func opt(name string, def float64) Param { return Param{name, def} }
func reqs(names ...string) (ps []Param) {
	for _, n := range names {
		ps = append(ps, req(n))
	}
	return
}

// An Entry is a registered distribution family.
type Entry struct {
	Name   string
	Params []Param

	// Weights reports whether the family takes a weight vector in
	// addition to its named parameters.
	Weights bool

	build func(p map[string]float64, weights []float64) (Dist, error)
}

var entries = []Entry{
	{Name: "uniform", Params: reqs("min", "max"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewUniform(p["min"], p["max"]))
	}},
	{Name: "normal", Params: []Param{opt("mean", 0), opt("stddev", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewNormal(p["mean"], p["stddev"]))
	}},
	{Name: "lognormal", Params: []Param{opt("location", 0), opt("scale", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewLogNormal(p["location"], p["scale"]))
	}},
	{Name: "exponential", Params: []Param{opt("rate", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewExponential(p["rate"]))
	}},
	{Name: "gamma", Params: []Param{req("shape"), opt("rate", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewGamma(p["shape"], p["rate"]))
	}},
	{Name: "erlang", Params: []Param{req("k"), opt("rate", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		k, err := toInt("erlang", "k", p["k"])
		if err != nil {
			return Dist{}, err
		}
		return cont(dist.NewErlang(int(k), p["rate"]))
	}},
	{Name: "chisquared", Params: reqs("freedom"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewChiSquared(p["freedom"]))
	}},
	{Name: "chi", Params: reqs("freedom"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewChi(p["freedom"]))
	}},
	{Name: "inversegamma", Params: []Param{req("shape"), opt("scale", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewInverseGamma(p["shape"], p["scale"]))
	}},
	{Name: "beta", Params: reqs("alpha", "beta"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewBeta(p["alpha"], p["beta"]))
	}},
	{Name: "studentst", Params: []Param{opt("location", 0), opt("scale", 1), req("freedom")}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewStudentsT(p["location"], p["scale"], p["freedom"]))
	}},
	{Name: "f", Params: reqs("d1", "d2"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewFisherSnedecor(p["d1"], p["d2"]))
	}},
	{Name: "cauchy", Params: []Param{opt("location", 0), opt("scale", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewCauchy(p["location"], p["scale"]))
	}},
	{Name: "pareto", Params: []Param{opt("scale", 1), req("shape")}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewPareto(p["scale"], p["shape"]))
	}},
	{Name: "weibull", Params: []Param{req("shape"), opt("scale", 1)}, build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewWeibull(p["shape"], p["scale"]))
	}},
	{Name: "triangular", Params: reqs("min", "max", "mode"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return cont(dist.NewTriangular(p["min"], p["max"], p["mode"]))
	}},
	{Name: "bernoulli", Params: reqs("p"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return disc(dist.NewBernoulli(p["p"]))
	}},
	{Name: "binomial", Params: reqs("p", "n"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		n, err := toInt("binomial", "n", p["n"])
		if err != nil {
			return Dist{}, err
		}
		return disc(dist.NewBinomial(p["p"], n))
	}},
	{Name: "discreteuniform", Params: reqs("min", "max"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		v, err := toInts("discreteuniform", p, "min", "max")
		if err != nil {
			return Dist{}, err
		}
		return disc(dist.NewDiscreteUniform(v[0], v[1]))
	}},
	{Name: "geometric", Params: reqs("p"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return disc(dist.NewGeometric(p["p"]))
	}},
	{Name: "poisson", Params: reqs("lambda"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		return disc(dist.NewPoisson(p["lambda"]))
	}},
	{Name: "hypergeometric", Params: reqs("population", "successes", "draws"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		v, err := toInts("hypergeometric", p, "population", "successes", "draws")
		if err != nil {
			return Dist{}, err
		}
		return disc(dist.NewHypergeometric(v[0], v[1], v[2]))
	}},
	{Name: "categorical", Weights: true, build: func(_ map[string]float64, w []float64) (Dist, error) {
		return disc(dist.NewCategorical(w))
	}},
	{Name: "mannwhitneyu", Params: reqs("n1", "n2"), build: func(p map[string]float64, _ []float64) (Dist, error) {
		v, err := toInts("mannwhitneyu", p, "n1", "n2")
		if err != nil {
			return Dist{}, err
		}
		return disc(dist.NewMannWhitneyU(int(v[0]), int(v[1])))
	}},
}

var byName = func() map[string]*Entry {
	m := make(map[string]*Entry, len(entries))
	for i := range entries {
		m[entries[i].Name] = &entries[i]
	}
	return m
}()

// Names returns the names of all registered distributions in sorted
// order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registered distribution family with the given
// name. Names are case-insensitive.
func Lookup(name string) (Entry, error) {
	e, ok := byName[strings.ToLower(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return *e, nil
}

// New constructs the distribution described by spec. Unknown,
// missing and invalid parameters are all reported together.
func New(spec Spec) (Dist, error) {
	e, err := Lookup(spec.Name)
	if err != nil {
		return Dist{}, err
	}

	var errs *multierror.Error
	known := make(map[string]bool, len(e.Params))
	params := make(map[string]float64, len(e.Params))
	for _, p := range e.Params {
		known[p.Name] = true
		v, ok := spec.Params[p.Name]
		switch {
		case ok:
			params[p.Name] = v
		case p.Required():
			errs = multierror.Append(errs, fmt.Errorf("%s: missing parameter %q", e.Name, p.Name))
		default:
			params[p.Name] = p.Default
		}
	}
	for _, name := range sortedKeys(spec.Params) {
		if !known[name] {
			errs = multierror.Append(errs, fmt.Errorf("%s: unknown parameter %q", e.Name, name))
		}
	}
	if e.Weights && len(spec.Weights) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("%s: missing weights", e.Name))
	} else if !e.Weights && len(spec.Weights) != 0 {
		errs = multierror.Append(errs, fmt.Errorf("%s: does not take weights", e.Name))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Dist{}, err
	}

	d, err := e.build(params, spec.Weights)
	if err != nil {
		return Dist{}, err
	}
	d.name = e.Name
	d.params = params
	return d, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toInt converts an integer-valued parameter.
func toInt(family, name string, v float64) (int64, error) {
	if v != math.Trunc(v) || math.Abs(v) >= 1<<53 {
		return 0, &dist.Error{Op: "registry." + family, Reason: dist.BadParameter, Detail: fmt.Sprintf("%s must be an integer, got %v", name, v)}
	}
	return int64(v), nil
}

func toInts(family string, p map[string]float64, names ...string) ([]int64, error) {
	var errs *multierror.Error
	out := make([]int64, len(names))
	for i, name := range names {
		v, err := toInt(family, name, p[name])
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		out[i] = v
	}
	return out, errs.ErrorOrNil()
}
