// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/dist"
	"github.com/aclements/go-moredist/internal/registry"
)

// distFlags are the flags that select a distribution.
type distFlags struct {
	params  []string
	spec    string
	weights []float64
}

func (f *distFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringArrayVarP(&f.params, "param", "p", nil, "distribution parameter as name=value (repeatable)")
	fs.StringVar(&f.spec, "spec", "", "YAML file describing the distribution")
	fs.Float64SliceVar(&f.weights, "weights", nil, "comma-separated weights for categorical distributions")
}

// resolve builds the distribution named by --spec or by the first
// argument, and returns the remaining arguments. Flags override
// values from the spec file.
func (f *distFlags) resolve(args []string) (registry.Dist, []string, error) {
	var spec registry.Spec
	if f.spec != "" {
		s, err := registry.LoadSpec(f.spec)
		if err != nil {
			return registry.Dist{}, nil, err
		}
		spec = s
	} else {
		if len(args) == 0 {
			return registry.Dist{}, nil, errors.New("missing distribution name")
		}
		spec.Name, args = args[0], args[1:]
	}
	if len(f.params) > 0 {
		p, err := registry.ParseParams(f.params)
		if err != nil {
			return registry.Dist{}, nil, err
		}
		if spec.Params == nil {
			spec.Params = make(map[string]float64, len(p))
		}
		for k, v := range p {
			spec.Params[k] = v
		}
	}
	if len(f.weights) > 0 {
		spec.Weights = f.weights
	}

	d, err := registry.New(spec)
	if err != nil {
		return registry.Dist{}, nil, err
	}
	log.Debug().Str("dist", d.Name()).Interface("params", d.Params()).Msg("resolved distribution")
	return d, args, nil
}

func parseFloats(args []string) ([]float64, error) {
	var errs *multierror.Error
	xs := make([]float64, 0, len(args))
	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("bad value %q", arg))
			continue
		}
		xs = append(xs, x)
	}
	return xs, errs.ErrorOrNil()
}

type point struct {
	X number `json:"x"`
	Y number `json:"y"`
}

type pointsResult struct {
	Dist   string            `json:"dist"`
	Params map[string]number `json:"params"`
	Func   string            `json:"func"`
	Points []point           `json:"points"`
}

// pointsCmd returns a command that evaluates fn at each argument.
func (a *app) pointsCmd(use, short, fname string, fn func(d registry.Dist, x float64) (float64, error)) *cobra.Command {
	var df distFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, args, err := df.resolve(args)
			if err != nil {
				return err
			}
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			if len(xs) == 0 {
				return errors.New("no points given")
			}
			res := pointsResult{Dist: d.Name(), Params: numbers(d.Params()), Func: fname}
			for _, x := range xs {
				y, err := fn(d, x)
				if err != nil {
					return err
				}
				res.Points = append(res.Points, point{number(x), number(y)})
			}
			return a.output(cmd, res, func(w io.Writer) {
				for _, p := range res.Points {
					fmt.Fprintf(w, "%s\t%s\n", fmtFloat(float64(p.X)), fmtFloat(float64(p.Y)))
				}
			})
		},
	}
	df.register(cmd)
	return cmd
}

func (a *app) pdfCmd() *cobra.Command {
	var logScale bool
	cmd := a.pointsCmd("pdf [NAME] X...", "Evaluate the density or mass function", "pdf",
		func(d registry.Dist, x float64) (float64, error) {
			if logScale {
				return d.LnDensity(x)
			}
			return d.Density(x)
		})
	cmd.Flags().BoolVar(&logScale, "log", false, "print the log density")
	return cmd
}

func (a *app) cdfCmd() *cobra.Command {
	return a.pointsCmd("cdf [NAME] X...", "Evaluate the cumulative distribution function", "cdf",
		func(d registry.Dist, x float64) (float64, error) {
			return d.CDF(x), nil
		})
}

func (a *app) quantileCmd() *cobra.Command {
	return a.pointsCmd("quantile [NAME] P...", "Evaluate the inverse CDF", "quantile",
		func(d registry.Dist, p float64) (float64, error) {
			return d.Quantile(p)
		})
}

func (a *app) sampleCmd() *cobra.Command {
	var (
		df distFlags
		n  int
	)
	cmd := &cobra.Command{
		Use:   "sample [NAME]",
		Short: "Draw random samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, args, err := df.resolve(args)
			if err != nil {
				return err
			}
			if len(args) != 0 {
				return fmt.Errorf("unexpected arguments %q", args)
			}
			if n < 0 {
				return fmt.Errorf("sample count %d is negative", n)
			}

			var xs []float64
			if seed := a.v.GetUint64("seed"); seed != 0 {
				xs = dist.SampleN[float64](d, dist.NewRand(seed), n)
			} else {
				xs = make([]float64, n)
				for i := range xs {
					xs[i] = dist.SampleDefault[float64](d)
				}
			}
			log.Debug().Int("n", n).Uint64("seed", a.v.GetUint64("seed")).Msg("sampled")

			out := make([]number, len(xs))
			for i, x := range xs {
				out[i] = number(x)
			}
			return a.output(cmd, out, func(w io.Writer) {
				for _, x := range xs {
					fmt.Fprintln(w, strconv.FormatFloat(x, 'g', -1, 64))
				}
			})
		},
	}
	df.register(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of samples")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	type family struct {
		Name     string            `json:"name"`
		Required []string          `json:"required"`
		Defaults map[string]number `json:"defaults,omitempty"`
		Weights  bool              `json:"weights,omitempty"`
	}
	return &cobra.Command{
		Use:   "list",
		Short: "List the known distributions and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fams []family
			for _, name := range registry.Names() {
				e, err := registry.Lookup(name)
				if err != nil {
					return err
				}
				f := family{Name: e.Name, Required: []string{}, Weights: e.Weights}
				for _, p := range e.Params {
					if p.Required() {
						f.Required = append(f.Required, p.Name)
						continue
					}
					if f.Defaults == nil {
						f.Defaults = make(map[string]number)
					}
					f.Defaults[p.Name] = number(p.Default)
				}
				fams = append(fams, f)
			}
			bold := color.New(color.Bold).SprintFunc()
			return a.output(cmd, fams, func(w io.Writer) {
				for _, f := range fams {
					e, _ := registry.Lookup(f.Name)
					var ps []string
					for _, p := range e.Params {
						if p.Required() {
							ps = append(ps, p.Name)
						} else {
							ps = append(ps, p.Name+"="+fmtFloat(p.Default))
						}
					}
					if f.Weights {
						ps = append(ps, "--weights")
					}
					fmt.Fprintf(w, "%s %s\n", bold(f.Name), strings.Join(ps, " "))
				}
			})
		},
	}
}
