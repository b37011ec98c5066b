// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/dist"
)

// kdeSteps is the number of points kde evaluates when none are given.
const kdeSteps = 11

func (a *app) kdeCmd() *cobra.Command {
	var bandwidth, min, max float64
	cmd := &cobra.Command{
		Use:   "kde FILE [X...]",
		Short: "Estimate the density of a sample",
		Long: `Kde reads a sample of newline-separated numbers and prints a Gaussian
kernel density estimate of its distribution at each X. Without X, it
evaluates the estimate across the middle 99% of its mass. A file name
of "-" reads standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := readSample(cmd, args[0])
			if err != nil {
				return err
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			kde, err := dist.NewKDE(sample, bandwidth)
			if err != nil {
				return err
			}
			if !math.IsInf(min, -1) || !math.IsInf(max, 1) {
				if kde, err = kde.Reflect(min, max); err != nil {
					return err
				}
			}
			log.Debug().Int("n", len(sample)).Float64("bandwidth", kde.Bandwidth()).Msg("estimated density")

			if len(xs) == 0 {
				lo, hi := kde.InverseCDF(0.005), kde.InverseCDF(0.995)
				for i := 0; i < kdeSteps; i++ {
					xs = append(xs, lo+(hi-lo)*float64(i)/(kdeSteps-1))
				}
			}

			type row struct {
				X   number `json:"x"`
				PDF number `json:"pdf"`
				CDF number `json:"cdf"`
			}
			out := struct {
				N         int    `json:"n"`
				Bandwidth number `json:"bandwidth"`
				Points    []row  `json:"points"`
			}{N: len(sample), Bandwidth: number(kde.Bandwidth())}
			for _, x := range xs {
				out.Points = append(out.Points, row{number(x), number(kde.PDF(x)), number(kde.CDF(x))})
			}
			return a.output(cmd, out, func(w io.Writer) {
				fmt.Fprintf(w, "n %d  bandwidth %s\n", out.N, fmtFloat(kde.Bandwidth()))
				for _, p := range out.Points {
					fmt.Fprintf(w, "%s\t%s\t%s\n", fmtFloat(float64(p.X)), fmtFloat(float64(p.PDF)), fmtFloat(float64(p.CDF)))
				}
			})
		},
	}
	fs := cmd.Flags()
	fs.Float64VarP(&bandwidth, "bandwidth", "b", 0, "kernel standard deviation; 0 uses Scott's rule")
	fs.Float64Var(&min, "min", math.Inf(-1), "lower bound of the support, reflected at")
	fs.Float64Var(&max, "max", math.Inf(1), "upper bound of the support, reflected at")
	return cmd
}
