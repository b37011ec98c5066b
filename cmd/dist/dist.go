// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

type percentile struct {
	Label string `json:"label"`
	P     number `json:"p"`
	X     number `json:"x"`
}

type description struct {
	Name        string            `json:"name"`
	Discrete    bool              `json:"discrete"`
	Params      map[string]number `json:"params"`
	Support     [2]number         `json:"support"`
	Stats       map[string]number `json:"stats"`
	Percentiles []percentile      `json:"percentiles"`
}

// describeCmd summarizes a distribution: its support, closed-form
// statistics, and quartiles and tails.
func (a *app) describeCmd() *cobra.Command {
	var df distFlags
	cmd := &cobra.Command{
		Use:   "describe [NAME]",
		Short: "Summarize a distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, args, err := df.resolve(args)
			if err != nil {
				return err
			}
			if len(args) != 0 {
				return fmt.Errorf("unexpected arguments %q", args)
			}

			lo, hi := d.Bounds()
			desc := description{
				Name:     d.Name(),
				Discrete: d.IsDiscrete(),
				Params:   numbers(d.Params()),
				Support:  [2]number{number(lo), number(hi)},
				Stats:    numbers(d.Stats()),
			}

			// Quartiles and tails.
			labels := map[int]string{0: "min", 50: "median", 100: "max"}
			for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
				label, ok := labels[p]
				if !ok {
					label = fmt.Sprintf("%d%%ile", p)
				}
				x, err := d.Quantile(float64(p) / 100)
				if err != nil {
					return err
				}
				desc.Percentiles = append(desc.Percentiles, percentile{label, number(float64(p) / 100), number(x)})
			}

			return a.output(cmd, desc, func(w io.Writer) { printDescription(w, desc) })
		},
	}
	df.register(cmd)
	return cmd
}

func printDescription(w io.Writer, desc description) {
	kind := "continuous"
	if desc.Discrete {
		kind = "discrete"
	}
	fmt.Fprintf(w, "%s (%s)", desc.Name, kind)
	for _, k := range sortedKeys(desc.Params) {
		fmt.Fprintf(w, "  %s %s", k, fmtFloat(float64(desc.Params[k])))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "support [%s, %s]\n", fmtFloat(float64(desc.Support[0])), fmtFloat(float64(desc.Support[1])))
	fmt.Fprintln(w)

	for _, k := range sortedKeys(desc.Stats) {
		fmt.Fprintf(w, "%8s %s\n", k, fmtFloat(float64(desc.Stats[k])))
	}
	fmt.Fprintln(w)

	for _, p := range desc.Percentiles {
		fmt.Fprintf(w, "%8s %s\n", p.Label, fmtFloat(float64(p.X)))
	}
}

func sortedKeys(m map[string]number) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
