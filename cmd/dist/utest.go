// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aclements/go-moredist/dist"
)

func (a *app) utestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "utest FILE1 FILE2",
		Short: "Run a Mann-Whitney U-test on two samples",
		Long: `Utest reads two samples of newline-separated numbers and tests whether
they come from the same population. A file name of "-" reads standard
input.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var samples [2][]float64
			for i, name := range args {
				xs, err := readSample(cmd, name)
				if err != nil {
					return err
				}
				samples[i] = xs
			}
			res, err := dist.UTest(samples[0], samples[1])
			if err != nil {
				return err
			}
			out := struct {
				N1    int    `json:"n1"`
				N2    int    `json:"n2"`
				U     number `json:"u"`
				P     number `json:"p"`
				Exact bool   `json:"exact"`
			}{res.N1, res.N2, number(res.U), number(res.P), res.Exact}
			return a.output(cmd, out, func(w io.Writer) {
				method := "normal approximation"
				if res.Exact {
					method = "exact"
				}
				fmt.Fprintf(w, "n1 %d  n2 %d  U %g  p %.6g (%s)\n", res.N1, res.N2, res.U, res.P, method)
			})
		},
	}
}

func readSample(cmd *cobra.Command, name string) ([]float64, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	xs, err := readInput(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return xs, nil
}

// readInput reads newline-separated numbers from r. Blank lines are
// ignored.
func readInput(r io.Reader) (sample []float64, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sample = append(sample, value)
	}
	return sample, scanner.Err()
}
