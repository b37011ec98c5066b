// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// number is a float64 that encodes non-finite values as the JSON
// strings "NaN", "+Inf" and "-Inf".
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *number) UnmarshalJSON(b []byte) error {
	s := string(b)
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("bad number %s", b)
	}
	*n = number(f)
	return nil
}

func numbers(m map[string]float64) map[string]number {
	out := make(map[string]number, len(m))
	for k, v := range m {
		out[k] = number(v)
	}
	return out
}

// output writes a command result. In text format it calls text; in
// JSON format it encodes data.
func (a *app) output(cmd *cobra.Command, data any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch f := a.v.GetString("format"); f {
	case "text":
		text(w)
		return nil
	case "json":
		return a.writeJSON(w, data)
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", f)
	}
}

func (a *app) writeJSON(w io.Writer, data any) error {
	var (
		buf []byte
		err error
	)
	if a.colorize(w) {
		buf, err = prettyjson.Marshal(data)
	} else {
		buf, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}

// colorize reports whether output to w should be colored.
func (a *app) colorize(w io.Writer) bool {
	if a.v.GetBool("no-color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
