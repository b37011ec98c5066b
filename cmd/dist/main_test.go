// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-moredist/dist"
	"github.com/aclements/go-moredist/internal/registry"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPDF(t *testing.T) {
	out, err := run(t, "pdf", "normal", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\t0.398942\n1\t0.241971\n", out)

	out, err = run(t, "pdf", "binomial", "-p", "p=0.5", "-p", "n=2", "1", "--log")
	require.NoError(t, err)
	assert.Equal(t, "1\t-0.693147\n", out)
}

func TestCDFJSON(t *testing.T) {
	out, err := run(t, "cdf", "uniform", "-p", "min=0", "-p", "max=2", "1", "3", "--format", "json")
	require.NoError(t, err)

	var res pointsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "uniform", res.Dist)
	assert.Equal(t, "cdf", res.Func)
	assert.Equal(t, map[string]number{"min": 0, "max": 2}, res.Params)
	require.Len(t, res.Points, 2)
	assert.Equal(t, number(0.5), res.Points[0].Y)
	assert.Equal(t, number(1), res.Points[1].Y)
}

func TestQuantileNonFinite(t *testing.T) {
	out, err := run(t, "quantile", "normal", "0", "0.5", "1", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"-Inf"`)
	assert.Contains(t, out, `"+Inf"`)

	out, err = run(t, "quantile", "exponential", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "0.5\t0.693147\n", out)
}

func TestSampleSeed(t *testing.T) {
	args := []string{"sample", "poisson", "-p", "lambda=4", "-n", "20", "--seed", "42"}
	a, err := run(t, args...)
	require.NoError(t, err)
	b, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Fields(a)
	assert.Len(t, lines, 20)
	for _, l := range lines {
		assert.NotContains(t, l, ".", "poisson sample %q is not an integer", l)
	}
}

func TestSampleDefault(t *testing.T) {
	out, err := run(t, "sample", "uniform", "-p", "min=1", "-p", "max=2", "-n", "5", "-f", "json")
	require.NoError(t, err)
	var xs []float64
	require.NoError(t, json.Unmarshal([]byte(out), &xs))
	require.Len(t, xs, 5)
	for _, x := range xs {
		assert.GreaterOrEqual(t, x, 1.0)
		assert.LessOrEqual(t, x, 2.0)
	}
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "binomial", "-p", "p=0.5", "-p", "n=10")
	require.NoError(t, err)
	assert.Contains(t, out, "binomial (discrete)  n 10  p 0.5\n")
	assert.Contains(t, out, "support [0, 10]\n")
	assert.Contains(t, out, "    mean 5\n")
	assert.Contains(t, out, "variance 2.5\n")
	assert.Contains(t, out, "     min 0\n")
	assert.Contains(t, out, "     max 10\n")
}

func TestDescribeSpecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamma.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: gamma\nparams:\n  shape: 2\n  rate: 0.5\n"), 0o666))

	out, err := run(t, "describe", "--spec", path, "-p", "rate=1", "-f", "json")
	require.NoError(t, err)
	var desc description
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "gamma", desc.Name)
	assert.False(t, desc.Discrete)
	assert.Equal(t, number(1), desc.Params["rate"], "flag should override spec file")
	assert.Equal(t, number(2), desc.Stats["mean"])
	require.Len(t, desc.Percentiles, 9)
	assert.Equal(t, "median", desc.Percentiles[4].Label)
}

func TestCategoricalWeights(t *testing.T) {
	out, err := run(t, "pdf", "categorical", "--weights", "1,1,2", "0", "2")
	require.NoError(t, err)
	assert.Equal(t, "0\t0.25\n2\t0.5\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "-f", "json")
	require.NoError(t, err)
	var fams []struct {
		Name     string
		Required []string
		Defaults map[string]float64
		Weights  bool
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fams))
	require.Len(t, fams, len(registry.Names()))
	for _, f := range fams {
		switch f.Name {
		case "gamma":
			assert.Equal(t, []string{"shape"}, f.Required)
			assert.Equal(t, map[string]float64{"rate": 1}, f.Defaults)
		case "categorical":
			assert.True(t, f.Weights)
		}
	}

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "--weights")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "pdf", "nosuch", "1")
	assert.ErrorIs(t, err, registry.ErrUnknown)

	_, err = run(t, "pdf", "gamma", "1")
	assert.ErrorContains(t, err, `missing parameter "shape"`)

	_, err = run(t, "pdf", "poisson", "-p", "lambda=1", "1.5")
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)

	_, err = run(t, "quantile", "normal", "2")
	assert.ErrorIs(t, err, dist.ErrOutOfDomain)

	_, err = run(t, "pdf", "normal", "x", "y")
	assert.ErrorContains(t, err, `bad value "x"`)
	assert.ErrorContains(t, err, `bad value "y"`)

	_, err = run(t, "pdf")
	assert.ErrorContains(t, err, "missing distribution name")

	_, err = run(t, "cdf", "normal", "0", "-f", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moredist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nseed: 7\n"), 0o666))

	a, err := run(t, "sample", "normal", "-n", "3", "--config", path)
	require.NoError(t, err)
	var xs []float64
	require.NoError(t, json.Unmarshal([]byte(a), &xs))
	assert.Len(t, xs, 3)

	b, err := run(t, "sample", "normal", "-n", "3", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, a, b, "seed from config file should make samples reproducible")
}

func TestEnv(t *testing.T) {
	t.Setenv("MOREDIST_FORMAT", "json")
	out, err := run(t, "cdf", "normal", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "got %q", out)
}

func TestUTestCmd(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a")
	f2 := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(f1, []byte("2\n1\n\n3\n5\n"), 0o666))
	require.NoError(t, os.WriteFile(f2, []byte("12\n11\n13\n15\n"), 0o666))

	out, err := run(t, "utest", f1, f2)
	require.NoError(t, err)
	assert.Equal(t, "n1 4  n2 4  U 0  p 0.0285714 (exact)\n", out)

	require.NoError(t, os.WriteFile(f2, []byte("12\nx\n"), 0o666))
	_, err = run(t, "utest", f1, f2)
	assert.ErrorContains(t, err, "line 2")
}

func TestUTestCmdTies(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a")
	f2 := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(f1, []byte("2\n1\n3\n5\n"), 0o666))
	require.NoError(t, os.WriteFile(f2, []byte("1\n1\n1\n1\n1\n"), 0o666))

	out, err := run(t, "utest", f1, f2)
	require.NoError(t, err)
	assert.Equal(t, "n1 4  n2 5  U 2.5  p 0.0952381 (exact)\n", out)
}

func TestKDECmd(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "sample")
	require.NoError(t, os.WriteFile(f, []byte("1\n3\n"), 0o666))

	out, err := run(t, "kde", f, "2", "--bandwidth", "2")
	require.NoError(t, err)
	assert.Equal(t, "n 2  bandwidth 2\n2\t0.176033\t0.5\n", out)

	out, err = run(t, "kde", f, "-b", "1", "--min", "0", "-f", "json")
	require.NoError(t, err)
	var res struct {
		N      int `json:"n"`
		Points []struct {
			X, PDF, CDF number
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.N)
	require.Len(t, res.Points, 11)
	for _, p := range res.Points {
		assert.GreaterOrEqual(t, float64(p.X), 0.0)
	}

	_, err = run(t, "kde", f, "--min", "2")
	assert.ErrorIs(t, err, dist.ErrBadParameter)
}
