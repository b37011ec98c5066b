// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// A Spec names a distribution and its parameters. It is the document
// format of distribution spec files:
//
//	name: gamma
//	params:
//	  shape: 2
//	  rate: 0.5
type Spec struct {
	Name    string             `yaml:"name" json:"name"`
	Params  map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
	Weights []float64          `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// ReadSpec decodes a YAML spec from r.
func ReadSpec(r io.Reader) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Spec{}, fmt.Errorf("decoding spec: %w", err)
	}
	if s.Name == "" {
		return Spec{}, fmt.Errorf("decoding spec: missing name")
	}
	return s, nil
}

// LoadSpec reads a YAML spec from the named file.
func LoadSpec(path string) (Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return Spec{}, err
	}
	defer f.Close()
	s, err := ReadSpec(f)
	if err != nil {
		return Spec{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseParams parses parameters of the form "name=value". All
// malformed parameters are reported together.
func ParseParams(args []string) (map[string]float64, error) {
	var errs *multierror.Error
	params := make(map[string]float64, len(args))
	for _, arg := range args {
		name, val, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			errs = multierror.Append(errs, fmt.Errorf("parameter %q: want name=value", arg))
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("parameter %q: %w", name, err))
			continue
		}
		if _, dup := params[name]; dup {
			errs = multierror.Append(errs, fmt.Errorf("parameter %q given more than once", name))
			continue
		}
		params[name] = v
	}
	return params, errs.ErrorOrNil()
}
