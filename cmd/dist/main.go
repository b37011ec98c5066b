// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dist evaluates, inverts and samples probability
// distributions, and compares samples with a Mann-Whitney U-test.
//
// Distributions are named on the command line with parameters given
// by --param flags, or loaded from a YAML spec file:
//
//	dist pdf gamma -p shape=2 -p rate=0.5 0.5 1 2
//	dist describe --spec gamma.yaml
//	dist sample poisson -p lambda=4 -n 10 --seed 1
//
// Global flags can also be set in a config file or through
// MOREDIST_* environment variables, such as MOREDIST_SEED and
// MOREDIST_FORMAT.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("dist failed")
		os.Exit(1)
	}
}

// app holds the configuration shared by all commands.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:               "dist",
		Short:             "Evaluate, invert and sample probability distributions",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default $HOME/.moredist.yaml)")
	pf.StringP("format", "f", "text", "output format: text or json")
	pf.Uint64("seed", 0, "random seed for sampling; 0 picks a fresh seed")
	pf.BoolP("verbose", "v", false, "log debug information")
	pf.Bool("no-color", false, "disable colored output")
	if err := a.v.BindPFlags(pf); err != nil {
		panic(err)
	}
	a.v.SetEnvPrefix("MOREDIST")
	a.v.AutomaticEnv()

	root.AddCommand(
		a.pdfCmd(),
		a.cdfCmd(),
		a.quantileCmd(),
		a.sampleCmd(),
		a.describeCmd(),
		a.listCmd(),
		a.utestCmd(),
		a.kdeCmd(),
	)
	return root
}

// setup reads the config file and applies global flags.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	} else if home, err := homedir.Dir(); err == nil {
		a.v.SetConfigFile(filepath.Join(home, ".moredist.yaml"))
		if err := a.v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	level := zerolog.InfoLevel
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if a.v.GetBool("no-color") {
		color.NoColor = true
	}
	log.Debug().Str("command", cmd.Name()).Str("config", a.v.ConfigFileUsed()).Msg("starting")
	return nil
}
