// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/optpart/internal/export"
	"github.com/katalvlaran/optpart/internal/problem"
	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/partition"
	"github.com/katalvlaran/optpart/solver"
)

const envPrefix = "PARTOPT"

// Config keys. Flags and environment variables share these names.
const (
	keyConfig    = "config"
	keyProblem   = "problem"
	keyOutput    = "output"
	keyLogFormat = "log-format"
	keyVerbosity = "verbosity"
	keyParam     = "param"
	keyUnit      = "unit"
	keyThreshold = "threshold"
	keySummary   = "summary"
	keyStrategy  = "strategy"
)

var errNoProblem = errors.New("partopt: no problem file (set --problem)")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v     *viper.Viper
	log   logr.Logger
	flush func()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logr.Discard(), flush: func() {}}

	root := &cobra.Command{
		Use:          "partopt",
		Short:        "Optimal partitions of structured data",
		Long:         "partopt finds the best aggregation of a structured dataset for a trade-off parameter and traces the whole family of optimal partitions.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.flush()
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (default ./partopt.yaml)")
	pf.StringP(keyProblem, "p", "", "problem description (YAML)")
	pf.StringP(keyOutput, "o", "", "write CSV here instead of stdout")
	pf.String(keyLogFormat, logFormatConsole, "log encoding: console or json")
	pf.IntP(keyVerbosity, "v", 0, "log verbosity")
	pf.String(keyStrategy, solver.StrategyAuto.String(), "solver strategy: auto or generic")

	root.AddCommand(newSolveCmd(a), newFrontierCmd(a))

	return root
}

// init resolves configuration from flags, env and config file, then
// builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfg := a.v.GetString(keyConfig); cfg != "" {
		a.v.SetConfigFile(cfg)
	} else {
		a.v.SetConfigName("partopt")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	log, flush, err := newLogger(a.v.GetString(keyLogFormat), a.v.GetInt(keyVerbosity))
	if err != nil {
		return err
	}
	a.log, a.flush = log, flush
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.V(1).Info("config loaded", "file", used)
	}

	return nil
}

// load parses the problem file and returns it with a solver over its lattice.
func (a *app) load() (*problem.Problem, *solver.Solver, error) {
	path := a.v.GetString(keyProblem)
	if path == "" {
		return nil, nil, errNoProblem
	}
	p, err := problem.Load(path, lattice.WithLogger(a.log.WithName("lattice")))
	if err != nil {
		return nil, nil, err
	}
	strategy, err := parseStrategy(a.v.GetString(keyStrategy))
	if err != nil {
		return nil, nil, err
	}
	s, err := solver.New(p.Lattice,
		solver.WithLogger(a.log.WithName("solver")),
		solver.WithStrategy(strategy))
	if err != nil {
		return nil, nil, err
	}
	a.log.V(1).Info("problem loaded", "name", p.Name, "kind", p.Lattice.Kind().String(),
		"atoms", p.Lattice.AtomicCount(), "subsets", p.Lattice.SubsetCount())

	return p, s, nil
}

// write emits parts as CSV, per part or as a one-row-per-partition summary.
func (a *app) write(cmd *cobra.Command, p *problem.Problem, parts []*partition.Partition, summary bool) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path := a.v.GetString(keyOutput); path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if summary {
		return export.WriteSummary(w, p.Objective, parts)
	}
	lb, err := export.NewLabeler(p.Lattice, p.Labels)
	if err != nil {
		return err
	}

	return export.WriteParts(w, p.Objective, lb, parts)
}

func parseStrategy(name string) (solver.Strategy, error) {
	for _, s := range []solver.Strategy{solver.StrategyAuto, solver.StrategyGeneric} {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown strategy %q", name)
}
