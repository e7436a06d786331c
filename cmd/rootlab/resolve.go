package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/input"
)

// resolveConfig layers defaults, preset, config file, environment and the
// flags the user actually set, in that order. A method given as the first
// argument overrides all of them.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(equationName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(equationName))
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Method = args[0]
	}
	if flags.Changed("equation") {
		cfg.Equation = equationName
	}
	if flags.Changed("interval") {
		lo, hi, err := input.ParseInterval(interval)
		if err != nil {
			return nil, fmt.Errorf("--interval: %w", err)
		}
		cfg.Interval.A, cfg.Interval.B = lo, hi
		cfg.Secant.X0, cfg.Secant.X1 = lo, hi
	}
	if flags.Changed("a") {
		cfg.Interval.A = a
	}
	if flags.Changed("b") {
		cfg.Interval.B = b
	}
	if flags.Changed("x0") {
		cfg.Secant.X0 = x0
	}
	if flags.Changed("x1") {
		cfg.Secant.X1 = x1
	}
	if flags.Changed("guess") {
		cfg.Newton.Guess = guess
	}
	if flags.Changed("eps") {
		cfg.Epsilon = eps
	}
	if flags.Changed("max-iter") {
		cfg.MaxIterations = maxIter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
