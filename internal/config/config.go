package config

import (
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rootlab/internal/rootfind"
)

const (
	DefaultMethod         = "bisection"
	DefaultEquation       = "quadratic"
	DefaultA              = 0.0
	DefaultB              = 10.0
	DefaultChartWidth     = 80
	DefaultChartHeight    = 15
	DefaultChartStep      = 0.1
	DefaultChartPadding   = 0.1
	DefaultNewtonSpan     = 5.0
	DefaultRequireBracket = true
)

type Config struct {
	Method        string         `yaml:"method" env:"ROOTLAB_METHOD"`
	Equation      string         `yaml:"equation" env:"ROOTLAB_EQUATION"`
	Epsilon       float64        `yaml:"epsilon" env:"ROOTLAB_EPSILON"`
	MaxIterations int            `yaml:"max_iterations" env:"ROOTLAB_MAX_ITERATIONS"`
	Interval      IntervalConfig `yaml:"interval"`
	Secant        SecantConfig   `yaml:"secant"`
	Newton        NewtonConfig   `yaml:"newton"`
	Chart         ChartConfig    `yaml:"chart"`
}

type IntervalConfig struct {
	A float64 `yaml:"a" env:"ROOTLAB_A"`
	B float64 `yaml:"b" env:"ROOTLAB_B"`
}

type SecantConfig struct {
	X0 float64 `yaml:"x0" env:"ROOTLAB_SECANT_X0"`
	X1 float64 `yaml:"x1" env:"ROOTLAB_SECANT_X1"`
	// RequireBracket rejects seeds whose function values share a sign
	// before the secant method runs.
	RequireBracket bool `yaml:"require_bracket" env:"ROOTLAB_SECANT_REQUIRE_BRACKET"`
}

type NewtonConfig struct {
	Guess float64 `yaml:"guess" env:"ROOTLAB_NEWTON_GUESS"`
}

type ChartConfig struct {
	Width   int     `yaml:"width" env:"ROOTLAB_CHART_WIDTH"`
	Height  int     `yaml:"height" env:"ROOTLAB_CHART_HEIGHT"`
	Step    float64 `yaml:"step" env:"ROOTLAB_CHART_STEP"`
	Padding float64 `yaml:"padding"`
	// NewtonSpan is the half-width of the range plotted around a Newton root.
	NewtonSpan float64 `yaml:"newton_span"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:        DefaultMethod,
		Equation:      DefaultEquation,
		Epsilon:       rootfind.DefaultEpsilon,
		MaxIterations: rootfind.DefaultMaxIterations,
		Interval: IntervalConfig{
			A: DefaultA,
			B: DefaultB,
		},
		Secant: SecantConfig{
			X0:             rootfind.DefaultSecantX0,
			X1:             rootfind.DefaultSecantX1,
			RequireBracket: DefaultRequireBracket,
		},
		Newton: NewtonConfig{
			Guess: rootfind.DefaultNewtonSeed,
		},
		Chart: ChartConfig{
			Width:      DefaultChartWidth,
			Height:     DefaultChartHeight,
			Step:       DefaultChartStep,
			Padding:    DefaultChartPadding,
			NewtonSpan: DefaultNewtonSpan,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the YAML file at path on cfg. Keys missing from the file
// keep their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from ROOTLAB_* environment variables. Unset
// variables leave the current values alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Solver returns the solver settings held in the config.
func (c *Config) Solver() rootfind.Config {
	return rootfind.Config{
		Epsilon:       c.Epsilon,
		MaxIterations: c.MaxIterations,
		SecantSeeds:   [2]float64{c.Secant.X0, c.Secant.X1},
		NewtonSeed:    c.Newton.Guess,
	}
}

func (c *Config) Validate() error {
	if err := c.Solver().Validate(); err != nil {
		return err
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if !(c.Chart.Step > 0) {
		return fmt.Errorf("chart step must be positive, got %f", c.Chart.Step)
	}
	if !finiteNonNegative(c.Chart.Padding) {
		return fmt.Errorf("chart padding must be a non-negative number, got %g", c.Chart.Padding)
	}
	if !finiteNonNegative(c.Chart.NewtonSpan) {
		return fmt.Errorf("chart newton span must be a non-negative number, got %g", c.Chart.NewtonSpan)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
