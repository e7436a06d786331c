package rootfind

import (
	"fmt"
	"math"
)

// Func is a pure real function of one variable.
type Func func(x float64) float64

type Method string

const (
	MethodBisection Method = "bisection"
	MethodSecant    Method = "secant"
	MethodNewton    Method = "newton"
)

// Methods returns the supported methods in a stable order.
func Methods() []Method {
	return []Method{MethodBisection, MethodSecant, MethodNewton}
}

const (
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = 1000
	DefaultSecantX0      = 0.0
	DefaultSecantX1      = 10.0
	DefaultNewtonSeed    = 5.0
)

type Config struct {
	Epsilon       float64
	MaxIterations int
	SecantSeeds   [2]float64
	NewtonSeed    float64
}

func DefaultConfig() Config {
	return Config{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		SecantSeeds:   [2]float64{DefaultSecantX0, DefaultSecantX1},
		NewtonSeed:    DefaultNewtonSeed,
	}
}

// Validate reports ErrInvalidConfig for a tolerance that is not a positive
// finite number or a non-positive iteration cap.
func (c Config) Validate() error {
	if err := c.validateEpsilon(); err != nil {
		return err
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	return nil
}

// Bisection has no iteration cap, so it only checks the tolerance.
func (c Config) validateEpsilon() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalidConfig, c.Epsilon)
	}
	return nil
}

// Iteration is one refinement step. Delta is the bracket width after the
// step for bisection and the iterate displacement for secant and Newton.
type Iteration struct {
	Method Method  `json:"method"`
	Step   int     `json:"step"`
	X      float64 `json:"x"`
	FX     float64 `json:"fx"`
	Delta  float64 `json:"delta"`
}

type Observer interface {
	OnIteration(it Iteration)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(it Iteration)

func (f ObserverFunc) OnIteration(it Iteration) { f(it) }

type Result struct {
	Method     Method  `json:"method"`
	Root       float64 `json:"root"`
	Residual   float64 `json:"residual"`
	Iterations int     `json:"iterations"`
}

// FormatRoot renders x with six decimal digits.
func FormatRoot(x float64) string {
	return fmt.Sprintf("%.6f", x)
}
