package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/equation"
	"github.com/san-kum/rootlab/internal/rootfind"
)

type Config struct {
	Method   string
	Equation string
	// A and B bound the bisection interval.
	A, B float64
	// X0 and X1 seed the secant method.
	X0, X1 float64
	// Guess seeds Newton's method.
	Guess          float64
	RequireBracket bool
	Solver         rootfind.Config
}

// Trace records every iteration of a solve in order.
type Trace struct {
	Iterations []rootfind.Iteration
}

func (t *Trace) OnIteration(it rootfind.Iteration) {
	t.Iterations = append(t.Iterations, it)
}

type Report struct {
	Method   string               `json:"method"`
	Equation string               `json:"equation"`
	Expr     string               `json:"expr"`
	Result   *rootfind.Result     `json:"result"`
	Trace    []rootfind.Iteration `json:"trace"`
	Elapsed  time.Duration        `json:"elapsed_ns"`
}

type Experiment struct {
	cfg       Config
	eq        equation.Equation
	runner    Runner
	observers []rootfind.Observer
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(registry *Registry) error {
	runner, err := registry.GetMethod(e.cfg.Method)
	if err != nil {
		return err
	}
	eq, err := registry.GetEquation(e.cfg.Equation)
	if err != nil {
		return err
	}
	e.runner = runner
	e.eq = eq
	return nil
}

// AddObserver attaches an observer to every subsequent Run.
func (e *Experiment) AddObserver(o rootfind.Observer) {
	e.observers = append(e.observers, o)
}

func (e *Experiment) Config() Config {
	return e.cfg
}

func (e *Experiment) Equation() equation.Equation {
	return e.eq
}

// Run solves the configured problem. The solver itself cannot be
// interrupted; a done context makes Run return ctx.Err() without waiting for
// it.
func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	if e.runner == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trace := &Trace{}
	s := rootfind.New(e.cfg.Solver)
	s.AddObserver(trace)
	for _, o := range e.observers {
		s.AddObserver(o)
	}

	type outcome struct {
		res *rootfind.Result
		err error
	}
	done := make(chan outcome, 1)

	start := time.Now()
	go func() {
		res, err := e.runner(s, e.eq, e.cfg)
		done <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("%s on %s: %w", e.cfg.Method, e.eq.Name, out.err)
		}
		return &Report{
			Method:   e.cfg.Method,
			Equation: e.eq.Name,
			Expr:     e.eq.Expr,
			Result:   out.res,
			Trace:    trace.Iterations,
			Elapsed:  time.Since(start),
		}, nil
	}
}

// FromConfig builds an experiment config from a loaded file config.
func FromConfig(c *config.Config) Config {
	return Config{
		Method:         c.Method,
		Equation:       c.Equation,
		A:              c.Interval.A,
		B:              c.Interval.B,
		X0:             c.Secant.X0,
		X1:             c.Secant.X1,
		Guess:          c.Newton.Guess,
		RequireBracket: c.Secant.RequireBracket,
		Solver:         c.Solver(),
	}
}
