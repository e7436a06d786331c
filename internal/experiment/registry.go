package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/rootlab/internal/equation"
	"github.com/san-kum/rootlab/internal/rootfind"
)

// Runner solves eq with s using the inputs held in cfg.
type Runner func(s *rootfind.Solver, eq equation.Equation, cfg Config) (*rootfind.Result, error)

type Registry struct {
	methods   map[rootfind.Method]Runner
	equations *equation.Registry
}

func NewRegistry() *Registry {
	r := &Registry{
		methods:   make(map[rootfind.Method]Runner),
		equations: equation.NewRegistry(),
	}

	r.methods[rootfind.MethodBisection] = func(s *rootfind.Solver, eq equation.Equation, cfg Config) (*rootfind.Result, error) {
		return s.Bisect(eq.F, cfg.A, cfg.B)
	}
	r.methods[rootfind.MethodSecant] = func(s *rootfind.Solver, eq equation.Equation, cfg Config) (*rootfind.Result, error) {
		if cfg.RequireBracket && !(eq.F(cfg.X0)*eq.F(cfg.X1) < 0) {
			return nil, fmt.Errorf("secant seeds [%g, %g]: %w", cfg.X0, cfg.X1, rootfind.ErrInvalidBracket)
		}
		return s.Secant(eq.F, cfg.X0, cfg.X1)
	}
	r.methods[rootfind.MethodNewton] = func(s *rootfind.Solver, eq equation.Equation, cfg Config) (*rootfind.Result, error) {
		return s.Newton(eq.F, eq.Derivative(), cfg.Guess)
	}

	return r
}

func (r *Registry) GetMethod(name string) (Runner, error) {
	fn, ok := r.methods[rootfind.Method(name)]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s (available: %v)", name, r.ListMethods())
	}
	return fn, nil
}

func (r *Registry) GetEquation(name string) (equation.Equation, error) {
	return r.equations.Get(name)
}

func (r *Registry) Equations() *equation.Registry {
	return r.equations
}

func (r *Registry) ListMethods() []string {
	names := make([]string, 0, len(r.methods))
	for m := range r.methods {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}
