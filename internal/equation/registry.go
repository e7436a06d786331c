package equation

import (
	"fmt"
	"math"
	"sort"
)

type Registry struct {
	equations map[string]Equation
}

func NewRegistry() *Registry {
	r := &Registry{equations: make(map[string]Equation)}

	r.equations["quadratic"] = Equation{
		Name:   "quadratic",
		Expr:   "x^2 - 4",
		F:      func(x float64) float64 { return x*x - 4 },
		DF:     func(x float64) float64 { return 2 * x },
		Domain: [2]float64{-10, 10},
	}
	r.equations["cubic"] = Equation{
		Name:   "cubic",
		Expr:   "x^3 - 2x - 5",
		F:      func(x float64) float64 { return x*x*x - 2*x - 5 },
		DF:     func(x float64) float64 { return 3*x*x - 2 },
		Domain: [2]float64{-3, 4},
	}
	r.equations["cosine"] = Equation{
		Name:   "cosine",
		Expr:   "cos(x) - x",
		F:      func(x float64) float64 { return math.Cos(x) - x },
		DF:     func(x float64) float64 { return -math.Sin(x) - 1 },
		Domain: [2]float64{-2, 3},
	}
	r.equations["exponential"] = Equation{
		Name:   "exponential",
		Expr:   "e^x - 3",
		F:      func(x float64) float64 { return math.Exp(x) - 3 },
		DF:     math.Exp,
		Domain: [2]float64{-2, 3},
	}
	// No analytic derivative: Newton falls back to finite differences.
	r.equations["sine"] = Equation{
		Name:   "sine",
		Expr:   "sin(x) - x/2",
		F:      func(x float64) float64 { return math.Sin(x) - x/2 },
		Domain: [2]float64{-4, 4},
	}

	return r
}

func (r *Registry) Register(eq Equation) error {
	if eq.Name == "" {
		return fmt.Errorf("equation name is empty")
	}
	if eq.F == nil {
		return fmt.Errorf("equation %s: f is nil", eq.Name)
	}
	if _, ok := r.equations[eq.Name]; ok {
		return fmt.Errorf("equation %s already registered", eq.Name)
	}
	r.equations[eq.Name] = eq
	return nil
}

func (r *Registry) Get(name string) (Equation, error) {
	eq, ok := r.equations[name]
	if !ok {
		return Equation{}, fmt.Errorf("unknown equation: %s (available: %v)", name, r.List())
	}
	return eq, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.equations))
	for name := range r.equations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
