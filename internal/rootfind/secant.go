package rootfind

import "math"

// Secant iterates x2 = x1 - f1*(x1-x0)/(f1-f0) until two successive iterates
// are closer than epsilon. It fails with ErrDegenerateSecant when f1 == f0 and
// with ErrNotConverged once the iteration cap is spent.
func (s *Solver) Secant(f Func, x0, x1 float64) (*Result, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, fail(MethodSecant, 0, x1, err)
	}

	for i := 1; i <= s.cfg.MaxIterations; i++ {
		f0 := f(x0)
		f1 := f(x1)

		if f1-f0 == 0 {
			return nil, fail(MethodSecant, i, x1, ErrDegenerateSecant)
		}

		x2 := x1 - f1*(x1-x0)/(f1-f0)
		delta := math.Abs(x2 - x1)
		converged := delta < s.cfg.Epsilon

		var fx float64
		if converged || s.observed() {
			fx = f(x2)
		}
		s.notify(Iteration{Method: MethodSecant, Step: i, X: x2, FX: fx, Delta: delta})

		if converged {
			return &Result{
				Method:     MethodSecant,
				Root:       x2,
				Residual:   fx,
				Iterations: i,
			}, nil
		}

		x0, x1 = x1, x2
	}

	return nil, fail(MethodSecant, s.cfg.MaxIterations, x1, ErrNotConverged)
}
