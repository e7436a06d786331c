package rootfind

import "math"

// Newton iterates x <- x - f(x)/df(x) until the step is smaller than epsilon.
// df is trusted to be the derivative of f; nothing checks it.
func (s *Solver) Newton(f, df Func, x0 float64) (*Result, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, fail(MethodNewton, 0, x0, err)
	}

	x := x0
	for i := 1; i <= s.cfg.MaxIterations; i++ {
		d := df(x)
		if d == 0 {
			return nil, fail(MethodNewton, i, x, ErrZeroDerivative)
		}

		next := x - f(x)/d
		delta := math.Abs(next - x)
		converged := delta < s.cfg.Epsilon

		var fx float64
		if converged || s.observed() {
			fx = f(next)
		}
		s.notify(Iteration{Method: MethodNewton, Step: i, X: next, FX: fx, Delta: delta})

		if converged {
			return &Result{
				Method:     MethodNewton,
				Root:       next,
				Residual:   fx,
				Iterations: i,
			}, nil
		}

		x = next
	}

	return nil, fail(MethodNewton, s.cfg.MaxIterations, x, ErrNotConverged)
}
