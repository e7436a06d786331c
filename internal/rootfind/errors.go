package rootfind

import (
	"errors"
	"fmt"
)

// Domain errors for root finding.
var (
	// ErrInvalidBracket indicates the interval endpoints do not straddle a sign change.
	ErrInvalidBracket = errors.New("rootfind: function has the same sign at both ends of the interval")

	// ErrDegenerateSecant indicates two iterates with equal function values.
	ErrDegenerateSecant = errors.New("rootfind: secant slope is zero (division by zero)")

	// ErrZeroDerivative indicates the derivative vanished at the current iterate.
	ErrZeroDerivative = errors.New("rootfind: derivative is zero (division by zero)")

	// ErrNotConverged indicates the iteration cap was reached.
	ErrNotConverged = errors.New("rootfind: method did not converge")

	// ErrInvalidConfig indicates a non-positive tolerance or iteration cap.
	ErrInvalidConfig = errors.New("rootfind: invalid solver configuration")
)

// SolveError wraps an error with the state of the solve that produced it.
type SolveError struct {
	Method  Method
	Step    int
	X       float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%s: step %d (x=%g): %v", e.Method, e.Step, e.X, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}

func fail(m Method, step int, x float64, err error) error {
	return &SolveError{Method: m, Step: step, X: x, Wrapped: err}
}
