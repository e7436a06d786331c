// Package rootfind provides numerical root finding for single-variable real
// functions.
//
// The package implements three classical methods:
//
//   - [Solver.Bisect]: bracketing method, halves an interval with a sign change
//   - [Solver.Secant]: open method using the line through the last two iterates
//   - [Solver.Newton]: open method using the function and its derivative
//
// Every failure is returned as a [*SolveError] wrapping one of the sentinel
// errors ([ErrInvalidBracket], [ErrDegenerateSecant], [ErrZeroDerivative],
// [ErrNotConverged], [ErrInvalidConfig]), so callers can match them with
// errors.Is.
//
// # Example
//
//	f := func(x float64) float64 { return x*x - 4 }
//	res, err := rootfind.Bisect(f, 0, 10, rootfind.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rootfind.FormatRoot(res.Root)) // 2.000000
//
// # Thread Safety
//
// A solve keeps all iterates on the stack, so concurrent calls are safe as
// long as the supplied functions are pure. A [Solver] with observers attached
// must not be shared if the observers themselves are not safe for concurrent
// use. [Batch] fans independent jobs out over goroutines.
package rootfind
