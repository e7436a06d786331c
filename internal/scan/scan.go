// Package scan locates every root of a function inside a range by sampling it
// on a uniform grid and bisecting each cell that shows a sign change.
package scan

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/rootlab/internal/rootfind"
)

// Bracket is a grid cell [A, B]. When Exact is set, f(A) is exactly zero and
// A is itself a root.
type Bracket struct {
	A, B  float64
	Exact bool
}

// Brackets splits [a, b] into n equal cells and returns those with
// f(left)*f(right) < 0, plus every grid point where f is exactly zero.
func Brackets(f rootfind.Func, a, b float64, n int) ([]Bracket, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cell count must be positive, got %d", n)
	}
	if !(a < b) {
		return nil, fmt.Errorf("scan range [%g, %g] is empty", a, b)
	}

	width := (b - a) / float64(n)
	brackets := make([]Bracket, 0)

	left := a
	fl := f(left)
	for i := 1; i <= n; i++ {
		right := a + float64(i)*width
		if i == n {
			right = b
		}
		fr := f(right)

		switch {
		case fl == 0:
			brackets = append(brackets, Bracket{A: left, B: left, Exact: true})
		case fl*fr < 0:
			brackets = append(brackets, Bracket{A: left, B: right})
		}

		left, fl = right, fr
	}
	if fl == 0 {
		brackets = append(brackets, Bracket{A: left, B: left, Exact: true})
	}

	return brackets, nil
}

// FindAll bisects every bracket in [a, b] concurrently and returns the roots
// in ascending order.
func FindAll(ctx context.Context, f rootfind.Func, a, b float64, n int, cfg rootfind.Config) ([]float64, error) {
	brackets, err := Brackets(f, a, b, n)
	if err != nil {
		return nil, err
	}

	jobs := make([]rootfind.Job, len(brackets))
	for i, br := range brackets {
		br := br
		if br.Exact {
			jobs[i] = func(*rootfind.Solver) (*rootfind.Result, error) {
				return &rootfind.Result{Method: rootfind.MethodBisection, Root: br.A}, nil
			}
			continue
		}
		jobs[i] = func(s *rootfind.Solver) (*rootfind.Result, error) {
			return s.Bisect(f, br.A, br.B)
		}
	}

	results, err := rootfind.Batch(ctx, cfg, jobs)
	if err != nil {
		return nil, err
	}

	roots := make([]float64, 0, len(results))
	for _, res := range results {
		roots = append(roots, res.Root)
	}
	sort.Float64s(roots)

	return dedupe(roots, cfg.Epsilon), nil
}

// dedupe drops roots closer than eps to their predecessor.
func dedupe(sorted []float64, eps float64) []float64 {
	out := sorted[:0]
	for _, r := range sorted {
		if len(out) > 0 && math.Abs(r-out[len(out)-1]) < eps {
			continue
		}
		out = append(out, r)
	}
	return out
}
