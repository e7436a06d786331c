// Package equation supplies the functions the solvers work on: f(x), its
// derivative, and the range a chart of f should cover by default.
package equation

import (
	"gonum.org/v1/gonum/diff/fd"

	"github.com/san-kum/rootlab/internal/rootfind"
)

type Equation struct {
	Name string
	// Expr is a human-readable form of f, for display only.
	Expr   string
	F      rootfind.Func
	DF     rootfind.Func
	Domain [2]float64
}

// Derivative returns DF when the equation carries one, otherwise a central
// difference approximation of F.
func (e Equation) Derivative() rootfind.Func {
	if e.DF != nil {
		return e.DF
	}
	f := e.F
	return func(x float64) float64 {
		return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central})
	}
}

// HasAnalyticDerivative reports whether DF was supplied.
func (e Equation) HasAnalyticDerivative() bool {
	return e.DF != nil
}
