// Package viz renders root-finding results in the terminal.
//
// The package owns all presentation state:
//
//   - [Chart]: sampled plot of f with a root marker, rendered with
//     asciigraph ([Chart.ASCII]) or on a Braille canvas ([Chart.Braille])
//   - [Canvas]: Braille-based pixel canvas
//   - [Styles]: lipgloss styles built from a [Theme]
//
// # Chart Range
//
// Bisection and secant results are plotted over the input interval; Newton
// results are plotted around the root (see [Range]).
package viz
