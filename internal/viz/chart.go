package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rootlab/internal/rootfind"
)

// MaxSamples bounds the number of points a chart will sample.
const MaxSamples = 100000

type Point struct {
	X, Y float64
}

// Chart holds a sampled plot of f and an optional root marker. A Chart is
// owned by one view; Update replaces its contents in place.
type Chart struct {
	Caption string
	Series  []Point
	Root    *Point

	MinX, MaxX float64
	MinY, MaxY float64
}

func NewChart() *Chart {
	return &Chart{}
}

// Exists reports whether the chart has been drawn at least once.
func (c *Chart) Exists() bool {
	return len(c.Series) > 0
}

// Reset drops the plotted data so the chart is hidden.
func (c *Chart) Reset() {
	c.Series = nil
	c.Root = nil
}

// Update samples f at a, a+step, ... up to b and pads the y range by
// padding times the sampled span. Non-finite samples are kept in the series
// but ignored for the y range.
func (c *Chart) Update(f rootfind.Func, a, b, step, padding float64, root *float64) error {
	if !(step > 0) {
		return fmt.Errorf("chart step must be positive, got %g", step)
	}
	if a > b {
		a, b = b, a
	}
	// Checked as a float so huge, infinite and NaN spans never reach int.
	samples := (b - a) / step
	if !(samples < MaxSamples) {
		return fmt.Errorf("chart range [%g, %g] with step %g needs %g samples (max %d)", a, b, step, samples, MaxSamples)
	}
	n := int(math.Floor(samples)) + 1

	series := make([]Point, n)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := range series {
		x := a + float64(i)*step
		y := f(x)
		series[i] = Point{X: x, Y: y}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	if math.IsInf(minY, 1) {
		return fmt.Errorf("f has no finite values on [%g, %g]", a, b)
	}

	pad := (maxY - minY) * padding
	if pad == 0 {
		pad = 1
	}

	c.Series = series
	c.MinX, c.MaxX = a, series[n-1].X
	c.MinY, c.MaxY = minY-pad, maxY+pad
	c.Root = nil
	if root != nil {
		c.Root = &Point{X: *root, Y: f(*root)}
	}
	return nil
}

// Range returns the x range to plot for a solve. Bracketing and secant
// solves plot their input interval; Newton plots root ± span.
func Range(method rootfind.Method, a, b, root, span float64) (float64, float64) {
	if method == rootfind.MethodNewton {
		return root - span, root + span
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

func (c *Chart) values() []float64 {
	ys := make([]float64, len(c.Series))
	for i, p := range c.Series {
		ys[i] = p.Y
	}
	return ys
}

// ASCII renders the series with asciigraph. When the y range crosses zero a
// second series marks the x axis, so the root shows up where the curves meet.
func (c *Chart) ASCII(width, height int) string {
	if !c.Exists() {
		return ""
	}

	caption := c.Caption
	if c.Root != nil {
		caption = fmt.Sprintf("%s   root x ≈ %s", caption, rootfind.FormatRoot(c.Root.X))
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(c.MinY),
		asciigraph.UpperBound(c.MaxY),
		asciigraph.Caption(caption),
	}

	ys := c.values()
	if c.MinY < 0 && c.MaxY > 0 {
		axis := make([]float64, len(ys))
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red))
		return asciigraph.PlotMany([][]float64{ys, axis}, opts...)
	}
	return asciigraph.Plot(ys, opts...)
}

// Braille renders the series on a Braille canvas of width x height cells,
// with a dotted x axis and a square marker at the root.
func (c *Chart) Braille(width, height int) string {
	if !c.Exists() {
		return ""
	}

	cv := NewCanvas(width, height)
	px := func(x float64) int {
		span := c.MaxX - c.MinX
		if span == 0 {
			return 0
		}
		return int(math.Round((x - c.MinX) / span * float64(cv.PixelWidth()-1)))
	}
	py := func(y float64) int {
		return int(math.Round((c.MaxY - y) / (c.MaxY - c.MinY) * float64(cv.PixelHeight()-1)))
	}

	if c.MinY < 0 && c.MaxY > 0 {
		cv.DrawDottedHLine(py(0))
	}

	prev := -1
	for i, p := range c.Series {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			prev = -1
			continue
		}
		if prev >= 0 {
			q := c.Series[prev]
			cv.DrawLine(px(q.X), py(q.Y), px(p.X), py(p.Y))
		} else {
			cv.Set(px(p.X), py(p.Y))
		}
		prev = i
	}

	if c.Root != nil {
		cv.DrawMarker(px(c.Root.X), py(c.Root.Y), 1)
	}

	return cv.String()
}
