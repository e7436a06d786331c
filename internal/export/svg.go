package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/rootlab/internal/viz"
)

// ChartToSVG writes the chart as an SVG document: a blue curve for f, a
// dashed x axis when y = 0 is in range, and a red dot at the root.
func ChartToSVG(w io.Writer, chart *viz.Chart, width, height int) error {
	if chart == nil || !chart.Exists() {
		return fmt.Errorf("chart has no data")
	}

	rangeX := chart.MaxX - chart.MinX
	if rangeX == 0 {
		rangeX = 1
	}
	rangeY := chart.MaxY - chart.MinY

	sx := func(x float64) float64 { return (x - chart.MinX) / rangeX * float64(width) }
	sy := func(y float64) float64 { return float64(height) - (y-chart.MinY)/rangeY*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	if chart.MinY < 0 && chart.MaxY > 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#999999" stroke-dasharray="4 4"/>
`, sy(0), width, sy(0)))
	}

	// Non-finite samples split the curve into separate subpaths.
	sb.WriteString(`<path fill="none" stroke="blue" stroke-width="1.5" d="`)
	penDown := false
	for _, p := range chart.Series {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			penDown = false
			continue
		}
		cmd := "L"
		if !penDown {
			cmd = "M"
			penDown = true
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f ", cmd, sx(p.X), sy(p.Y)))
	}
	sb.WriteString("\"/>\n")

	if chart.Root != nil {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="red" stroke="red"><title>root x ≈ %.6f</title></circle>
`, sx(chart.Root.X), sy(chart.Root.Y), chart.Root.X))
	}

	if chart.Caption != "" {
		sb.WriteString(fmt.Sprintf(`<text x="8" y="16" font-family="monospace" font-size="12">%s</text>
`, escape(chart.Caption)))
	}

	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
