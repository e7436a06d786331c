package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rootlab/internal/rootfind"
)

type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Curve   lipgloss.Style
	Marker  lipgloss.Style
	Panel   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:   lipgloss.NewStyle().Foreground(t.Secondary),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Success: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Curve:   lipgloss.NewStyle().Foreground(t.Curve),
		Marker:  lipgloss.NewStyle().Foreground(t.Marker),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// RootText is the plain result line shown after a successful solve.
func RootText(x float64) string {
	return "Root: x ≈ " + rootfind.FormatRoot(x)
}

// ErrorText is the plain line shown after a failed solve.
func ErrorText(err error) string {
	return "Error: " + err.Error()
}

func (s Styles) RootLine(x float64) string {
	return s.Success.Render(RootText(x))
}

func (s Styles) ErrorLine(err error) string {
	return s.Error.Render(ErrorText(err))
}

// KeyValue renders aligned "label  value" rows.
func (s Styles) KeyValue(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(s.Label.Render(r[0] + strings.Repeat(" ", width-len(r[0]))))
		b.WriteString("  ")
		b.WriteString(s.Value.Render(r[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// Separator renders a muted horizontal rule.
func (s Styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.Muted.Render(left + " ◆ " + right)
}
