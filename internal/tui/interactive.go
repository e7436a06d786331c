package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/experiment"
	"github.com/san-kum/rootlab/internal/input"
	"github.com/san-kum/rootlab/internal/rootfind"
	"github.com/san-kum/rootlab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var methodInfo = map[string]string{
	"bisection": "halve a sign-changing interval",
	"secant":    "chord through two points",
	"newton":    "follow the tangent",
}

type field int

const (
	fieldMethod field = iota
	fieldEquation
	fieldInput
	fieldCount
)

type model struct {
	cfg      *config.Config
	registry *experiment.Registry

	methods   []string
	equations []string
	method    int
	equation  int
	focus     field

	// One edit buffer per method, so switching methods keeps what was typed.
	inputs map[string]string

	chart  *viz.Chart
	styles viz.Styles
	root   float64
	err    error
	solved bool

	width  int
	height int
}

func newModel(cfg *config.Config) model {
	registry := experiment.NewRegistry()
	m := model{
		cfg:       cfg,
		registry:  registry,
		methods:   registry.ListMethods(),
		equations: registry.Equations().List(),
		inputs: map[string]string{
			string(rootfind.MethodBisection): fmt.Sprintf("[%g, %g]", cfg.Interval.A, cfg.Interval.B),
			string(rootfind.MethodSecant):    fmt.Sprintf("[%g, %g]", cfg.Secant.X0, cfg.Secant.X1),
			string(rootfind.MethodNewton):    fmt.Sprintf("%g", cfg.Newton.Guess),
		},
		chart:  viz.NewChart(),
		styles: viz.NewStyles(viz.ThemeClassic),
		focus:  fieldInput,
		width:  80,
		height: 24,
	}
	m.method = indexOf(m.methods, cfg.Method)
	m.equation = indexOf(m.equations, cfg.Equation)
	return m
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil
	case "enter":
		m.solve()
		return m, nil
	}

	switch m.focus {
	case fieldMethod:
		m.method = cycle(m.method, len(m.methods), msg.String())
	case fieldEquation:
		m.equation = cycle(m.equation, len(m.equations), msg.String())
	case fieldInput:
		buf := m.inputs[m.selectedMethod()]
		switch msg.Type {
		case tea.KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tea.KeyRunes:
			buf += string(msg.Runes)
		case tea.KeySpace:
			buf += " "
		}
		m.inputs[m.selectedMethod()] = buf
	}
	return m, nil
}

func cycle(i, n int, key string) int {
	switch key {
	case "left", "h":
		return (i + n - 1) % n
	case "right", "l", " ":
		return (i + 1) % n
	}
	return i
}

func (m model) selectedMethod() string {
	return m.methods[m.method]
}

func (m model) selectedEquation() string {
	return m.equations[m.equation]
}

// solve runs the selected method on the typed input. A failure of any kind
// hides the chart.
func (m *model) solve() {
	root, a, b, err := m.run()
	if err != nil {
		m.err = err
		m.solved = false
		m.chart.Reset()
		return
	}

	eq, _ := m.registry.GetEquation(m.selectedEquation())
	lo, hi := viz.Range(rootfind.Method(m.selectedMethod()), a, b, root, m.cfg.Chart.NewtonSpan)
	m.chart.Caption = "y = " + eq.Expr
	if err := m.chart.Update(eq.F, lo, hi, m.cfg.Chart.Step, m.cfg.Chart.Padding, &root); err != nil {
		m.chart.Reset()
	}
	m.root = root
	m.err = nil
	m.solved = true
}

func (m model) run() (root, a, b float64, err error) {
	cfg := experiment.FromConfig(m.cfg)
	cfg.Method = m.selectedMethod()
	cfg.Equation = m.selectedEquation()

	text := m.inputs[cfg.Method]
	switch rootfind.Method(cfg.Method) {
	case rootfind.MethodBisection:
		if cfg.A, cfg.B, err = input.ParseInterval(text); err != nil {
			return 0, 0, 0, err
		}
		a, b = cfg.A, cfg.B
	case rootfind.MethodSecant:
		if cfg.X0, cfg.X1, err = input.ParseInterval(text); err != nil {
			return 0, 0, 0, err
		}
		a, b = cfg.X0, cfg.X1
	case rootfind.MethodNewton:
		if cfg.Guess, err = input.ParseGuess(text); err != nil {
			return 0, 0, 0, err
		}
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(m.registry); err != nil {
		return 0, 0, 0, err
	}
	report, err := exp.Run(context.Background())
	if err != nil {
		return 0, 0, 0, err
	}
	return report.Result.Root, a, b, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("r o o t l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	b.WriteString(m.viewChoice(fieldMethod, "method", m.methods, m.method))
	b.WriteString("        " + dimmer.Render(fmt.Sprintf("%-10s", "")) + dim.Render(methodInfo[m.selectedMethod()]) + "\n")
	b.WriteString(m.viewChoice(fieldEquation, "equation", m.equations, m.equation))

	label := "interval"
	if m.selectedMethod() == string(rootfind.MethodNewton) {
		label = "guess"
	}
	val := m.inputs[m.selectedMethod()]
	if m.focus == fieldInput {
		b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", label)) + magenta.Render(val+"▋") + "\n")
	} else {
		b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", label)) + dim.Render(val) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString("      " + m.styles.ErrorLine(m.err) + "\n")
	case m.solved:
		b.WriteString("      " + m.styles.RootLine(m.root) + "\n")
	}

	if m.chart.Exists() {
		w := min(m.cfg.Chart.Width, max(m.width-16, 20))
		b.WriteString("\n")
		b.WriteString(m.styles.Curve.Render(m.chart.ASCII(w, m.cfg.Chart.Height)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      tab field  ←→ choose  enter solve  esc quit") + "\n")

	return b.String()
}

func (m model) viewChoice(f field, label string, options []string, selected int) string {
	var opts []string
	for i, o := range options {
		if i == selected {
			opts = append(opts, magenta.Render(o))
		} else {
			opts = append(opts, dimmer.Render(o))
		}
	}
	row := strings.Join(opts, " ")
	if m.focus == f {
		return "      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", label)) + row + "\n"
	}
	return "        " + dim.Render(fmt.Sprintf("%-10s", label)) + row + "\n"
}

// RunInteractive starts the solver form with cfg as its initial values.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
