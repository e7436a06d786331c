package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/rootlab/internal/bench"
	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/experiment"
	"github.com/san-kum/rootlab/internal/export"
	"github.com/san-kum/rootlab/internal/rootfind"
	"github.com/san-kum/rootlab/internal/scan"
	"github.com/san-kum/rootlab/internal/tui"
	"github.com/san-kum/rootlab/internal/viz"
)

var (
	equationName string
	interval     string
	a            float64
	b            float64
	x0           float64
	x1           float64
	guess        float64
	eps          float64
	maxIter      int
	configFile   string
	preset       string
	verbose      bool
	theme        string

	format    string
	braille   bool
	width     int
	height    int
	svgWidth  int
	svgHeight int
	outFile   string
	cells     int
	runs      int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rootlab",
		Short:        "numerical root finding lab",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, nil)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&equationName, "equation", config.DefaultEquation, "equation name")
	pf.StringVar(&interval, "interval", "", `interval "[a, b]" (bisection bracket and secant seeds)`)
	pf.Float64Var(&a, "a", config.DefaultA, "bisection left end")
	pf.Float64Var(&b, "b", config.DefaultB, "bisection right end")
	pf.Float64Var(&x0, "x0", rootfind.DefaultSecantX0, "first secant seed")
	pf.Float64Var(&x1, "x1", rootfind.DefaultSecantX1, "second secant seed")
	pf.Float64Var(&guess, "guess", rootfind.DefaultNewtonSeed, "newton initial guess")
	pf.Float64Var(&eps, "eps", rootfind.DefaultEpsilon, "tolerance")
	pf.IntVar(&maxIter, "max-iter", rootfind.DefaultMaxIterations, "iteration cap (secant, newton)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every iteration to stderr")
	pf.StringVar(&theme, "theme", viz.ThemeClassic.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	solveCmd := &cobra.Command{
		Use:   "solve [method]",
		Short: "find a root",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solve,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [method]",
		Short: "find a root and plot the function around it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plot,
	}
	plotCmd.Flags().BoolVar(&braille, "braille", false, "draw on a braille canvas")
	plotCmd.Flags().IntVar(&width, "width", 0, "chart width (0 uses the config)")
	plotCmd.Flags().IntVar(&height, "height", 0, "chart height (0 uses the config)")

	traceCmd := &cobra.Command{
		Use:   "trace [method]",
		Short: "print every iteration of a solve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  trace,
	}
	traceCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")

	svgCmd := &cobra.Command{
		Use:   "svg [method]",
		Short: "write the chart of a solve as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  svg,
	}
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "find every root in the interval",
		Args:  cobra.NoArgs,
		RunE:  scanRoots,
	}
	scanCmd.Flags().IntVar(&cells, "cells", 100, "number of subintervals to check for sign changes")

	benchCmd := &cobra.Command{
		Use:   "bench [method]",
		Short: "time repeated solves",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchSolve,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 1000, "number of solves")

	equationsCmd := &cobra.Command{
		Use:   "equations",
		Short: "list available equations",
		Args:  cobra.NoArgs,
		RunE:  listEquations,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [equation]",
		Short: "list available presets for an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for equation: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range presets {
				p := config.GetPreset(args[0], name)
				fmt.Fprintf(w, "  %s\t%s\t%s\n", name, p.Method, describeInputs(p))
			}
			return w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive solver form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, nil)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	rootCmd.AddCommand(solveCmd, plotCmd, traceCmd, svgCmd, scanCmd, benchCmd, equationsCmd, presetsCmd, tuiCmd)
	return rootCmd
}

func describeInputs(c *config.Config) string {
	switch rootfind.Method(c.Method) {
	case rootfind.MethodSecant:
		return fmt.Sprintf("x0=%g x1=%g", c.Secant.X0, c.Secant.X1)
	case rootfind.MethodNewton:
		return fmt.Sprintf("guess=%g eps=%g", c.Newton.Guess, c.Epsilon)
	default:
		return fmt.Sprintf("[%g, %g]", c.Interval.A, c.Interval.B)
	}
}

// newExperiment resolves the config and sets up an experiment for it, with
// the iteration logger attached when --verbose is set.
func newExperiment(cmd *cobra.Command, args []string) (*experiment.Experiment, *config.Config, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	exp := experiment.New(experiment.FromConfig(cfg))
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return nil, nil, err
	}
	if verbose {
		exp.AddObserver(iterationLogger(log.New(os.Stderr, "[rootlab] ", 0)))
	}
	return exp, cfg, nil
}

func iterationLogger(l *log.Logger) rootfind.Observer {
	return rootfind.ObserverFunc(func(it rootfind.Iteration) {
		l.Printf("%s step %d: x=%.6f f(x)=%.6g delta=%.3g", it.Method, it.Step, it.X, it.FX, it.Delta)
	})
}

func solve(cmd *cobra.Command, args []string) error {
	exp, _, err := newExperiment(cmd, args)
	if err != nil {
		return err
	}

	report, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	styles := viz.NewStyles(viz.GetTheme(theme))
	fmt.Println(styles.RootLine(report.Result.Root))
	fmt.Print(styles.KeyValue([][2]string{
		{"method", report.Method},
		{"equation", fmt.Sprintf("%s (%s)", report.Equation, report.Expr)},
		{"residual", fmt.Sprintf("%.3g", report.Result.Residual)},
		{"iterations", fmt.Sprint(report.Result.Iterations)},
		{"elapsed", report.Elapsed.String()},
	}))
	return nil
}

// chartFor runs the solve and plots f over the range the method calls for.
func chartFor(cmd *cobra.Command, args []string) (*viz.Chart, *experiment.Report, *config.Config, error) {
	exp, cfg, err := newExperiment(cmd, args)
	if err != nil {
		return nil, nil, nil, err
	}

	report, err := exp.Run(context.Background())
	if err != nil {
		return nil, nil, nil, err
	}

	ec := exp.Config()
	lo, hi := ec.A, ec.B
	if rootfind.Method(ec.Method) == rootfind.MethodSecant {
		lo, hi = ec.X0, ec.X1
	}
	lo, hi = viz.Range(rootfind.Method(ec.Method), lo, hi, report.Result.Root, cfg.Chart.NewtonSpan)

	chart := viz.NewChart()
	chart.Caption = "y = " + report.Expr
	root := report.Result.Root
	if err := chart.Update(exp.Equation().F, lo, hi, cfg.Chart.Step, cfg.Chart.Padding, &root); err != nil {
		return nil, nil, nil, err
	}
	return chart, report, cfg, nil
}

func plot(cmd *cobra.Command, args []string) error {
	chart, report, cfg, err := chartFor(cmd, args)
	if err != nil {
		return err
	}

	w, h := cfg.Chart.Width, cfg.Chart.Height
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}

	styles := viz.NewStyles(viz.GetTheme(theme))
	fmt.Println(styles.RootLine(report.Result.Root))
	fmt.Println()
	if braille {
		fmt.Println(styles.Title.Render(chart.Caption))
		fmt.Print(styles.Curve.Render(chart.Braille(w, h)))
		fmt.Println()
		return nil
	}
	fmt.Println(chart.ASCII(w, h))
	return nil
}

func trace(cmd *cobra.Command, args []string) error {
	exp, _, err := newExperiment(cmd, args)
	if err != nil {
		return err
	}

	report, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.WriteTraceCSV(os.Stdout, report.Trace)
	case "json":
		return export.WriteReportJSON(os.Stdout, report)
	default:
		return fmt.Errorf("unknown format: %s (available: csv, json)", format)
	}
}

func svg(cmd *cobra.Command, args []string) error {
	chart, _, _, err := chartFor(cmd, args)
	if err != nil {
		return err
	}

	if outFile == "" {
		return export.ChartToSVG(os.Stdout, chart, svgWidth, svgHeight)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := export.ChartToSVG(f, chart, svgWidth, svgHeight); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func scanRoots(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	eq, err := registry.GetEquation(cfg.Equation)
	if err != nil {
		return err
	}

	roots, err := scan.FindAll(context.Background(), eq.F, cfg.Interval.A, cfg.Interval.B, cells, cfg.Solver())
	if err != nil {
		return err
	}

	if len(roots) == 0 {
		fmt.Printf("no sign changes of %s on [%g, %g]\n", eq.Expr, cfg.Interval.A, cfg.Interval.B)
		return nil
	}

	fmt.Printf("roots of %s on [%g, %g]:\n", eq.Expr, cfg.Interval.A, cfg.Interval.B)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tX\tF(X)")
	for i, r := range roots {
		fmt.Fprintf(w, "%d\t%s\t%.3g\n", i+1, rootfind.FormatRoot(r), eq.F(r))
	}
	return w.Flush()
}

func benchSolve(cmd *cobra.Command, args []string) error {
	// per-iteration logging would dominate the timings
	verbose = false

	exp, _, err := newExperiment(cmd, args)
	if err != nil {
		return err
	}

	s, err := bench.Run(context.Background(), exp, runs)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s on %s (%d runs, %d iterations, root %s)\n\n",
		s.Method, s.Equation, s.Runs, s.Iterations, rootfind.FormatRoot(s.Root))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEAN\tMEDIAN\tSTDDEV\tP95\tMIN\tMAX")
	fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n", s.Mean, s.Median, s.StdDev, s.P95, s.Min, s.Max)
	return w.Flush()
}

func listEquations(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	eqs := registry.Equations()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEXPRESSION\tDERIVATIVE\tDOMAIN")
	for _, name := range eqs.List() {
		eq, err := eqs.Get(name)
		if err != nil {
			return err
		}
		deriv := "numeric"
		if eq.HasAnalyticDerivative() {
			deriv = "analytic"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\n", eq.Name, eq.Expr, deriv, eq.Domain[0], eq.Domain[1])
	}
	return w.Flush()
}
