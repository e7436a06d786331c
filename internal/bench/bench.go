// Package bench times repeated solves and summarizes the timings.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/san-kum/rootlab/internal/experiment"
)

type Summary struct {
	Method     string
	Equation   string
	Runs       int
	Iterations int
	Root       float64
	Mean       time.Duration
	Median     time.Duration
	StdDev     time.Duration
	P95        time.Duration
	Min        time.Duration
	Max        time.Duration
}

// Run executes exp n times and summarizes the elapsed times. Every run must
// succeed; the first failure is returned.
func Run(ctx context.Context, exp *experiment.Experiment, n int) (*Summary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("run count must be positive, got %d", n)
	}

	samples := make(stats.Float64Data, 0, n)
	var last *experiment.Report
	for i := 0; i < n; i++ {
		report, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}
		samples = append(samples, float64(report.Elapsed.Nanoseconds()))
		last = report
	}

	mean, err := samples.Mean()
	if err != nil {
		return nil, err
	}
	median, err := samples.Median()
	if err != nil {
		return nil, err
	}
	stddev, err := samples.StandardDeviation()
	if err != nil {
		return nil, err
	}
	p95, err := samples.Percentile(95)
	if err != nil {
		return nil, err
	}
	lo, err := samples.Min()
	if err != nil {
		return nil, err
	}
	hi, err := samples.Max()
	if err != nil {
		return nil, err
	}

	return &Summary{
		Method:     last.Method,
		Equation:   last.Equation,
		Runs:       n,
		Iterations: last.Result.Iterations,
		Root:       last.Result.Root,
		Mean:       time.Duration(mean),
		Median:     time.Duration(median),
		StdDev:     time.Duration(stddev),
		P95:        time.Duration(p95),
		Min:        time.Duration(lo),
		Max:        time.Duration(hi),
	}, nil
}
