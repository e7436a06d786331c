package rootfind_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootlab/internal/rootfind"
)

var _ = Describe("Secant", func() {
	var cfg rootfind.Config

	BeforeEach(func() {
		cfg = rootfind.DefaultConfig()
	})

	It("finds the positive root of x^2-4 from the default seeds", func() {
		res, err := rootfind.New(cfg).SecantDefault(quadratic)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Method).To(Equal(rootfind.MethodSecant))
		Expect(res.Root).To(BeNumerically("~", 2.0, 1e-6))
		Expect(rootfind.FormatRoot(res.Root)).To(Equal("2.000000"))
		Expect(res.Iterations).To(BeNumerically(">", 1))
	})

	It("agrees with the explicit-seed entry point", func() {
		a, err := rootfind.Secant(quadratic, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := rootfind.New(cfg).SecantDefault(quadratic)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("evaluates the new iterate only when it is observed or final", func() {
		calls := 0
		counted := func(x float64) float64 {
			calls++
			return quadratic(x)
		}

		res, err := rootfind.Secant(counted, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(2*res.Iterations + 1))
		Expect(res.Residual).To(Equal(quadratic(res.Root)))

		calls = 0
		s := rootfind.New(cfg)
		var trace []rootfind.Iteration
		s.AddObserver(rootfind.ObserverFunc(func(it rootfind.Iteration) { trace = append(trace, it) }))
		res, err = s.Secant(counted, 0, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(3 * res.Iterations))
		Expect(trace[len(trace)-1].FX).To(Equal(res.Residual))
	})

	It("fails on the first step when both seeds are equal", func() {
		_, err := rootfind.Secant(quadratic, 3, 3, cfg)
		Expect(err).To(MatchError(rootfind.ErrDegenerateSecant))

		var se *rootfind.SolveError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Step).To(Equal(1))
		Expect(se.X).To(Equal(3.0))
	})

	It("fails when two seeds share a function value", func() {
		_, err := rootfind.Secant(quadratic, -3, 3, cfg)
		Expect(err).To(MatchError(rootfind.ErrDegenerateSecant))
	})

	It("reports non-convergence once the iteration cap is spent", func() {
		cfg.MaxIterations = 3
		var steps int
		s := rootfind.New(cfg)
		s.AddObserver(rootfind.ObserverFunc(func(rootfind.Iteration) { steps++ }))

		res, err := s.Secant(quadratic, 0, 10)
		Expect(res).To(BeNil())
		Expect(err).To(MatchError(rootfind.ErrNotConverged))
		Expect(steps).To(Equal(3))

		var se *rootfind.SolveError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Step).To(Equal(3))
	})

	It("reports each displacement to observers", func() {
		var trace []rootfind.Iteration
		s := rootfind.New(cfg)
		s.AddObserver(rootfind.ObserverFunc(func(it rootfind.Iteration) {
			trace = append(trace, it)
		}))

		res, err := s.Secant(quadratic, 0, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(trace).To(HaveLen(res.Iterations))
		Expect(trace[0].X).To(BeNumerically("~", 0.4, 1e-12))
		Expect(trace[0].Delta).To(BeNumerically("~", 9.6, 1e-12))
		Expect(trace[len(trace)-1].Delta).To(BeNumerically("<", cfg.Epsilon))
		Expect(trace[len(trace)-1].X).To(Equal(res.Root))
	})

	It("solves the cubic x^3-2x-5", func() {
		res, err := rootfind.Secant(func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 2.0945514815, 1e-6))
	})

	It("rejects an invalid configuration", func() {
		cfg.MaxIterations = 0
		_, err := rootfind.Secant(quadratic, 0, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidConfig))

		cfg = rootfind.DefaultConfig()
		cfg.Epsilon = math.Inf(1)
		_, err = rootfind.Secant(quadratic, 0, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidConfig))
	})
})
