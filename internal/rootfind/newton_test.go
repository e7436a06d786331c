package rootfind_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootlab/internal/rootfind"
)

var _ = Describe("Newton", func() {
	var cfg rootfind.Config

	BeforeEach(func() {
		cfg = rootfind.DefaultConfig()
	})

	It("finds the positive root of x^2-4 from the default guess", func() {
		res, err := rootfind.New(cfg).NewtonDefault(quadratic, quadraticPrime)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Method).To(Equal(rootfind.MethodNewton))
		Expect(res.Root).To(BeNumerically("~", 2.0, 1e-6))
		Expect(rootfind.FormatRoot(res.Root)).To(Equal("2.000000"))
	})

	It("finds the negative root from a negative guess", func() {
		res, err := rootfind.Newton(quadratic, quadraticPrime, -5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", -2.0, 1e-6))
	})

	It("evaluates the new iterate only when it is observed or final", func() {
		calls := 0
		counted := func(x float64) float64 {
			calls++
			return quadratic(x)
		}

		res, err := rootfind.Newton(counted, quadraticPrime, 5, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(res.Iterations + 1))
		Expect(res.Residual).To(Equal(quadratic(res.Root)))

		calls = 0
		s := rootfind.New(cfg)
		var trace []rootfind.Iteration
		s.AddObserver(rootfind.ObserverFunc(func(it rootfind.Iteration) { trace = append(trace, it) }))
		res, err = s.Newton(counted, quadraticPrime, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(2 * res.Iterations))
		Expect(trace[len(trace)-1].FX).To(Equal(res.Residual))
	})

	It("fails immediately when the derivative vanishes at the guess", func() {
		var steps int
		s := rootfind.New(cfg)
		s.AddObserver(rootfind.ObserverFunc(func(rootfind.Iteration) { steps++ }))

		_, err := s.Newton(quadratic, quadraticPrime, 0)
		Expect(err).To(MatchError(rootfind.ErrZeroDerivative))
		Expect(steps).To(BeZero())

		var se *rootfind.SolveError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Method).To(Equal(rootfind.MethodNewton))
		Expect(se.Step).To(Equal(1))
		Expect(se.X).To(Equal(0.0))
		Expect(se.Error()).To(ContainSubstring("derivative is zero"))
	})

	It("stops a two-cycle at the iteration cap", func() {
		// From 0 the iterates alternate between 0 and 1 exactly.
		f := func(x float64) float64 { return x*x*x - 2*x + 2 }
		df := func(x float64) float64 { return 3*x*x - 2 }
		cfg.MaxIterations = 50

		var xs []float64
		s := rootfind.New(cfg)
		s.AddObserver(rootfind.ObserverFunc(func(it rootfind.Iteration) {
			xs = append(xs, it.X)
		}))

		_, err := s.Newton(f, df, 0)
		Expect(err).To(MatchError(rootfind.ErrNotConverged))
		Expect(xs).To(HaveLen(50))
		Expect(xs[0]).To(Equal(1.0))
		Expect(xs[1]).To(Equal(0.0))
	})

	It("converges quadratically on cos(x)-x", func() {
		res, err := rootfind.Newton(
			func(x float64) float64 { return math.Cos(x) - x },
			func(x float64) float64 { return -math.Sin(x) - 1 },
			1, cfg,
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 0.7390851332, 1e-9))
		Expect(res.Iterations).To(BeNumerically("<", 10))
	})

	It("rejects an invalid configuration", func() {
		cfg.Epsilon = -1
		_, err := rootfind.Newton(quadratic, quadraticPrime, 5, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidConfig))
	})
})
