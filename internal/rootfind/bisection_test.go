package rootfind_test

import (
	"errors"
	"math"
	"math/rand"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootlab/internal/rootfind"
)

var _ = Describe("Bisect", func() {
	var cfg rootfind.Config

	BeforeEach(func() {
		cfg = rootfind.DefaultConfig()
	})

	It("finds the positive root of x^2-4 on [0, 10]", func() {
		res, err := rootfind.Bisect(quadratic, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Method).To(Equal(rootfind.MethodBisection))
		Expect(res.Root).To(BeNumerically("~", 2.0, 1e-6))
		Expect(rootfind.FormatRoot(res.Root)).To(Equal("2.000000"))
		Expect(res.Residual).To(Equal(quadratic(res.Root)))
	})

	It("solves transcendental equations", func() {
		res, err := rootfind.Bisect(func(x float64) float64 { return math.Cos(x) - x }, 0, 1, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 0.7390851332, 1e-6))

		res, err = rootfind.Bisect(func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 2.0945514815, 1e-6))
	})

	It("rejects an interval without a sign change", func() {
		_, err := rootfind.Bisect(quadratic, 3, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidBracket))

		var se *rootfind.SolveError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Method).To(Equal(rootfind.MethodBisection))
		Expect(se.Step).To(Equal(0))
	})

	It("rejects a bracket whose endpoint is an exact root", func() {
		_, err := rootfind.Bisect(quadratic, 2, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidBracket))
	})

	It("rejects NaN endpoints", func() {
		_, err := rootfind.Bisect(math.Log, -1, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidBracket))
	})

	It("fails on its own converged root used as a degenerate bracket", func() {
		res, err := rootfind.Bisect(quadratic, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())

		_, err = rootfind.Bisect(quadratic, res.Root, res.Root, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidBracket))
	})

	It("halves the bracket width on every step", func() {
		var widths []float64
		s := rootfind.New(cfg)
		s.AddObserver(rootfind.ObserverFunc(func(it rootfind.Iteration) {
			widths = append(widths, it.Delta)
		}))

		res, err := s.Bisect(quadratic, 0, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(widths).To(HaveLen(res.Iterations))
		Expect(widths[0]).To(BeNumerically("~", 5.0, 1e-12))
		for i := 1; i < len(widths); i++ {
			Expect(widths[i]).To(BeNumerically("~", widths[i-1]/2, 1e-12))
		}
		Expect(widths[len(widths)-1]).To(BeNumerically("<=", cfg.Epsilon))
		// ceil(log2(10 / 1e-6))
		Expect(res.Iterations).To(Equal(24))
	})

	It("moves the left end onto an exact midpoint root", func() {
		// f(left)*f(mid) == 0 takes the else branch, so the left end walks
		// past the root at 5 toward the right end of the interval.
		res, err := rootfind.Bisect(func(x float64) float64 { return x - 5 }, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically(">", 9.99))
		Expect(res.Root).To(BeNumerically("<=", 10))
	})

	It("accepts reversed endpoints", func() {
		res, err := rootfind.Bisect(quadratic, 10, 0, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 2.0, 1e-6))
	})

	It("terminates when epsilon is below float64 resolution", func() {
		cfg.Epsilon = 1e-300
		res, err := rootfind.Bisect(quadratic, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Root).To(BeNumerically("~", 2.0, 1e-15))
	})

	It("rejects a non-positive epsilon", func() {
		cfg.Epsilon = 0
		_, err := rootfind.Bisect(quadratic, 0, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidConfig))

		cfg.Epsilon = math.NaN()
		_, err = rootfind.Bisect(quadratic, 0, 10, cfg)
		Expect(err).To(MatchError(rootfind.ErrInvalidConfig))
	})

	It("stays inside any valid bracket", func() {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			r := rng.Float64()*200 - 100
			a := r - (0.1 + rng.Float64()*50)
			b := r + (0.1 + rng.Float64()*50)
			if rng.Intn(2) == 0 {
				a, b = b, a
			}
			f := func(x float64) float64 { return x - r }

			res, err := rootfind.Bisect(f, a, b, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Root).To(BeNumerically(">=", math.Min(a, b)))
			Expect(res.Root).To(BeNumerically("<=", math.Max(a, b)))
			Expect(math.Abs(f(res.Root))).To(BeNumerically("<=", cfg.Epsilon))
		}
	})

	It("gives the same answer under concurrent calls", func() {
		want, err := rootfind.Bisect(quadratic, 0, 10, cfg)
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		got := make([]float64, 32)
		for i := range got {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := rootfind.Bisect(quadratic, 0, 10, cfg)
				if err == nil {
					got[i] = res.Root
				}
			}()
		}
		wg.Wait()

		for _, root := range got {
			Expect(root).To(Equal(want.Root))
		}
	})
})
