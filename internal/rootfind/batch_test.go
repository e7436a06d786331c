package rootfind_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootlab/internal/rootfind"
)

var _ = Describe("Batch", func() {
	It("returns results in job order", func() {
		jobs := []rootfind.Job{
			func(s *rootfind.Solver) (*rootfind.Result, error) { return s.Bisect(quadratic, 0, 10) },
			func(s *rootfind.Solver) (*rootfind.Result, error) { return s.Bisect(quadratic, -10, 0) },
			func(s *rootfind.Solver) (*rootfind.Result, error) { return s.SecantDefault(quadratic) },
			func(s *rootfind.Solver) (*rootfind.Result, error) { return s.NewtonDefault(quadratic, quadraticPrime) },
		}

		results, err := rootfind.Batch(context.Background(), rootfind.DefaultConfig(), jobs)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		Expect(results[0].Root).To(BeNumerically("~", 2, 1e-6))
		Expect(results[1].Root).To(BeNumerically("~", -2, 1e-6))
		Expect(results[2].Method).To(Equal(rootfind.MethodSecant))
		Expect(results[3].Method).To(Equal(rootfind.MethodNewton))
	})

	It("surfaces the failure of any job", func() {
		jobs := []rootfind.Job{
			func(s *rootfind.Solver) (*rootfind.Result, error) { return s.Bisect(quadratic, 0, 10) },
			func(s *rootfind.Solver) (*rootfind.Result, error) { return s.Newton(quadratic, quadraticPrime, 0) },
		}

		_, err := rootfind.Batch(context.Background(), rootfind.DefaultConfig(), jobs)
		Expect(err).To(MatchError(rootfind.ErrZeroDerivative))
	})

	It("does not start jobs on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		jobs := []rootfind.Job{
			func(s *rootfind.Solver) (*rootfind.Result, error) {
				ran = true
				return s.Bisect(quadratic, 0, 10)
			},
		}

		_, err := rootfind.Batch(ctx, rootfind.DefaultConfig(), jobs)
		Expect(err).To(MatchError(context.Canceled))
		Expect(ran).To(BeFalse())
	})
})
