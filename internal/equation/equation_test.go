package equation

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
)

func TestRegistry_List(t *testing.T) {
	g := NewWithT(t)

	r := NewRegistry()
	g.Expect(r.List()).To(Equal([]string{"cosine", "cubic", "exponential", "quadratic", "sine"}))
}

func TestRegistry_Get(t *testing.T) {
	g := NewWithT(t)
	r := NewRegistry()

	eq, err := r.Get("quadratic")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(eq.F(2)).To(Equal(0.0))
	g.Expect(eq.DF(5)).To(Equal(10.0))
	g.Expect(eq.HasAnalyticDerivative()).To(BeTrue())

	_, err = r.Get("nonexistent")
	g.Expect(err).To(MatchError(ContainSubstring("unknown equation")))
}

func TestRegistry_Register(t *testing.T) {
	g := NewWithT(t)
	r := NewRegistry()

	err := r.Register(Equation{Name: "linear", F: func(x float64) float64 { return x - 1 }})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.List()).To(ContainElement("linear"))

	g.Expect(r.Register(Equation{Name: "linear", F: math.Sin})).NotTo(Succeed())
	g.Expect(r.Register(Equation{Name: "nil"})).NotTo(Succeed())
	g.Expect(r.Register(Equation{F: math.Sin})).NotTo(Succeed())
}

func TestEquation_Derivative(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"quadratic", 3},
		{"cubic", 1.5},
		{"cosine", 0.5},
		{"exponential", 1},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := r.Get(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			numeric := Equation{F: eq.F}.Derivative()
			if got, want := numeric(tt.x), eq.DF(tt.x); math.Abs(got-want) > 1e-6 {
				t.Errorf("numeric derivative at %v = %v, want %v", tt.x, got, want)
			}
		})
	}
}

func TestEquation_NumericFallback(t *testing.T) {
	g := NewWithT(t)

	eq, err := NewRegistry().Get("sine")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(eq.HasAnalyticDerivative()).To(BeFalse())

	df := eq.Derivative()
	g.Expect(df(0)).To(BeNumerically("~", 0.5, 1e-6))
}
