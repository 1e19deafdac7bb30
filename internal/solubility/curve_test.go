package solubility_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solsim/internal/solubility"
)

var _ = Describe("Quadratic", func() {
	It("evaluates a + b·t + c·t²", func() {
		q := solubility.Quadratic{A: 13.3, B: 0.54, C: 0.0175}
		Expect(q.At(20)).To(BeNumerically("~", 31.1, 1e-9))
	})

	It("clamps negative values to zero", func() {
		q := solubility.Quadratic{A: -5, B: 0.1}
		Expect(q.At(0)).To(BeZero())
		Expect(q.At(100)).To(BeNumerically("~", 5, 1e-9))
	})

	It("prints only non-zero terms", func() {
		Expect(solubility.Quadratic{A: 73, B: 0.9}.String()).To(Equal("73 + 0.9·t"))
		Expect(solubility.Quadratic{A: 1, C: 2}.String()).To(Equal("1 + 2·t²"))
	})
})

var _ = Describe("Formula", func() {
	It("matches the equivalent quadratic", func() {
		f, err := solubility.NewFormula("13.3 + 0.54*t + 0.0175*t^2")
		Expect(err).NotTo(HaveOccurred())
		q := solubility.Quadratic{A: 13.3, B: 0.54, C: 0.0175}
		for t := 0.0; t <= 100; t += 5 {
			Expect(f.At(t)).To(BeNumerically("~", q.At(t), 1e-9))
		}
		Expect(f.String()).To(Equal("13.3 + 0.54*t + 0.0175*t^2"))
	})

	It("accepts integer-only expressions", func() {
		f, err := solubility.NewFormula("40")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.At(50)).To(Equal(40.0))
	})

	It("clamps negative output to zero", func() {
		f, err := solubility.NewFormula("10 - t")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.At(80)).To(BeZero())
	})

	It("rejects expressions that do not compile", func() {
		_, err := solubility.NewFormula("t +")
		Expect(err).To(MatchError(solubility.ErrInvalidCurve))
	})

	It("rejects unknown variables", func() {
		_, err := solubility.NewFormula("x * 2")
		Expect(err).To(MatchError(solubility.ErrInvalidCurve))
	})

	It("rejects non-finite values in the domain", func() {
		_, err := solubility.NewFormula("1 / t")
		Expect(err).To(MatchError(solubility.ErrInvalidCurve))
	})
})
