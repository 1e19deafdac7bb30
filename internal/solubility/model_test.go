package solubility_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solsim/internal/solubility"
)

var _ = Describe("Table", func() {
	var table *solubility.Table

	BeforeEach(func() {
		table = solubility.DefaultTable()
	})

	It("registers the built-in substances in order", func() {
		Expect(table.Keys()).To(Equal([]string{"NaNO3", "KNO3", "CuSO4", "NaCl"}))
	})

	It("keeps every curve non-negative over the domain", func() {
		for _, key := range table.Keys() {
			for t := solubility.MinTemp; t <= solubility.MaxTemp; t += 0.5 {
				v, err := table.Solubility(key, t)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(BeNumerically(">=", 0), "%s at %g", key, t)
			}
		}
	})

	It("fails fast on an unknown substance", func() {
		_, err := table.Solubility("H2O", 20)
		Expect(errors.Is(err, solubility.ErrUnknownSubstance)).To(BeTrue())

		_, err = table.Evaluate(solubility.State{Substance: "", Temperature: 20, Solvent: 100})
		Expect(err).To(MatchError(solubility.ErrUnknownSubstance))
	})

	It("cycles through substances with Next", func() {
		Expect(table.Next("NaNO3")).To(Equal("KNO3"))
		Expect(table.Next("NaCl")).To(Equal("NaNO3"))
		Expect(table.Next("bogus")).To(Equal("NaNO3"))
	})

	It("gives CuSO4 a distinct tint", func() {
		cu, err := table.Lookup("CuSO4")
		Expect(err).NotTo(HaveOccurred())
		na, err := table.Lookup("NaCl")
		Expect(err).NotTo(HaveOccurred())
		Expect(cu.Tint).To(Equal(solubility.TintBlue))
		Expect(na.Tint).To(Equal(solubility.TintNeutral))
	})

	It("rejects substances without a key or curve", func() {
		Expect(table.Register(solubility.Substance{Curve: solubility.Quadratic{A: 1}})).
			To(MatchError(solubility.ErrInvalidInput))
		Expect(table.Register(solubility.Substance{Key: "X"})).
			To(MatchError(solubility.ErrInvalidCurve))
	})
})

var _ = Describe("Evaluate", func() {
	var table *solubility.Table

	BeforeEach(func() {
		table = solubility.DefaultTable()
	})

	It("fully dissolves 30 g NaCl in 100 g water at 25 °C", func() {
		res, err := table.Evaluate(solubility.State{Substance: "NaCl", Temperature: 25, Solvent: 100, Solute: 30})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.PerHundred).To(BeNumerically("~", 36.575, 1e-9))
		Expect(res.Precipitate).To(BeZero())
		Expect(res.Saturation).To(Equal(solubility.Unsaturated))
	})

	It("precipitates 8.9 g KNO3 at 20 °C", func() {
		res, err := table.Evaluate(solubility.State{Substance: "KNO3", Temperature: 20, Solvent: 100, Solute: 40})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.PerHundred).To(BeNumerically("~", 31.1, 1e-9))
		Expect(res.MaxDissolvable).To(BeNumerically("~", 31.1, 1e-9))
		Expect(res.Precipitate).To(BeNumerically("~", 8.9, 1e-9))
		Expect(res.Dissolved()).To(BeNumerically("~", 31.1, 1e-9))
		Expect(res.Saturation).To(Equal(solubility.Supersaturated))
	})

	It("precipitates all solute when there is no water", func() {
		for _, solute := range []float64{0.5, 10, 200} {
			res, err := table.Evaluate(solubility.State{Substance: "NaNO3", Temperature: 50, Solvent: 0, Solute: solute})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.MaxDissolvable).To(BeZero())
			Expect(res.Precipitate).To(Equal(solute))
		}
	})

	It("treats zero solute as fully dissolved", func() {
		res, err := table.Evaluate(solubility.State{Substance: "KNO3", Temperature: 0, Solvent: 0, Solute: 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Precipitate).To(BeZero())
		Expect(res.Relative()).To(BeZero())
	})

	It("marks an exactly saturated solution", func() {
		res, err := table.Evaluate(solubility.State{Substance: "CuSO4", Temperature: 0, Solvent: 100, Solute: 14.3})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Saturation).To(Equal(solubility.Saturated))
		Expect(res.Precipitate).To(BeZero())
	})

	It("clamps temperatures to the domain", func() {
		hot, err := table.Evaluate(solubility.State{Substance: "NaCl", Temperature: 150, Solvent: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(hot.State.Temperature).To(Equal(solubility.MaxTemp))

		cold, err := table.Evaluate(solubility.State{Substance: "NaCl", Temperature: -20, Solvent: 100})
		Expect(err).NotTo(HaveOccurred())
		Expect(cold.State.Temperature).To(Equal(solubility.MinTemp))
	})

	DescribeTable("rejects invalid states",
		func(s solubility.State) {
			s.Substance = "NaCl"
			_, err := table.Evaluate(s)
			Expect(errors.Is(err, solubility.ErrInvalidInput)).To(BeTrue())
			var ie *solubility.InputError
			Expect(errors.As(err, &ie)).To(BeTrue())
		},
		Entry("NaN temperature", solubility.State{Temperature: math.NaN(), Solvent: 100}),
		Entry("infinite solute", solubility.State{Temperature: 20, Solvent: 100, Solute: math.Inf(1)}),
		Entry("negative solvent", solubility.State{Temperature: 20, Solvent: -1}),
		Entry("negative solute", solubility.State{Temperature: 20, Solvent: 100, Solute: -3}),
	)

	It("never reports negative precipitate and is zero below the limit", func() {
		for _, key := range table.Keys() {
			for t := 0.0; t <= 100; t += 10 {
				for solvent := 0.0; solvent <= 200; solvent += 25 {
					for solute := 0.0; solute <= 200; solute += 20 {
						res, err := table.Evaluate(solubility.State{Substance: key, Temperature: t, Solvent: solvent, Solute: solute})
						Expect(err).NotTo(HaveOccurred())
						Expect(res.Precipitate).To(BeNumerically(">=", 0))
						if solute <= res.MaxDissolvable {
							Expect(res.Precipitate).To(BeZero())
						}
					}
				}
			}
		}
	})
})

var _ = Describe("Relative", func() {
	It("scales to 100 g of water", func() {
		Expect(solubility.Relative(20, 50)).To(BeNumerically("~", 40, 1e-12))
	})

	It("is infinite for solute without water", func() {
		Expect(math.IsInf(solubility.Relative(5, 0), 1)).To(BeTrue())
	})
})
