package calculation

import (
	"math"

	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/rpgo/retirement-calculator/internal/rng"
)

// convertAnnualDeathToMonthlySurvival expands a table of annual death
// probabilities into monthly survival probabilities, one entry per
// month of life covered by the table. offset shifts the first table
// entry's month count down (it is already offset months into its
// year), matching a person whose current age isn't an exact year
// boundary; it must be in [0, 12).
func convertAnnualDeathToMonthlySurvival(annualDeath []float64, offset int) []float64 {
	if len(annualDeath) == 0 {
		panic(domain.PreconditionViolation{Reason: "annualDeath must be non-empty"})
	}
	if offset < 0 || offset >= 12 {
		panic(domain.PreconditionViolation{Reason: "offset must be in [0, 12)"})
	}

	out := make([]float64, 0, len(annualDeath)*12-offset)
	for pos, prob := range annualDeath {
		count := 12
		if pos == 0 {
			count = 12 - offset
		}
		survival := math.Pow(1.0-prob, 1.0/12.0)
		for i := 0; i < count; i++ {
			out = append(out, survival)
		}
	}
	return out
}

// CalculatePeriods samples a stochastic remaining lifespan, in months,
// against annualDeath (a gender-appropriate annual death-rate table
// starting at the person's current age in whole years) and offset (the
// number of months already elapsed since that birthday). It repeatedly
// flips a survival coin for each successive month, holding the last
// table entry's rate for any month beyond the table's end, and returns
// the count of months survived before the first failure.
func CalculatePeriods(src rng.Source, annualDeath []float64, offset int) int {
	lifeRates := convertAnnualDeathToMonthlySurvival(annualDeath, offset)

	i := 0
	for {
		idx := i
		if idx > len(lifeRates)-1 {
			idx = len(lifeRates) - 1
		}
		if !rng.Bool(src, lifeRates[idx]) {
			return i
		}
		i++
	}
}
