package calculation

import (
	"github.com/rpgo/retirement-calculator/internal/domain"
)

// Tax is a domain.TaxCollector that applies a progressive federal-style
// bracket schedule to year-to-date marginal income: every dollar
// collected this period is taxed at the rate implied by the income
// that has already accrued this calendar year, so two deposits of the
// same amount in the same year can owe different taxes depending on
// what preceded them.
type Tax struct {
	settings    domain.TaxSettings
	rates       []domain.Rate
	grossIncome []float64
}

// NewTax builds a Tax over a fixed-length simulation. len(rates) must
// equal periods.
func NewTax(settings domain.TaxSettings, rates []domain.Rate, periods int) (*Tax, error) {
	if len(rates) != periods {
		return nil, domain.PreconditionViolation{Reason: "rates length must equal periods"}
	}
	return &Tax{
		settings:    settings,
		rates:       rates,
		grossIncome: make([]float64, periods),
	}, nil
}

// cumulativeInflation multiplies the inflation rates of the 12 periods
// immediately preceding yearStart, or 1.0 if yearStart is the first
// year (nothing has compounded yet).
func (tx *Tax) cumulativeInflation(yearStart int) float64 {
	if yearStart <= 0 {
		return 1.0
	}
	factor := 1.0
	for _, r := range tx.rates[yearStart-12 : yearStart] {
		factor *= r.Inflation
	}
	return factor
}

// calculateTaxAmount returns the total tax owed on money dollars of
// cumulative annual income, given the bracket schedule in effect at
// period (inflated, if configured, by the inflation of the 12 months
// before period's year start; see cumulativeInflation).
func (tx *Tax) calculateTaxAmount(money float64, period domain.Period) float64 {
	if len(tx.settings.Brackets) == 0 {
		panic(domain.PreconditionViolation{Reason: "tax settings must have at least one bracket"})
	}

	deductionInflation := 1.0
	if tx.settings.AdjustDeductionForInflation {
		deductionInflation = tx.cumulativeInflation(period.RoundDownToYear().Get())
	}
	money -= tx.settings.Deduction * deductionInflation

	bracketInflation := 1.0
	if tx.settings.AdjustBracketFloorsForInflation {
		bracketInflation = tx.cumulativeInflation(period.RoundDownToYear().Get())
	}

	brackets := tx.settings.Brackets
	taxes := 0.0
	for i := 0; i < len(brackets)-1; i++ {
		bracket := brackets[i]
		next := brackets[i+1]

		if money < bracket.Floor*bracketInflation {
			break
		}

		ceil := money
		if next.Floor*bracketInflation < ceil {
			ceil = next.Floor * bracketInflation
		}
		inBracket := ceil - bracket.Floor*bracketInflation
		taxes += inBracket * bracket.Rate
	}

	last := brackets[len(brackets)-1]
	if money > last.Floor*bracketInflation {
		inBracket := money - last.Floor*bracketInflation
		taxes += inBracket * last.Rate
	}

	return taxes
}

// CollectIncomeTaxes implements domain.TaxCollector. Non-taxable money
// passes through untaxed. Taxable money is taxed at its year-to-date
// marginal rate: the tax already assessed on this year's income so far
// is subtracted from the tax that would be owed after adding amt, and
// only the difference is collected.
func (tx *Tax) CollectIncomeTaxes(m domain.Money, period domain.Period) domain.TaxResult {
	if m.Kind == domain.NonTaxable {
		return domain.TaxResult{Taxes: 0.0, Leftover: m.Amount}
	}

	yearBegin := period.RoundDownToYear()
	cumulative := 0.0
	for i := yearBegin.Get(); i <= period.Get(); i++ {
		cumulative += tx.grossIncome[i]
	}

	taxesPaid := tx.calculateTaxAmount(cumulative, period)
	tx.grossIncome[period.Get()] += m.Amount
	totalTaxes := tx.calculateTaxAmount(cumulative+m.Amount, period)

	taxes := totalTaxes - taxesPaid
	return domain.TaxResult{Taxes: taxes, Leftover: m.Amount - taxes}
}
