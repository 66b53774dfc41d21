package calculation

import (
	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/rpgo/retirement-calculator/internal/rng"
)

// PersonSettings is the unbound description of a person: a name, a
// current age split into whole years and a months remainder, and an
// annual death-rate table indexed from age 0.
type PersonSettings struct {
	Name             string
	AgeYears         int
	AgeMonths        int
	AnnualDeathRates []float64
}

// NewPersonSettings builds a PersonSettings from an explicit death-rate
// table. ageMonths must be in [0, 12) and ageYears must be within the
// table's range.
func NewPersonSettings(name string, ageYears, ageMonths int, annualDeathRates []float64) (PersonSettings, error) {
	if ageMonths < 0 || ageMonths >= 12 {
		return PersonSettings{}, domain.PreconditionViolation{Reason: "ageMonths must be in [0, 12)"}
	}
	if ageYears < 0 || ageYears >= len(annualDeathRates) {
		return PersonSettings{}, domain.PreconditionViolation{Reason: "ageYears must index into annualDeathRates"}
	}
	return PersonSettings{
		Name:             name,
		AgeYears:         ageYears,
		AgeMonths:        ageMonths,
		AnnualDeathRates: annualDeathRates,
	}, nil
}

// CreatePerson samples a stochastic remaining lifespan for this person
// from src, consuming the death-rate table starting at the person's
// current age.
func (s PersonSettings) CreatePerson(src rng.Source) Person {
	periods := CalculatePeriods(src, s.AnnualDeathRates[s.AgeYears:], s.AgeMonths)
	return Person{
		Name:     s.Name,
		Lifespan: domain.NewLifespan(periods),
	}
}

// Person is the realized, bound form of a PersonSettings for a single
// Run: a name and a sampled lifespan, fixed for that run's duration.
type Person struct {
	Name     string
	Lifespan domain.Lifespan
}
