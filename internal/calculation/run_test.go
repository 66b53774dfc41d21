package calculation

import (
	"testing"

	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sixPeriodRates() []domain.Rate {
	return []domain.Rate{
		domain.NewRate(1.25, 1.0, 1.0),
		domain.NewRate(1.5, 1.25, 1.0),
		domain.NewRate(0.75, 1.25, 1.5),
		domain.NewRate(1.25, 1.0, 1.0),
		domain.NewRate(1.5, 1.25, 1.0),
		domain.NewRate(0.75, 1.25, 1.5),
	}
}

func TestRunPopulateWithAdequateAssets(t *testing.T) {
	rates := sixPeriodRates()
	glide, err := domain.NewLinearGlide(1, 0.75, 2, 0.25)
	assert.NoError(t, err)

	accountSettings := domain.NewAccountSettings(2048.0, glide)
	contribSettings, err := domain.NewAccountContributionSettings(accountSettings, 0.25, domain.Employee, domain.PreTax)
	assert.NoError(t, err)

	jobSettings := JobSettings{
		StartingGrossIncome:         2048.0,
		Fica:                        domain.FICA{Kind: domain.FicaExempt},
		Raise:                       domain.RaiseSettings{Amount: 1.0},
		AccountContributionSettings: []domain.AccountContributionSettings{contribSettings},
	}
	lifespan := domain.NewLifespan(6)
	careerspan := domain.NewLifespan(3)
	job, err := jobSettings.CreateJob(lifespan, careerspan, rates)
	assert.NoError(t, err)

	run := &Run{rates: rates, lifespan: lifespan, careerspan: careerspan}
	run.populate(job, nullTax(t, lifespan.Periods()), NewProportionalWithdrawalStrategy())

	expectedBalance := []float64{2944.0, 4560.0, 5642.0, 4458.625, 4315.9453125, 3319.4384765625}
	balance := run.RetirementAccountBalance(0)
	for i := range expectedBalance {
		assert.InDeltaf(t, expectedBalance[i], balance[i], 1e-6, "period %d", i)
	}
	assert.Equal(t, 6, run.AssetsAdequatePeriods())
}

func TestRunPopulateWithInadequateAssets(t *testing.T) {
	rates := sixPeriodRates()
	glide, err := domain.NewLinearGlide(1, 0.75, 2, 0.25)
	assert.NoError(t, err)

	accountSettings := domain.NewAccountSettings(1024.0, glide)
	contribSettings, err := domain.NewAccountContributionSettings(accountSettings, 0.125, domain.Employee, domain.PreTax)
	assert.NoError(t, err)

	jobSettings := JobSettings{
		StartingGrossIncome:         2048.0,
		Fica:                        domain.FICA{Kind: domain.FicaExempt},
		Raise:                       domain.RaiseSettings{Amount: 1.0},
		AccountContributionSettings: []domain.AccountContributionSettings{contribSettings},
	}
	lifespan := domain.NewLifespan(6)
	careerspan := domain.NewLifespan(3)
	job, err := jobSettings.CreateJob(lifespan, careerspan, rates)
	assert.NoError(t, err)

	run := &Run{rates: rates, lifespan: lifespan, careerspan: careerspan}
	run.populate(job, nullTax(t, lifespan.Periods()), NewProportionalWithdrawalStrategy())

	expectedBalance := []float64{1472.0, 2280.0, 2821.0, 1205.3125, 0.0, 0.0}
	balance := run.RetirementAccountBalance(0)
	for i := range expectedBalance {
		assert.InDeltaf(t, expectedBalance[i], balance[i], 1e-6, "period %d", i)
	}
	assert.Equal(t, 4, run.AssetsAdequatePeriods())
}

// nullTax builds a Tax that never collects anything, mirroring the
// upstream tests' null mock tax collector (a zero deduction, zero-rate
// single bracket collects zero tax on any amount).
func nullTax(t *testing.T, periods int) *Tax {
	settings := domain.TaxSettings{Brackets: []domain.TaxBracket{{Floor: 0.0, Rate: 0.0}}}
	tax, err := NewTax(settings, flatRates(periods, 1.0), periods)
	assert.NoError(t, err)
	return tax
}
