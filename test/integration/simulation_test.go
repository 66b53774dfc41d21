package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rpgo/retirement-calculator/internal/calculation"
	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/rpgo/retirement-calculator/internal/output"
)

func scenarioSettings(t *testing.T) calculation.RunSettings {
	t.Helper()

	pool := make([]domain.Rate, 36)
	for i := range pool {
		stocks := 1.0 + 0.08/12.0 + 0.001*float64(i%5)
		bonds := 1.0 + 0.03/12.0
		inflation := 1.0 + 0.025/12.0
		pool[i] = domain.NewRate(stocks, bonds, inflation)
	}

	glide, err := domain.NewLinearGlide(1, 0.8, 24, 0.4)
	assert.NoError(t, err)
	savings := domain.NewAccountSettings(20000.0, glide)
	pretaxContrib, err := domain.NewAccountContributionSettings(savings, 0.08, domain.Employee, domain.PreTax)
	assert.NoError(t, err)
	matchContrib, err := domain.NewAccountContributionSettings(savings, 0.03, domain.Employer, domain.PreTax)
	assert.NoError(t, err)

	jobSettings := calculation.JobSettings{
		StartingGrossIncome: 6000.0,
		Fica:                domain.FICA{Kind: domain.FicaParticipant, SSRate: 0.062},
		Raise:               domain.RaiseSettings{Amount: 1.03, AdjustForInflation: false},
		AccountContributionSettings: []domain.AccountContributionSettings{
			pretaxContrib,
			matchContrib,
		},
	}

	personSettings, err := calculation.NewPersonSettings(
		"Jordan", 30, 0,
		[]float64{
			0.005, 0.005, 0.005, 0.005, 0.005, 0.006, 0.006, 0.007, 0.008, 0.009,
			0.01, 0.012, 0.014, 0.016, 0.02, 0.025, 0.03, 0.04, 0.05, 0.07,
			0.09, 0.12, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.6, 0.7, 1.0,
		},
	)
	assert.NoError(t, err)

	return calculation.RunSettings{
		Rates:          calculation.NewBuiltinRateSource(pool),
		Sublength:      12,
		JobSettings:    jobSettings,
		PersonSettings: personSettings,
		CareerPeriods:  24,
		TaxSettings: domain.TaxSettings{
			Deduction: 12000.0,
			Brackets: []domain.TaxBracket{
				{Floor: 0, Rate: 0.1},
				{Floor: 20000, Rate: 0.22},
				{Floor: 80000, Rate: 0.32},
			},
		},
	}
}

// Running the same seed twice, against the same settings, must produce
// byte-for-byte identical results: same success ratio and the same
// final balance for every run. This is the determinism guarantee the
// whole engine depends on, since ExecuteRun seeds its PRNG explicitly
// rather than from any ambient source.
func TestSimulationIsDeterministicAcrossIndependentExecutions(t *testing.T) {
	settings := scenarioSettings(t)

	simA := calculation.NewSimulation(4242, 25, settings)
	simB := calculation.NewSimulation(4242, 25, settings)

	reportA := output.BuildReport(simA)
	reportB := output.BuildReport(simB)

	assert.Equal(t, reportA.SuccessRate, reportB.SuccessRate)
	assert.Equal(t, len(reportA.Runs), len(reportB.Runs))
	for i := range reportA.Runs {
		assert.Equal(t, reportA.Runs[i], reportB.Runs[i], "run %d diverged between executions", i)
	}
	assert.Equal(t, reportA.Percentiles, reportB.Percentiles)
}

// A different seed is free to diverge; this only asserts the engine
// runs end-to-end across every registered formatter without error.
func TestSimulationRunsEndToEndThroughEveryFormatter(t *testing.T) {
	settings := scenarioSettings(t)
	sim := calculation.NewSimulation(777, 40, settings)

	for _, err := range sim.Errs() {
		assert.NoError(t, err)
	}

	report := output.BuildReport(sim)
	assert.Equal(t, 40, report.SuccessRate.Denom)
	assert.Len(t, report.Runs, 40)

	for _, name := range output.AvailableFormatterNames() {
		formatter := output.GetFormatterByName(name)
		assert.NotNil(t, formatter)
		rendered, err := formatter.Format(report)
		assert.NoError(t, err)
		assert.NotEmpty(t, rendered)
	}
}
