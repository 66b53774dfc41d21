package calculation

import (
	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/rpgo/retirement-calculator/internal/rng"
)

// RunSettings is everything a single Run needs that does not vary
// between runs of the same Simulation: where historical rates come
// from, the career's job and the retiree's person, and the tax and
// withdrawal rules applied throughout.
type RunSettings struct {
	Rates              RatesSource
	Sublength          int
	JobSettings        JobSettings
	PersonSettings     PersonSettings
	CareerPeriods      int
	TaxSettings        domain.TaxSettings
	WithdrawalStrategy WithdrawalStrategy
}

// Run is one full simulated life: a sampled lifespan, a bootstrapped
// rate path over that lifespan, a career that funds a set of accounts,
// and a retirement that draws them down until either the person's
// lifespan ends or the accounts can no longer cover the withdrawal.
type Run struct {
	rates                 []domain.Rate
	assetsAdequatePeriods int
	lifespan              domain.Lifespan
	careerspan            domain.Lifespan
	retirementAccounts    []*domain.Account
}

// ExecuteRun seeds a single run deterministically from seed: the
// person's lifespan, the bootstrapped rate path, and every subsequent
// draw all derive from it, so the same seed always reproduces the same
// run.
func ExecuteRun(seed uint64, settings RunSettings) (*Run, error) {
	src := rng.NewPCG(seed)

	person := settings.PersonSettings.CreatePerson(src)
	lifespan := person.Lifespan
	careerspan := domain.NewLifespan(settings.CareerPeriods)

	ratesSrc := rng.NewPCG(src.Uint64())
	rates := settings.Rates.GenerateRates(ratesSrc, settings.Sublength, lifespan.Periods())

	job, err := settings.JobSettings.CreateJob(lifespan, careerspan, rates)
	if err != nil {
		return nil, err
	}

	tax, err := NewTax(settings.TaxSettings, rates, lifespan.Periods())
	if err != nil {
		return nil, err
	}

	strategy := settings.WithdrawalStrategy
	if strategy == nil {
		strategy = NewProportionalWithdrawalStrategy()
	}

	run := &Run{
		rates:      rates,
		lifespan:   lifespan,
		careerspan: careerspan,
	}
	run.populate(job, tax, strategy)

	return run, nil
}

// populate runs the career phase (accruing income into the accounts a
// Job funds) followed by the retirement phase (drawing those accounts
// down against a fixed monthly withdrawal sized from the trailing
// career income), over one continuous period sequence. The retirement
// phase begins wherever the career phase left off, whether that was
// because careerspan ended or because the person's lifespan ended
// first.
func (r *Run) populate(job *Job, tax *Tax, strategy WithdrawalStrategy) {
	periods := r.lifespan.Range()

	i := 0
	for ; i < len(periods); i++ {
		period := periods[i]
		job.CalculateIncomeForPeriod(period, tax)
		r.assetsAdequatePeriods++

		if period.Get() == r.careerspan.Periods()-1 {
			i++
			break
		}
	}

	preRetirementMonthlyIncome, retirementAccounts := job.Retire()

	for ; i < len(periods); i++ {
		period := periods[i]
		for _, account := range retirementAccounts {
			account.RebalanceAndInvestNextPeriod(period)
		}

		if err := strategy.Execute(preRetirementMonthlyIncome, retirementAccounts, period); err != nil {
			break
		}

		r.assetsAdequatePeriods++
	}

	r.retirementAccounts = retirementAccounts
}

// Adequate reports whether this run's accounts covered every period of
// the sampled lifespan.
func (r *Run) Adequate() bool {
	return r.assetsAdequatePeriods >= r.lifespan.Periods()
}

// AssetsAdequatePeriods returns the number of periods this run's
// accounts fully covered the required withdrawal (or career income).
func (r *Run) AssetsAdequatePeriods() int {
	return r.assetsAdequatePeriods
}

// LifespanPeriods returns this run's sampled lifespan, in months.
func (r *Run) LifespanPeriods() int {
	return r.lifespan.Periods()
}

// RetirementAccountBalance returns the full per-month balance vector
// for the retirement account at idx.
func (r *Run) RetirementAccountBalance(idx int) []float64 {
	return r.retirementAccounts[idx].Balance()
}

// RetirementAccountCount returns how many accounts this run carried
// into retirement.
func (r *Run) RetirementAccountCount() int {
	return len(r.retirementAccounts)
}
