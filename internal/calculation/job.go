package calculation

import (
	"github.com/rpgo/retirement-calculator/internal/domain"
)

// JobSettings is the unbound description of a job: a starting gross
// income, payroll-tax treatment, an annual raise schedule, and the
// accounts it funds.
type JobSettings struct {
	StartingGrossIncome         float64
	Fica                        domain.FICA
	Raise                       domain.RaiseSettings
	AccountContributionSettings []domain.AccountContributionSettings
}

// CreateJob binds JobSettings to a concrete lifespan (for the accounts,
// which must track balances for the full simulated life) and a
// careerspan (for income, which only accrues while working). rates
// must cover the full lifespan.
func (s JobSettings) CreateJob(lifespan, careerspan domain.Lifespan, rates []domain.Rate) (*Job, error) {
	if lifespan.Periods() != len(rates) {
		return nil, domain.PreconditionViolation{Reason: "rates length must equal lifespan periods"}
	}

	contributions := make([]domain.AccountContribution, len(s.AccountContributionSettings))
	for i, cs := range s.AccountContributionSettings {
		account, err := domain.NewAccount(cs.AccountSettings.StartingBalance, cs.AccountSettings.Allocation, rates)
		if err != nil {
			return nil, err
		}
		contributions[i] = domain.AccountContribution{
			Account:         account,
			ContributionPct: cs.ContributionPct,
			Source:          cs.Source,
			Taxability:      cs.Taxability,
		}
	}

	return &Job{
		startingGrossIncome:  s.StartingGrossIncome,
		grossIncome:          make([]float64, careerspan.Periods()),
		netIncome:            make([]float64, careerspan.Periods()),
		fica:                 s.Fica,
		raise:                s.Raise,
		rates:                rates,
		accountContributions: contributions,
	}, nil
}

// Job is the realized, bound form of a JobSettings for a single Run.
type Job struct {
	startingGrossIncome  float64
	grossIncome          []float64
	netIncome            []float64
	fica                 domain.FICA
	raise                domain.RaiseSettings
	rates                []domain.Rate
	accountContributions []domain.AccountContribution
}

// AccountContributions exposes the accounts this job funds, so a Run
// can fold them into its withdrawal pool after retirement.
func (j *Job) AccountContributions() []domain.AccountContribution {
	return j.accountContributions
}

// NetIncome returns the net (after tax, FICA, and post-tax
// contributions) income recorded so far, one entry per career period.
func (j *Job) NetIncome() []float64 {
	return j.netIncome
}

// CalculateIncomeForPeriod advances this job by one period: it
// rebalances and invests every funded account, determines gross income
// (carried flat, or raised at each new-year boundary), deposits pre-tax
// contributions, routes gross less the employee's own pre-tax
// contributions through tax, then subtracts FICA and post-tax
// contributions to land on net income.
func (j *Job) CalculateIncomeForPeriod(period domain.Period, tax domain.TaxCollector) {
	if period.Get() >= len(j.netIncome) {
		panic(domain.PreconditionViolation{Reason: "period out of range for this job's careerspan"})
	}

	for i := range j.accountContributions {
		j.accountContributions[i].Account.RebalanceAndInvestNextPeriod(period)
	}

	var gross float64
	switch {
	case period.Get() == 0:
		gross = j.startingGrossIncome
	case !period.IsNewYear():
		gross = j.grossIncome[period.Get()-1]
	default:
		inflationAdjustment := 1.0
		if j.raise.AdjustForInflation {
			inflationAdjustment = 1.0
			for _, r := range j.rates[period.Get()-12 : period.Get()] {
				inflationAdjustment *= r.Inflation
			}
		}
		gross = j.grossIncome[period.Get()-1] * j.raise.Amount * inflationAdjustment
	}
	j.grossIncome[period.Get()] = gross

	ficaDeduction := 0.0
	if j.fica.Kind == domain.FicaParticipant {
		ficaDeduction = gross * j.fica.SSRate
	}

	pretaxContributions := 0.0
	for i, c := range j.accountContributions {
		if c.Taxability != domain.PreTax {
			continue
		}
		if c.Source == domain.Employee {
			pretaxContributions += gross * c.ContributionPct
		}
		j.accountContributions[i].Account.Deposit(gross*c.ContributionPct, period)
	}

	taxable := gross - pretaxContributions
	net := tax.CollectIncomeTaxes(domain.NewTaxable(taxable), period).Leftover

	posttaxContributions := 0.0
	for i, c := range j.accountContributions {
		if c.Taxability != domain.PostTax {
			continue
		}
		posttaxContributions += gross * c.ContributionPct
		j.accountContributions[i].Account.Deposit(gross*c.ContributionPct, period)
	}

	j.netIncome[period.Get()] = net - ficaDeduction - posttaxContributions
}

// Retire ends this job's career: it returns the average monthly net
// income over the trailing 12 (or fewer, if the career was shorter)
// periods, for use by a withdrawal strategy sizing a replacement
// income stream, plus every account this job funded.
func (j *Job) Retire() (float64, []*domain.Account) {
	months := 12
	if len(j.netIncome) < months {
		months = len(j.netIncome)
	}

	sum := 0.0
	for _, v := range j.netIncome[len(j.netIncome)-months:] {
		sum += v
	}

	accounts := make([]*domain.Account, len(j.accountContributions))
	for i, c := range j.accountContributions {
		accounts[i] = c.Account
	}

	return sum / float64(months), accounts
}
