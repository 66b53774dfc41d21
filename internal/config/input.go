// Package config loads and validates a complete simulation scenario
// from YAML, converting it into the settings internal/calculation
// needs to execute a Simulation.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/retirement-calculator/internal/calculation"
	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/rpgo/retirement-calculator/internal/fixtures"
	decimalmoney "github.com/rpgo/retirement-calculator/pkg/decimal"
	"github.com/rpgo/retirement-calculator/pkg/dateutil"
)

// PersonConfig describes one simulated person. Age can be given
// directly as age_years/age_months, or as a birth_date (YYYY-MM-DD)
// measured against as_of_date (defaulting to today); birth_date takes
// precedence when both are present.
type PersonConfig struct {
	Name      string `yaml:"name"`
	AgeYears  int    `yaml:"age_years"`
	AgeMonths int    `yaml:"age_months"`
	BirthDate string `yaml:"birth_date"`
	AsOfDate  string `yaml:"as_of_date"`
	Gender    string `yaml:"gender"`
}

// resolvedAge returns the age_years/age_months this person should use,
// converting BirthDate via dateutil.AgeYearsAndMonths when present.
func (p PersonConfig) resolvedAge() (years, months int, err error) {
	if p.BirthDate == "" {
		return p.AgeYears, p.AgeMonths, nil
	}

	birth, err := time.Parse("2006-01-02", p.BirthDate)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing person.birth_date: %w", err)
	}

	asOf := time.Now()
	if p.AsOfDate != "" {
		asOf, err = time.Parse("2006-01-02", p.AsOfDate)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing person.as_of_date: %w", err)
		}
	}

	years, months = dateutil.AgeYearsAndMonths(birth, asOf)
	return years, months, nil
}

// AccountConfig describes one account a job funds.
type AccountConfig struct {
	StartingBalance string  `yaml:"starting_balance"`
	GlideStart      float64 `yaml:"glide_start_stocks_pct"`
	GlideEnd        float64 `yaml:"glide_end_stocks_pct"`
	GlidePeriods    int     `yaml:"glide_periods"`
	PeriodsBefore   int     `yaml:"periods_before_glide"`
	ContributionPct float64 `yaml:"contribution_pct"`
	Source          string  `yaml:"source"`
	Taxability      string  `yaml:"taxability"`
}

// JobConfig describes a single income stream.
type JobConfig struct {
	StartingGrossIncome string          `yaml:"starting_gross_income"`
	FicaParticipant     bool            `yaml:"fica_participant"`
	SSRate              float64         `yaml:"ss_rate"`
	RaiseAmount         float64         `yaml:"raise_amount"`
	RaiseAdjustInfl     bool            `yaml:"raise_adjust_for_inflation"`
	CareerPeriods       int             `yaml:"career_periods"`
	Accounts            []AccountConfig `yaml:"accounts"`
}

// TaxBracketConfig is one bracket floor/rate pair.
type TaxBracketConfig struct {
	Floor string  `yaml:"floor"`
	Rate  float64 `yaml:"rate"`
}

// TaxConfig describes the progressive bracket schedule applied to
// income.
type TaxConfig struct {
	Deduction                   string             `yaml:"deduction"`
	AdjustDeductionForInflation bool               `yaml:"adjust_deduction_for_inflation"`
	AdjustBracketsForInflation  bool               `yaml:"adjust_brackets_for_inflation"`
	Brackets                    []TaxBracketConfig `yaml:"brackets"`
}

// RatesConfig selects where the historical rate pool comes from.
type RatesConfig struct {
	Source    string `yaml:"source"` // "builtin" or "csv"
	CSVPath   string `yaml:"csv_path"`
	Sublength int    `yaml:"block_length"`
}

// SimulationConfig is the YAML-unmarshaled root of a scenario: the
// person, job, tax rules, the historical rate source, and how many
// runs to simulate.
type SimulationConfig struct {
	Seed         uint64       `yaml:"seed"`
	Runs         int          `yaml:"runs"`
	Person       PersonConfig `yaml:"person"`
	Job          JobConfig    `yaml:"job"`
	Tax          TaxConfig    `yaml:"tax"`
	Rates        RatesConfig  `yaml:"rates"`
	DeathCSVPath string       `yaml:"death_csv_path"`
}

// LoadFromFile reads and parses a SimulationConfig from a YAML file.
func LoadFromFile(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseMoney(s string) (float64, error) {
	m, err := decimalmoney.NewMoneyFromString(s)
	if err != nil {
		return 0, err
	}
	f, _ := m.Decimal.Float64()
	return f, nil
}

// Validate checks a scenario before any Run executes: a positive run
// count, at least one tax bracket with the first floor written as "0"
// or "0.0", glide endpoints in [0,1], no employer post-tax account, and
// a block_length of at least 1. It does not check block_length against
// the size of the rate pool; a block_length larger than the pool makes
// the rate sampler panic when a Run starts.
func (c *SimulationConfig) Validate() error {
	if c.Runs <= 0 {
		return domain.PreconditionViolation{Reason: "runs must be > 0"}
	}
	if len(c.Tax.Brackets) == 0 {
		return domain.PreconditionViolation{Reason: "tax must have at least one bracket"}
	}
	if c.Tax.Brackets[0].Floor != "0" && c.Tax.Brackets[0].Floor != "0.0" {
		return domain.PreconditionViolation{Reason: "first tax bracket must start at floor 0"}
	}
	for _, a := range c.Job.Accounts {
		if a.GlideStart < 0.0 || a.GlideStart > 1.0 || a.GlideEnd < 0.0 || a.GlideEnd > 1.0 {
			return domain.PreconditionViolation{Reason: "account glide fractions must be in [0,1]"}
		}
		if a.Source == "employer" && a.Taxability == "posttax" {
			return domain.PreconditionViolation{Reason: "employer post-tax contributions are not permitted"}
		}
	}
	if c.Rates.Sublength < 1 {
		return domain.PreconditionViolation{Reason: "rates block_length must be >= 1"}
	}
	return nil
}

// Build converts a validated SimulationConfig into the
// calculation.RunSettings a Simulation needs, loading builtin or CSV
// rate and mortality data as configured.
func (c *SimulationConfig) Build() (calculation.RunSettings, error) {
	if err := c.Validate(); err != nil {
		return calculation.RunSettings{}, err
	}

	var ratesSource calculation.RatesSource
	switch c.Rates.Source {
	case "", "builtin":
		ratesSource = calculation.NewBuiltinRateSource(fixtures.BuiltinRatePool())
	case "csv":
		f, err := os.Open(c.Rates.CSVPath)
		if err != nil {
			return calculation.RunSettings{}, err
		}
		defer f.Close()
		pool, err := fixtures.LoadRatesCSV(f)
		if err != nil {
			return calculation.RunSettings{}, err
		}
		src, err := calculation.NewCustomRateSource(pool)
		if err != nil {
			return calculation.RunSettings{}, err
		}
		ratesSource = src
	default:
		return calculation.RunSettings{}, domain.PreconditionViolation{Reason: fmt.Sprintf("unknown rates source %q", c.Rates.Source)}
	}

	personSettings, err := c.buildPersonSettings()
	if err != nil {
		return calculation.RunSettings{}, err
	}

	jobSettings, err := c.buildJobSettings()
	if err != nil {
		return calculation.RunSettings{}, err
	}

	taxSettings, err := c.buildTaxSettings()
	if err != nil {
		return calculation.RunSettings{}, err
	}

	return calculation.RunSettings{
		Rates:          ratesSource,
		Sublength:      c.Rates.Sublength,
		JobSettings:    jobSettings,
		PersonSettings: personSettings,
		CareerPeriods:  c.Job.CareerPeriods,
		TaxSettings:    taxSettings,
	}, nil
}

func (c *SimulationConfig) buildPersonSettings() (calculation.PersonSettings, error) {
	var deathRates []float64
	if c.DeathCSVPath != "" {
		f, err := os.Open(c.DeathCSVPath)
		if err != nil {
			return calculation.PersonSettings{}, err
		}
		defer f.Close()
		deathRates, err = fixtures.LoadDeathRatesCSV(c.DeathCSVPath, f)
		if err != nil {
			return calculation.PersonSettings{}, err
		}
	} else {
		gender := fixtures.Male
		if c.Person.Gender == "female" {
			gender = fixtures.Female
		}
		deathRates = fixtures.DefaultAnnualDeathRates(gender)
	}

	years, months, err := c.Person.resolvedAge()
	if err != nil {
		return calculation.PersonSettings{}, err
	}

	return calculation.NewPersonSettings(c.Person.Name, years, months, deathRates)
}

func (c *SimulationConfig) buildJobSettings() (calculation.JobSettings, error) {
	startingGross, err := parseMoney(c.Job.StartingGrossIncome)
	if err != nil {
		return calculation.JobSettings{}, err
	}

	fica := domain.FICA{Kind: domain.FicaExempt}
	if c.Job.FicaParticipant {
		fica = domain.FICA{Kind: domain.FicaParticipant, SSRate: c.Job.SSRate}
	}

	contributions := make([]domain.AccountContributionSettings, len(c.Job.Accounts))
	for i, a := range c.Job.Accounts {
		startingBalance, err := parseMoney(a.StartingBalance)
		if err != nil {
			return calculation.JobSettings{}, err
		}
		glide, err := domain.NewLinearGlide(a.PeriodsBefore, a.GlideStart, a.GlidePeriods, a.GlideEnd)
		if err != nil {
			return calculation.JobSettings{}, err
		}
		accountSettings := domain.NewAccountSettings(startingBalance, glide)

		source := domain.Employee
		if a.Source == "employer" {
			source = domain.Employer
		}
		taxability := domain.PreTax
		if a.Taxability == "posttax" {
			taxability = domain.PostTax
		}

		cs, err := domain.NewAccountContributionSettings(accountSettings, a.ContributionPct, source, taxability)
		if err != nil {
			return calculation.JobSettings{}, err
		}
		contributions[i] = cs
	}

	return calculation.JobSettings{
		StartingGrossIncome:         startingGross,
		Fica:                        fica,
		Raise:                       domain.RaiseSettings{Amount: c.Job.RaiseAmount, AdjustForInflation: c.Job.RaiseAdjustInfl},
		AccountContributionSettings: contributions,
	}, nil
}

func (c *SimulationConfig) buildTaxSettings() (domain.TaxSettings, error) {
	deduction, err := parseMoney(c.Tax.Deduction)
	if err != nil {
		return domain.TaxSettings{}, err
	}

	brackets := make([]domain.TaxBracket, len(c.Tax.Brackets))
	for i, b := range c.Tax.Brackets {
		floor, err := parseMoney(b.Floor)
		if err != nil {
			return domain.TaxSettings{}, err
		}
		brackets[i] = domain.TaxBracket{Floor: floor, Rate: b.Rate}
	}

	return domain.TaxSettings{
		Brackets:                        brackets,
		AdjustBracketFloorsForInflation: c.Tax.AdjustBracketsForInflation,
		Deduction:                       deduction,
		AdjustDeductionForInflation:     c.Tax.AdjustDeductionForInflation,
	}, nil
}
