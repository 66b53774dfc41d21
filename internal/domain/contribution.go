package domain

// FicaKind selects whether a worker pays FICA-style payroll tax.
type FicaKind int

const (
	FicaExempt FicaKind = iota
	FicaParticipant
)

// FICA models payroll withholding as a flat fraction of gross, or none.
type FICA struct {
	Kind   FicaKind
	SSRate float64
}

// RaiseSettings describes the annual raise applied at each new-year
// boundary during a career.
type RaiseSettings struct {
	Amount             float64
	AdjustForInflation bool
}

// AccountContributionSource distinguishes a worker's own contribution
// from an employer match.
type AccountContributionSource int

const (
	Employee AccountContributionSource = iota
	Employer
)

// AccountContributionTaxability distinguishes contributions made from
// pre-tax gross from those made out of post-tax pay. Only an Employee
// PreTax contribution reduces the worker's taxable income; an Employer
// PreTax contribution does not.
type AccountContributionTaxability int

const (
	PreTax AccountContributionTaxability = iota
	PostTax
)

// AccountContributionSettings is the unbound description of a
// contribution stream: an account plus the fraction of gross it draws,
// who funds it, and its tax treatment.
type AccountContributionSettings struct {
	AccountSettings AccountSettings
	ContributionPct float64
	Source          AccountContributionSource
	Taxability      AccountContributionTaxability
}

// NewAccountContributionSettings validates and constructs
// AccountContributionSettings. (Employer, PostTax) is not a permitted
// combination.
func NewAccountContributionSettings(settings AccountSettings, pct float64, source AccountContributionSource, taxability AccountContributionTaxability) (AccountContributionSettings, error) {
	if source == Employer && taxability == PostTax {
		return AccountContributionSettings{}, PreconditionViolation{Reason: "employer post-tax contributions are not permitted"}
	}
	return AccountContributionSettings{
		AccountSettings: settings,
		ContributionPct: pct,
		Source:          source,
		Taxability:      taxability,
	}, nil
}

// AccountContribution binds AccountContributionSettings to a live
// Account once a Job has built one for the full lifespan.
type AccountContribution struct {
	Account         *Account
	ContributionPct float64
	Source          AccountContributionSource
	Taxability      AccountContributionTaxability
}
