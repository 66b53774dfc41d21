package domain

// MoneyKind tags a Money value as subject to income tax or not.
type MoneyKind int

const (
	Taxable MoneyKind = iota
	NonTaxable
)

// Money is a tagged monetary amount: Taxable receipts flow through a
// TaxCollector before becoming spendable; NonTaxable receipts do not.
type Money struct {
	Kind   MoneyKind
	Amount float64
}

// NewTaxable wraps amt as a Taxable Money value.
func NewTaxable(amt float64) Money {
	return Money{Kind: Taxable, Amount: amt}
}

// NewNonTaxable wraps amt as a NonTaxable Money value.
func NewNonTaxable(amt float64) Money {
	return Money{Kind: NonTaxable, Amount: amt}
}

// TaxResult splits a Money amount into taxes withheld and what is left
// over. Invariant: Taxes+Leftover == the original amount for Taxable
// money; Taxes == 0 and Leftover == amount for NonTaxable money.
type TaxResult struct {
	Taxes    float64
	Leftover float64
}

// TaxBracket is one marginal-rate tier: every dollar from Floor up to the
// next bracket's Floor (or to infinity, for the top bracket) is taxed at
// Rate.
type TaxBracket struct {
	Floor float64
	Rate  float64
}

// TaxSettings configures a progressive, optionally inflation-indexed
// income tax with a flat standard deduction.
type TaxSettings struct {
	Brackets                        []TaxBracket
	AdjustBracketFloorsForInflation bool
	Deduction                       float64
	AdjustDeductionForInflation     bool
}

// TaxCollector is the narrow interface Job depends on, so tests can
// substitute deterministic stubs (flat-rate, zero-tax) without pulling in
// a real bracket engine.
type TaxCollector interface {
	CollectIncomeTaxes(m Money, t Period) TaxResult
}
