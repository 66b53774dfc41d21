package domain

// Rate is an immutable triple of monthly multipliers applied to an
// account's stock allocation, its bond allocation, and to income/tax
// figures that need inflation indexing.
type Rate struct {
	Stocks    float64
	Bonds     float64
	Inflation float64
}

// NewRate constructs a Rate. Nonnegativity of the multipliers is assumed
// of valid historical input; not enforced here, matching spec behavior.
func NewRate(stocks, bonds, inflation float64) Rate {
	return Rate{Stocks: stocks, Bonds: bonds, Inflation: inflation}
}
