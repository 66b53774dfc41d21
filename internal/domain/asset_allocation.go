package domain

// AssetAllocation is a time-indexed stocks fraction; bonds is always the
// complement. It is built once and shared read-only across every Account
// and Run that references it.
type AssetAllocation struct {
	stocksGlide []float64
}

// NewAssetAllocation validates and wraps an explicit glide vector.
func NewAssetAllocation(stocksGlide []float64) (*AssetAllocation, error) {
	if len(stocksGlide) < 1 {
		return nil, PreconditionViolation{Reason: "asset allocation glide must have at least one entry"}
	}
	for _, f := range stocksGlide {
		if f < 0.0 || f > 1.0 {
			return nil, PreconditionViolation{Reason: "asset allocation fraction out of [0,1]"}
		}
	}
	cp := make([]float64, len(stocksGlide))
	copy(cp, stocksGlide)
	return &AssetAllocation{stocksGlide: cp}, nil
}

// NewLinearGlide builds an allocation that holds stocks fraction
// startStocks for periodsBefore months, then glides linearly to
// endStocks over the following
// periodsGlide months.
func NewLinearGlide(periodsBefore int, startStocks float64, periodsGlide int, endStocks float64) (*AssetAllocation, error) {
	if periodsBefore < 1 {
		return nil, PreconditionViolation{Reason: "periodsBefore must be >= 1"}
	}
	if periodsGlide < 1 {
		return nil, PreconditionViolation{Reason: "periodsGlide must be >= 1"}
	}
	if startStocks < 0.0 || startStocks > 1.0 || endStocks < 0.0 || endStocks > 1.0 {
		return nil, PreconditionViolation{Reason: "glide endpoints must lie in [0,1]"}
	}

	glide := make([]float64, periodsBefore+periodsGlide)
	for i := range glide[:periodsBefore] {
		glide[i] = startStocks
	}
	for i := periodsBefore; i < periodsBefore+periodsGlide; i++ {
		frac := float64(i-periodsBefore+1) / float64(periodsGlide)
		glide[i] = frac*(endStocks-startStocks) + startStocks
	}
	return &AssetAllocation{stocksGlide: glide}, nil
}

// Stocks returns the target stocks fraction at a period, clamping to the
// last glide entry once period exceeds the glide's length.
func (a *AssetAllocation) Stocks(t Period) float64 {
	if t.Get() < len(a.stocksGlide) {
		return a.stocksGlide[t.Get()]
	}
	return a.stocksGlide[len(a.stocksGlide)-1]
}

// Bonds is the complement of Stocks.
func (a *AssetAllocation) Bonds(t Period) float64 {
	return 1.0 - a.Stocks(t)
}
