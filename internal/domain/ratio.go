package domain

import "fmt"

// Ratio is a num/denom pair with fraction and percent formatting.
type Ratio struct {
	Num   int
	Denom int
}

// AsRatio formats as "num/denom".
func (r Ratio) AsRatio() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Denom)
}

// AsPercent formats as a one-decimal-place percentage, e.g. "50.0%".
func (r Ratio) AsPercent() string {
	return fmt.Sprintf("%.1f%%", float64(r.Num)/float64(r.Denom)*100.0)
}
