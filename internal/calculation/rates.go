package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/rpgo/retirement-calculator/internal/rng"
)

// generateRates draws length Rates from ratesIn by block bootstrap:
// repeatedly picking a uniform index into an extended range and
// resolving it to a contiguous run of up to sublength rates, trimming
// at the two ends of ratesIn where a full block isn't available.
//
// The sampled index space is [0, len(ratesIn)+sublength-1), matching
// the left-edge/right-edge widening below: an index under sublength-1
// yields a short run from the start of ratesIn, an index at or beyond
// len(ratesIn) yields a short run at its end, and anything in between
// yields a full sublength-long run ending at that index.
func generateRates(src rng.Source, ratesIn []domain.Rate, sublength, length int) []domain.Rate {
	if sublength == 0 {
		panic(domain.PreconditionViolation{Reason: "sublength must be > 0"})
	}
	if len(ratesIn) == 0 {
		panic(domain.PreconditionViolation{Reason: "ratesIn must be non-empty"})
	}
	if sublength > len(ratesIn) {
		panic(domain.PreconditionViolation{Reason: "sublength must be <= len(ratesIn)"})
	}

	rates := make([]domain.Rate, 0, length)
	top := uint64(len(ratesIn) + sublength - 1)

	for {
		num := int(src.Uint64n(top))

		var slice []domain.Rate
		switch {
		case num < sublength-1:
			slice = ratesIn[:num+1]
		case num >= len(ratesIn):
			slice = ratesIn[num-sublength+1:]
		default:
			slice = ratesIn[num+1-sublength : num+1]
		}

		remaining := length - len(rates)
		if len(slice) > remaining {
			slice = slice[:remaining]
		}

		rates = append(rates, slice...)

		if len(rates) == length {
			return rates
		}
	}
}

// RatesSource is a collaborator that hands back a bootstrapped Rate
// sequence for a given seeded source, sample-block length, and total
// length. It is the Go counterpart of the upstream RatesSource enum:
// a Builtin variant backed by the bundled historical pool, and a
// Custom variant backed by caller-supplied data (parsed from CSV or
// otherwise).
type RatesSource interface {
	GenerateRates(src rng.Source, sublength, length int) []domain.Rate
}

// BuiltinRateSource draws from the bundled historical stocks/bonds/
// inflation pool.
type BuiltinRateSource struct {
	pool []domain.Rate
}

// NewBuiltinRateSource builds a BuiltinRateSource over pool. Callers
// typically obtain pool from the fixtures package rather than
// constructing it directly.
func NewBuiltinRateSource(pool []domain.Rate) *BuiltinRateSource {
	return &BuiltinRateSource{pool: pool}
}

func (b *BuiltinRateSource) GenerateRates(src rng.Source, sublength, length int) []domain.Rate {
	return generateRates(src, b.pool, sublength, length)
}

// CustomRateSource draws from a caller-supplied historical pool, e.g.
// one loaded from a user's own CSV export.
type CustomRateSource struct {
	pool []domain.Rate
}

// NewCustomRateSource builds a CustomRateSource over pool.
func NewCustomRateSource(pool []domain.Rate) (*CustomRateSource, error) {
	if len(pool) == 0 {
		return nil, domain.PreconditionViolation{Reason: "custom rate pool must be non-empty"}
	}
	return &CustomRateSource{pool: pool}, nil
}

func (c *CustomRateSource) GenerateRates(src rng.Source, sublength, length int) []domain.Rate {
	return generateRates(src, c.pool, sublength, length)
}

// String satisfies fmt.Stringer for log lines that print which source
// fed a run.
func (b *BuiltinRateSource) String() string { return fmt.Sprintf("BuiltinRateSource(%d rates)", len(b.pool)) }
func (c *CustomRateSource) String() string {
	return fmt.Sprintf("CustomRateSource(%d rates)", len(c.pool))
}
