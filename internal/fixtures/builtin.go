// Package fixtures loads historical rate pools and mortality tables for
// the simulation core, either from a bundled sample or from CSV files
// supplied by the caller. Nothing in internal/calculation imports this
// package directly; it is a config-layer and tooling collaborator only,
// keeping the simulation core free of file I/O.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rpgo/retirement-calculator/internal/domain"
)

// Gender selects which builtin mortality table backs a default
// PersonSettings.
type Gender int

const (
	Male Gender = iota
	Female
)

// sampleRatePool is a small compiled-in stocks/bonds/inflation history,
// used as the zero-config default and by tests that don't care about a
// realistic pool, only a non-trivial one.
var sampleRatePool = []domain.Rate{
	domain.NewRate(1.2886, 1.0994, 1.0254),
	domain.NewRate(0.8975, 1.0799, 1.0332),
	domain.NewRate(1.1083, 1.0482, 1.0171),
	domain.NewRate(1.2292, 1.0374, 1.0267),
	domain.NewRate(0.9312, 1.0927, 1.0324),
	domain.NewRate(1.1604, 1.0156, 1.0218),
	domain.NewRate(1.0214, 1.0643, 1.0112),
	domain.NewRate(0.8781, 1.1032, 1.0339),
	domain.NewRate(1.3141, 1.0071, 1.0147),
	domain.NewRate(1.0465, 1.0588, 1.0201),
	domain.NewRate(0.9609, 1.0721, 1.0283),
	domain.NewRate(1.1879, 1.0309, 1.0195),
}

// BuiltinRatePool returns the compiled-in sample rate history.
func BuiltinRatePool() []domain.Rate {
	out := make([]domain.Rate, len(sampleRatePool))
	copy(out, sampleRatePool)
	return out
}

// defaultAnnualDeathMale and defaultAnnualDeathFemale are small
// compiled-in annual death-probability tables indexed from age 0,
// standing in for a full actuarial table (which callers typically load
// from CSV via LoadDeathRatesCSV instead).
var defaultAnnualDeathMale = []float64{
	0.0052, 0.0058, 0.0065, 0.0074, 0.0086, 0.0102, 0.0124, 0.0156, 0.0201, 0.0268, 0.0371, 0.0534, 0.0793, 1.0,
}

var defaultAnnualDeathFemale = []float64{
	0.0038, 0.0043, 0.0049, 0.0057, 0.0067, 0.0080, 0.0099, 0.0127, 0.0168, 0.0230, 0.0328, 0.0484, 0.0737, 1.0,
}

// DefaultAnnualDeathRates returns the compiled-in death-rate table for
// gender.
func DefaultAnnualDeathRates(gender Gender) []float64 {
	switch gender {
	case Male:
		return append([]float64(nil), defaultAnnualDeathMale...)
	case Female:
		return append([]float64(nil), defaultAnnualDeathFemale...)
	default:
		panic(domain.PreconditionViolation{Reason: "unknown gender"})
	}
}

// LoadRatesCSV parses a rates.csv-shaped reader: a header row followed
// by stocks,bonds,inflation records.
func LoadRatesCSV(r io.Reader) ([]domain.Rate, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.CsvParseError{File: "rates.csv", Reason: err.Error()}
	}
	if len(records) == 0 {
		return nil, domain.CsvParseError{File: "rates.csv", Reason: "file is empty"}
	}

	header := records[0]
	if len(header) != 3 || header[0] != "stocks" || header[1] != "bonds" || header[2] != "inflation" {
		return nil, domain.CsvParseError{File: "rates.csv", Line: 1, Reason: "expected header stocks,bonds,inflation"}
	}

	rates := make([]domain.Rate, 0, len(records)-1)
	for i, row := range records[1:] {
		line := i + 2
		if len(row) != 3 {
			return nil, domain.CsvParseError{File: "rates.csv", Line: line, Reason: fmt.Sprintf("expected 3 fields, got %d", len(row))}
		}
		stocks, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, domain.CsvParseError{File: "rates.csv", Line: line, Reason: "stocks: " + err.Error()}
		}
		bonds, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, domain.CsvParseError{File: "rates.csv", Line: line, Reason: "bonds: " + err.Error()}
		}
		inflation, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, domain.CsvParseError{File: "rates.csv", Line: line, Reason: "inflation: " + err.Error()}
		}
		rates = append(rates, domain.NewRate(stocks, bonds, inflation))
	}
	return rates, nil
}

// LoadDeathRatesCSV parses a death_male.csv/death_female.csv-shaped
// reader: a single-column header followed by one annual death
// probability per row.
func LoadDeathRatesCSV(file string, r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.CsvParseError{File: file, Reason: err.Error()}
	}
	if len(records) < 2 {
		return nil, domain.CsvParseError{File: file, Reason: "file has no data rows"}
	}

	rates := make([]float64, 0, len(records)-1)
	for i, row := range records[1:] {
		line := i + 2
		if len(row) != 1 {
			return nil, domain.CsvParseError{File: file, Line: line, Reason: fmt.Sprintf("expected 1 field, got %d", len(row))}
		}
		rate, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, domain.CsvParseError{File: file, Line: line, Reason: err.Error()}
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
