package fixtures

import (
	"strings"
	"testing"

	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuiltinRatePoolIsNonEmptyAndCopied(t *testing.T) {
	pool := BuiltinRatePool()
	assert.NotEmpty(t, pool)

	pool[0] = domain.NewRate(0, 0, 0)
	pool2 := BuiltinRatePool()
	assert.NotEqual(t, pool[0], pool2[0])
}

func TestDefaultAnnualDeathRates(t *testing.T) {
	male := DefaultAnnualDeathRates(Male)
	female := DefaultAnnualDeathRates(Female)
	assert.NotEmpty(t, male)
	assert.NotEmpty(t, female)
	assert.NotEqual(t, male, female)
}

func TestLoadRatesCSVValid(t *testing.T) {
	data := "stocks,bonds,inflation\n1.1,1.02,1.03\n0.9,1.01,1.02\n"
	rates, err := LoadRatesCSV(strings.NewReader(data))
	assert.NoError(t, err)
	assert.Len(t, rates, 2)
	assert.Equal(t, domain.NewRate(1.1, 1.02, 1.03), rates[0])
}

func TestLoadRatesCSVBadHeader(t *testing.T) {
	data := "a,b,c\n1.1,1.02,1.03\n"
	_, err := LoadRatesCSV(strings.NewReader(data))
	assert.Error(t, err)
	assert.IsType(t, domain.CsvParseError{}, err)
}

func TestLoadRatesCSVBadField(t *testing.T) {
	data := "stocks,bonds,inflation\nnotanumber,1.02,1.03\n"
	_, err := LoadRatesCSV(strings.NewReader(data))
	assert.Error(t, err)
	parseErr, ok := err.(domain.CsvParseError)
	assert.True(t, ok)
	assert.Equal(t, 2, parseErr.Line)
}

func TestLoadDeathRatesCSVValid(t *testing.T) {
	data := "annual_death_rate\n0.01\n0.02\n0.5\n"
	rates, err := LoadDeathRatesCSV("death_male.csv", strings.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.01, 0.02, 0.5}, rates)
}

func TestLoadDeathRatesCSVEmpty(t *testing.T) {
	_, err := LoadDeathRatesCSV("death_male.csv", strings.NewReader("annual_death_rate\n"))
	assert.Error(t, err)
}
