package calculation

import (
	"testing"

	"github.com/rpgo/retirement-calculator/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestNewPersonSettingsRejectsOutOfRangeMonths(t *testing.T) {
	_, err := NewPersonSettings("Alex", 0, 12, []float64{0.1, 0.2})
	assert.Error(t, err)
}

func TestNewPersonSettingsRejectsOutOfRangeYears(t *testing.T) {
	_, err := NewPersonSettings("Alex", 5, 0, []float64{0.1, 0.2})
	assert.Error(t, err)
}

func TestCreatePersonLifespanEndsAtFirstFailedDraw(t *testing.T) {
	settings, err := NewPersonSettings("Alex", 0, 0, []float64{0.1, 0.15, 0.2, 0.25, 0.30, 0.35})
	assert.NoError(t, err)

	src := rng.NewFixedFloatSequence(0.0, 0.0, 0.0, 0.999)
	person := settings.CreatePerson(src)
	assert.Equal(t, "Alex", person.Name)
	assert.Equal(t, 3, person.Lifespan.Periods())
}

func TestCreatePersonUsesOffsetIntoTable(t *testing.T) {
	settings, err := NewPersonSettings("Alex", 2, 6, []float64{0.1, 0.15, 0.2, 0.25})
	assert.NoError(t, err)

	src := rng.NewFixedFloatSequence(0.99)
	person := settings.CreatePerson(src)
	assert.Equal(t, 0, person.Lifespan.Periods())
}
