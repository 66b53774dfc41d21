package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeYearsAndMonths splits an age into whole years and a 0-11 month remainder,
// the form PersonSettings wants for mortality-table lookups.
func AgeYearsAndMonths(birthDate, atDate time.Time) (years, months int) {
	years = Age(birthDate, atDate)
	lastBirthday := AddYears(birthDate, years)
	months = (atDate.Year()-lastBirthday.Year())*12 + int(atDate.Month()-lastBirthday.Month())
	if atDate.Day() < lastBirthday.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	if months > 11 {
		months = 11
	}
	return years, months
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}
