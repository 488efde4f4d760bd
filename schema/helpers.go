package schema

import (
	"slices"
	"strings"
)

// IsLanguageSubject reports whether subject is one of the language chart subjects.
func IsLanguageSubject(subject string) bool {
	return slices.Contains(LanguageSubjects, subject)
}

// IsGaelicSubject reports whether subject belongs to the Gaelic family.
// The match is case-sensitive, so "GAELIC (LEARNERS)" counts and "Gaelic" does not.
func IsGaelicSubject(subject string) bool {
	return strings.Contains(subject, GaelicToken)
}

// IsNoRecordYear reports whether year is one of the fixed no-record years.
func IsNoRecordYear(year int) bool {
	return slices.Contains(NoRecordYears, year)
}

// IsWarYear reports whether year falls inside the 1939-1945 war interval.
func IsWarYear(year int) bool {
	return year >= WarStartYear && year <= WarEndYear
}
