// Package country defines the country record domain type and ISO code helpers.
package country

import "strings"

// Record holds the metadata returned for a single country lookup.
// Built once per successful lookup and not mutated afterwards.
type Record struct {
	ISOCode       string
	Name          string
	Capital       string
	CurrencyCode  string
	Languages     []string
	PhoneCode     string
	ContinentCode string
	FlagURL       string
}

// LanguageList returns the spoken languages as a single display string.
func (r Record) LanguageList() string {
	if len(r.Languages) == 0 {
		return "n/a"
	}
	return strings.Join(r.Languages, ", ")
}

// NormalizeCode upper-cases and trims an ISO code for lookups and display.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCode reports whether code has the shape of a two-letter ISO code.
// Shape only; whether the code is assigned is up to the directory service.
func ValidCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, c := range code {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
