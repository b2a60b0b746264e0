package strutil

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCode trims leading and trailing whitespace and converts the code to upper case.
// For example NormalizeCode(" usd\t") return "USD"
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// a Caser keeps state between calls, so it is built per call and never shared
	return cases.Upper(language.Und).String(s)
}

// FormatFloat returns the shortest decimal representation of v without an exponent,
// For example FormatFloat(0.005) return "0.005", FormatFloat(1e6) return "1000000"
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JoinFloats formats values with FormatFloat and joins them with ", "
func JoinFloats(values []float64) string {
	tokens := make([]string, len(values))
	for i := range values {
		tokens[i] = FormatFloat(values[i])
	}

	return strings.Join(tokens, ", ")
}
