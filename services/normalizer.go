package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Emphasis markers the listing source wraps around matched terms.
const (
	emphasisOpen  = "<b>"
	emphasisClose = "</b>"
)

// lessThanSentinel stands in for review counts reported as "fewer than N".
const lessThanSentinel = 10

var (
	// nonWordRegexp matches every rune that is neither a word rune nor whitespace.
	nonWordRegexp = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	// digitsRegexp captures the first run of digits in a numeric field.
	digitsRegexp = regexp.MustCompile(`\d+`)
)

// StripEmphasis removes the source's emphasis markers from a title.
func StripEmphasis(s string) string {
	s = strings.ReplaceAll(s, emphasisOpen, "")
	return strings.ReplaceAll(s, emphasisClose, "")
}

// Tokenize splits text into comparable word tokens: non-word runes become
// spaces, whitespace delimits tokens, and single-rune tokens are dropped.
func Tokenize(s string) []string {
	fields := strings.Fields(nonWordRegexp.ReplaceAllString(s, " "))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CleanNumber normalizes a numeric field from an external source.
// Commas are stripped, a "fewer than N" marker yields the fixed sentinel,
// and anything without digits yields 0. Never errors.
func CleanNumber(s string) int {
	if strings.Contains(s, "<") {
		return lessThanSentinel
	}
	s = strings.ReplaceAll(s, ",", "")
	match := digitsRegexp.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
