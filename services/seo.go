package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SEO letter grades, ordered S > A > B > F.
const (
	GradeS = "S"
	GradeA = "A"
	GradeB = "B"
	GradeF = "F"
)

// Scoring constants. Tuned by inspection, not labeled data — treat as
// adjustable heuristics.
const (
	seoBase = 80

	seoGoodLengthMin = 20
	seoGoodLengthMax = 50
	seoShortLength   = 10
	seoLongLength    = 60

	seoPlacementWindow = 15
	seoRepeatLimit     = 3
	seoPunctLimit      = 5

	gradeSMin = 95
	gradeAMin = 85
	gradeBMin = 70
)

// SEOScore rates a listing title against a target keyword and returns the
// clamped 0–100 score with its letter grade. Pure; empty inputs are fine.
func SEOScore(title, keyword string) (int, string) {
	title = StripEmphasis(title)
	score := seoBase

	// Title length, in runes.
	length := utf8.RuneCountInString(title)
	switch {
	case length >= seoGoodLengthMin && length <= seoGoodLengthMax:
		score += 10
	case length < seoShortLength:
		score -= 20
	case length > seoLongLength:
		score -= 10
	}

	// Keyword placement: any part of the keyword inside the leading window.
	head := title
	if length > seoPlacementWindow {
		head = string([]rune(title)[:seoPlacementWindow])
	}
	for _, part := range strings.Fields(keyword) {
		if strings.Contains(head, part) {
			score += 10
			break
		}
	}

	// Token repetition: a single flat penalty, however many tokens offend.
	freq := make(map[string]int)
	for _, tok := range Tokenize(title) {
		freq[tok]++
		if freq[tok] == seoRepeatLimit {
			score -= 20
			break
		}
	}

	// Special characters beyond the allowance.
	if countPunct(title) > seoPunctLimit {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, gradeFor(score)
}

func gradeFor(score int) string {
	switch {
	case score >= gradeSMin:
		return GradeS
	case score >= gradeAMin:
		return GradeA
	case score >= gradeBMin:
		return GradeB
	default:
		return GradeF
	}
}

func countPunct(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			continue
		}
		n++
	}
	return n
}
