package model

import "math"

// SentenceVerdict maps a checkworthiness score to the per-sentence
// verdict label. Real and synthetic scores go through the same rule so
// score and verdict always agree.
func SentenceVerdict(score float64) string {
	switch {
	case score > 0.7:
		return VerdictHighlyCheckworthy
	case score > 0.4:
		return VerdictSomewhatCheckworthy
	default:
		return VerdictUnlikelyCheckworthy
	}
}

// DocumentVerdict maps a score to the document-summary verdict label.
// The low tier differs from the sentence path; the inconsistency is
// kept rather than unified.
func DocumentVerdict(score float64) string {
	switch {
	case score > 0.7:
		return VerdictHighlyCheckworthy
	case score > 0.4:
		return VerdictSomewhatCheckworthy
	default:
		return VerdictLikelyNot
	}
}

// Round4 rounds a score to 4 decimal places.
func Round4(score float64) float64 {
	return math.Round(score*10000) / 10000
}
