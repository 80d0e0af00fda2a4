package model

import (
	"strings"
	"time"
)

// Candidate labels for zero-shot classification. The set is closed:
// providers rank exactly these three.
const (
	LabelFactual        = "factual"
	LabelOpinion        = "opinion"
	LabelMisinformation = "misinformation"
)

// CandidateLabels returns the closed label set in ranking-request order.
func CandidateLabels() []string {
	return []string{LabelFactual, LabelOpinion, LabelMisinformation}
}

// Checkworthiness verdicts. The per-sentence and document paths use a
// different low-tier label; the difference is intentional and kept.
const (
	VerdictHighlyCheckworthy   = "Highly Checkworthy"
	VerdictSomewhatCheckworthy = "Somewhat Checkworthy"
	VerdictUnlikelyCheckworthy = "Unlikely Checkworthy"
	VerdictLikelyNot           = "Likely Not Checkworthy"
)

// SummaryUnknown is the document summary label when classification failed.
const SummaryUnknown = "unknown"

// Claim is a fact-check provider's record associating a rating with a
// searched text. Synthetic claims carry only a rating.
type Claim struct {
	Text   string `json:"text,omitempty"`
	Rating string `json:"rating"`
	Source string `json:"source,omitempty"`
	URL    string `json:"url,omitempty"`
}

// FactCheckResult holds the claims resolved for one sentence. After
// fallback resolution it always contains at least one claim.
type FactCheckResult struct {
	Claims    []Claim `json:"claims"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

// CheckworthinessResult is a score in [0,1] with its verdict, which
// always agree per the shared threshold rule.
type CheckworthinessResult struct {
	Score     float64 `json:"score"`
	Verdict   string  `json:"verdict"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

// Classification is a ranked label/score sequence for the whole
// document, plus the normalized sequence text the provider saw.
type Classification struct {
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
	Sequence string    `json:"sequence"`
}

// ClassificationOutcome is either a Classification or a captured
// provider failure. The failure never reaches the HTTP caller.
type ClassificationOutcome struct {
	Result *Classification `json:"result,omitempty"`
	Err    string          `json:"error,omitempty"`
}

// Failed reports whether classification produced no usable result.
func (o ClassificationOutcome) Failed() bool {
	return o.Result == nil || len(o.Result.Labels) == 0
}

// TopLabel returns the provider's top-ranked label, or "unknown" when
// classification failed.
func (o ClassificationOutcome) TopLabel() string {
	if o.Failed() {
		return SummaryUnknown
	}
	return o.Result.Labels[0]
}

// MisinformationScore extracts the score for the "misinformation"
// label, matched case-insensitively. Returns 0 when classification
// failed or the label is absent.
func (o ClassificationOutcome) MisinformationScore() float64 {
	if o.Failed() {
		return 0
	}
	for i, label := range o.Result.Labels {
		if strings.EqualFold(label, LabelMisinformation) && i < len(o.Result.Scores) {
			return o.Result.Scores[i]
		}
	}
	return 0
}

// SentenceAnalysis groups one sentence with its resolved signals.
// Index is 1-based and follows segmentation order.
type SentenceAnalysis struct {
	Index           int                   `json:"index"`
	Sentence        string                `json:"sentence"`
	FactCheck       FactCheckResult       `json:"fact_check"`
	Checkworthiness CheckworthinessResult `json:"checkworthiness"`
}

// AnalysisReport is the complete response for one document. It is
// built once per request and never mutated or persisted.
type AnalysisReport struct {
	ID               string                `json:"id"`
	Summary          string                `json:"summary"`
	Classification   ClassificationOutcome `json:"classification"`
	Checkworthiness  CheckworthinessResult `json:"checkworthiness"`
	DetailedAnalysis []SentenceAnalysis    `json:"detailed_analysis"`
	AnalyzedAt       time.Time             `json:"analyzed_at"`
}
