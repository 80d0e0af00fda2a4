package model

import "testing"

func TestClassificationOutcome_TopLabel(t *testing.T) {
	tests := []struct {
		name     string
		outcome  ClassificationOutcome
		expected string
	}{
		{
			name: "top ranked label",
			outcome: ClassificationOutcome{Result: &Classification{
				Labels: []string{"misinformation", "opinion", "factual"},
				Scores: []float64{0.85, 0.1, 0.05},
			}},
			expected: "misinformation",
		},
		{
			name:     "failed classification",
			outcome:  ClassificationOutcome{Err: "zero-shot classification failed: boom"},
			expected: SummaryUnknown,
		},
		{
			name:     "empty labels",
			outcome:  ClassificationOutcome{Result: &Classification{}},
			expected: SummaryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.TopLabel(); got != tt.expected {
				t.Errorf("TopLabel() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClassificationOutcome_MisinformationScore(t *testing.T) {
	tests := []struct {
		name     string
		outcome  ClassificationOutcome
		expected float64
	}{
		{
			name: "score extracted",
			outcome: ClassificationOutcome{Result: &Classification{
				Labels: []string{"factual", "misinformation", "opinion"},
				Scores: []float64{0.5, 0.3, 0.2},
			}},
			expected: 0.3,
		},
		{
			name: "case-insensitive match",
			outcome: ClassificationOutcome{Result: &Classification{
				Labels: []string{"Misinformation", "opinion", "factual"},
				Scores: []float64{0.7, 0.2, 0.1},
			}},
			expected: 0.7,
		},
		{
			name:     "failed classification defaults to zero",
			outcome:  ClassificationOutcome{Err: "provider down"},
			expected: 0,
		},
		{
			name: "label absent defaults to zero",
			outcome: ClassificationOutcome{Result: &Classification{
				Labels: []string{"factual", "opinion"},
				Scores: []float64{0.6, 0.4},
			}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.MisinformationScore(); got != tt.expected {
				t.Errorf("MisinformationScore() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSentenceVerdict(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.0, VerdictUnlikelyCheckworthy},
		{0.4, VerdictUnlikelyCheckworthy},
		{0.4001, VerdictSomewhatCheckworthy},
		{0.7, VerdictSomewhatCheckworthy},
		{0.7001, VerdictHighlyCheckworthy},
		{1.0, VerdictHighlyCheckworthy},
	}

	for _, tt := range tests {
		if got := SentenceVerdict(tt.score); got != tt.expected {
			t.Errorf("SentenceVerdict(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestDocumentVerdict(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.0, VerdictLikelyNot},
		{0.4, VerdictLikelyNot},
		{0.5, VerdictSomewhatCheckworthy},
		{0.71, VerdictHighlyCheckworthy},
	}

	for _, tt := range tests {
		if got := DocumentVerdict(tt.score); got != tt.expected {
			t.Errorf("DocumentVerdict(%v) = %q, want %q", tt.score, got, tt.expected)
		}
	}

	// The low tiers differ between the two paths on purpose.
	if SentenceVerdict(0.1) == DocumentVerdict(0.1) {
		t.Error("expected sentence and document low-tier labels to differ")
	}
}

func TestRound4(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.123456, 0.1235},
		{0.65, 0.65},
		{0.99999, 1.0},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round4(tt.input); got != tt.expected {
			t.Errorf("Round4(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
