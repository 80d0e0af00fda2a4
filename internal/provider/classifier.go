// Package provider wraps the three external signal services behind
// small clients: zero-shot classification, fact-check claim search and
// claim-checkworthiness scoring. Providers never retry; every failure
// is returned as a value for the pipeline's fallback to absorb.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/claimsift/claimsift/internal/model"
)

// HypothesisTemplate is the fixed entailment template sent with every
// classification request.
const HypothesisTemplate = "This text is {}."

// Classifier ranks the closed candidate label set against a document.
// Implementations are safe for concurrent use; one handle is created
// at startup and shared read-only across requests.
type Classifier interface {
	// Name returns the backend name
	Name() string

	// Classify runs zero-shot classification over the whole document.
	// A provider failure is captured in the outcome, not returned as
	// an error: downstream fallback handles it.
	Classify(ctx context.Context, content string) model.ClassificationOutcome
}

// NewClassifier creates a classifier for the configured backend.
func NewClassifier(cfg model.ClassifierConfig) (Classifier, error) {
	switch strings.ToLower(cfg.Backend) {
	case "huggingface", "hf":
		return NewHuggingFaceClassifier(cfg)

	case "openai":
		return NewOpenAIClassifier(cfg)

	default:
		return nil, fmt.Errorf("unknown classifier backend: %s (supported: huggingface, openai)", cfg.Backend)
	}
}
