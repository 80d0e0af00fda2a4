// Package pipeline drives per-document signal collection and merges
// the results into a single ranked verdict.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claimsift/claimsift/internal/fallback"
	"github.com/claimsift/claimsift/internal/model"
	"github.com/claimsift/claimsift/internal/provider"
	"github.com/claimsift/claimsift/internal/text"
)

// ErrEmptyContent is the only error Analyze surfaces to callers.
// Every provider failure past input validation is absorbed by
// fallback, so a validated request always yields a complete report.
var ErrEmptyContent = errors.New("no text provided for analysis")

// FactCheckSearcher searches fact-check claims for one sentence.
type FactCheckSearcher interface {
	Search(ctx context.Context, query string) ([]model.Claim, error)
}

// CheckworthinessScorer scores one sentence's checkworthiness.
type CheckworthinessScorer interface {
	Score(ctx context.Context, text string) (model.CheckworthinessResult, error)
}

// Analyzer orchestrates the multi-signal analysis of one document.
type Analyzer struct {
	classifier  provider.Classifier
	factCheck   FactCheckSearcher
	checkworthy CheckworthinessScorer
	estimator   *fallback.Estimator
}

// NewAnalyzer creates an analyzer over the given signal sources. The
// classifier handle is long-lived and shared; everything else the
// analyzer produces is request-scoped.
func NewAnalyzer(classifier provider.Classifier, factCheck FactCheckSearcher, checkworthy CheckworthinessScorer, estimator *fallback.Estimator) *Analyzer {
	return &Analyzer{
		classifier:  classifier,
		factCheck:   factCheck,
		checkworthy: checkworthy,
		estimator:   estimator,
	}
}

// Analyze runs the full pipeline: segment, classify once, resolve both
// per-sentence signals (real or fallback) sequentially, then compute
// the independent document-level checkworthiness.
func (a *Analyzer) Analyze(ctx context.Context, content string) (*model.AnalysisReport, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	sentences := text.Segment(content)

	// Classification runs once for the whole document, not per sentence.
	classification := a.classifier.Classify(ctx, content)
	misinfoScore := classification.MisinformationScore()

	detailed := make([]model.SentenceAnalysis, 0, len(sentences))
	for i, sentence := range sentences {
		cleaned := text.Normalize(sentence)

		detailed = append(detailed, model.SentenceAnalysis{
			Index:           i + 1,
			Sentence:        sentence,
			FactCheck:       a.resolveFactCheck(ctx, cleaned),
			Checkworthiness: a.resolveCheckworthiness(ctx, cleaned, misinfoScore),
		})
	}

	// The document-level score is a fresh draw from the same formula,
	// not an aggregate of the per-sentence scores. Kept as observed.
	docCheckworthiness := a.estimator.DocumentCheckworthiness(misinfoScore)

	return &model.AnalysisReport{
		ID:               uuid.NewString(),
		Summary:          classification.TopLabel(),
		Classification:   classification,
		Checkworthiness:  docCheckworthiness,
		DetailedAnalysis: detailed,
		AnalyzedAt:       time.Now().UTC(),
	}, nil
}

// resolveFactCheck queries the fact-check provider and falls back when
// the call fails or returns zero claims. Zero real claims is a missing
// signal, not an all-clear.
func (a *Analyzer) resolveFactCheck(ctx context.Context, cleaned string) model.FactCheckResult {
	claims, err := a.factCheck.Search(ctx, cleaned)
	if err != nil || len(claims) == 0 {
		return a.estimator.FactCheck()
	}
	return model.FactCheckResult{Claims: claims}
}

// resolveCheckworthiness queries the scorer and falls back only on
// failure; a real score of 0 is used as-is.
func (a *Analyzer) resolveCheckworthiness(ctx context.Context, cleaned string, misinfoScore float64) model.CheckworthinessResult {
	result, err := a.checkworthy.Score(ctx, cleaned)
	if err != nil {
		return a.estimator.Checkworthiness(misinfoScore)
	}
	return result
}
