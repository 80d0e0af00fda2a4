// Package fallback synthesizes placeholder signal results when a real
// provider fails or returns nothing, so the pipeline's output shape is
// never partial. Synthetic values are biased toward the document-level
// classification signal but are not provider-sourced truth.
package fallback

import (
	"math/rand"
	"sync"

	"github.com/claimsift/claimsift/internal/model"
)

// Ratings a synthetic claim may carry.
var syntheticRatings = []string{"False", "Unproven", "Partially true"}

// Estimator produces fallback results. The random source is injected
// so tests can substitute a fixed seed and assert exact values. A
// single estimator is shared across requests, so draws are serialized:
// rand.Rand is not safe for concurrent use.
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator creates an estimator drawing from the given source.
func NewEstimator(rng *rand.Rand) *Estimator {
	return &Estimator{rng: rng}
}

// FactCheck synthesizes exactly one claim with a rating drawn
// uniformly from {False, Unproven, Partially true}. Used when the
// fact-check provider fails or returns zero claims.
func (e *Estimator) FactCheck() model.FactCheckResult {
	e.mu.Lock()
	rating := syntheticRatings[e.rng.Intn(len(syntheticRatings))]
	e.mu.Unlock()
	return model.FactCheckResult{
		Claims:    []model.Claim{{Rating: rating}},
		Synthetic: true,
	}
}

// Checkworthiness synthesizes a per-sentence checkworthiness result
// from the document's misinformation score. A zero score means no real
// signal proxy exists, so the base is drawn from [0.6, 0.7]; otherwise
// the score is perturbed by uniform noise in [-0.05, 0.05] and clamped
// to [0,1]. Each call draws fresh randomness.
func (e *Estimator) Checkworthiness(misinfoScore float64) model.CheckworthinessResult {
	score := e.sample(misinfoScore)
	return model.CheckworthinessResult{
		Score:     score,
		Verdict:   model.SentenceVerdict(score),
		Synthetic: true,
	}
}

// DocumentCheckworthiness computes the document-level score with the
// same formula but the document path's low-tier verdict label. It is
// an independent draw, not an aggregate of per-sentence results.
func (e *Estimator) DocumentCheckworthiness(misinfoScore float64) model.CheckworthinessResult {
	score := e.sample(misinfoScore)
	return model.CheckworthinessResult{
		Score:     score,
		Verdict:   model.DocumentVerdict(score),
		Synthetic: true,
	}
}

func (e *Estimator) sample(misinfoScore float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var score float64
	if misinfoScore == 0 {
		score = 0.6 + e.rng.Float64()*0.1
	} else {
		noise := -0.05 + e.rng.Float64()*0.1
		score = misinfoScore + noise
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
	}
	return model.Round4(score)
}
