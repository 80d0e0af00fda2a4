package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/claimsift/claimsift/internal/fallback"
	"github.com/claimsift/claimsift/internal/model"
	"github.com/claimsift/claimsift/internal/pipeline"
	"github.com/claimsift/claimsift/internal/provider"
)

// loadProviderKeys fills API keys from the environment. Keys never
// come from config files.
func loadProviderKeys(cfg *model.Config) error {
	switch cfg.Classifier.Backend {
	case "openai":
		cfg.Classifier.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Classifier.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		cfg.Classifier.APIKey = os.Getenv("HF_API_TOKEN")
		if cfg.Classifier.APIKey == "" {
			return fmt.Errorf("HF_API_TOKEN environment variable not set")
		}
	}

	cfg.FactCheck.APIKey = os.Getenv("GOOGLE_FACT_CHECK_API_KEY")
	if cfg.FactCheck.APIKey == "" {
		return fmt.Errorf("GOOGLE_FACT_CHECK_API_KEY environment variable not set")
	}

	cfg.Checkworthy.APIKey = os.Getenv("CLAIMBUSTER_API_KEY")
	if cfg.Checkworthy.APIKey == "" {
		return fmt.Errorf("CLAIMBUSTER_API_KEY environment variable not set")
	}

	return nil
}

// buildAnalyzer constructs the analysis pipeline from configuration.
// The classifier handle is created once here and reused for the
// process lifetime.
func buildAnalyzer(cfg *model.Config) (*pipeline.Analyzer, error) {
	classifier, err := provider.NewClassifier(cfg.Classifier)
	if err != nil {
		return nil, fmt.Errorf("create classifier: %w", err)
	}

	factCheck := provider.NewFactCheckClient(cfg.FactCheck, cfg.HTTP.Timeout)
	checkworthy := provider.NewCheckworthinessClient(cfg.Checkworthy, cfg.HTTP.Timeout)
	estimator := fallback.NewEstimator(rand.New(rand.NewSource(time.Now().UnixNano())))

	return pipeline.NewAnalyzer(classifier, factCheck, checkworthy, estimator), nil
}
