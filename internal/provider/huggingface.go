package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claimsift/claimsift/internal/model"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HuggingFaceClassifier runs zero-shot classification through the
// Hugging Face Inference API.
type HuggingFaceClassifier struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

type hfZeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters hfZeroShotParams   `json:"parameters"`
	Options    hfInferenceOptions `json:"options"`
}

type hfZeroShotParams struct {
	CandidateLabels    []string `json:"candidate_labels"`
	HypothesisTemplate string   `json:"hypothesis_template"`
}

type hfInferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfZeroShotResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
	Error    string    `json:"error"`
}

// NewHuggingFaceClassifier creates a Hugging Face backed classifier.
func NewHuggingFaceClassifier(cfg model.ClassifierConfig) (*HuggingFaceClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Hugging Face API token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "facebook/bart-large-mnli"
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HuggingFaceClassifier{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      modelName,
	}, nil
}

// Name returns the backend name
func (c *HuggingFaceClassifier) Name() string {
	return "huggingface"
}

// Classify ranks the candidate labels against the document. Any
// transport or API failure is captured in the outcome.
func (c *HuggingFaceClassifier) Classify(ctx context.Context, content string) model.ClassificationOutcome {
	reqBody := hfZeroShotRequest{
		Inputs: content,
		Parameters: hfZeroShotParams{
			CandidateLabels:    model.CandidateLabels(),
			HypothesisTemplate: HypothesisTemplate,
		},
		Options: hfInferenceOptions{WaitForModel: true},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return failedClassification(fmt.Errorf("marshal request: %w", err))
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return failedClassification(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failedClassification(fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failedClassification(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return failedClassification(&Error{
			Provider:   "huggingface",
			StatusCode: resp.StatusCode,
			Details:    string(body),
		})
	}

	var zsResp hfZeroShotResponse
	if err := json.Unmarshal(body, &zsResp); err != nil {
		return failedClassification(fmt.Errorf("unmarshal response: %w", err))
	}

	if zsResp.Error != "" {
		return failedClassification(&Error{Provider: "huggingface", Details: zsResp.Error})
	}

	if len(zsResp.Labels) == 0 || len(zsResp.Labels) != len(zsResp.Scores) {
		return failedClassification(&Error{Provider: "huggingface", Details: "malformed zero-shot response"})
	}

	return model.ClassificationOutcome{
		Result: &model.Classification{
			Labels:   zsResp.Labels,
			Scores:   zsResp.Scores,
			Sequence: zsResp.Sequence,
		},
	}
}

func failedClassification(err error) model.ClassificationOutcome {
	return model.ClassificationOutcome{
		Err: fmt.Sprintf("zero-shot classification failed: %v", err),
	}
}
