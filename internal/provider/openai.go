package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/claimsift/claimsift/internal/model"
)

// OpenAIClassifier approximates zero-shot entailment ranking with a
// JSON-constrained chat completion. Useful where no Hugging Face
// endpoint is available.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
	config model.ClassifierConfig
}

// NewOpenAIClassifier creates an OpenAI backed classifier.
func NewOpenAIClassifier(cfg model.ClassifierConfig) (*OpenAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	modelName := cfg.Model
	if modelName == "" || strings.Contains(modelName, "/") {
		// HF-style model IDs don't apply to this backend
		modelName = openai.GPT4oMini
	}

	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelName,
		config: cfg,
	}, nil
}

// Name returns the backend name
func (c *OpenAIClassifier) Name() string {
	return "openai"
}

// Classify asks the model to score each candidate label for the
// hypothesis "This text is {label}." and returns the labels ranked by
// score, matching the shape of a zero-shot classifier response.
func (c *OpenAIClassifier) Classify(ctx context.Context, content string) model.ClassificationOutcome {
	labels := model.CandidateLabels()

	systemPrompt := fmt.Sprintf(`You are a zero-shot text classifier. For the given text, score how well the hypothesis %q holds for each of these labels: %s.
Scores are between 0.0 and 1.0 and must sum to 1.0.
Respond with JSON only: {"scores": {"<label>": <score>, ...}}`,
		HypothesisTemplate, strings.Join(labels, ", "))

	timeout := time.Duration(c.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return failedClassification(fmt.Errorf("OpenAI API error: %w", err))
	}

	if len(resp.Choices) == 0 {
		return failedClassification(&Error{Provider: "openai", Details: "no response choices"})
	}

	var parsed struct {
		Scores map[string]float64 `json:"scores"`
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return failedClassification(fmt.Errorf("parse classifier response: %w", err))
	}

	ranked := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := parsed.Scores[label]; !ok {
			return failedClassification(&Error{
				Provider: "openai",
				Details:  fmt.Sprintf("missing score for label %q", label),
			})
		}
		ranked = append(ranked, label)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return parsed.Scores[ranked[i]] > parsed.Scores[ranked[j]]
	})

	scores := make([]float64, len(ranked))
	for i, label := range ranked {
		scores[i] = parsed.Scores[label]
	}

	return model.ClassificationOutcome{
		Result: &model.Classification{
			Labels:   ranked,
			Scores:   scores,
			Sequence: content,
		},
	}
}
