package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/claimsift/claimsift/internal/model"
)

func openAIChatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:     "chatcmpl-123",
		Object: "chat.completion",
		Model:  "gpt-4o-mini",
		Choices: []openai.ChatCompletionChoice{
			{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: "assistant", Content: content},
				FinishReason: "stop",
			},
		},
	}
}

func TestOpenAIClassifier_Classify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected Authorization Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		resp := openAIChatResponse(`{"scores": {"factual": 0.05, "opinion": 0.1, "misinformation": 0.85}}`)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	classifier, err := NewOpenAIClassifier(model.ClassifierConfig{
		Backend: "openai",
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("create classifier: %v", err)
	}

	outcome := classifier.Classify(context.Background(), "Vaccines cause autism.")
	if outcome.Failed() {
		t.Fatalf("expected success, got error %q", outcome.Err)
	}

	if outcome.TopLabel() != "misinformation" {
		t.Errorf("expected top label misinformation, got %q", outcome.TopLabel())
	}
	if len(outcome.Result.Labels) != 3 {
		t.Fatalf("expected 3 ranked labels, got %v", outcome.Result.Labels)
	}
	// Labels must be ranked by descending score.
	for i := 1; i < len(outcome.Result.Scores); i++ {
		if outcome.Result.Scores[i] > outcome.Result.Scores[i-1] {
			t.Errorf("scores not ranked: %v", outcome.Result.Scores)
		}
	}
}

func TestOpenAIClassifier_Classify_MissingLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openAIChatResponse(`{"scores": {"factual": 0.9}}`)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	classifier, err := NewOpenAIClassifier(model.ClassifierConfig{
		Backend: "openai",
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("create classifier: %v", err)
	}

	outcome := classifier.Classify(context.Background(), "anything")
	if !outcome.Failed() {
		t.Fatal("expected failed outcome when a candidate label is missing")
	}
}

func TestNewOpenAIClassifier_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClassifier(model.ClassifierConfig{Backend: "openai"})
	if err == nil {
		t.Fatal("expected error without API key")
	}
}
