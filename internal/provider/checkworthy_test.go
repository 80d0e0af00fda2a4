package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claimsift/claimsift/internal/model"
)

func TestCheckworthinessClient_Score_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/score/text/" {
			t.Errorf("expected path /score/text/, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}

		var req struct {
			InputText string `json:"input_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.InputText != "The earth is flat." {
			t.Errorf("unexpected input_text %q", req.InputText)
		}

		_, _ = w.Write([]byte(`{"claim": "The earth is flat.", "results": [{"text": "The earth is flat.", "score": 0.8231}]}`))
	}))
	defer server.Close()

	client := NewCheckworthinessClient(model.CheckworthyConfig{APIKey: "test-key", BaseURL: server.URL}, 5*time.Second)

	result, err := client.Score(context.Background(), "The earth is flat.")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.Score != 0.8231 {
		t.Errorf("expected score 0.8231, got %v", result.Score)
	}
	if result.Verdict != model.VerdictHighlyCheckworthy {
		t.Errorf("expected verdict %q, got %q", model.VerdictHighlyCheckworthy, result.Verdict)
	}
	if result.Synthetic {
		t.Error("real provider result must not be marked synthetic")
	}
}

func TestCheckworthinessClient_Score_ZeroScoreKept(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"score": 0}]}`))
	}))
	defer server.Close()

	client := NewCheckworthinessClient(model.CheckworthyConfig{APIKey: "k", BaseURL: server.URL}, 5*time.Second)

	result, err := client.Score(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("a real score of 0 is a valid result, got error %v", err)
	}
	if result.Score != 0 {
		t.Errorf("expected score 0, got %v", result.Score)
	}
	if result.Verdict != model.VerdictUnlikelyCheckworthy {
		t.Errorf("expected verdict %q, got %q", model.VerdictUnlikelyCheckworthy, result.Verdict)
	}
}

func TestCheckworthinessClient_Score_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewCheckworthinessClient(model.CheckworthyConfig{APIKey: "k", BaseURL: server.URL}, 5*time.Second)

	_, err := client.Score(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for empty results")
	}
}

func TestCheckworthinessClient_Score_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`unauthorized`))
	}))
	defer server.Close()

	client := NewCheckworthinessClient(model.CheckworthyConfig{APIKey: "bad", BaseURL: server.URL}, 5*time.Second)

	_, err := client.Score(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for 401")
	}

	var provErr *Error
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *provider.Error, got %T", err)
	}
	if provErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401 preserved, got %d", provErr.StatusCode)
	}
}
