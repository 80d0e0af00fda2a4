package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claimsift/claimsift/internal/model"
)

func TestFactCheckClient_Search_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/claims:search" {
			t.Errorf("expected path /claims:search, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "The sky is blue." {
			t.Errorf("expected query param, got %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("expected key param test-key, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"claims": [
				{
					"text": "The sky is blue",
					"claimReview": [
						{
							"publisher": {"name": "Example Checker", "site": "example.org"},
							"url": "https://example.org/review",
							"textualRating": "True"
						}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewFactCheckClient(model.FactCheckConfig{APIKey: "test-key", BaseURL: server.URL}, 5*time.Second)

	claims, err := client.Search(context.Background(), "The sky is blue.")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(claims))
	}
	if claims[0].Rating != "True" {
		t.Errorf("expected rating True, got %q", claims[0].Rating)
	}
	if claims[0].Source != "Example Checker" {
		t.Errorf("expected source Example Checker, got %q", claims[0].Source)
	}
}

func TestFactCheckClient_Search_ZeroClaimsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewFactCheckClient(model.FactCheckConfig{APIKey: "k", BaseURL: server.URL}, 5*time.Second)

	claims, err := client.Search(context.Background(), "nothing known")
	if err != nil {
		t.Fatalf("expected no error for empty result, got %v", err)
	}
	if len(claims) != 0 {
		t.Errorf("expected zero claims, got %d", len(claims))
	}
}

func TestFactCheckClient_Search_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client := NewFactCheckClient(model.FactCheckConfig{APIKey: "k", BaseURL: server.URL}, 5*time.Second)

	_, err := client.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}

	var provErr *Error
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *provider.Error, got %T", err)
	}
	if provErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403 preserved, got %d", provErr.StatusCode)
	}
	if provErr.Details == "" {
		t.Error("expected response details preserved for diagnostics")
	}
}

func TestFactCheckClient_Search_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately closed: connection refused

	client := NewFactCheckClient(model.FactCheckConfig{APIKey: "k", BaseURL: server.URL}, time.Second)

	_, err := client.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for unreachable provider")
	}
}
