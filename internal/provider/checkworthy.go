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

const defaultCheckworthyBaseURL = "https://idir.uta.edu/claimbuster/api/v2"

// CheckworthinessClient scores how worth fact-checking a statement is
// via the ClaimBuster API.
type CheckworthinessClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

type checkworthyRequest struct {
	InputText string `json:"input_text"`
}

type checkworthyResponse struct {
	Claim   string `json:"claim"`
	Results []struct {
		Text  string  `json:"text"`
		Score float64 `json:"score"`
	} `json:"results"`
}

// NewCheckworthinessClient creates a checkworthiness scoring client.
func NewCheckworthinessClient(cfg model.CheckworthyConfig, timeout time.Duration) *CheckworthinessClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultCheckworthyBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &CheckworthinessClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// Score issues a single authenticated scoring request for the
// normalized sentence. A successful score is used as-is, even 0.
// Not retried.
func (c *CheckworthinessClient) Score(ctx context.Context, text string) (model.CheckworthinessResult, error) {
	payload, err := json.Marshal(checkworthyRequest{InputText: text})
	if err != nil {
		return model.CheckworthinessResult{}, &Error{Provider: "checkworthy", Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score/text/", bytes.NewReader(payload))
	if err != nil {
		return model.CheckworthinessResult{}, &Error{Provider: "checkworthy", Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.CheckworthinessResult{}, &Error{Provider: "checkworthy", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CheckworthinessResult{}, &Error{Provider: "checkworthy", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return model.CheckworthinessResult{}, &Error{
			Provider:   "checkworthy",
			StatusCode: resp.StatusCode,
			Details:    string(body),
		}
	}

	var scoreResp checkworthyResponse
	if err := json.Unmarshal(body, &scoreResp); err != nil {
		return model.CheckworthinessResult{}, &Error{Provider: "checkworthy", Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	if len(scoreResp.Results) == 0 {
		return model.CheckworthinessResult{}, &Error{Provider: "checkworthy", Details: "empty results"}
	}

	score := model.Round4(scoreResp.Results[0].Score)
	return model.CheckworthinessResult{
		Score:   score,
		Verdict: model.SentenceVerdict(score),
	}, nil
}
