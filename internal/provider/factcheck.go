package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claimsift/claimsift/internal/model"
)

const defaultFactCheckBaseURL = "https://factchecktools.googleapis.com/v1alpha1"

// FactCheckClient queries the Google Fact Check Tools claim search.
type FactCheckClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Wire format of the claims:search endpoint.
type factCheckSearchResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		Claimant    string `json:"claimant"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// NewFactCheckClient creates a fact-check search client.
func NewFactCheckClient(cfg model.FactCheckConfig, timeout time.Duration) *FactCheckClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultFactCheckBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &FactCheckClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// Search issues a single claim search for the normalized sentence.
// Zero claims is a valid result here; the pipeline decides whether to
// fall back. Not retried.
func (c *FactCheckClient) Search(ctx context.Context, query string) ([]model.Claim, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + "/claims:search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Provider: "factcheck", Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Provider: "factcheck", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: "factcheck", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Provider:   "factcheck",
			StatusCode: resp.StatusCode,
			Details:    string(body),
		}
	}

	var searchResp factCheckSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &Error{Provider: "factcheck", Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	claims := make([]model.Claim, 0, len(searchResp.Claims))
	for _, raw := range searchResp.Claims {
		claim := model.Claim{Text: raw.Text}
		if len(raw.ClaimReview) > 0 {
			review := raw.ClaimReview[0]
			claim.Rating = review.TextualRating
			claim.Source = review.Publisher.Name
			claim.URL = review.URL
		}
		claims = append(claims, claim)
	}

	return claims, nil
}
