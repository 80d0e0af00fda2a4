// Package fetch resolves URLs to analyzable text. It sits outside the
// aggregation core: the CLI uses it to turn a social post or web page
// into document content before analysis.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

const (
	defaultPostBaseURL = "https://api.twitter.com/2"
	postFetchAttempts  = 3
	postFetchBackoff   = time.Second
)

var postIDPattern = regexp.MustCompile(`/status/(\d+)`)

// postSleepFunc is the sleep used between attempts (injectable for tests)
var postSleepFunc = time.Sleep

// PostFetcher resolves an X post URL to its text content.
type PostFetcher struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
}

type postResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// NewPostFetcher creates a post fetcher with the given bearer token.
func NewPostFetcher(bearerToken string, timeout time.Duration) *PostFetcher {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &PostFetcher{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     defaultPostBaseURL,
		bearerToken: bearerToken,
	}
}

// ExtractPostID pulls the numeric post ID out of a status URL.
func ExtractPostID(rawURL string) (string, bool) {
	m := postIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FetchText fetches the post's text, retrying up to 3 times with a 1s
// pause. Unlike the signal providers this path deliberately retries,
// and on exhaustion it reports absent content rather than an error.
func (f *PostFetcher) FetchText(ctx context.Context, postID string) (string, bool) {
	url := fmt.Sprintf("%s/tweets/%s", strings.TrimSuffix(f.baseURL, "/"), postID)

	for attempt := 0; attempt < postFetchAttempts; attempt++ {
		if attempt > 0 {
			postSleepFunc(postFetchBackoff)
		}

		text, err := f.fetchOnce(ctx, url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching post %s: %v\n", postID, err)
			continue
		}
		return text, true
	}

	return "", false
}

func (f *PostFetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.bearerToken)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed postResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return parsed.Data.Text, nil
}
