package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html"
)

// PageFetcher fetches a web page, honoring robots.txt, and reduces it
// to visible text for analysis. Fetched text is memoized with a TTL so
// repeated CLI runs against the same URL stay cheap.
type PageFetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	robotsMu sync.RWMutex
	robots   map[string]*robotstxt.RobotsData

	cache *gocache.Cache
}

// NewPageFetcher creates a page fetcher. A nil cache TTL disables
// memoization.
func NewPageFetcher(timeout time.Duration, userAgent string, maxBytes int64, cacheTTL time.Duration) *PageFetcher {
	f := &PageFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
		robots:    make(map[string]*robotstxt.RobotsData),
	}
	if cacheTTL > 0 {
		f.cache = gocache.New(cacheTTL, 2*cacheTTL)
	}
	return f
}

// FetchText fetches the URL and returns its visible text.
func (f *PageFetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	key := cacheKey(rawURL)
	if f.cache != nil {
		if cached, found := f.cache.Get(key); found {
			return cached.(string), nil
		}
	}

	allowed, err := f.allowedByRobots(ctx, rawURL)
	if err == nil && !allowed {
		return "", fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text, err := visibleText(string(body))
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	if f.cache != nil {
		f.cache.SetDefault(key, text)
	}

	return text, nil
}

// allowedByRobots checks robots.txt for the URL's host, caching parsed
// rules per host. An unreachable robots.txt allows by default.
func (f *PageFetcher) allowedByRobots(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	f.robotsMu.RLock()
	data, ok := f.robots[parsed.Host]
	f.robotsMu.RUnlock()

	if !ok {
		robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
		if err != nil {
			return false, err
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return true, nil
		}
		defer resp.Body.Close()

		data, err = robotstxt.FromResponse(resp)
		if err != nil {
			return true, nil
		}

		f.robotsMu.Lock()
		f.robots[parsed.Host] = data
		f.robotsMu.Unlock()
	}

	agent := strings.Split(f.userAgent, "/")[0]
	return data.TestAgent(parsed.Path, agent), nil
}

// visibleText extracts text nodes from HTML, skipping scripts/styles.
func visibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}

func cacheKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return "claimsift:v1:" + hex.EncodeToString(hash[:])
}
