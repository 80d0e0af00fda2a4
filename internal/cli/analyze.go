package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimsift/claimsift/internal/fetch"
	"github.com/claimsift/claimsift/internal/model"
)

var (
	analyzeURL     string
	analyzeFile    string
	analyzeTimeout time.Duration
	outJSON        string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze a text, file or URL for potential misinformation",
	Long: `Analyze runs the full signal pipeline over one document:
- Segment the text into sentences
- Classify the whole document (factual / opinion / misinformation)
- Search fact-check claims and score checkworthiness per sentence
- Substitute fallback estimates for missing or failed signals

Input comes from an inline argument, a file, or a URL. Post URLs
(x.com/.../status/...) are resolved through the post API; other URLs
are fetched as pages with robots.txt respected.

Example:
  claimsift analyze "The earth is flat. Vaccines cause autism."
  claimsift analyze --file statement.txt --json report.json
  claimsift analyze --url https://x.com/someone/status/123456789`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "resolve this URL to text and analyze it")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "read the document from a file")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write the report JSON to a file instead of stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	if err := loadProviderKeys(cfg); err != nil {
		return err
	}

	content, err := resolveContent(ctx, cfg, args)
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	report, err := analyzer.Analyze(ctx, content)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d sentences\n", len(report.DetailedAnalysis))
		fmt.Fprintf(os.Stderr, "✓ Summary: %s\n", report.Summary)
		fmt.Fprintf(os.Stderr, "✓ Document checkworthiness: %.4f (%s)\n",
			report.Checkworthiness.Score, report.Checkworthiness.Verdict)
	}

	return writeReport(report, outJSON)
}

// resolveContent picks the document source: inline text, file, or URL.
func resolveContent(ctx context.Context, cfg *model.Config, args []string) (string, error) {
	switch {
	case analyzeURL != "":
		return fetchContent(ctx, cfg, analyzeURL)

	case analyzeFile != "":
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil

	case len(args) == 1:
		return args[0], nil

	default:
		return "", fmt.Errorf("provide text, --file or --url")
	}
}

// fetchContent resolves a URL to text. Post URLs go through the post
// API; everything else is fetched as a page.
func fetchContent(ctx context.Context, cfg *model.Config, rawURL string) (string, error) {
	if postID, ok := fetch.ExtractPostID(rawURL); ok {
		fetcher := fetch.NewPostFetcher(os.Getenv("X_BEARER_TOKEN"), cfg.HTTP.Timeout)
		text, ok := fetcher.FetchText(ctx, postID)
		if !ok || text == "" {
			return "", fmt.Errorf("could not resolve post %s to text", postID)
		}
		return text, nil
	}

	fetcher := fetch.NewPageFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, cacheTTL(cfg))
	return fetcher.FetchText(ctx, rawURL)
}

func cacheTTL(cfg *model.Config) time.Duration {
	if !cfg.Cache.Enabled {
		return 0
	}
	return cfg.Cache.TTL
}

func writeReport(report *model.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
	}
	return nil
}
