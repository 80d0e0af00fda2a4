package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimsift/claimsift/internal/model"
	"github.com/claimsift/claimsift/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple documents from a file in parallel",
	Long: `Batch analyzes many documents concurrently:
- Read documents from the input file (one per line)
- Analyze documents in parallel with configurable worker count
- Each document's own pipeline still runs sequentially
- Write one report JSON per document

Example:
  claimsift batch posts.txt
  claimsift batch posts.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claimsift-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose

	if err := loadProviderKeys(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(analyzer, cfg.Concurrency.Workers)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for i, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ document %d: %v\n", i+1, result.Error)
			continue
		}

		successCount++

		jsonPath := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", i+1))
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ document %d: marshal report: %v\n", i+1, err)
			continue
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ document %d: write report: %v\n", i+1, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ document %d: %s (%.4f %s)\n",
			i+1, result.Report.Summary,
			result.Report.Checkworthiness.Score, result.Report.Checkworthiness.Verdict)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:    %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:  %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures: %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:   %s\n", outputDir)

	return nil
}
