package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/claimsift/claimsift/internal/model"
)

// DocumentAnalyzer analyzes one document's text.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, content string) (*model.AnalysisReport, error)
}

// AnalyzeJob analyzes a single document.
type AnalyzeJob struct {
	Index    int
	Content  string
	Analyzer DocumentAnalyzer
}

// Execute runs the analysis job.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.Analyze(ctx, j.Content)
	return &AnalyzeResult{
		Index:   j.Index,
		Content: j.Content,
		Report:  report,
		Error:   err,
	}
}

// AnalyzeResult is the result of one document analysis.
type AnalyzeResult struct {
	Index   int
	Content string
	Report  *model.AnalysisReport
	Error   error
}

// GetError returns the job's error, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many documents concurrently.
type BatchProcessor struct {
	analyzer    DocumentAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor over an analyzer.
func NewBatchProcessor(analyzer DocumentAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessDocuments analyzes the documents concurrently, returning
// results ordered by document index.
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, docs []string) []*AnalyzeResult {
	if len(docs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a goroutine so results can drain while large batches
	// are still enqueueing.
	go func() {
		for i, doc := range docs {
			pool.Submit(&AnalyzeJob{
				Index:    i,
				Content:  doc,
				Analyzer: b.analyzer,
			})
		}
		pool.Close()
	}()

	ordered := make([]*AnalyzeResult, len(docs))
	for result := range pool.Results() {
		ar := result.(*AnalyzeResult)
		ordered[ar.Index] = ar
	}

	return ordered
}

// ProcessFile reads documents from a file (one per line) and analyzes
// them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	docs, err := ReadDocumentsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	return b.ProcessDocuments(ctx, docs), nil
}

// ReadDocumentsFromFile reads one document per line, skipping blank
// lines and # comments.
func ReadDocumentsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var docs []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		docs = append(docs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return docs, nil
}
