package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/presspilot/presspilot/internal/model"
)

// Matcher defines the interface for matching journalists to a website
type Matcher interface {
	MatchWebsite(ctx context.Context, website string) (*model.MatchResult, error)
}

// MatchJob represents one website's journalist-matching job
type MatchJob struct {
	Website string
	Matcher Matcher
}

// Execute executes the match job
func (j *MatchJob) Execute(ctx context.Context) Result {
	result, err := j.Matcher.MatchWebsite(ctx, j.Website)
	if err != nil {
		return &MatchJobResult{
			Website: j.Website,
			Error:   err,
		}
	}
	return &MatchJobResult{
		Website: j.Website,
		Result:  result,
	}
}

// MatchJobResult represents the result of a match job
type MatchJobResult struct {
	Website string
	Result  *model.MatchResult
	Error   error
}

// GetError returns the error from the match result
func (r *MatchJobResult) GetError() error {
	return r.Error
}

// BatchProcessor matches journalists for multiple websites concurrently
type BatchProcessor struct {
	matcher     Matcher
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(matcher Matcher, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		matcher:     matcher,
		concurrency: concurrency,
	}
}

// ProcessWebsites matches journalists for each website concurrently
func (b *BatchProcessor) ProcessWebsites(ctx context.Context, websites []string) []*MatchJobResult {
	if len(websites) == 0 {
		return []*MatchJobResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, website := range websites {
		pool.Submit(&MatchJob{
			Website: website,
			Matcher: b.matcher,
		})
	}

	results := pool.Wait()

	matchResults := make([]*MatchJobResult, len(results))
	for i, result := range results {
		matchResults[i] = result.(*MatchJobResult)
	}

	return matchResults
}

// ProcessFile reads websites from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*MatchJobResult, error) {
	websites, err := ReadWebsitesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read websites: %w", err)
	}

	return b.ProcessWebsites(ctx, websites), nil
}

// ReadWebsitesFromFile reads website URLs from a file (one per line)
func ReadWebsitesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var websites []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			websites = append(websites, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return websites, nil
}
