package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/presspilot/presspilot/internal/match"
	"github.com/presspilot/presspilot/internal/model"
	"github.com/presspilot/presspilot/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Match journalists for multiple websites from a file in parallel",
	Long: `Batch processes multiple websites concurrently:
- Read website URLs from input file (one per line)
- Match each website in parallel with configurable worker count
- Write one JSON result per website

Example:
  presspilot batch sites.txt
  presspilot batch sites.txt --concurrency 8 --output-dir ./leads
  presspilot batch sites.txt --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./presspilot-leads", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Inherit flags from match command
	batchCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent for homepage fetches")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the match-result cache")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	service, err := match.NewService(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(service, concurrency)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	succeeded := 0
	for _, result := range results {
		if result.Error != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Website, result.Error)
			continue
		}

		path := filepath.Join(outputDir, resultFileName(result.Website))
		data, err := json.MarshalIndent(result.Result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: marshal result: %v\n", result.Website, err)
			continue
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write result: %v\n", result.Website, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "✓ %s: %d journalists → %s\n", result.Website, len(result.Result.Journalists), path)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d/%d websites matched\n", succeeded, len(results))
	return nil
}

// resultFileName maps a website URL to a filesystem-safe JSON file name
func resultFileName(website string) string {
	name := strings.TrimPrefix(website, "https://")
	name = strings.TrimPrefix(name, "http://")
	name = strings.TrimSuffix(name, "/")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', ':', '?', '&', '#':
			return '_'
		}
		return r
	}, name)
	return name + ".json"
}
