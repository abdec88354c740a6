package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/presspilot/presspilot/internal/company"
	"github.com/presspilot/presspilot/internal/leads"
	"github.com/presspilot/presspilot/internal/match"
	"github.com/presspilot/presspilot/internal/model"
)

var (
	outJSON      string
	matchTimeout time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	insecureTLS  bool
	httpProxy    string
	httpsProxy   string
	llmProvider  string
	llmModel     string
	withOutreach bool
	outreachTop  int
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <website>",
	Short: "Match a company website with journalists",
	Long: `Match infers the company behind a website URL and asks the
configured LLM provider for a ranked list of journalists whose beat
fits it. Optionally drafts outreach messages for the top matches.

Example:
  presspilot match acme.com
  presspilot match https://acme.com --json leads.json
  presspilot match acme.com --outreach --top 3
  presspilot match acme.com --llm-provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	// Output flags
	matchCmd.Flags().StringVar(&outJSON, "json", "", "write the match result as JSON to this path")
	matchCmd.Flags().BoolVar(&withOutreach, "outreach", false, "draft outreach messages for the top matches")
	matchCmd.Flags().IntVar(&outreachTop, "top", 3, "number of matches to draft outreach for")

	// HTTP flags
	matchCmd.Flags().DurationVar(&matchTimeout, "timeout", 3*time.Minute, "overall timeout for the run")
	matchCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent for homepage fetches")
	matchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max homepage bytes to read")
	matchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the match-result cache")
	matchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification for homepage fetches")
	matchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	matchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	matchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	matchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	website := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), matchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	service, err := match.NewService(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Matching: %s\n", website)
		fmt.Fprintf(os.Stderr, "Provider: %s\n", service.ProviderName())
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	profile := company.Derive(website)
	result, err := service.FindJournalists(ctx, profile)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	printMatchResult(result)

	if withOutreach {
		drafts := outreachTop
		if drafts > len(result.Journalists) {
			drafts = len(result.Journalists)
		}
		for i := 0; i < drafts; i++ {
			j := result.Journalists[i]
			messages, err := service.DraftOutreach(ctx, j, profile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: outreach draft for %s failed: %v\n", j.Name, err)
				continue
			}
			printOutreach(j, messages)
		}
	}

	if outJSON != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := os.WriteFile(outJSON, data, 0o644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	return nil
}

// buildConfig assembles the runtime configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 30 * time.Second
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

// printMatchResult renders journalist cards to stdout
func printMatchResult(result *model.MatchResult) {
	fmt.Printf("\n%d journalists matched to %s", len(result.Journalists), result.CompanyName)
	if result.FromCache {
		fmt.Printf(" (cached)")
	}
	fmt.Printf("\n\n")

	if len(result.Journalists) == 0 {
		fmt.Println("No matching journalists found.")
		return
	}

	for i, j := range result.Journalists {
		fmt.Printf("%2d. %s — %s [%d%% match, %s tier]\n", i+1, j.Name, j.Publication, j.RelevanceScore, j.Tier())
		if j.Coverage != "" {
			fmt.Printf("    %s\n", j.Coverage)
		}
		if j.CoverageLink != "" {
			fmt.Printf("    Coverage: %s\n", j.CoverageLink)
		}
		if j.Email != "" {
			fmt.Printf("    Email: %s\n", j.Email)
		}
		if link := leads.TwitterURL(j.Twitter); link != "" {
			fmt.Printf("    X: %s\n", link)
		}
		if link := leads.LinkedInURL(j.LinkedIn); link != "" {
			fmt.Printf("    LinkedIn: %s\n", link)
		}
		if link := leads.InstagramURL(j.Instagram); link != "" {
			fmt.Printf("    Instagram: %s\n", link)
		}
		for _, s := range j.Sources {
			fmt.Printf("    Source: %s\n", s.URL)
		}
		fmt.Println()
	}
}

// printOutreach renders one journalist's drafts to stdout
func printOutreach(j model.Journalist, messages *model.OutreachMessages) {
	divider := strings.Repeat("─", 60)
	fmt.Printf("%s\nOutreach drafts for %s (%s)\n%s\n", divider, j.Name, j.Publication, divider)
	fmt.Printf("\nEmail:\n%s\n", messages.EmailBody)
	fmt.Printf("\nX DM:\n%s\n", messages.TwitterDM)
	fmt.Printf("\nX post:\n%s\n", messages.TwitterPost)
	fmt.Printf("\nLinkedIn DM:\n%s\n", messages.LinkedInDM)
	fmt.Printf("\nLinkedIn post:\n%s\n\n", messages.LinkedInPost)
}
