package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/presspilot/presspilot/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// MatchJournalists returns a ranked list of press contacts for a company
	MatchJournalists(ctx context.Context, req MatchRequest) (*MatchResponse, error)

	// DraftOutreach generates the five-channel outreach drafts for one journalist
	DraftOutreach(ctx context.Context, req OutreachRequest) (*OutreachResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// MatchRequest contains the input for journalist matching
type MatchRequest struct {
	// Website is the raw company URL the visitor entered
	Website string

	// CompanyName and CompanyDescription are derived from the URL
	// (optionally enriched from homepage metadata)
	CompanyName        string
	CompanyDescription string

	// MaxResults caps the number of journalists returned
	MaxResults int

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// MatchResponse contains the provider's journalist list
type MatchResponse struct {
	// Journalists is the ranked candidate list
	Journalists []model.Journalist

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// OutreachRequest contains the input for outreach drafting
type OutreachRequest struct {
	// Journalist is the contact the drafts address
	Journalist model.Journalist

	// Company context for personalization
	Website            string
	CompanyName        string
	CompanyDescription string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// OutreachResponse contains the drafted messages
type OutreachResponse struct {
	Outreach   model.OutreachMessages
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60,
		MaxTokens: 4000,
	}
}

const matchSystemPrompt = "You are a PR research assistant that matches companies with journalists who cover their space. You respond with strict JSON and never invent contact details you are not confident about."

const outreachSystemPrompt = "You are a PR copywriter drafting personalized, concise outreach messages from a startup founder to a journalist. You respond with strict JSON."

// BuildMatchPrompt constructs the default prompt for journalist matching
func BuildMatchPrompt(req MatchRequest) string {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	return fmt.Sprintf(`Find up to %d journalists who are strong matches to cover this company:

Company: %s
Website: %s
Description: %s

For each journalist provide:
- name, publication
- relevance_score: integer 0-100 for how well their beat matches this company
- coverage: one-sentence summary of their relevant coverage
- coverage_link: URL of a representative article, if known
- email, twitter, linkedin, instagram: contact details, only when confident; handles or profile URLs
- sources: citations backing the match, each with url and description

Order by relevance_score, highest first. Omit fields you do not know rather than guessing.

Respond with ONLY a JSON object of this exact shape:
{"journalists":[{"name":"...","publication":"...","relevance_score":0,"coverage":"...","coverage_link":"...","email":"...","twitter":"...","linkedin":"...","instagram":"...","sources":[{"url":"...","description":"..."}]}]}`,
		maxResults, req.CompanyName, req.Website, req.CompanyDescription)
}

// BuildOutreachPrompt constructs the default prompt for outreach drafting
func BuildOutreachPrompt(req OutreachRequest) string {
	j := req.Journalist

	var b strings.Builder
	fmt.Fprintf(&b, `Draft outreach messages from the founder of %s to this journalist:

Journalist: %s (%s)
Their coverage: %s
`, req.CompanyName, j.Name, j.Publication, j.Coverage)

	if j.CoverageLink != "" {
		fmt.Fprintf(&b, "Representative article: %s\n", j.CoverageLink)
	}

	fmt.Fprintf(&b, `
Company: %s
Website: %s
Description: %s

Write five independent drafts, each personalized to the journalist's beat:
- email_body: a pitch email, 120-180 words, no subject line
- twitter_dm: a direct message under 280 characters
- twitter_post: a public post mentioning the journalist, under 280 characters
- linkedin_dm: a direct message, 60-100 words
- linkedin_post: a public post, 80-120 words

Respond with ONLY a JSON object of this exact shape:
{"outreach":{"email_body":"...","twitter_dm":"...","twitter_post":"...","linkedin_dm":"...","linkedin_post":"..."}}`,
		req.CompanyName, req.Website, req.CompanyDescription)

	return b.String()
}
