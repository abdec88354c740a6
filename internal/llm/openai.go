package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI models
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	client := openai.NewClientWithConfig(clientConfig)

	return &OpenAIProvider{
		client: client,
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	// Simple check: try to list models (lightweight API call)
	_, err := p.client.ListModels(ctx)
	if err != nil {
		// Log the actual error for debugging (this helps users diagnose API key issues)
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// MatchJournalists finds press contacts using OpenAI's Chat Completions API
func (p *OpenAIProvider) MatchJournalists(ctx context.Context, req MatchRequest) (*MatchResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = BuildMatchPrompt(req)
	}

	content, model, tokens, err := p.complete(ctx, matchSystemPrompt, prompt, req.Model, req.MaxTokens)
	if err != nil {
		return nil, err
	}

	journalists, err := DecodeJournalists(content)
	if err != nil {
		return nil, fmt.Errorf("openai match response: %w", err)
	}

	return &MatchResponse{
		Journalists: journalists,
		Model:       model,
		TokensUsed:  tokens,
	}, nil
}

// DraftOutreach generates outreach drafts using OpenAI's Chat Completions API
func (p *OpenAIProvider) DraftOutreach(ctx context.Context, req OutreachRequest) (*OutreachResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = BuildOutreachPrompt(req)
	}

	content, model, tokens, err := p.complete(ctx, outreachSystemPrompt, prompt, req.Model, req.MaxTokens)
	if err != nil {
		return nil, err
	}

	outreach, err := DecodeOutreach(content)
	if err != nil {
		return nil, fmt.Errorf("openai outreach response: %w", err)
	}

	return &OutreachResponse{
		Outreach:   *outreach,
		Model:      model,
		TokensUsed: tokens,
	}, nil
}

// complete runs one chat completion in JSON mode and returns the raw content
func (p *OpenAIProvider) complete(ctx context.Context, system, prompt, reqModel string, reqMaxTokens int) (string, string, int, error) {
	// Determine model
	model := reqModel
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		model = openai.GPT4oMini // Default to gpt-4o-mini
	}

	// Determine max tokens
	maxTokens := reqMaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 4000
	}

	// Create timeout context
	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3, // Lower temperature for more focused, factual output
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", "", 0, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", "", 0, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return content, model, resp.Usage.TotalTokens, nil
}
