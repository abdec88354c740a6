package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllamaProvider_MatchJournalists_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.Stream {
			t.Error("Expected stream=false")
		}
		if req.Format != "json" {
			t.Errorf("Expected format json, got %s", req.Format)
		}

		resp := ollamaResponse{
			Model:           "llama3.1:8b",
			Response:        `{"journalists":[{"name":"Jane Doe","publication":"Tech Daily","relevance_score":88}]}`,
			Done:            true,
			PromptEvalCount: 40,
			EvalCount:       60,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1:8b", Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.MatchJournalists(context.Background(), MatchRequest{Website: "acme.com", CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("MatchJournalists failed: %v", err)
	}

	if len(resp.Journalists) != 1 || resp.Journalists[0].Name != "Jane Doe" {
		t.Errorf("Unexpected journalists: %+v", resp.Journalists)
	}
	if resp.TokensUsed != 100 {
		t.Errorf("Unexpected token usage: %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_MissingModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no request when model is missing")
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.MatchJournalists(context.Background(), MatchRequest{Website: "acme.com"}); err == nil {
		t.Error("Expected error when no model is configured")
	}
}

func TestOllamaProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing:model", Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.MatchJournalists(context.Background(), MatchRequest{Website: "acme.com"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("Expected error message to contain 'model not found', got %v", err)
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("Expected path /api/tags, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be available")
	}
}

func TestOllamaProvider_TokenEstimate(t *testing.T) {
	// Some models report zero token counts; the provider estimates instead
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ollamaResponse{
			Model:    "llama3.1:8b",
			Response: `{"journalists":[]}`,
			Done:     true,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1:8b", Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.MatchJournalists(context.Background(), MatchRequest{Website: "acme.com"})
	if err != nil {
		t.Fatalf("MatchJournalists failed: %v", err)
	}
	if resp.TokensUsed == 0 {
		t.Error("Expected estimated token count when the API reports none")
	}
}

func TestFactory_NewProvider(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "bogus"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	p, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error for empty provider, got %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider when matching is disabled")
	}

	p, err = NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error for ollama, got %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %s", p.Name())
	}

	p, err = NewProvider(Config{Provider: "claude", APIKey: "k"})
	if err != nil {
		t.Fatalf("Expected no error for claude alias, got %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("Expected anthropic provider for claude alias, got %s", p.Name())
	}
}
