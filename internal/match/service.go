// Package match is the journalist-matching service: it turns a website URL
// into a ranked journalist list and drafts per-journalist outreach copy,
// delegating the intelligence to an LLM provider.
package match

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/presspilot/presspilot/internal/cache"
	"github.com/presspilot/presspilot/internal/company"
	"github.com/presspilot/presspilot/internal/llm"
	"github.com/presspilot/presspilot/internal/model"
	"github.com/presspilot/presspilot/internal/sitefetch"
)

// Service orchestrates the complete matching flow
type Service struct {
	provider llm.Provider
	cache    cache.Cache // nil when caching disabled
	fetcher  *sitefetch.Fetcher
	config   *model.Config
}

// NewService creates a new matching service from configuration
func NewService(cfg *model.Config) (*Service, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("no LLM provider configured (set llm.provider to openai, anthropic, or ollama)")
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			resultCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Service{
		provider: provider,
		cache:    resultCache,
		fetcher:  sitefetch.NewFetcher(cfg.HTTP, cfg.Concurrency.FetchRate, cfg.Concurrency.FetchBurst),
		config:   cfg,
	}, nil
}

// NewServiceWithProvider builds a service around an existing provider.
// Used by tests and by callers that manage provider lifecycle themselves.
func NewServiceWithProvider(provider llm.Provider, resultCache cache.Cache, fetcher *sitefetch.Fetcher, cfg *model.Config) *Service {
	return &Service{
		provider: provider,
		cache:    resultCache,
		fetcher:  fetcher,
		config:   cfg,
	}
}

// ProviderName reports which provider backs the service
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// FindJournalists returns the ranked journalist list for a company profile.
// Cached results for the same website are reused; homepage enrichment
// failures degrade silently to the pure URL-derived profile.
func (s *Service) FindJournalists(ctx context.Context, profile company.Profile) (*model.MatchResult, error) {
	if s.cache != nil {
		if cached, found := cache.LookupResult(s.cache, profile.Website); found {
			return cached, nil
		}
	}

	enriched := s.enrich(ctx, profile)

	resp, err := s.provider.MatchJournalists(ctx, llm.MatchRequest{
		Website:            enriched.Website,
		CompanyName:        enriched.Name,
		CompanyDescription: enriched.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("find journalists: %w", err)
	}

	result := &model.MatchResult{
		Website:     profile.Website,
		CompanyName: enriched.Name,
		MatchedAt:   time.Now().UTC(),
		Journalists: resp.Journalists,
		Provider:    s.provider.Name(),
		Model:       resp.Model,
	}

	if s.cache != nil {
		if err := cache.StoreResult(s.cache, result, 0); err != nil && s.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Warning: cache store failed: %v\n", err)
		}
	}

	return result, nil
}

// MatchWebsite derives a profile from a raw URL and finds journalists for
// it. This is the worker.Matcher entry point used by batch processing.
func (s *Service) MatchWebsite(ctx context.Context, website string) (*model.MatchResult, error) {
	return s.FindJournalists(ctx, company.Derive(website))
}

// DraftOutreach generates the five-channel outreach drafts for one
// journalist. Results are not cached here: draft lifetime belongs to the
// caller's session.
func (s *Service) DraftOutreach(ctx context.Context, journalist model.Journalist, profile company.Profile) (*model.OutreachMessages, error) {
	resp, err := s.provider.DraftOutreach(ctx, llm.OutreachRequest{
		Journalist:         journalist,
		Website:            profile.Website,
		CompanyName:        profile.Name,
		CompanyDescription: profile.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("draft outreach: %w", err)
	}

	return &resp.Outreach, nil
}

// enrich overlays homepage metadata on the derived profile when the
// homepage can be fetched politely; any failure keeps the pure profile
func (s *Service) enrich(ctx context.Context, profile company.Profile) company.Profile {
	if s.fetcher == nil {
		return profile
	}

	fetchCtx, cancel := context.WithTimeout(ctx, sitefetch.FetchTimeout)
	defer cancel()

	meta, err := s.fetcher.Fetch(fetchCtx, profile.Website)
	if err != nil {
		if s.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Homepage enrichment skipped for %s: %v\n", profile.Website, err)
		}
		return profile
	}

	sitefetch.Enrich(&profile, meta)
	return profile
}
