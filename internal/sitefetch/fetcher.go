// Package sitefetch retrieves a company homepage and extracts the metadata
// used to enrich the inferred company profile. Every failure here is soft:
// callers fall back to pure URL inference.
package sitefetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/presspilot/presspilot/internal/company"
	"github.com/presspilot/presspilot/internal/model"
	"github.com/presspilot/presspilot/internal/util"
	"github.com/presspilot/presspilot/internal/worker"
)

// Fetcher fetches homepage metadata from company websites
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(cfg model.HTTPConfig, fetchRate float64, burst int) *Fetcher {
	if fetchRate <= 0 {
		fetchRate = float64(rate.Inf)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: util.NewTransport(cfg),
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		limiter:   worker.NewLimiter(fetchRate, burst),
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// Meta contains the extracted homepage metadata
type Meta struct {
	Title       string
	SiteName    string
	Description string
	FinalURL    string
}

// Fetch retrieves the homepage at the given URL and extracts its metadata.
// URLs without a scheme get https prepended, matching how visitors type
// them ("acme.com").
func (f *Fetcher) Fetch(ctx context.Context, website string) (*Meta, error) {
	rawURL := strings.TrimSpace(website)
	if rawURL == "" {
		return nil, fmt.Errorf("empty website URL")
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	if !f.robots.IsAllowed(ctx, rawURL) {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	// Read body with size limit
	limitedReader := io.LimitReader(resp.Body, f.maxBytes)

	meta, err := extractMeta(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("parse homepage: %w", err)
	}

	meta.FinalURL = resp.Request.URL.String()
	return meta, nil
}

// extractMeta pulls title and descriptive meta tags from homepage HTML
func extractMeta(r io.Reader) (*Meta, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	meta := &Meta{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(v)
	}
	if meta.Description == "" {
		if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(v)
		}
	}
	if v, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		meta.SiteName = strings.TrimSpace(v)
	}

	return meta, nil
}

// Enrich overlays fetched homepage metadata onto a derived company profile.
// Fetched values win only when present; the pure derivation remains the
// fallback for every field.
func Enrich(profile *company.Profile, meta *Meta) {
	if meta == nil {
		return
	}
	if meta.SiteName != "" {
		profile.Name = meta.SiteName
	}
	if meta.Description != "" {
		profile.Description = meta.Description
	} else if meta.Title != "" {
		profile.Description = meta.Title
	}
}

// FetchTimeout bounds a single enrichment fetch so a slow homepage never
// delays the provider call noticeably
const FetchTimeout = 10 * time.Second
