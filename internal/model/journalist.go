package model

import "time"

// Journalist represents one candidate press contact returned by the
// matching provider. Records are immutable once received.
type Journalist struct {
	Name           string   `json:"name"`                      // Full name
	Publication    string   `json:"publication"`               // Affiliated media organization
	RelevanceScore int      `json:"relevance_score"`           // 0-100 match strength
	Coverage       string   `json:"coverage"`                  // Summary of relevant coverage
	CoverageLink   string   `json:"coverage_link,omitempty"`   // Representative article URL
	Email          string   `json:"email,omitempty"`           // Contact email, if known
	Twitter        string   `json:"twitter,omitempty"`         // Handle or profile URL
	LinkedIn       string   `json:"linkedin,omitempty"`        // Handle or profile URL
	Instagram      string   `json:"instagram,omitempty"`       // Handle or profile URL
	Sources        []Source `json:"sources,omitempty"`         // Citations backing the match
}

// Source is a citation backing a journalist match
type Source struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// OutreachMessages holds drafted copy for the five outbound channels.
// Produced once per journalist per session; immutable once stored.
type OutreachMessages struct {
	EmailBody    string `json:"email_body"`
	TwitterDM    string `json:"twitter_dm"`
	TwitterPost  string `json:"twitter_post"`
	LinkedInDM   string `json:"linkedin_dm"`
	LinkedInPost string `json:"linkedin_post"`
}

// MatchResult is the complete output of one journalist-matching run
type MatchResult struct {
	Website     string       `json:"website"`               // URL that was matched
	CompanyName string       `json:"company_name"`          // Derived company name
	MatchedAt   time.Time    `json:"matched_at"`            // When the match occurred
	Journalists []Journalist `json:"journalists"`           // Ranked candidates
	Provider    string       `json:"provider,omitempty"`    // openai, anthropic, ollama
	Model       string       `json:"model,omitempty"`       // Model that produced the match
	FromCache   bool         `json:"from_cache,omitempty"`  // Served from the URL-keyed cache
}

// RelevanceTier buckets the 0-100 relevance score into three visual
// categories. Boundaries are inclusive on the lower bound of each tier.
type RelevanceTier int

const (
	TierLow RelevanceTier = 0 // score < 75
	TierMid RelevanceTier = 1 // 75 <= score < 90
	TierTop RelevanceTier = 2 // score >= 90
)

func (t RelevanceTier) String() string {
	switch t {
	case TierTop:
		return "top"
	case TierMid:
		return "mid"
	default:
		return "low"
	}
}

// Tier returns the relevance tier for the journalist's score
func (j Journalist) Tier() RelevanceTier {
	switch {
	case j.RelevanceScore >= 90:
		return TierTop
	case j.RelevanceScore >= 75:
		return TierMid
	default:
		return TierLow
	}
}
