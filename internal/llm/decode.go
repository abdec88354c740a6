package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/presspilot/presspilot/internal/model"
)

// journalistsPayload matches the JSON shape the match prompt demands
type journalistsPayload struct {
	Journalists []model.Journalist `json:"journalists"`
}

// outreachPayload matches the JSON shape the outreach prompt demands
type outreachPayload struct {
	Outreach model.OutreachMessages `json:"outreach"`
}

// DecodeJournalists parses the provider's journalist JSON. Models sometimes
// wrap JSON in markdown fences despite instructions, so fences are stripped
// before unmarshaling. Scores are clamped to 0-100 and nameless entries
// dropped.
func DecodeJournalists(raw string) ([]model.Journalist, error) {
	cleaned := stripFences(raw)

	var payload journalistsPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		// Some models return a bare array instead of the wrapper object
		var bare []model.Journalist
		if arrErr := json.Unmarshal([]byte(cleaned), &bare); arrErr == nil {
			payload.Journalists = bare
		} else {
			return nil, fmt.Errorf("parse journalists JSON: %w", err)
		}
	}

	journalists := make([]model.Journalist, 0, len(payload.Journalists))
	for _, j := range payload.Journalists {
		if strings.TrimSpace(j.Name) == "" {
			continue
		}
		if j.RelevanceScore < 0 {
			j.RelevanceScore = 0
		}
		if j.RelevanceScore > 100 {
			j.RelevanceScore = 100
		}
		journalists = append(journalists, j)
	}

	return journalists, nil
}

// DecodeOutreach parses the provider's outreach JSON
func DecodeOutreach(raw string) (*model.OutreachMessages, error) {
	cleaned := stripFences(raw)

	// A bare object unmarshals into the wrapper without error, leaving
	// Outreach empty, so the fallback keys off the missing email_body too
	var payload outreachPayload
	err := json.Unmarshal([]byte(cleaned), &payload)
	if err != nil || payload.Outreach.EmailBody == "" {
		var bare model.OutreachMessages
		if objErr := json.Unmarshal([]byte(cleaned), &bare); objErr == nil && bare.EmailBody != "" {
			payload.Outreach = bare
		} else if err != nil {
			return nil, fmt.Errorf("parse outreach JSON: %w", err)
		}
	}

	if payload.Outreach.EmailBody == "" {
		return nil, fmt.Errorf("outreach response missing email_body")
	}

	return &payload.Outreach, nil
}

// stripFences removes a surrounding markdown code fence, if present, and
// trims any prose before the first brace or bracket
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start > 0 {
		s = s[start:]
	}

	return s
}
