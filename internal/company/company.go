// Package company derives a company name and description from a raw
// website URL. The derivations are pure string transforms; callers may
// enrich the description with fetched homepage metadata when available.
package company

import (
	"fmt"
	"net/url"
	"strings"
)

// Profile identifies the company a lead search runs for. The triple is
// the key of the journalist-list query: any change restarts the query.
type Profile struct {
	Website     string
	Name        string
	Description string
}

// Derive builds a Profile from a raw website URL using pure inference
func Derive(website string) Profile {
	name := InferName(website)
	return Profile{
		Website:     website,
		Name:        name,
		Description: InferDescription(website, name),
	}
}

// InferName extracts a company name from a website URL.
// "https://www.acme-labs.com/about" -> "Acme Labs".
func InferName(website string) string {
	host := hostOf(website)
	if host == "" {
		return website
	}

	host = strings.TrimPrefix(host, "www.")

	// Registrable label: everything before the first dot
	label := host
	if idx := strings.Index(host, "."); idx > 0 {
		label = host[:idx]
	}

	label = strings.ReplaceAll(label, "-", " ")
	label = strings.ReplaceAll(label, "_", " ")

	return titleCase(label)
}

// InferDescription produces a fallback description when no homepage
// metadata is available
func InferDescription(website, name string) string {
	host := hostOf(website)
	if host == "" {
		host = website
	}
	return fmt.Sprintf("%s, the company behind %s", name, strings.TrimPrefix(host, "www."))
}

// hostOf parses the host out of a URL, tolerating missing schemes
// ("acme.com" is as common an input as "https://acme.com")
func hostOf(website string) string {
	raw := strings.TrimSpace(website)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
