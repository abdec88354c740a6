package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/presspilot/presspilot/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a website URL. The URL is normalized so
// "acme.com", "https://acme.com" and "https://acme.com/" share an entry.
func Key(website string) string {
	normalized := strings.ToLower(strings.TrimSpace(website))
	normalized = strings.TrimPrefix(normalized, "https://")
	normalized = strings.TrimPrefix(normalized, "http://")
	normalized = strings.TrimPrefix(normalized, "www.")
	normalized = strings.TrimSuffix(normalized, "/")

	hash := sha256.Sum256([]byte(normalized))
	return "presspilot:v1:" + hex.EncodeToString(hash[:])
}

// StoreResult serializes a match result into the cache under its website key
func StoreResult(c Cache, result *model.MatchResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.Set(Key(result.Website), data, ttl)
}

// LookupResult retrieves a cached match result for a website, if present
func LookupResult(c Cache, website string) (*model.MatchResult, bool) {
	data, found := c.Get(Key(website))
	if !found {
		return nil, false
	}

	var result model.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		// Corrupt entry: drop it so the next lookup misses cleanly
		_ = c.Delete(Key(website))
		return nil, false
	}

	result.FromCache = true
	return &result, true
}
