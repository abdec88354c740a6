package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/presspilot/presspilot/internal/model"
)

func TestKey_NormalizesEquivalentURLs(t *testing.T) {
	variants := []string{
		"acme.com",
		"https://acme.com",
		"http://acme.com",
		"https://www.acme.com",
		"https://acme.com/",
		"  ACME.com  ",
	}

	base := Key(variants[0])
	for _, v := range variants[1:] {
		if Key(v) != base {
			t.Errorf("Expected Key(%q) to equal Key(%q)", v, variants[0])
		}
	}
}

func TestKey_DistinctWebsitesDistinctKeys(t *testing.T) {
	if Key("acme.com") == Key("globex.com") {
		t.Error("Expected different websites to get different keys")
	}
}

func TestKey_Prefix(t *testing.T) {
	if !strings.HasPrefix(Key("acme.com"), "presspilot:v1:") {
		t.Errorf("Expected versioned key prefix, got %q", Key("acme.com"))
	}
}

func TestStoreAndLookupResult(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	result := &model.MatchResult{
		Website:     "https://acme.com",
		CompanyName: "Acme",
		MatchedAt:   time.Now().UTC().Truncate(time.Second),
		Journalists: []model.Journalist{
			{Name: "Jane Doe", Publication: "Tech Daily", RelevanceScore: 95},
		},
		Provider: "openai",
	}

	if err := StoreResult(c, result, time.Minute); err != nil {
		t.Fatalf("StoreResult failed: %v", err)
	}

	got, found := LookupResult(c, "https://acme.com")
	if !found {
		t.Fatal("Expected cache hit")
	}
	if !got.FromCache {
		t.Error("Expected FromCache to be set on lookup")
	}
	if got.CompanyName != "Acme" || len(got.Journalists) != 1 {
		t.Errorf("Unexpected cached result: %+v", got)
	}
}

func TestLookupResult_NormalizedHit(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	result := &model.MatchResult{Website: "https://acme.com", CompanyName: "Acme"}
	if err := StoreResult(c, result, time.Minute); err != nil {
		t.Fatalf("StoreResult failed: %v", err)
	}

	// The bare-domain form the visitor types must hit the same entry
	if _, found := LookupResult(c, "acme.com"); !found {
		t.Error("Expected normalized lookup to hit")
	}
}

func TestLookupResult_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := LookupResult(c, "nothing.example"); found {
		t.Error("Expected miss for unknown website")
	}
}

func TestLookupResult_CorruptEntryDropped(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("acme.com")
	if err := c.Set(key, []byte("not json"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := LookupResult(c, "acme.com"); found {
		t.Fatal("Expected corrupt entry to miss")
	}
	// And the corrupt entry must be gone, not re-served
	if _, found := c.Get(key); found {
		t.Error("Expected corrupt entry to be deleted")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected entry to expire")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set(Key("acme.com"), []byte(`{"website":"acme.com"}`), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, found := c.Get(Key("acme.com"))
	if !found {
		t.Fatal("Expected disk hit")
	}
	if string(data) != `{"website":"acme.com"}` {
		t.Errorf("Unexpected data: %s", data)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestDiskCache_DeleteAndClear(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected deleted entry to miss")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected cleared entry to miss")
	}
}

func TestDiskCache_DeleteMissingIsNoError(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Delete("never-set"); err != nil {
		t.Errorf("Expected no error deleting a missing key, got %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// Seed the disk layer through a first cache instance, simulating a
	// previous process run
	first := NewLayeredCache(time.Minute, dir, time.Minute)
	if err := first.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	second := NewLayeredCache(time.Minute, dir, time.Minute)
	data, found := second.Get("k")
	if !found {
		t.Fatal("Expected disk layer to serve across instances")
	}
	if string(data) != "v" {
		t.Errorf("Unexpected data: %s", data)
	}
}

func TestLayeredCache_DeleteRemovesBothLayers(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)

	_ = c.Set("k", []byte("v"), time.Minute)
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected delete to clear both layers")
	}
}
