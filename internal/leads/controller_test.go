package leads

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/presspilot/presspilot/internal/company"
	"github.com/presspilot/presspilot/internal/model"
)

// fakeFinder is a controllable Finder for controller tests
type fakeFinder struct {
	findCalls  atomic.Int32
	draftCalls atomic.Int32

	findErr  error
	draftErr error

	journalists []model.Journalist
	messages    *model.OutreachMessages

	// release, when set, gates FindJournalists so tests can hold a fetch
	// in flight
	release chan struct{}
}

func (f *fakeFinder) FindJournalists(ctx context.Context, profile company.Profile) (*model.MatchResult, error) {
	f.findCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.findErr != nil {
		return nil, f.findErr
	}
	return &model.MatchResult{
		Website:     profile.Website,
		CompanyName: profile.Name,
		Journalists: f.journalists,
	}, nil
}

func (f *fakeFinder) DraftOutreach(ctx context.Context, journalist model.Journalist, profile company.Profile) (*model.OutreachMessages, error) {
	f.draftCalls.Add(1)
	if f.draftErr != nil {
		return nil, f.draftErr
	}
	if f.messages != nil {
		return f.messages, nil
	}
	return &model.OutreachMessages{EmailBody: "Hi " + journalist.Name}, nil
}

func discardLogf(format string, args ...any) {}

func TestController_Load_Success(t *testing.T) {
	finder := &fakeFinder{
		journalists: []model.Journalist{
			{Name: "Jane Doe", Publication: "Tech Daily", RelevanceScore: 95},
		},
	}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	query := c.Query()
	if query.Phase != QuerySuccess {
		t.Fatalf("Expected Success, got %s (message=%q)", query.Phase, query.Message)
	}
	if len(query.Journalists) != 1 || query.Journalists[0].Name != "Jane Doe" {
		t.Errorf("Unexpected journalists: %+v", query.Journalists)
	}
	if got := c.Profile().Name; got != "Acme" {
		t.Errorf("Expected derived company name Acme, got %q", got)
	}
	if finder.findCalls.Load() != 1 {
		t.Errorf("Expected 1 fetch, got %d", finder.findCalls.Load())
	}
}

func TestController_Load_EmptyWebsiteIgnored(t *testing.T) {
	finder := &fakeFinder{}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "")
	c.Load(context.Background(), "   ")
	c.Flush()

	if finder.findCalls.Load() != 0 {
		t.Errorf("Expected no fetch for empty input, got %d", finder.findCalls.Load())
	}
	if c.Query().Phase != QueryIdle {
		t.Errorf("Expected Idle, got %s", c.Query().Phase)
	}
}

func TestController_Load_SameWebsiteFetchesOnce(t *testing.T) {
	finder := &fakeFinder{journalists: []model.Journalist{{Name: "Jane Doe"}}}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()
	c.Load(context.Background(), "acme.com")
	c.Flush()

	if finder.findCalls.Load() != 1 {
		t.Errorf("Expected 1 fetch for repeated website, got %d", finder.findCalls.Load())
	}
}

func TestController_Load_SameWebsiteWhileInFlight(t *testing.T) {
	finder := &fakeFinder{
		journalists: []model.Journalist{{Name: "Jane Doe"}},
		release:     make(chan struct{}),
	}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Load(context.Background(), "acme.com")
	c.Load(context.Background(), "acme.com")
	close(finder.release)
	c.Flush()

	if finder.findCalls.Load() != 1 {
		t.Errorf("Expected in-flight dedupe to allow 1 fetch, got %d", finder.findCalls.Load())
	}
}

func TestController_Load_ErrorThenSameWebsite(t *testing.T) {
	finder := &fakeFinder{findErr: errors.New("provider down")}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	query := c.Query()
	if query.Phase != QueryError {
		t.Fatalf("Expected Error, got %s", query.Phase)
	}
	if query.Message != "provider down" {
		t.Errorf("Unexpected display message: %q", query.Message)
	}

	// Resubmitting the same website after a failure must not retry
	c.Load(context.Background(), "acme.com")
	c.Flush()

	if finder.findCalls.Load() != 1 {
		t.Errorf("Expected no retry for unchanged website, got %d fetches", finder.findCalls.Load())
	}
}

func TestController_Load_NewWebsiteAfterError(t *testing.T) {
	finder := &fakeFinder{findErr: errors.New("provider down")}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	finder.findErr = nil
	finder.journalists = []model.Journalist{{Name: "Jane Doe"}}

	c.Load(context.Background(), "globex.com")
	c.Flush()

	query := c.Query()
	if query.Phase != QuerySuccess {
		t.Fatalf("Expected Success after key change, got %s", query.Phase)
	}
	if finder.findCalls.Load() != 2 {
		t.Errorf("Expected 2 fetches total, got %d", finder.findCalls.Load())
	}
	if got := c.Profile().Name; got != "Globex" {
		t.Errorf("Expected profile updated to Globex, got %q", got)
	}
}

func TestController_Load_FailureNotifiesEmptyList(t *testing.T) {
	finder := &fakeFinder{findErr: errors.New("boom")}

	var mu sync.Mutex
	var calls [][]model.Journalist

	c := NewController(finder,
		WithLogf(discardLogf),
		WithResultsCallback(func(js []model.Journalist) {
			mu.Lock()
			calls = append(calls, js)
			mu.Unlock()
		}),
	)

	c.Load(context.Background(), "acme.com")
	c.Flush()

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("Expected 1 callback, got %d", len(calls))
	}
	if calls[0] == nil || len(calls[0]) != 0 {
		t.Errorf("Expected empty (non-nil) list on failure, got %v", calls[0])
	}
}

func TestController_Load_SuccessNotifiesResults(t *testing.T) {
	finder := &fakeFinder{journalists: []model.Journalist{{Name: "Jane Doe"}, {Name: "John Roe"}}}

	var mu sync.Mutex
	var got []model.Journalist

	c := NewController(finder,
		WithLogf(discardLogf),
		WithResultsCallback(func(js []model.Journalist) {
			mu.Lock()
			got = js
			mu.Unlock()
		}),
	)

	c.Load(context.Background(), "acme.com")
	c.Flush()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Errorf("Expected 2 journalists in callback, got %d", len(got))
	}
}

func TestController_ToggleExpanded_FetchesOnFirstExpand(t *testing.T) {
	finder := &fakeFinder{journalists: []model.Journalist{{Name: "Jane Doe", Email: "jane@techdaily.com"}}}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	j := c.Query().Journalists[0]
	key := RowKey(j, 0)

	c.ToggleExpanded(context.Background(), key, j)
	c.Flush()

	if !c.Expanded(key) {
		t.Error("Expected row to be expanded")
	}
	row := c.Row(key)
	if row.Phase != OutreachSuccess {
		t.Fatalf("Expected OutreachSuccess, got %d", row.Phase)
	}
	if row.Messages == nil || row.Messages.EmailBody != "Hi Jane Doe" {
		t.Errorf("Unexpected messages: %+v", row.Messages)
	}
	if finder.draftCalls.Load() != 1 {
		t.Errorf("Expected 1 draft fetch, got %d", finder.draftCalls.Load())
	}
}

func TestController_ToggleExpanded_CollapseKeepsResult(t *testing.T) {
	finder := &fakeFinder{journalists: []model.Journalist{{Name: "Jane Doe"}}}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	j := c.Query().Journalists[0]
	key := RowKey(j, 0)

	c.ToggleExpanded(context.Background(), key, j) // expand, fetch
	c.Flush()
	c.ToggleExpanded(context.Background(), key, j) // collapse
	c.ToggleExpanded(context.Background(), key, j) // re-expand
	c.Flush()

	if finder.draftCalls.Load() != 1 {
		t.Errorf("Expected cached drafts to block a second fetch, got %d", finder.draftCalls.Load())
	}
	if c.Row(key).Phase != OutreachSuccess {
		t.Errorf("Expected cached Success, got %d", c.Row(key).Phase)
	}
	if !c.Expanded(key) {
		t.Error("Expected row expanded after re-expand")
	}
}

func TestController_ToggleExpanded_RetryAfterFailure(t *testing.T) {
	finder := &fakeFinder{
		journalists: []model.Journalist{{Name: "Jane Doe"}},
		draftErr:    errors.New("draft failed"),
	}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	j := c.Query().Journalists[0]
	key := RowKey(j, 0)

	c.ToggleExpanded(context.Background(), key, j)
	c.Flush()

	row := c.Row(key)
	if row.Phase != OutreachFailed {
		t.Fatalf("Expected OutreachFailed, got %d", row.Phase)
	}
	if row.Message != "draft failed" {
		t.Errorf("Unexpected failure message: %q", row.Message)
	}

	// Collapse then re-expand retries a failed draft
	finder.draftErr = nil
	c.ToggleExpanded(context.Background(), key, j) // collapse
	c.ToggleExpanded(context.Background(), key, j) // expand, retry
	c.Flush()

	if finder.draftCalls.Load() != 2 {
		t.Errorf("Expected retry after failure, got %d fetches", finder.draftCalls.Load())
	}
	row = c.Row(key)
	if row.Phase != OutreachSuccess {
		t.Errorf("Expected Success after retry, got %d", row.Phase)
	}
	if row.Message != "" {
		t.Errorf("Expected stale error cleared, got %q", row.Message)
	}
}

func TestController_ToggleExpanded_IndependentRows(t *testing.T) {
	finder := &fakeFinder{journalists: []model.Journalist{
		{Name: "Jane Doe", Email: "jane@techdaily.com"},
		{Name: "John Roe", Email: "john@wired.example"},
	}}
	c := NewController(finder, WithLogf(discardLogf))

	c.Load(context.Background(), "acme.com")
	c.Flush()

	js := c.Query().Journalists
	key0 := RowKey(js[0], 0)
	key1 := RowKey(js[1], 1)

	c.ToggleExpanded(context.Background(), key0, js[0])
	c.ToggleExpanded(context.Background(), key1, js[1])
	c.Flush()

	if finder.draftCalls.Load() != 2 {
		t.Errorf("Expected one fetch per row, got %d", finder.draftCalls.Load())
	}
	if c.Row(key0).Phase != OutreachSuccess || c.Row(key1).Phase != OutreachSuccess {
		t.Error("Expected both rows to reach Success independently")
	}
}

func TestDisplayMessage(t *testing.T) {
	if got := displayMessage(errors.New("provider down")); got != "provider down" {
		t.Errorf("displayMessage = %q", got)
	}
	if got := displayMessage(errors.New("   ")); got != GenericErrorMessage {
		t.Errorf("Expected generic fallback for blank message, got %q", got)
	}
	if got := displayMessage(nil); got != GenericErrorMessage {
		t.Errorf("Expected generic fallback for nil, got %q", got)
	}
}
