package leads

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/presspilot/presspilot/internal/company"
	"github.com/presspilot/presspilot/internal/model"
)

// GenericErrorMessage is shown when an underlying error carries no usable
// message of its own
const GenericErrorMessage = "Something went wrong. Please try again."

// Finder is the matching-service boundary the controller drives.
// match.Service satisfies it; tests substitute fakes.
type Finder interface {
	FindJournalists(ctx context.Context, profile company.Profile) (*model.MatchResult, error)
	DraftOutreach(ctx context.Context, journalist model.Journalist, profile company.Profile) (*model.OutreachMessages, error)
}

// Controller owns the state of one lead session: the journalist-list query
// plus per-row expansion and outreach-draft state. List fetches are keyed
// by the derived company triple; outreach fetches are keyed per row. Any
// number of row fetches may be in flight concurrently, but at most one per
// row, and at most one list fetch per session.
type Controller struct {
	finder Finder

	mu       sync.Mutex
	profile  company.Profile
	query    ListQuery
	expanded map[string]bool
	rows     map[string]OutreachState

	// onResults, when set, is invoked with the full journalist list after
	// every list-fetch completion (empty list on failure)
	onResults func([]model.Journalist)

	logf func(format string, args ...any)

	inflight sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithResultsCallback registers the results-notification callback
func WithResultsCallback(fn func([]model.Journalist)) Option {
	return func(c *Controller) { c.onResults = fn }
}

// WithLogf overrides the operator diagnostics sink
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *Controller) { c.logf = logf }
}

// NewController creates a controller for one lead session
func NewController(finder Finder, opts ...Option) *Controller {
	c := &Controller{
		finder:   finder,
		expanded: make(map[string]bool),
		rows:     make(map[string]OutreachState),
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load issues the journalist-list fetch for a website. Empty input is
// ignored. Re-submitting the current website is a no-op; a different
// website supersedes the previous query, and any still-running fetch for
// the old key has its eventual completion discarded.
func (c *Controller) Load(ctx context.Context, website string) {
	if strings.TrimSpace(website) == "" {
		return
	}

	profile := company.Derive(website)
	key := QueryKey{
		Website:            profile.Website,
		CompanyName:        profile.Name,
		CompanyDescription: profile.Description,
	}

	c.mu.Lock()
	started := c.query.begin(key)
	if started {
		c.profile = profile
	}
	c.mu.Unlock()

	if !started {
		return
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.runListFetch(ctx, key, profile)
	}()
}

func (c *Controller) runListFetch(ctx context.Context, key QueryKey, profile company.Profile) {
	result, err := c.finder.FindJournalists(ctx, profile)

	c.mu.Lock()
	var notify []model.Journalist
	var applied bool
	if err != nil {
		applied = c.query.fail(key, displayMessage(err), err.Error())
		notify = []model.Journalist{}
	} else {
		applied = c.query.complete(key, result.Journalists)
		notify = result.Journalists
	}
	onResults := c.onResults
	c.mu.Unlock()

	// Stale completion for a superseded key: nothing was applied and the
	// callback must not fire
	if !applied {
		return
	}

	if err != nil {
		c.logf("journalist fetch failed: website=%s company=%q description=%q err=%v",
			key.Website, key.CompanyName, key.CompanyDescription, err)
	}

	if onResults != nil {
		onResults(notify)
	}
}

// ToggleExpanded flips a row between expanded and collapsed. Expanding
// starts the outreach-draft fetch unless one is in flight or a result is
// already cached; a prior failure does not block, so re-expanding after an
// error retries. Collapsing only flips the flag and discards nothing.
func (c *Controller) ToggleExpanded(ctx context.Context, key string, journalist model.Journalist) {
	c.mu.Lock()

	if c.expanded[key] {
		c.expanded[key] = false
		c.mu.Unlock()
		return
	}
	c.expanded[key] = true

	if c.rows[key].blocksFetch() {
		c.mu.Unlock()
		return
	}

	// Clears any stale error for this row
	c.rows[key] = OutreachState{Phase: OutreachLoading}
	profile := c.profile
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.runOutreachFetch(ctx, key, journalist, profile)
	}()
}

func (c *Controller) runOutreachFetch(ctx context.Context, key string, journalist model.Journalist, profile company.Profile) {
	messages, err := c.finder.DraftOutreach(ctx, journalist, profile)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rows[key].Phase != OutreachLoading {
		return
	}

	if err != nil {
		c.rows[key] = OutreachState{
			Phase:   OutreachFailed,
			Message: displayMessage(err),
		}
		return
	}

	c.rows[key] = OutreachState{
		Phase:    OutreachSuccess,
		Messages: messages,
	}
}

// Query returns a snapshot of the list-query state
func (c *Controller) Query() ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.query
	snapshot.Journalists = append([]model.Journalist(nil), c.query.Journalists...)
	return snapshot
}

// Profile returns the derived company profile of the current query
func (c *Controller) Profile() company.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// Expanded reports whether a row is expanded
func (c *Controller) Expanded(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded[key]
}

// Row returns the outreach state for a row key
func (c *Controller) Row(key string) OutreachState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows[key]
}

// Flush blocks until every fetch started so far has completed. Used by the
// CLI and by tests; the web handlers render whatever state is current
// instead.
func (c *Controller) Flush() {
	c.inflight.Wait()
}

// displayMessage converts an error to a display-safe message, falling back
// to a fixed generic string when the error carries no message
func displayMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return GenericErrorMessage
	}
	return err.Error()
}
