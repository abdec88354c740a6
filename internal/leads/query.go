// Package leads holds the lead-session state: the journalist-list query
// lifecycle and the per-row expansion and outreach-draft state. All state
// is scoped to one session and never persists across restarts.
package leads

import "github.com/presspilot/presspilot/internal/model"

// QueryPhase is the lifecycle phase of the journalist-list query
type QueryPhase int

const (
	QueryIdle    QueryPhase = iota // No query issued yet
	QueryLoading                   // Fetch in flight for Key
	QuerySuccess                   // Journalists present for Key
	QueryError                     // Fetch failed for Key
)

func (p QueryPhase) String() string {
	switch p {
	case QueryLoading:
		return "loading"
	case QuerySuccess:
		return "success"
	case QueryError:
		return "error"
	default:
		return "idle"
	}
}

// QueryKey identifies one journalist-list query. Any change to the triple
// restarts the query; an unchanged triple never re-fetches.
type QueryKey struct {
	Website            string
	CompanyName        string
	CompanyDescription string
}

// ListQuery is the journalist-list query state machine. Every in-flight
// request carries the key it was issued for; completions whose key no
// longer matches the current key are discarded, so a stale response can
// never overwrite state belonging to a newer query.
type ListQuery struct {
	Phase       QueryPhase
	Key         QueryKey
	Journalists []model.Journalist
	Message     string // display-safe failure message
	Detail      string // raw error detail for diagnostics
}

// begin transitions the query to Loading for the given key. It reports
// whether a fetch should actually be issued: re-submitting the current key
// is a no-op in every non-idle phase (Loading dedupes concurrent
// submissions, Success keeps the cached list, Error waits for a key change
// or a new session).
func (q *ListQuery) begin(key QueryKey) bool {
	if q.Phase != QueryIdle && q.Key == key {
		return false
	}

	*q = ListQuery{
		Phase: QueryLoading,
		Key:   key,
	}
	return true
}

// complete records a successful fetch. Responses tagged with a superseded
// key are dropped.
func (q *ListQuery) complete(key QueryKey, journalists []model.Journalist) bool {
	if q.Phase != QueryLoading || q.Key != key {
		return false
	}

	*q = ListQuery{
		Phase:       QuerySuccess,
		Key:         key,
		Journalists: journalists,
	}
	return true
}

// fail records a failed fetch, subject to the same key guard as complete
func (q *ListQuery) fail(key QueryKey, message, detail string) bool {
	if q.Phase != QueryLoading || q.Key != key {
		return false
	}

	*q = ListQuery{
		Phase:   QueryError,
		Key:     key,
		Message: message,
		Detail:  detail,
	}
	return true
}
