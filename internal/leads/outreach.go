package leads

import (
	"fmt"

	"github.com/presspilot/presspilot/internal/model"
)

// OutreachPhase is the lifecycle phase of one row's outreach drafts
type OutreachPhase int

const (
	OutreachNotStarted OutreachPhase = iota
	OutreachLoading
	OutreachSuccess
	OutreachFailed
)

// OutreachState is the tagged per-row state. Exactly one phase holds at a
// time; Messages is set only on Success and Message only on Failed, so the
// "at most one of loading/result/error" invariant is structural.
type OutreachState struct {
	Phase    OutreachPhase
	Messages *model.OutreachMessages // Success only; immutable once stored
	Message  string                  // Failed only; display-safe
}

// blocksFetch reports whether an expand of this row must not start a new
// draft fetch: an in-flight load or a cached success blocks, a prior
// failure does not (errors are retried on the next expand).
func (s OutreachState) blocksFetch() bool {
	return s.Phase == OutreachLoading || s.Phase == OutreachSuccess
}

// RowKey derives the stable UI identity for the journalist at list
// position i. No server-issued identifier is guaranteed unique, so the key
// falls back through contact fields and is disambiguated by position.
func RowKey(j model.Journalist, i int) string {
	base := j.Email
	if base == "" {
		base = j.CoverageLink
	}
	if base == "" {
		base = j.Name
	}
	return fmt.Sprintf("%s-%d", base, i)
}
