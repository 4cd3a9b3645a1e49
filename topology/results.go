package topology

import (
	"fmt"
	"strings"
)

// entry pairs a rule name with the Result it produced, preserving
// invocation order for reporting.
type entry struct {
	name   string
	result Result
}

// Results aggregates the outcome of every rule invoked in one validation
// run, keyed by rule name with invocation order preserved.
type Results struct {
	entries []entry
}

// Add appends a rule's outcome, preserving invocation order.
func (rs *Results) Add(ruleName string, r Result) {
	rs.entries = append(rs.entries, entry{name: ruleName, result: r})
}

// Summary renders one line per rule: "no errors", or the per-kind error
// counts.
func (rs Results) Summary() string {
	var b strings.Builder
	for _, e := range rs.entries {
		if e.result.IsValid() {
			fmt.Fprintf(&b, "%s: no errors\n", e.name)
			continue
		}
		var counts []string
		for _, err := range e.result.AllErrors() {
			counts = append(counts, fmt.Sprintf("%s=%d", err.Kind, err.Count()))
		}
		fmt.Fprintf(&b, "%s: %s\n", e.name, strings.Join(counts, ", "))
	}
	return b.String()
}

// Destination receives exported error geometries, one call per rule/kind
// bucket, with a transactional commit/rollback scope so an export is
// all-or-nothing. iosource.Writer satisfies this interface structurally.
type Destination interface {
	WriteErrors(ruleName string, err Error) error
	Commit() error
	Rollback() error
}

// Export writes every rule's error buckets to dest, committing only if
// every write succeeds; any failure rolls the whole export back, so a
// partial export is never observable by a reader of dest.
func (rs Results) Export(dest Destination) error {
	for _, e := range rs.entries {
		if e.result.IsValid() {
			continue
		}
		for _, err := range e.result.AllErrors() {
			if writeErr := dest.WriteErrors(e.name, err); writeErr != nil {
				_ = dest.Rollback()
				return writeErr
			}
		}
	}
	return dest.Commit()
}
