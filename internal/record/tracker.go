package record

import "fmt"

// Tracker passively accumulates tags, record types and fields that no
// mapping rule recognized during one parse. It is scoped to a single parse
// call, never shared, and its contents have no bearing on whether the parse
// succeeds.
type Tracker struct {
	tags []string
}

// NewTracker returns an empty tracker for one parse call.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add records an unrecognized element at the given path.
func (t *Tracker) Add(path string) {
	t.tags = append(t.tags, path)
}

// Addf records an unrecognized element with formatted context, e.g. a
// malformed flat line alongside its record type.
func (t *Tracker) Addf(format string, args ...any) {
	t.tags = append(t.tags, fmt.Sprintf(format, args...))
}

// Tags returns the accumulated diagnostics in insertion order. The returned
// slice is a copy; callers cannot mutate tracker state through it.
func (t *Tracker) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// Len returns the number of accumulated diagnostics.
func (t *Tracker) Len() int {
	return len(t.tags)
}
