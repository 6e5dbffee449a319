package selection

// FilterTracker holds the set of fragments not yet matched by any discovered
// test. The set only shrinks: a fragment is removed the first time any test
// matches it and never re-added. Tracking equality is the exact trimmed
// string, independent of the case-insensitive match used for selection.
//
// The tracker itself is not synchronized; during discovery every mutation
// happens under the Accumulator's lock.
type FilterTracker struct {
	remaining map[string]struct{}
}

// NewFilterTracker creates a tracker holding the full fragment set
func NewFilterTracker(fragments []string) *FilterTracker {
	remaining := make(map[string]struct{}, len(fragments))
	for _, fragment := range fragments {
		remaining[fragment] = struct{}{}
	}
	return &FilterTracker{remaining: remaining}
}

// MarkMatched removes the fragment if present. No-op when already removed.
func (t *FilterTracker) MarkMatched(fragment string) {
	delete(t.remaining, fragment)
}

// Has reports whether the fragment is still unmatched
func (t *FilterTracker) Has(fragment string) bool {
	_, ok := t.remaining[fragment]
	return ok
}

// Remaining returns the still-unmatched fragments in no particular order
func (t *FilterTracker) Remaining() []string {
	out := make([]string, 0, len(t.remaining))
	for fragment := range t.remaining {
		out = append(out, fragment)
	}
	return out
}

// RemainingCount returns the number of still-unmatched fragments
func (t *FilterTracker) RemainingCount() int {
	return len(t.remaining)
}
