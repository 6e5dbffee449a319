package selection

import (
	"strings"
	"sync"

	"github.com/benZhai01/vstest/internal/domain"
)

// Accumulator holds the deduplicated set of matched test cases and a running
// count of all tests seen so far. Discovery batches may be delivered from any
// engine goroutine, so every RecordBatch call runs under one lock covering
// the selection set, the counter and the tracker together.
type Accumulator struct {
	mu         sync.Mutex
	selected   []*domain.TestCase
	seen       map[*domain.TestCase]struct{}
	discovered int
}

// NewAccumulator creates an empty Accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[*domain.TestCase]struct{})}
}

// RecordBatch folds one discovery batch into the cumulative selection.
// For each test case the fragments are checked in their original order with a
// case-insensitive substring test against the fully-qualified name; the first
// match adds the case (at most once, by identity), marks the fragment matched
// and stops checking further fragments for that case. Fragments already
// matched are still compared against new cases; only the distinct selected
// cases and the unmatched-fragment set are observable, so the redundant
// comparisons keep batch boundaries semantically invisible.
func (a *Accumulator) RecordBatch(batch []*domain.TestCase, fragments []string, tracker *FilterTracker) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.discovered += len(batch)

	for _, tc := range batch {
		name := strings.ToLower(tc.FullyQualifiedName)
		for _, fragment := range fragments {
			if !strings.Contains(name, strings.ToLower(fragment)) {
				continue
			}
			if _, dup := a.seen[tc]; !dup {
				a.seen[tc] = struct{}{}
				a.selected = append(a.selected, tc)
			}
			tracker.MarkMatched(fragment)
			break
		}
	}
}

// Selected returns the matched test cases in discovery order
func (a *Accumulator) Selected() []*domain.TestCase {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*domain.TestCase, len(a.selected))
	copy(out, a.selected)
	return out
}

// DiscoveredCount returns the number of test cases seen so far, matched or not
func (a *Accumulator) DiscoveredCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.discovered
}
