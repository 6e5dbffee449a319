package selection

import (
	"context"
	"strings"

	"github.com/benZhai01/vstest/internal/domain"
)

// Decision is the outcome of deciding whether to submit a run request
type Decision int

const (
	// DecisionRun submits the selected test cases for execution
	DecisionRun Decision = iota
	// DecisionNoMatch skips the run: tests were discovered but none matched
	DecisionNoMatch
	// DecisionNoDiscovery skips the run: no test was discovered at all
	DecisionNoDiscovery
)

// SubmitInput carries the accumulated selection state into the submitter
type SubmitInput struct {
	Selected          []*domain.TestCase
	DiscoveredCount   int
	Tracker           *FilterTracker
	Fragments         []string
	Sources           []string
	Settings          *domain.RunSettings
	TestCaseFilter    string
	AdapterConfigured bool
}

// Submitter decides after discovery completes whether to submit a run request
// and builds it from the accumulated selection. Absence of matches is a
// warning, never a failure.
type Submitter struct {
	engine RunEngine
	msg    Messenger
}

// NewSubmitter creates a new Submitter
func NewSubmitter(engine RunEngine, msg Messenger) *Submitter {
	return &Submitter{engine: engine, msg: msg}
}

// Decide returns what Submit would do for the given selection state
func (s *Submitter) Decide(selectedCount, discoveredCount int) Decision {
	switch {
	case selectedCount > 0:
		return DecisionRun
	case discoveredCount > 0:
		return DecisionNoMatch
	default:
		return DecisionNoDiscovery
	}
}

// Submit emits the appropriate warnings and, when anything was selected,
// submits a run request containing exactly the selected test cases.
func (s *Submitter) Submit(ctx context.Context, in SubmitInput) error {
	switch s.Decide(len(in.Selected), in.DiscoveredCount) {
	case DecisionRun:
		if in.Tracker.RemainingCount() > 0 {
			s.msg.Warnf("Some test name fragments matched no test: %s", joinUnmatched(in.Fragments, in.Tracker))
		}
		return s.engine.RunTests(ctx, RunRequest{
			TestCases:      in.Selected,
			Settings:       in.Settings,
			KeepAlive:      false,
			TestCaseFilter: in.TestCaseFilter,
		})

	case DecisionNoMatch:
		s.msg.Warnf("A total of %d tests were discovered but none matched the given test name fragments: %s",
			in.DiscoveredCount, strings.Join(in.Fragments, ", "))
		return nil

	default:
		notice := "No test was discovered from the given sources: " + strings.Join(in.Sources, ", ")
		if !in.AdapterConfigured {
			notice += ". Consider pointing --adapter-path at your PHPUnit binary"
		}
		s.msg.Warnf("%s", notice)
		return nil
	}
}

// joinUnmatched lists the still-unmatched fragments in their original order,
// collapsing duplicates for display.
func joinUnmatched(fragments []string, tracker *FilterTracker) string {
	var unmatched []string
	listed := make(map[string]struct{})
	for _, fragment := range fragments {
		if !tracker.Has(fragment) {
			continue
		}
		if _, dup := listed[fragment]; dup {
			continue
		}
		listed[fragment] = struct{}{}
		unmatched = append(unmatched, fragment)
	}
	return strings.Join(unmatched, ", ")
}
