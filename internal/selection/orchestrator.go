package selection

import (
	"context"
	"fmt"
	"strings"
)

// State tracks the orchestrator through one invocation
type State int

const (
	// StateUninitialized is the initial state
	StateUninitialized State = iota
	// StateParsed means the fragment argument parsed to a non-empty list
	StateParsed
	// StateValidated means sources and flags passed validation
	StateValidated
	// StateDiscovering means a discovery request is in flight
	StateDiscovering
	// StateCompleted means discovery finished and the run decision was made
	StateCompleted
)

// String returns the state name for diagnostics
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateParsed:
		return "parsed"
	case StateValidated:
		return "validated"
	case StateDiscovering:
		return "discovering"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures one selective execution
type Options struct {
	// Argument is the raw --tests value: fragments or a fragment file path
	Argument string
	// Sources are the test source roots to discover from
	Sources []string
	// TestCaseFilter is the global --filter expression, incompatible with
	// fragment selection
	TestCaseFilter string
	// AdapterConfigured reports whether a PHPUnit adapter path was configured
	// explicitly (used only to enrich the no-discovery warning)
	AdapterConfigured bool
}

// Orchestrator sequences parse, validate, discover and submit for one
// fragment-selection invocation. It owns the tracker, the accumulator and the
// captured run settings for the lifetime of the invocation; nothing persists
// beyond it.
type Orchestrator struct {
	parser    *FragmentParser
	discovery DiscoveryEngine
	runner    RunEngine
	settings  SettingsProvider
	msg       Messenger
	state     State
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(discovery DiscoveryEngine, runner RunEngine, settings SettingsProvider, msg Messenger) *Orchestrator {
	return &Orchestrator{
		parser:    NewFragmentParser(msg),
		discovery: discovery,
		runner:    runner,
		settings:  settings,
		msg:       msg,
		state:     StateUninitialized,
	}
}

// State returns the current state
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes one invocation end to end. Configuration errors abort before
// any discovery request; engine errors are propagated as-is; an invocation
// that selects or runs nothing still succeeds.
func (o *Orchestrator) Run(ctx context.Context, opts Options) error {
	fragments, err := o.parser.Parse(opts.Argument)
	if err != nil {
		return err
	}
	tracker := NewFilterTracker(fragments)
	o.state = StateParsed

	if len(opts.Sources) == 0 {
		return NewConfigurationError("no test sources were provided")
	}
	if strings.TrimSpace(opts.TestCaseFilter) != "" {
		return NewConfigurationError("test name fragments cannot be combined with a test case filter expression")
	}
	o.state = StateValidated

	settings, err := o.settings.EffectiveSettings()
	if err != nil {
		return fmt.Errorf("capture run settings: %w", err)
	}

	acc := NewAccumulator()
	listener := NewListener(acc, fragments, tracker, o.msg)
	o.state = StateDiscovering
	if err := o.discovery.DiscoverTests(ctx, opts.Sources, settings, listener); err != nil {
		return err
	}
	// No run submission after cancellation, even when the engine returned nil.
	if err := ctx.Err(); err != nil {
		return err
	}
	o.state = StateCompleted

	submitter := NewSubmitter(o.runner, o.msg)
	return submitter.Submit(ctx, SubmitInput{
		Selected:          acc.Selected(),
		DiscoveredCount:   acc.DiscoveredCount(),
		Tracker:           tracker,
		Fragments:         fragments,
		Sources:           opts.Sources,
		Settings:          settings,
		TestCaseFilter:    "",
		AdapterConfigured: opts.AdapterConfigured,
	})
}
