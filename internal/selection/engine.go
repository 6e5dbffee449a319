package selection

import (
	"context"

	"github.com/benZhai01/vstest/internal/domain"
)

// Messenger surfaces informational and warning messages to the user.
// The selection pipeline never formats final output itself.
type Messenger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// DiscoveryEvents receives callbacks from the discovery engine. The engine may
// invoke them from any goroutine it chooses, potentially concurrently, so
// implementations must be safe for concurrent use.
type DiscoveryEvents interface {
	// OnDiscoveredTests is invoked once per batch of newly discovered tests.
	OnDiscoveredTests(batch []*domain.TestCase)
	// OnWarning surfaces engine-level warnings independently of selection.
	OnWarning(message string)
}

// DiscoveryEngine discovers test cases across a set of test sources.
// DiscoverTests returns once discovery has completed for every source; its
// return is the completion signal the orchestrator blocks on.
type DiscoveryEngine interface {
	DiscoverTests(ctx context.Context, sources []string, settings *domain.RunSettings, events DiscoveryEvents) error
}

// RunRequest carries everything the run engine needs to execute a selection.
type RunRequest struct {
	TestCases []*domain.TestCase
	Settings  *domain.RunSettings
	// KeepAlive is always false in fragment-selection mode: no runner session
	// survives the invocation.
	KeepAlive bool
	// TestCaseFilter is a filter expression for intra-selection narrowing,
	// passed through unevaluated.
	TestCaseFilter string
}

// RunEngine executes the selected test cases. Fire-and-forget from the
// selection pipeline's perspective: no callbacks are consumed here.
type RunEngine interface {
	RunTests(ctx context.Context, req RunRequest) error
}

// SettingsProvider captures the effective run settings once at execution start.
type SettingsProvider interface {
	EffectiveSettings() (*domain.RunSettings, error)
}
