package selection

import (
	"context"
	"fmt"
	"sync"

	"github.com/benZhai01/vstest/internal/domain"
)

// recordingMessenger captures messages for assertions
type recordingMessenger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
}

func (m *recordingMessenger) Infof(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprintf(format, args...))
}

func (m *recordingMessenger) Warnf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprintf(format, args...))
}

// fakeDiscovery delivers pre-baked batches through the events callback
type fakeDiscovery struct {
	batches [][]*domain.TestCase
	err     error
	calls   int
	deliver func(ctx context.Context, events DiscoveryEvents) // overrides batches when set
}

func (f *fakeDiscovery) DiscoverTests(ctx context.Context, sources []string, settings *domain.RunSettings, events DiscoveryEvents) error {
	f.calls++
	if f.deliver != nil {
		f.deliver(ctx, events)
		return f.err
	}
	for _, batch := range f.batches {
		events.OnDiscoveredTests(batch)
	}
	return f.err
}

// fakeRunner records the run request it received
type fakeRunner struct {
	calls int
	req   RunRequest
	err   error
}

func (f *fakeRunner) RunTests(ctx context.Context, req RunRequest) error {
	f.calls++
	f.req = req
	return f.err
}

// staticSettings returns a fixed settings blob
type staticSettings struct {
	settings *domain.RunSettings
	err      error
}

func (s *staticSettings) EffectiveSettings() (*domain.RunSettings, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.settings == nil {
		return &domain.RunSettings{}, nil
	}
	return s.settings, nil
}

// cases builds test case references with the given fully-qualified names
func cases(names ...string) []*domain.TestCase {
	out := make([]*domain.TestCase, 0, len(names))
	for _, name := range names {
		out = append(out, &domain.TestCase{FullyQualifiedName: name})
	}
	return out
}

// fqNames projects test cases back to their fully-qualified names
func fqNames(tcs []*domain.TestCase) []string {
	out := make([]string, 0, len(tcs))
	for _, tc := range tcs {
		out = append(out, tc.FullyQualifiedName)
	}
	return out
}
