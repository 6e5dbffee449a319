package selection

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/benZhai01/vstest/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func newTestOrchestrator(discovery *fakeDiscovery, runner *fakeRunner, msg *recordingMessenger) *Orchestrator {
	return NewOrchestrator(discovery, runner, &staticSettings{}, msg)
}

func TestOrchestrator_Run(t *testing.T) {
	discovery := &fakeDiscovery{batches: [][]*domain.TestCase{
		cases("N.A1", "N.A2"),
		cases("N.B1"),
	}}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(discovery, runner, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{
		Argument: "A",
		Sources:  []string{"tests"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if orch.State() != StateCompleted {
		t.Errorf("expected completed state, got %v", orch.State())
	}
	if runner.calls != 1 {
		t.Fatalf("expected one run request, got %d", runner.calls)
	}
	want := []string{"N.A1", "N.A2"}
	if diff := cmp.Diff(want, fqNames(runner.req.TestCases)); diff != "" {
		t.Errorf("submitted cases mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_Run_NoSources(t *testing.T) {
	discovery := &fakeDiscovery{}
	orch := newTestOrchestrator(discovery, &fakeRunner{}, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{Argument: "A"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if discovery.calls != 0 {
		t.Error("no discovery request may be issued on validation failure")
	}
	if orch.State() != StateParsed {
		t.Errorf("expected parsed state, got %v", orch.State())
	}
}

func TestOrchestrator_Run_FilterExpressionConflict(t *testing.T) {
	discovery := &fakeDiscovery{}
	orch := newTestOrchestrator(discovery, &fakeRunner{}, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{
		Argument:       "A",
		Sources:        []string{"tests"},
		TestCaseFilter: "group=fast",
	})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if discovery.calls != 0 {
		t.Error("no discovery request may be issued on validation failure")
	}
}

func TestOrchestrator_Run_EmptyArgument(t *testing.T) {
	discovery := &fakeDiscovery{}
	orch := newTestOrchestrator(discovery, &fakeRunner{}, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{Argument: " , ", Sources: []string{"tests"}})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if orch.State() != StateUninitialized {
		t.Errorf("expected uninitialized state, got %v", orch.State())
	}
}

func TestOrchestrator_Run_DiscoveryError(t *testing.T) {
	engineErr := errors.New("source is not a directory")
	discovery := &fakeDiscovery{err: engineErr}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(discovery, runner, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{Argument: "A", Sources: []string{"tests"}})
	if !errors.Is(err, engineErr) {
		t.Fatalf("expected engine error to propagate, got %v", err)
	}
	if runner.calls != 0 {
		t.Error("no run submission after a discovery failure")
	}
}

func TestOrchestrator_Run_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	discovery := &fakeDiscovery{deliver: func(ctx context.Context, events DiscoveryEvents) {
		events.OnDiscoveredTests(cases("N.A1"))
		cancel()
	}}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(discovery, runner, &recordingMessenger{})

	err := orch.Run(ctx, Options{Argument: "A", Sources: []string{"tests"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if runner.calls != 0 {
		t.Error("no partial run submission after cancellation")
	}
}

func TestOrchestrator_Run_ConcurrentDelivery(t *testing.T) {
	// Batches delivered from multiple engine goroutines must still produce a
	// deduplicated selection and a consistent count.
	discovery := &fakeDiscovery{deliver: func(ctx context.Context, events DiscoveryEvents) {
		var wg sync.WaitGroup
		batch := cases("UserTest::testA", "OrderTest::testB", "CartTest::testC")
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				events.OnDiscoveredTests(batch)
			}()
		}
		wg.Wait()
	}}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(discovery, runner, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{Argument: "User,Order", Sources: []string{"tests"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"UserTest::testA", "OrderTest::testB"}
	if diff := cmp.Diff(want, fqNames(runner.req.TestCases)); diff != "" {
		t.Errorf("submitted cases mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_Run_SettingsCapture(t *testing.T) {
	settings := &domain.RunSettings{Path: "phpunit.xml", Raw: []byte("<phpunit/>")}
	discovery := &fakeDiscovery{batches: [][]*domain.TestCase{cases("UserTest::testA")}}
	runner := &fakeRunner{}
	orch := NewOrchestrator(discovery, runner, &staticSettings{settings: settings}, &recordingMessenger{})

	err := orch.Run(context.Background(), Options{Argument: "User", Sources: []string{"tests"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.req.Settings != settings {
		t.Error("captured settings must be passed through to the run request")
	}
}
