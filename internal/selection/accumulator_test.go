package selection

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccumulator_RecordBatch(t *testing.T) {
	t.Run("selects every case containing a fragment", func(t *testing.T) {
		// Scenario: fragments ["A"] over tests N.A1, N.A2, N.B1
		fragments := []string{"A"}
		tracker := NewFilterTracker(fragments)
		acc := NewAccumulator()

		acc.RecordBatch(cases("N.A1", "N.A2", "N.B1"), fragments, tracker)

		want := []string{"N.A1", "N.A2"}
		if diff := cmp.Diff(want, fqNames(acc.Selected())); diff != "" {
			t.Errorf("selection mismatch (-want +got):\n%s", diff)
		}
		if acc.DiscoveredCount() != 3 {
			t.Errorf("expected 3 discovered, got %d", acc.DiscoveredCount())
		}
		if tracker.RemainingCount() != 0 {
			t.Errorf("expected no remaining fragments, got %v", tracker.Remaining())
		}
	})

	t.Run("case insensitive substring match", func(t *testing.T) {
		fragments := []string{"Foo"}
		tracker := NewFilterTracker(fragments)
		acc := NewAccumulator()

		acc.RecordBatch(cases("Namespace.fooTest"), fragments, tracker)

		if len(acc.Selected()) != 1 {
			t.Fatalf("expected 1 selected case, got %d", len(acc.Selected()))
		}
		if tracker.Has("Foo") {
			t.Error("expected fragment Foo to be marked matched")
		}
	})

	t.Run("unmatched cases are counted and discarded", func(t *testing.T) {
		fragments := []string{"Z"}
		tracker := NewFilterTracker(fragments)
		acc := NewAccumulator()

		acc.RecordBatch(cases("N.A1", "N.A2", "N.B1"), fragments, tracker)

		if len(acc.Selected()) != 0 {
			t.Errorf("expected empty selection, got %v", fqNames(acc.Selected()))
		}
		if acc.DiscoveredCount() != 3 {
			t.Errorf("expected 3 discovered, got %d", acc.DiscoveredCount())
		}
		if !tracker.Has("Z") {
			t.Error("expected fragment Z to remain unmatched")
		}
	})

	t.Run("first matching fragment wins per case", func(t *testing.T) {
		// Both fragments match the single case; only the first in original
		// order is marked matched by it.
		fragments := []string{"User", "Test"}
		tracker := NewFilterTracker(fragments)
		acc := NewAccumulator()

		acc.RecordBatch(cases("UserTest::testLogin"), fragments, tracker)

		if len(acc.Selected()) != 1 {
			t.Fatalf("expected 1 selected case, got %d", len(acc.Selected()))
		}
		if tracker.Has("User") {
			t.Error("expected User to be marked matched")
		}
		if !tracker.Has("Test") {
			t.Error("expected Test to remain unmatched after first-match stop")
		}

		// A later case matching only the second fragment still removes it
		acc.RecordBatch(cases("OrderTest::testCreate"), fragments, tracker)
		if tracker.Has("Test") {
			t.Error("expected Test to be matched by a later case")
		}
	})

	t.Run("matched fragments keep selecting new cases", func(t *testing.T) {
		fragments := []string{"User"}
		tracker := NewFilterTracker(fragments)
		acc := NewAccumulator()

		acc.RecordBatch(cases("UserTest::testA"), fragments, tracker)
		acc.RecordBatch(cases("UserTest::testB"), fragments, tracker)

		want := []string{"UserTest::testA", "UserTest::testB"}
		if diff := cmp.Diff(want, fqNames(acc.Selected())); diff != "" {
			t.Errorf("selection mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAccumulator_Idempotence(t *testing.T) {
	fragments := []string{"A", "B"}
	tracker := NewFilterTracker(fragments)
	acc := NewAccumulator()

	batch := cases("N.A1", "N.B1")
	acc.RecordBatch(batch, fragments, tracker)
	acc.RecordBatch(batch, fragments, tracker)

	// Same references fed twice: selection must not grow, count still does
	want := []string{"N.A1", "N.B1"}
	if diff := cmp.Diff(want, fqNames(acc.Selected())); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
	if acc.DiscoveredCount() != 4 {
		t.Errorf("expected discovered count 4, got %d", acc.DiscoveredCount())
	}
	if tracker.RemainingCount() != 0 {
		t.Errorf("expected no remaining fragments, got %v", tracker.Remaining())
	}
}

func TestAccumulator_RemainingMonotonic(t *testing.T) {
	fragments := []string{"A", "B", "C"}
	tracker := NewFilterTracker(fragments)
	acc := NewAccumulator()

	previous := tracker.RemainingCount()
	for _, batch := range [][]string{{"N.A1"}, {"N.X1"}, {"N.B1", "N.C1"}, {"N.A2"}} {
		acc.RecordBatch(cases(batch...), fragments, tracker)
		if tracker.RemainingCount() > previous {
			t.Fatalf("remaining grew from %d to %d", previous, tracker.RemainingCount())
		}
		previous = tracker.RemainingCount()
	}
	if previous != 0 {
		t.Errorf("expected all fragments matched, %d remaining", previous)
	}
}

func TestAccumulator_ConcurrentBatches(t *testing.T) {
	// Pathological engines may deliver batches concurrently; the cumulative
	// result must be the same regardless.
	fragments := []string{"User"}
	tracker := NewFilterTracker(fragments)
	acc := NewAccumulator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acc.RecordBatch(cases("UserTest::test"+string(rune('a'+i)), "OtherTest::testX"), fragments, tracker)
		}(i)
	}
	wg.Wait()

	if got := len(acc.Selected()); got != 8 {
		t.Errorf("expected 8 selected cases, got %d", got)
	}
	if acc.DiscoveredCount() != 16 {
		t.Errorf("expected 16 discovered, got %d", acc.DiscoveredCount())
	}
	if tracker.RemainingCount() != 0 {
		t.Errorf("expected fragment matched, got %v", tracker.Remaining())
	}
}
