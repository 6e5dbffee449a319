package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	store := NewJSONStorage(cfg)

	summary := &domain.RunSummary{
		Meta: domain.RunMeta{
			SelectedTestCases: 3,
			TestFiles:         2,
			PassedTestCases:   2,
			FailedTestCases:   1,
			Workers:           4,
		},
		Details: []domain.TestFailure{
			{TestName: "testCreateUser", FilePath: "tests/UserTest.php", Message: "Failed asserting that false is true."},
		},
	}

	if err := store.Save(summary); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if diff := cmp.Diff(summary, loaded); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONStorage_Load_Missing(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Fatal("expected error when no results file exists")
	}
}
