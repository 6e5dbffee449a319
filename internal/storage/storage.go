package storage

import (
	"github.com/benZhai01/vstest/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer).
// Only run results persist; selection state never survives an invocation.
type Storage interface {
	Save(summary *domain.RunSummary) error
	Load() (*domain.RunSummary, error)
}
