package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/domain"
)

// JSONStorage stores run results in a JSON file under the configured output path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save writes the run summary to the configured JSON output file
func (s *JSONStorage) Save(summary *domain.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run summary from the configured JSON output file
func (s *JSONStorage) Load() (*domain.RunSummary, error) {
	data, err := os.ReadFile(s.cfg.GetOutputPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var summary domain.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &summary, nil
}
