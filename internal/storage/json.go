package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"junitdiff/internal/domain"
)

// Save writes the diff snapshot to the configured JSON output file. Each
// save overwrites the previous run; only the latest snapshot is kept.
func (s *JSONStorage) Save(output *domain.DiffOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the last diff snapshot from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.DiffOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var output domain.DiffOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &output, nil
}
