package storage

import (
	"junitdiff/internal/config"
	"junitdiff/internal/domain"
)

// Storage persists and loads diff snapshots (e.g. for the view command).
type Storage interface {
	Save(output *domain.DiffOutput) error
	Load() (*domain.DiffOutput, error)
}

// JSONStorage stores the latest diff snapshot in a JSON file under the
// configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
