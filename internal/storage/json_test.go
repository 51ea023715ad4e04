package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"junitdiff/internal/config"
	"junitdiff/internal/domain"
)

func testOutput() *domain.DiffOutput {
	result := domain.DiffResult{
		Entries: []domain.DiffEntry{
			{
				Identity:     "S.a",
				Suite:        "S",
				Case:         "a",
				Category:     domain.CategoryUnchanged,
				BeforeStatus: domain.StatusPassed,
				AfterStatus:  domain.StatusPassed,
			},
			{
				Identity:     "S.b",
				Suite:        "S",
				Case:         "b",
				Category:     domain.CategoryMissing,
				BeforeStatus: domain.StatusFailed,
				BeforeDetail: "assertion failed",
			},
		},
		Counts: domain.CategoryCounts{Missing: 1, Unchanged: 1},
		Suites: []domain.SuiteDiff{
			{Name: "S", Before: domain.SuiteSummary{Tests: 2}, After: domain.SuiteSummary{Tests: 1}},
		},
	}
	return domain.NewDiffOutput("/reports/old", "/reports/new", 2, 1, result, 100*time.Millisecond)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "junitdiff-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	// Nested dir exercises the MkdirAll on save
	cfg.OutputJSONDir = filepath.Join(tmpDir, "nested", "storage")
	cfg.OutputJSONFile = "diff-results.json"

	st := NewJSONStorage(cfg)
	output := testOutput()

	if err := st.Save(output); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !reflect.DeepEqual(loaded, output) {
		t.Errorf("round-trip mismatch:\n got:  %+v\n want: %+v", loaded, output)
	}
}

func TestJSONStorage_SaveOverwritesPreviousRun(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "junitdiff-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.OutputJSONDir = tmpDir
	cfg.OutputJSONFile = "diff-results.json"

	st := NewJSONStorage(cfg)
	output := testOutput()

	if err := st.Save(output); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// The view command flips reviewed bits and saves the snapshot back
	output.Entries[1].Reviewed = true
	if err := st.Save(output); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.Entries[1].Reviewed {
		t.Error("reviewed bit was not persisted on overwrite")
	}
}

func TestJSONStorage_LoadWithoutSnapshot(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "junitdiff-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.OutputJSONDir = tmpDir
	cfg.OutputJSONFile = "diff-results.json"

	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected an error when no snapshot has been written")
	}
}
