package domain

import "time"

// DiffEntry is the comparison outcome for one before-side test case.
type DiffEntry struct {
	Identity     string   `json:"identity"`
	Suite        string   `json:"suite"`
	Case         string   `json:"case"`
	Category     Category `json:"category"`
	BeforeStatus Status   `json:"before_status"`
	AfterStatus  Status   `json:"after_status,omitempty"` // Empty for missing entries
	BeforeDetail string   `json:"before_detail,omitempty"`
	AfterDetail  string   `json:"after_detail,omitempty"`
	Reviewed     bool     `json:"reviewed"` // Set from the interactive viewer
}

// Actionable reports whether the entry needs a human look: anything that is
// not an unchanged case.
func (e DiffEntry) Actionable() bool {
	return e.Category != CategoryUnchanged
}

// SuiteDiff compares the declared summary counts of one before-side suite
// against the after side.
type SuiteDiff struct {
	Name    string       `json:"name"`
	Before  SuiteSummary `json:"before"`
	After   SuiteSummary `json:"after"`
	Missing bool         `json:"missing"` // No suite of this name in the after set
}

// SummaryMatches reports whether the suite exists on the after side with the
// same declared counts.
func (d SuiteDiff) SummaryMatches() bool {
	return !d.Missing && d.Before.Equal(d.After)
}

// CategoryCounts tallies diff entries per category.
type CategoryCounts struct {
	Missing   int `json:"missing"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// Total returns the number of compared cases, which always equals the size
// of the before-side set.
func (c CategoryCounts) Total() int {
	return c.Missing + c.Changed + c.Unchanged
}

// DiffResult is the complete outcome of comparing two report sets.
type DiffResult struct {
	Entries []DiffEntry    `json:"entries"`
	Counts  CategoryCounts `json:"counts"`
	Suites  []SuiteDiff    `json:"suites"`
}

// Pass reports the overall verdict: every case unchanged and every suite
// present on the after side with matching summary counts.
func (r DiffResult) Pass() bool {
	if r.Counts.Missing > 0 || r.Counts.Changed > 0 {
		return false
	}
	for _, s := range r.Suites {
		if !s.SummaryMatches() {
			return false
		}
	}
	return true
}

// DiffMeta describes one diff run for the snapshot header.
type DiffMeta struct {
	BeforeDir       string  `json:"before_dir"`
	AfterDir        string  `json:"after_dir"`
	BeforeTests     int     `json:"before_tests"`
	AfterTests      int     `json:"after_tests"`
	Missing         int     `json:"missing"`
	Changed         int     `json:"changed"`
	Unchanged       int     `json:"unchanged"`
	Pass            bool    `json:"pass"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// DiffOutput is the persisted snapshot of the latest diff run: run metadata
// plus the full entry and suite listings. The view command reads it back and
// re-writes it when entries are marked reviewed.
type DiffOutput struct {
	Meta    DiffMeta    `json:"meta"`
	Suites  []SuiteDiff `json:"suites"`
	Entries []DiffEntry `json:"entries"`
}

// NewDiffOutput assembles a snapshot from a finished comparison.
func NewDiffOutput(beforeDir, afterDir string, beforeTests, afterTests int, result DiffResult, duration time.Duration) *DiffOutput {
	return &DiffOutput{
		Meta: DiffMeta{
			BeforeDir:       beforeDir,
			AfterDir:        afterDir,
			BeforeTests:     beforeTests,
			AfterTests:      afterTests,
			Missing:         result.Counts.Missing,
			Changed:         result.Counts.Changed,
			Unchanged:       result.Counts.Unchanged,
			Pass:            result.Pass(),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Suites:  result.Suites,
		Entries: result.Entries,
	}
}
