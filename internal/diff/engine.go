package diff

import "junitdiff/internal/domain"

// Engine compares two report sets. It holds no state; comparing the same
// sets twice yields identical results.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compare classifies every before-side test case against the after set and
// compares the declared summary of every before-side suite. Entries come out
// in before-set order; test cases that exist only in the after set produce
// no entry.
func (e *Engine) Compare(before, after *domain.ReportSet) domain.DiffResult {
	result := domain.DiffResult{
		Entries: make([]domain.DiffEntry, 0, before.Len()),
	}

	for _, record := range before.Records() {
		entry := domain.DiffEntry{
			Identity:     record.Identity(),
			Suite:        record.Suite,
			Case:         record.Case,
			BeforeStatus: record.Status,
			BeforeDetail: record.Detail,
		}

		counterpart, found := after.Lookup(entry.Identity)
		if !found {
			entry.Category = domain.CategoryMissing
			result.Counts.Missing++
		} else {
			entry.AfterStatus = counterpart.Status
			entry.AfterDetail = counterpart.Detail
			if counterpart.Status == record.Status {
				entry.Category = domain.CategoryUnchanged
				result.Counts.Unchanged++
			} else {
				entry.Category = domain.CategoryChanged
				result.Counts.Changed++
			}
		}

		result.Entries = append(result.Entries, entry)
	}

	for _, name := range before.SuiteNames() {
		beforeSummary, _ := before.Suite(name)
		afterSummary, found := after.Suite(name)
		result.Suites = append(result.Suites, domain.SuiteDiff{
			Name:    name,
			Before:  beforeSummary,
			After:   afterSummary,
			Missing: !found,
		})
	}

	return result
}
