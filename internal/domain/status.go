package domain

// Status is the outcome of a single test case execution.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusErrored Status = "errored"
	StatusSkipped Status = "skipped"
)

// Category classifies a before-side test case against the after side.
type Category string

const (
	// CategoryUnchanged means the case exists on both sides with the same status.
	CategoryUnchanged Category = "unchanged"
	// CategoryChanged means the case exists on both sides with different statuses.
	CategoryChanged Category = "changed"
	// CategoryMissing means the after side has no case with this identity.
	CategoryMissing Category = "missing"
)
