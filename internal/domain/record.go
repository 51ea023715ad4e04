package domain

// TestCaseRecord is one observed execution of a named test case.
type TestCaseRecord struct {
	Suite  string `json:"suite"`            // Enclosing test-group (class) name
	Case   string `json:"case"`             // Test method name
	Status Status `json:"status"`           // Derived outcome
	Detail string `json:"detail,omitempty"` // Failure/error text, empty otherwise
}

// Identity returns the comparison key for the record. The suite-dot-case
// form must stay byte-compatible across versions: users match diff rows
// against these strings.
func (r TestCaseRecord) Identity() string {
	return r.Suite + "." + r.Case
}

// SuiteSummary holds the counts declared on a testsuite element.
type SuiteSummary struct {
	Tests    int `json:"tests"`
	Failures int `json:"failures"`
	Errors   int `json:"errors"`
	Skipped  int `json:"skipped"`
}

// Equal reports whether two summaries declare the same counts.
func (s SuiteSummary) Equal(other SuiteSummary) bool {
	return s == other
}

// ReportSet is the normalized view of one side's report directory: a lookup
// from test identity to its record with a deterministic iteration order.
// Duplicate identities collapse to a single record: the last record added
// wins, keeping the order position of the first.
type ReportSet struct {
	records    map[string]TestCaseRecord
	order      []string
	suites     map[string]SuiteSummary
	suiteOrder []string
}

// NewReportSet creates an empty ReportSet.
func NewReportSet() *ReportSet {
	return &ReportSet{
		records: make(map[string]TestCaseRecord),
		suites:  make(map[string]SuiteSummary),
	}
}

// Add inserts a record, replacing any earlier record with the same identity.
func (s *ReportSet) Add(rec TestCaseRecord) {
	id := rec.Identity()
	if _, seen := s.records[id]; !seen {
		s.order = append(s.order, id)
	}
	s.records[id] = rec
}

// AddSuite records the declared summary for a suite name, same last-wins
// policy as Add.
func (s *ReportSet) AddSuite(name string, sum SuiteSummary) {
	if _, seen := s.suites[name]; !seen {
		s.suiteOrder = append(s.suiteOrder, name)
	}
	s.suites[name] = sum
}

// Lookup returns the record for an identity.
func (s *ReportSet) Lookup(identity string) (TestCaseRecord, bool) {
	rec, ok := s.records[identity]
	return rec, ok
}

// Identities returns all identities in iteration order.
func (s *ReportSet) Identities() []string {
	return s.order
}

// Records returns all records in iteration order.
func (s *ReportSet) Records() []TestCaseRecord {
	records := make([]TestCaseRecord, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.records[id])
	}
	return records
}

// Len returns the number of distinct identities in the set.
func (s *ReportSet) Len() int {
	return len(s.records)
}

// SuiteNames returns all suite names in iteration order.
func (s *ReportSet) SuiteNames() []string {
	return s.suiteOrder
}

// Suite returns the declared summary for a suite name.
func (s *ReportSet) Suite(name string) (SuiteSummary, bool) {
	sum, ok := s.suites[name]
	return sum, ok
}
