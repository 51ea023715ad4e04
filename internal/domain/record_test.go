package domain

import (
	"reflect"
	"testing"
)

func TestTestCaseRecordIdentity(t *testing.T) {
	tests := []struct {
		name     string
		record   TestCaseRecord
		expected string
	}{
		{
			name:     "simple suite and case",
			record:   TestCaseRecord{Suite: "LoginTest", Case: "testValidLogin"},
			expected: "LoginTest.testValidLogin",
		},
		{
			name:     "fully qualified suite name",
			record:   TestCaseRecord{Suite: "com.example.LoginTest", Case: "testValidLogin"},
			expected: "com.example.LoginTest.testValidLogin",
		},
		{
			name:     "empty suite keeps the separator",
			record:   TestCaseRecord{Suite: "", Case: "testValidLogin"},
			expected: ".testValidLogin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Identity(); got != tt.expected {
				t.Errorf("Identity() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestReportSetAdd(t *testing.T) {
	set := NewReportSet()
	set.Add(TestCaseRecord{Suite: "SuiteA", Case: "one", Status: StatusPassed})
	set.Add(TestCaseRecord{Suite: "SuiteA", Case: "two", Status: StatusFailed})
	set.Add(TestCaseRecord{Suite: "SuiteB", Case: "one", Status: StatusPassed})

	if set.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", set.Len())
	}

	rec, ok := set.Lookup("SuiteA.two")
	if !ok {
		t.Fatal("expected SuiteA.two to be present")
	}
	if rec.Status != StatusFailed {
		t.Errorf("Lookup status = %q, expected %q", rec.Status, StatusFailed)
	}

	if _, ok := set.Lookup("SuiteA.missing"); ok {
		t.Error("expected SuiteA.missing to be absent")
	}
}

func TestReportSetDuplicateLastWins(t *testing.T) {
	set := NewReportSet()
	set.Add(TestCaseRecord{Suite: "SuiteA", Case: "one", Status: StatusPassed})
	set.Add(TestCaseRecord{Suite: "SuiteA", Case: "two", Status: StatusPassed})
	set.Add(TestCaseRecord{Suite: "SuiteA", Case: "one", Status: StatusFailed, Detail: "boom"})

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 after duplicate insert", set.Len())
	}

	rec, ok := set.Lookup("SuiteA.one")
	if !ok {
		t.Fatal("expected SuiteA.one to be present")
	}
	if rec.Status != StatusFailed {
		t.Errorf("duplicate record status = %q, expected last-added %q", rec.Status, StatusFailed)
	}
	if rec.Detail != "boom" {
		t.Errorf("duplicate record detail = %q, expected %q", rec.Detail, "boom")
	}

	// The replaced record keeps its first-seen order position.
	expected := []string{"SuiteA.one", "SuiteA.two"}
	if got := set.Identities(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Identities() = %v, expected %v", got, expected)
	}
}

func TestReportSetRecordsOrder(t *testing.T) {
	set := NewReportSet()
	set.Add(TestCaseRecord{Suite: "Zeta", Case: "z", Status: StatusPassed})
	set.Add(TestCaseRecord{Suite: "Alpha", Case: "a", Status: StatusSkipped})

	records := set.Records()
	if len(records) != 2 {
		t.Fatalf("Records() returned %d records, expected 2", len(records))
	}
	if records[0].Suite != "Zeta" || records[1].Suite != "Alpha" {
		t.Errorf("Records() order = [%s, %s], expected insertion order [Zeta, Alpha]",
			records[0].Suite, records[1].Suite)
	}
}

func TestReportSetSuites(t *testing.T) {
	set := NewReportSet()
	set.AddSuite("SuiteA", SuiteSummary{Tests: 3, Failures: 1})
	set.AddSuite("SuiteB", SuiteSummary{Tests: 2})
	set.AddSuite("SuiteA", SuiteSummary{Tests: 4, Errors: 1})

	expected := []string{"SuiteA", "SuiteB"}
	if got := set.SuiteNames(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("SuiteNames() = %v, expected %v", got, expected)
	}

	sum, ok := set.Suite("SuiteA")
	if !ok {
		t.Fatal("expected SuiteA summary to be present")
	}
	if sum.Tests != 4 || sum.Errors != 1 {
		t.Errorf("Suite(SuiteA) = %+v, expected last-added summary", sum)
	}

	if _, ok := set.Suite("SuiteC"); ok {
		t.Error("expected SuiteC to be absent")
	}
}

func TestSuiteSummaryEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        SuiteSummary
		b        SuiteSummary
		expected bool
	}{
		{
			name:     "identical counts",
			a:        SuiteSummary{Tests: 5, Failures: 1, Errors: 0, Skipped: 2},
			b:        SuiteSummary{Tests: 5, Failures: 1, Errors: 0, Skipped: 2},
			expected: true,
		},
		{
			name:     "different test count",
			a:        SuiteSummary{Tests: 5},
			b:        SuiteSummary{Tests: 6},
			expected: false,
		},
		{
			name:     "different skip count",
			a:        SuiteSummary{Tests: 5, Skipped: 1},
			b:        SuiteSummary{Tests: 5, Skipped: 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
