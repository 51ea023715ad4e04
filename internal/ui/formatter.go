package ui

import (
	"fmt"

	"github.com/fatih/color"
	"junitdiff/internal/config"
	"junitdiff/internal/domain"
)

// Formatter formats and displays terminal output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintDiffStats displays the summary table and verdict for a finished diff
func (f *Formatter) PrintDiffStats(output *domain.DiffOutput) error {
	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Report Diff Statistics                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Before Test Cases
	fmt.Printf("│ %-31s │ ", "Before Test Cases")
	color.White("%-27d │\n", meta.BeforeTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// After Test Cases
	fmt.Printf("│ %-31s │ ", "After Test Cases")
	color.White("%-27d │\n", meta.AfterTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Unchanged
	fmt.Printf("│ %-31s │ ", "Unchanged")
	color.Green("%-27d │\n", meta.Unchanged)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Changed
	fmt.Printf("│ %-31s │ ", "Changed")
	color.Yellow("%-27d │\n", meta.Changed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Missing
	fmt.Printf("│ %-31s │ ", "Missing")
	color.Red("%-27d │\n", meta.Missing)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Suites Compared
	fmt.Printf("│ %-31s │ ", "Suites Compared")
	color.White("%-27d │\n", len(output.Suites))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Duration
	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", meta.Duration)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Timestamp
	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print verdict line
	fmt.Println()
	if meta.Pass {
		color.Green("✓ PASS: after reports match before reports")
	} else {
		mismatched := 0
		for _, suite := range output.Suites {
			if !suite.SummaryMatches() {
				mismatched++
			}
		}
		color.Red("✗ FAIL: %d missing, %d changed, %d suite summary mismatch(es)",
			meta.Missing, meta.Changed, mismatched)
		fmt.Println()
		f.printActionableTree(output.Entries)
	}

	fmt.Println()
	fmt.Printf("Snapshot saved to %s (browse with 'junitdiff view')\n", f.config.GetOutputPath())

	return nil
}

// printActionableTree prints the missing and changed entries grouped by suite
func (f *Formatter) printActionableTree(entries []domain.DiffEntry) {
	var suiteOrder []string
	bySuite := make(map[string][]domain.DiffEntry)
	for _, entry := range entries {
		if !entry.Actionable() {
			continue
		}
		if _, ok := bySuite[entry.Suite]; !ok {
			suiteOrder = append(suiteOrder, entry.Suite)
		}
		bySuite[entry.Suite] = append(bySuite[entry.Suite], entry)
	}

	for i, name := range suiteOrder {
		isLastSuite := i == len(suiteOrder)-1
		if isLastSuite {
			color.Cyan("└── %s", name)
		} else {
			color.Cyan("├── %s", name)
		}

		suiteEntries := bySuite[name]
		for j, entry := range suiteEntries {
			isLastEntry := j == len(suiteEntries)-1

			var prefix string
			if isLastSuite {
				if isLastEntry {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastEntry {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Printf("%s%s\n", prefix, describeEntry(entry))
		}
	}
}

// describeEntry renders one actionable entry for the terminal tree
func describeEntry(entry domain.DiffEntry) string {
	if entry.Category == domain.CategoryMissing {
		return color.RedString("%s (missing in after reports)", entry.Case)
	}
	return color.YellowString("%s (%s → %s)", entry.Case, entry.BeforeStatus, entry.AfterStatus)
}

// PrintSuiteList prints the suites of one report set, optionally with their
// test cases colored by status.
func (f *Formatter) PrintSuiteList(set *domain.ReportSet, names []string, showCases bool) error {
	bySuite := make(map[string][]domain.TestCaseRecord)
	for _, record := range set.Records() {
		bySuite[record.Suite] = append(bySuite[record.Suite], record)
	}

	if showCases {
		// Display tree view with test cases
		color.Green("Found %d suite(s) with test cases:\n", len(names))

		for i, name := range names {
			isLastSuite := i == len(names)-1
			if isLastSuite {
				color.Cyan("└── %s", name)
			} else {
				color.Cyan("├── %s", name)
			}

			records := bySuite[name]
			if len(records) == 0 {
				var prefix string
				if isLastSuite {
					prefix = "    └── "
				} else {
					prefix = "│   └── "
				}
				fmt.Printf("%s%s\n", prefix, color.RedString("(no test cases found)"))
			} else {
				for j, record := range records {
					isLastCase := j == len(records)-1

					var prefix string
					if isLastSuite {
						if isLastCase {
							prefix = "    └── "
						} else {
							prefix = "    ├── "
						}
					} else {
						if isLastCase {
							prefix = "│   └── "
						} else {
							prefix = "│   ├── "
						}
					}

					fmt.Printf("%s%s\n", prefix, statusLine(record))
				}
			}

			// Add spacing between suites (except for the last one)
			if i < len(names)-1 {
				fmt.Println()
			}
		}
	} else {
		// Display simple list of suites with their case counts
		color.Green("Found %d suite(s):\n", len(names))

		for i, name := range names {
			line := fmt.Sprintf("%s %s", name, color.WhiteString("(%d test cases)", len(bySuite[name])))
			if i == len(names)-1 {
				color.Cyan("└── %s", line)
			} else {
				color.Cyan("├── %s", line)
			}
		}
	}

	return nil
}

// statusLine renders one test case for the suite tree, colored by status
func statusLine(record domain.TestCaseRecord) string {
	switch record.Status {
	case domain.StatusFailed:
		return color.RedString("%s (failed)", record.Case)
	case domain.StatusErrored:
		return color.RedString("%s (errored)", record.Case)
	case domain.StatusSkipped:
		return color.YellowString("%s (skipped)", record.Case)
	default:
		return color.GreenString(record.Case)
	}
}
