package config

const (
	// DefaultReportGlob matches report files directly inside a report directory
	DefaultReportGlob = "*.xml"
	// DefaultOutputJSONFile is the default snapshot file name
	DefaultOutputJSONFile = "diff-results.json"
	// DefaultOutputJSONDir is the default snapshot directory
	DefaultOutputJSONDir = "storage"
	// DefaultTitle is the default title of the rendered HTML report
	DefaultTitle = "JUnit Report Diff"
)
