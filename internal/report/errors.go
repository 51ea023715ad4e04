package report

import "fmt"

// DirectoryNotFoundError reports a report directory that does not exist or
// is not a directory. Detected before any file is opened.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("report path does not exist or is not a directory: %s", e.Path)
}

// MalformedReportError reports a file that could not be read or does not
// follow the expected JUnit XML schema.
type MalformedReportError struct {
	Path string
	Err  error
}

func (e *MalformedReportError) Error() string {
	return fmt.Sprintf("malformed report file %s: %v", e.Path, e.Err)
}

func (e *MalformedReportError) Unwrap() error {
	return e.Err
}

// EmptyReportSetError reports a directory whose files yielded no test cases,
// either because nothing matched the glob or the matched files held none.
type EmptyReportSetError struct {
	Dir string
}

func (e *EmptyReportSetError) Error() string {
	return fmt.Sprintf("no test cases found in report directory: %s", e.Dir)
}
