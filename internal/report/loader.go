package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"junitdiff/internal/config"
	"junitdiff/internal/domain"
	"junitdiff/internal/ui"
)

// Loader reads a directory of JUnit XML report files into a ReportSet.
type Loader struct {
	config   *config.Config
	progress *ui.ProgressBar
	logger   *ui.Logger
}

// NewLoader creates a new Loader.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{config: cfg}
}

// SetProgress sets the progress bar advanced once per parsed file.
func (l *Loader) SetProgress(progress *ui.ProgressBar) {
	l.progress = progress
}

// SetLogger sets the logger used for verbose per-file diagnostics.
func (l *Loader) SetLogger(logger *ui.Logger) {
	l.logger = logger
}

// Load parses every report file in dir into a ReportSet. Files are visited
// in lexicographic path order; when two files declare the same test identity
// the record parsed later wins. A directory that yields no test cases at all
// is an error, never a silently empty set.
func (l *Loader) Load(dir string) (*domain.ReportSet, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &DirectoryNotFoundError{Path: dir}
	}

	files, err := l.findReports(dir)
	if err != nil {
		return nil, err
	}
	l.logger.Debugf("%d report file(s) found in %s", len(files), dir)

	if l.progress != nil {
		l.progress.Begin(len(files))
	}

	set := domain.NewReportSet()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, &MalformedReportError{Path: file, Err: err}
		}

		suite, err := parseReport(data)
		if err != nil {
			return nil, &MalformedReportError{Path: file, Err: err}
		}

		set.AddSuite(suite.Name, suite.Summary)
		for _, record := range suite.Records {
			set.Add(record)
		}

		l.logger.Debugf("%s: suite %q with %d test case(s)", file, suite.Name, len(suite.Records))
		if l.progress != nil {
			l.progress.Update()
		}
	}

	if l.progress != nil {
		l.progress.Finish()
	}

	if set.Len() == 0 {
		return nil, &EmptyReportSetError{Dir: dir}
	}

	return set, nil
}

// findReports matches the configured glob pattern against dir and returns
// the files sorted by path, so duplicate identities always resolve in favor
// of the file that sorts last.
func (l *Loader) findReports(dir string) ([]string, error) {
	pattern := l.config.GetReportGlob()
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad report pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		files = append(files, filepath.Join(dir, filepath.FromSlash(match)))
	}
	sort.Strings(files)
	return files, nil
}
