package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
	"junitdiff/internal/config"
	"junitdiff/internal/domain"
)

//go:embed template/report.html.tmpl
var reportTemplate string

var tmpl = template.Must(
	template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(reportTemplate),
)

// ReportData is the input of the HTML report template.
type ReportData struct {
	Title       string
	BeforeDir   string
	AfterDir    string
	GeneratedAt string
	Pass        bool
	Counts      domain.CategoryCounts
	Suites      []SuiteView
}

// SuiteView is one per-suite section: the summary comparison plus the diff
// entries of the suite's test cases.
type SuiteView struct {
	Name    string
	Summary domain.SuiteDiff
	Entries []domain.DiffEntry
}

// Renderer writes the HTML report document.
type Renderer struct {
	config *config.Config
}

// NewRenderer creates a new Renderer.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{config: cfg}
}

// Render writes the HTML report for a diff snapshot to w.
func (r *Renderer) Render(w io.Writer, output *domain.DiffOutput) error {
	data := ReportData{
		Title:       r.config.GetTitle(),
		BeforeDir:   output.Meta.BeforeDir,
		AfterDir:    output.Meta.AfterDir,
		GeneratedAt: output.Meta.Timestamp,
		Pass:        output.Meta.Pass,
		Counts: domain.CategoryCounts{
			Missing:   output.Meta.Missing,
			Changed:   output.Meta.Changed,
			Unchanged: output.Meta.Unchanged,
		},
		Suites: groupBySuite(output),
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// RenderFile writes the HTML report to path, creating parent directories as
// needed.
func (r *Renderer) RenderFile(path string, output *domain.DiffOutput) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	return r.Render(f, output)
}

// groupBySuite folds the flat entry list into per-suite sections, keeping
// the before-set suite order.
func groupBySuite(output *domain.DiffOutput) []SuiteView {
	bySuite := make(map[string][]domain.DiffEntry)
	for _, entry := range output.Entries {
		bySuite[entry.Suite] = append(bySuite[entry.Suite], entry)
	}

	views := make([]SuiteView, 0, len(output.Suites))
	for _, suite := range output.Suites {
		views = append(views, SuiteView{
			Name:    suite.Name,
			Summary: suite,
			Entries: bySuite[suite.Name],
		})
	}
	return views
}
