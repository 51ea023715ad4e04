package cli

import "junitdiff/internal/config"

// Flags holds command-line flags
type Flags struct {
	BeforeDir string
	AfterDir  string
	ReportDir string
	HTMLFile  string
	Title     string
	Pattern   string
	Filter    string
	Cases     bool
	Verbose   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BeforeDir: f.BeforeDir,
		AfterDir:  f.AfterDir,
		ReportDir: f.ReportDir,
		HTMLFile:  f.HTMLFile,
		Title:     f.Title,
		Pattern:   f.Pattern,
		Filter:    f.Filter,
		Cases:     f.Cases,
		Verbose:   f.Verbose,
	}
}
