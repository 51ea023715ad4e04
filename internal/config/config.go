package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Report discovery settings
	ReportGlob string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// HTML report settings
	Title string

	// Command flags
	Flags Flags
}

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

// New creates a new Config from defaults, a .env file when present, and
// JUNITDIFF_* environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	cfg := &Config{
		ReportGlob:     DefaultReportGlob,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Title:          DefaultTitle,
	}

	if v := os.Getenv("JUNITDIFF_REPORT_GLOB"); v != "" {
		cfg.ReportGlob = v
	}
	if v := os.Getenv("JUNITDIFF_OUTPUT_DIR"); v != "" {
		cfg.OutputJSONDir = v
	}
	if v := os.Getenv("JUNITDIFF_OUTPUT_FILE"); v != "" {
		cfg.OutputJSONFile = v
	}
	if v := os.Getenv("JUNITDIFF_TITLE"); v != "" {
		cfg.Title = v
	}

	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

// GetReportGlob returns the report file pattern, using the flag if provided
func (c *Config) GetReportGlob() string {
	if c.Flags.Pattern != "" {
		return c.Flags.Pattern
	}
	return c.ReportGlob
}

// GetTitle returns the HTML report title, using the flag if provided
func (c *Config) GetTitle() string {
	if c.Flags.Title != "" {
		return c.Flags.Title
	}
	return c.Title
}

// GetOutputPath returns the full path to the snapshot JSON file.
// Resolves to an absolute path so diff and view always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
