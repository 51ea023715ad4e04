package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"junitdiff/internal/config"
	"junitdiff/internal/diff"
	"junitdiff/internal/domain"
	"junitdiff/internal/render"
	"junitdiff/internal/report"
	"junitdiff/internal/storage"
	"junitdiff/internal/ui"
)

// DiffCommand handles the diff command
type DiffCommand struct {
	config    *config.Config
	loader    *report.Loader
	engine    *diff.Engine
	renderer  *render.Renderer
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewDiffCommand creates a new DiffCommand
func NewDiffCommand(
	cfg *config.Config,
	loader *report.Loader,
	engine *diff.Engine,
	renderer *render.Renderer,
	st storage.Storage,
	formatter *ui.Formatter,
) *DiffCommand {
	return &DiffCommand{
		config:    cfg,
		loader:    loader,
		engine:    engine,
		renderer:  renderer,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (dc *DiffCommand) Execute(cmd *cobra.Command, args []string) error {
	start := time.Now()

	dc.loader.SetLogger(ui.NewLogger(dc.config.Flags.Verbose))

	// Load both sides
	dc.loader.SetProgress(ui.NewProgressBar("Parsing before reports"))
	before, err := dc.loader.Load(dc.config.Flags.BeforeDir)
	if err != nil {
		return err
	}

	dc.loader.SetProgress(ui.NewProgressBar("Parsing after reports"))
	after, err := dc.loader.Load(dc.config.Flags.AfterDir)
	if err != nil {
		return err
	}

	// Compare
	result := dc.engine.Compare(before, after)
	output := domain.NewDiffOutput(
		dc.config.Flags.BeforeDir,
		dc.config.Flags.AfterDir,
		before.Len(),
		after.Len(),
		result,
		time.Since(start),
	)

	// Save the snapshot for the view command
	if err := dc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save diff snapshot: %w", err)
	}

	// Render the HTML report when requested
	if path := dc.config.Flags.HTMLFile; path != "" {
		if err := dc.renderer.RenderFile(path, output); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
	}

	// Print stats; the diff verdict never affects the exit code
	return dc.formatter.PrintDiffStats(output)
}
