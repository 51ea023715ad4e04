package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"junitdiff/internal/config"
	"junitdiff/internal/report"
	"junitdiff/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *report.Loader
	filter    *report.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *report.Loader,
	filter *report.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	lc.loader.SetLogger(ui.NewLogger(lc.config.Flags.Verbose))

	set, err := lc.loader.Load(lc.config.Flags.ReportDir)
	if err != nil {
		return err
	}

	// Filter suites
	names := lc.filter.FilterSuites(set.SuiteNames(), lc.config.Flags.Filter)

	if len(names) == 0 {
		color.Yellow("No suites match the filter")
		return nil
	}

	return lc.formatter.PrintSuiteList(set, names, lc.config.Flags.Cases)
}
