package commands

import (
	"junitdiff/internal/cli"
	"junitdiff/internal/config"
	"junitdiff/internal/diff"
	"junitdiff/internal/render"
	"junitdiff/internal/report"
	"junitdiff/internal/storage"
	"junitdiff/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Diff *DiffCommand
	List *ListCommand
	View *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	loader := report.NewLoader(cfg)
	filter := report.NewFilter()
	engine := diff.NewEngine()
	jsonStorage := storage.NewJSONStorage(cfg)
	renderer := render.NewRenderer(cfg)
	formatter := ui.NewFormatter(cfg)
	diffViewer := ui.NewDiffViewer(jsonStorage)

	return &Commands{
		Diff: NewDiffCommand(cfg, loader, engine, renderer, jsonStorage, formatter),
		List: NewListCommand(cfg, loader, filter, formatter),
		View: NewViewCommand(cfg, jsonStorage, diffViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Diff command
	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare two directories of JUnit XML reports",
		Long:  "Load the before and after report directories, match test cases by identity and report which cases are missing, changed or unchanged",
		RunE:  c.Diff.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	diffCmd.Flags().StringVarP(&flags.BeforeDir, "before-dir", "b", "", "Directory with the before (reference) reports")
	diffCmd.Flags().StringVarP(&flags.AfterDir, "after-dir", "a", "", "Directory with the after (migrated) reports")
	diffCmd.Flags().StringVarP(&flags.HTMLFile, "html-file", "H", "", "Write an HTML report to this path (skipped when empty)")
	diffCmd.Flags().StringVarP(&flags.Title, "title", "t", "", "Title of the HTML report")
	diffCmd.Flags().StringVarP(&flags.Pattern, "pattern", "p", "", "Report file pattern relative to each report directory (default \"*.xml\", '**/' descends)")
	diffCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print per-file parsing diagnostics")
	diffCmd.MarkFlagRequired("before-dir")
	diffCmd.MarkFlagRequired("after-dir")
	rootCmd.AddCommand(diffCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the suites and cases of one report directory",
		Long:  "Load a report directory without diffing and print the discovered suites, exactly as the diff command would see them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.ReportDir, "report-dir", "d", "", "Directory with the reports to list")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g. '*LoginTest' or '*Payment*')")
	listCmd.Flags().StringVarP(&flags.Pattern, "pattern", "p", "", "Report file pattern relative to the report directory (default \"*.xml\", '**/' descends)")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List test cases under each suite")
	listCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print per-file parsing diagnostics")
	listCmd.MarkFlagRequired("report-dir")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the last diff interactively",
		Long:  "Display the missing and changed entries of the last diff in an interactive viewer and mark them reviewed",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
