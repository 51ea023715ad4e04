package main

import (
	"fmt"
	"os"

	"junitdiff/internal/cli"
	"junitdiff/internal/cli/commands"
	"junitdiff/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "junitdiff",
		Short:   "Diff JUnit XML test reports before and after a migration",
		Long:    `Compare two directories of JUnit-style XML test reports and report every test case that regressed or disappeared. Load the reports produced before a test-suite migration, diff them against the reports produced after it, and review the result in the terminal, as an HTML page, or interactively.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
