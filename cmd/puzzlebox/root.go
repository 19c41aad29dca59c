// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"puzzlebox-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose   bool
	cfgFile   string
	inputPath string
}

// newRootCommand builds the full command tree around app.
func newRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "puzzlebox",
		Short: "Solve grid word searches and other text puzzles",
		Long: TitleStyle.Render("puzzlebox") + SubtitleStyle.Render(" - Solve grid word searches and other text puzzles") + `

puzzlebox reads a puzzle input file and prints two answers, one per
line. The word search counts straight-line occurrences of a word in
every direction and the number of crossed MAS patterns.

` + SubtitleStyle.Render("Examples:") + `
  puzzlebox wordsearch -f input.txt   Count XMAS and X-MAS in input.txt
  puzzlebox run 4                     Same, selected by day number
  puzzlebox list                      List all puzzles
  puzzlebox config show               Show current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/puzzlebox/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&flags.inputPath, "input", "f", "", "puzzle input file (default from config, then input.txt)")

	for _, def := range puzzleCommands {
		rootCmd.AddCommand(newPuzzleCommand(app, flags, def))
	}
	rootCmd.AddCommand(newRunCommand(app, flags))
	rootCmd.AddCommand(newListCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
