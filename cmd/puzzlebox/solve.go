// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"puzzlebox-cli/internal/config"
	"puzzlebox-cli/internal/puzzle"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagWord              = "word"
	flagParallel          = "parallel"
	flagAllowUnterminated = "allow-unterminated"
	flagMaxStep           = "max-step"
	flagWatch             = "watch"
)

// puzzleCommandDef describes one per-puzzle subcommand.
type puzzleCommandDef struct {
	name    string
	day     int
	short   string
	long    string
	example string
	flags   func(*pflag.FlagSet)
}

var puzzleCommands = []puzzleCommandDef{
	{
		name:  "lists",
		day:   1,
		short: "Compare two columns of location IDs",
		long: `Reads pairs of integers, one pair per line. Part 1 is the total
distance between the sorted columns, part 2 the similarity score.`,
		example: "  puzzlebox lists -f day1.txt",
	},
	{
		name:  "reports",
		day:   2,
		short: "Count safe level reports",
		long: `Reads one report of integer levels per line. Part 1 counts strictly
monotonic reports whose steps stay within the maximum, part 2 also
accepts reports made safe by removing a single level.`,
		example: "  puzzlebox reports -f day2.txt --max-step 3",
		flags:   addReportsFlags,
	},
	{
		name:  "memory",
		day:   3,
		short: "Sum mul(a,b) instructions in corrupted memory",
		long: `Scans the input for mul(a,b) instructions. Part 1 sums every product,
part 2 only those enabled by the most recent do() or don't().`,
		example: "  puzzlebox memory -f day3.txt",
	},
	{
		name:  "wordsearch",
		day:   4,
		short: "Count a word and crossed MAS patterns in a letter grid",
		long: `Reads a grid of characters, one row per line. Part 1 counts straight
line occurrences of the search word in all eight directions, part 2
counts 3x3 windows where two MAS diagonals cross on a shared A.

Every line must end with a line break unless --allow-unterminated is set.`,
		example: `  puzzlebox wordsearch -f grid.txt
  puzzlebox wordsearch -f grid.txt --word SAMX --parallel`,
		flags: addWordSearchFlags,
	},
}

func addWordSearchFlags(fs *pflag.FlagSet) {
	fs.String(flagWord, "", "word to count in part 1 (default from config, then XMAS)")
	fs.Bool(flagParallel, false, "run both counters concurrently")
	fs.Bool(flagAllowUnterminated, false, "accept a final grid line without a line break")
}

func addReportsFlags(fs *pflag.FlagSet) {
	fs.Int(flagMaxStep, 0, "largest allowed difference between adjacent levels (default from config, then 3)")
}

func addWatchFlag(fs *pflag.FlagSet) {
	fs.BoolP(flagWatch, "w", false, "solve again whenever the input file changes (Ctrl+C to stop)")
}

// newPuzzleCommand creates the subcommand for a single puzzle.
func newPuzzleCommand(app *App, root *rootFlags, def puzzleCommandDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:     def.name,
		Aliases: []string{fmt.Sprintf("day%d", def.day)},
		Short:   def.short,
		Long:    def.long,
		Example: def.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, app, root, def.name)
		},
	}
	if def.flags != nil {
		def.flags(cmd.Flags())
	}
	addWatchFlag(cmd.Flags())
	return cmd
}

// newRunCommand creates the generic "run" command that selects a puzzle by
// day number or name.
func newRunCommand(app *App, root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <puzzle>",
		Short: "Solve a puzzle selected by day number or name",
		Long: `Solve a puzzle selected by day number ("4"), day alias ("day4") or
name ("wordsearch").`,
		Example: `  puzzlebox run 4 -f grid.txt
  puzzlebox run day2 --max-step 4`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, 0, len(puzzleCommands))
			for _, def := range puzzleCommands {
				names = append(names, def.name+"\t"+def.short)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, app, root, args[0])
		},
	}
	addWordSearchFlags(cmd.Flags())
	addReportsFlags(cmd.Flags())
	addWatchFlag(cmd.Flags())
	return cmd
}

// newListCommand creates the "list" command.
func newListCommand(app *App, root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := app.Registry(cmd.Context(), root.cfgFile)
			if err != nil {
				return renderAndExit(app, root, err)
			}

			var sb strings.Builder
			sb.WriteString(TitleStyle.Render("Available puzzles") + "\n\n")
			for _, s := range registry.Solvers() {
				sb.WriteString(dayStyle.Render(fmt.Sprintf("%d", s.Day())))
				sb.WriteString(nameStyle.Render(s.Name()))
				sb.WriteString(SubtitleStyle.Render(s.Summary()))
				sb.WriteString("\n")
			}
			_, err = fmt.Fprint(app.stdout, sb.String())
			return err
		},
	}
}

// runSolve runs one puzzle and writes its answer to stdout. With --watch it
// keeps solving on every input change until interrupted.
func runSolve(cmd *cobra.Command, app *App, root *rootFlags, puzzleKey string) error {
	req := SolveRequest{
		Puzzle:     puzzleKey,
		InputPath:  root.inputPath,
		ConfigPath: root.cfgFile,
		Verbose:    root.verbose,
		Override:   flagOverrides(cmd.Flags()),
	}

	if watching, _ := cmd.Flags().GetBool(flagWatch); watching {
		if err := app.Watch(cmd.Context(), req, watchReporter(app, root)); err != nil {
			return renderAndExit(app, root, err)
		}
		return nil
	}

	answer, err := app.Solve(cmd.Context(), req)
	if err != nil {
		return renderAndExit(app, root, err)
	}

	_, err = answer.WriteTo(app.stdout)
	return err
}

// watchReporter prints each watch-mode outcome without stopping the watch.
func watchReporter(app *App, root *rootFlags) func(puzzle.Answer, error) {
	return func(answer puzzle.Answer, err error) {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render(time.Now().Format(time.TimeOnly)))
		if err != nil {
			fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, root.verbose))
			return
		}
		answer.WriteTo(app.stdout) //nolint:errcheck // best-effort terminal output
	}
}

// flagOverrides returns a config mutator applying only the flags the user
// explicitly set, so config values survive when a flag is left at its default.
func flagOverrides(fs *pflag.FlagSet) func(*config.Config) {
	return func(cfg *config.Config) {
		if fs.Changed(flagWord) {
			cfg.WordSearch.Word, _ = fs.GetString(flagWord)
		}
		if fs.Changed(flagParallel) {
			cfg.WordSearch.Parallel, _ = fs.GetBool(flagParallel)
		}
		if fs.Changed(flagAllowUnterminated) {
			cfg.Grid.AllowUnterminated, _ = fs.GetBool(flagAllowUnterminated)
		}
		if fs.Changed(flagMaxStep) {
			cfg.Reports.MaxStep, _ = fs.GetInt(flagMaxStep)
		}
	}
}

// renderAndExit prints diagnostics for err and converts it to an ExitError.
func renderAndExit(app *App, root *rootFlags, err error) error {
	if root.verbose {
		fmt.Fprintln(app.stderr, VerboseStyle.Render(formatErrorForDisplay(err, true)))
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(app.stderr, svcErr)
	}
	return &ExitError{Code: 1, Err: err}
}
