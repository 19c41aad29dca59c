// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"puzzlebox-cli/internal/config"
	"puzzlebox-cli/internal/issue"
	"puzzlebox-cli/internal/lists"
	"puzzlebox-cli/internal/memory"
	"puzzlebox-cli/internal/puzzle"
	"puzzlebox-cli/internal/reports"
	"puzzlebox-cli/internal/watch"
	"puzzlebox-cli/internal/wordsearch"

	"github.com/charmbracelet/log"
)

type (
	// App is the CLI composition root. It wires the config provider and
	// output streams consumed by Cobra handlers.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies holds optional overrides for NewApp. Nil fields fall back
	// to production defaults.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// SolveRequest captures one puzzle invocation as an immutable value.
	SolveRequest struct {
		// Puzzle is a day number, "dayN" or a puzzle name.
		Puzzle string
		// InputPath overrides the configured input file when non-empty.
		InputPath string
		// ConfigPath forces a specific config file when non-empty.
		ConfigPath string
		// Verbose enables debug logging.
		Verbose bool
		// Override mutates the loaded config before solvers are built.
		// Command-line flags are applied here.
		Override func(*config.Config)
	}
)

// NewApp creates the CLI composition root.
func NewApp(deps Dependencies) (*App, error) {
	app := &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app, nil
}

// newRegistry builds the puzzle registry from the effective configuration.
func newRegistry(cfg *config.Config) (*puzzle.Registry, error) {
	needle, err := wordsearch.NewNeedle(cfg.WordSearch.Word)
	if err != nil {
		return nil, err
	}
	return puzzle.NewRegistry(
		lists.Solver{},
		&reports.Solver{MaxStep: cfg.Reports.MaxStep},
		memory.Solver{},
		&wordsearch.Solver{
			Needle:            needle,
			AllowUnterminated: cfg.Grid.AllowUnterminated,
			Parallel:          cfg.WordSearch.Parallel,
		},
	)
}

// loadConfig loads configuration and applies overrides, revalidating the
// result so flags obey the same rules as the config file.
func (a *App) loadConfig(ctx context.Context, configPath string, override func(*config.Config)) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: configPath})
	if err != nil {
		return nil, newServiceError(err, issue.ConfigLoadFailedId, "")
	}
	if override == nil {
		return cfg, nil
	}

	override(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("apply command-line flags").
			WithSuggestion("Run 'puzzlebox <puzzle> --help' to see accepted flag values").
			Wrap(err).
			BuildError()
	}
	return cfg, nil
}

// Registry returns the puzzle registry for the given config file.
func (a *App) Registry(ctx context.Context, configPath string) (*puzzle.Registry, error) {
	cfg, err := a.loadConfig(ctx, configPath, nil)
	if err != nil {
		return nil, err
	}
	return newRegistry(cfg)
}

// Solve loads configuration, reads the input file and runs the requested solver.
func (a *App) Solve(ctx context.Context, req SolveRequest) (puzzle.Answer, error) {
	cfg, err := a.loadConfig(ctx, req.ConfigPath, req.Override)
	if err != nil {
		return puzzle.Answer{}, err
	}
	style := cfg.UI.ColorScheme.GlamourStyle()

	logger := newLogger(a.stderr, req.Verbose || cfg.UI.Verbose)
	ctx = log.WithContext(ctx, logger)

	registry, err := newRegistry(cfg)
	if err != nil {
		return puzzle.Answer{}, issue.WrapWithOperation(err, "build puzzle registry")
	}

	solver, err := registry.Lookup(req.Puzzle)
	if err != nil {
		svcErr := newServiceError(issue.NewErrorContext().
			WithOperation("select puzzle").
			WithResource(req.Puzzle).
			WithSuggestion("Run 'puzzlebox list' to see the available puzzles").
			Wrap(err).
			BuildError(), issue.UnknownPuzzleId, "")
		svcErr.GlamourStyle = style
		return puzzle.Answer{}, svcErr
	}

	path := cmp.Or(req.InputPath, cfg.Input)
	logger.Debug("reading input", "puzzle", solver.Name(), "path", path)

	input, err := puzzle.ReadInput(path)
	if err != nil {
		svcErr := newServiceError(issue.NewErrorContext().
			WithOperation("read puzzle input").
			WithResource(path).
			WithSuggestion("Pass the input file with --input").
			WithSuggestion("Set 'input' in the config file or PUZZLEBOX_INPUT").
			Wrap(err).
			BuildError(), issue.InputNotFoundId, "")
		svcErr.GlamourStyle = style
		return puzzle.Answer{}, svcErr
	}

	answer, err := solver.Solve(ctx, input)
	if err != nil {
		if !errors.Is(err, puzzle.ErrMalformedInput) {
			return puzzle.Answer{}, issue.WrapWithOperation(err, "solve "+solver.Name())
		}
		ctxErr := issue.NewErrorContext().
			WithOperation("parse puzzle input").
			WithResource(path).
			Wrap(err)
		if solver.Name() == "wordsearch" && !cfg.Grid.AllowUnterminated {
			ctxErr = ctxErr.WithSuggestion("Use --allow-unterminated if the last line has no line break")
		}
		svcErr := newServiceError(ctxErr.BuildError(), issue.InputParseErrorId, "")
		svcErr.GlamourStyle = style
		return puzzle.Answer{}, svcErr
	}

	logger.Debug("solved", "puzzle", solver.Name(), "part1", answer.Part1, "part2", answer.Part2)
	return answer, nil
}

// Watch solves req once and again every time its input file changes, until
// ctx is canceled. Each outcome, success or failure, goes to report.
func (a *App) Watch(ctx context.Context, req SolveRequest, report func(puzzle.Answer, error)) error {
	cfg, err := a.loadConfig(ctx, req.ConfigPath, req.Override)
	if err != nil {
		return err
	}
	ctx = log.WithContext(ctx, newLogger(a.stderr, req.Verbose || cfg.UI.Verbose))

	path := cmp.Or(req.InputPath, cfg.Input)
	w, err := watch.New(watch.Config{
		Path: path,
		OnChange: func(ctx context.Context) error {
			report(a.Solve(ctx, req))
			return nil
		},
	})
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("watch puzzle input").
			WithResource(path).
			WithSuggestion("Check that the input file's directory exists").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintln(a.stderr, SubtitleStyle.Render("Watching "+w.Path()+" (Ctrl+C to stop)"))
	report(a.Solve(ctx, req))
	return w.Run(ctx)
}
