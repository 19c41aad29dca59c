// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"puzzlebox-cli/internal/config"
	"puzzlebox-cli/internal/grid"
	"puzzlebox-cli/internal/issue"
	"puzzlebox-cli/internal/puzzle"
	"puzzlebox-cli/internal/testutil"
)

const referenceGrid = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

// stubProvider returns a copy of cfg (or err) regardless of load options.
type stubProvider struct {
	cfg *config.Config
	err error
}

func (p stubProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	c := *p.cfg
	return &c, nil
}

type testHarness struct {
	app    *App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestHarness(t *testing.T, provider config.Provider) *testHarness {
	t.Helper()

	if provider == nil {
		provider = stubProvider{cfg: config.DefaultConfig()}
	}
	h := &testHarness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	app, err := NewApp(Dependencies{Config: provider, Stdout: h.stdout, Stderr: h.stderr})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	h.app = app
	return h
}

func (h *testHarness) run(args ...string) error {
	root := newRootCommand(h.app)
	root.SetArgs(args)
	root.SetOut(h.stdout)
	root.SetErr(h.stderr)
	return root.ExecuteContext(context.Background())
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	return testutil.MustWriteFile(t, t.TempDir(), "input.txt", content)
}

func TestPuzzleCommands_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{
			name:  "wordsearch reference grid",
			input: referenceGrid,
			args:  []string{"wordsearch"},
			want:  "Part 1: 18\nPart 2: 9\n",
		},
		{
			name:  "wordsearch via day alias",
			input: referenceGrid,
			args:  []string{"day4"},
			want:  "Part 1: 18\nPart 2: 9\n",
		},
		{
			name:  "wordsearch in parallel",
			input: referenceGrid,
			args:  []string{"wordsearch", "--parallel"},
			want:  "Part 1: 18\nPart 2: 9\n",
		},
		{
			name:  "run by day number",
			input: referenceGrid,
			args:  []string{"run", "4"},
			want:  "Part 1: 18\nPart 2: 9\n",
		},
		{
			name:  "custom word matches reversed text",
			input: "XMAS\n",
			args:  []string{"wordsearch", "--word", "SAMX"},
			want:  "Part 1: 1\nPart 2: 0\n",
		},
		{
			name:  "unterminated grid allowed by flag",
			input: strings.TrimSuffix(referenceGrid, "\n"),
			args:  []string{"wordsearch", "--allow-unterminated"},
			want:  "Part 1: 18\nPart 2: 9\n",
		},
		{
			name:  "empty grid",
			input: "",
			args:  []string{"wordsearch"},
			want:  "Part 1: 0\nPart 2: 0\n",
		},
		{
			name:  "lists sample",
			input: "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n",
			args:  []string{"lists"},
			want:  "Part 1: 11\nPart 2: 31\n",
		},
		{
			name:  "reports sample",
			input: "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n",
			args:  []string{"run", "day2"},
			want:  "Part 1: 2\nPart 2: 4\n",
		},
		{
			name:  "reports with larger max step",
			input: "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n",
			args:  []string{"reports", "--max-step", "5"},
			want:  "Part 1: 4\nPart 2: 6\n",
		},
		{
			name:  "memory sample",
			input: "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))\n",
			args:  []string{"memory"},
			want:  "Part 1: 161\nPart 2: 48\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHarness(t, nil)
			path := writeInput(t, tt.input)

			if err := h.run(append(tt.args, "--input", path)...); err != nil {
				t.Fatalf("run(%v) error = %v\nstderr: %s", tt.args, err, h.stderr.String())
			}
			if got := h.stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPuzzleCommands_ConfigValuesApply(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Grid.AllowUnterminated = true
	cfg.WordSearch.Word = "SAMX"
	cfg.Input = writeInput(t, "XMAS")

	h := newTestHarness(t, stubProvider{cfg: cfg})
	if err := h.run("wordsearch"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got, want := h.stdout.String(), "Part 1: 1\nPart 2: 0\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestPuzzleCommands_FlagOverridesConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Grid.AllowUnterminated = true

	h := newTestHarness(t, stubProvider{cfg: cfg})
	path := writeInput(t, "XMAS")

	err := h.run("wordsearch", "--allow-unterminated=false", "--input", path)
	if !errors.Is(err, grid.ErrParse) {
		t.Fatalf("run() error = %v, want grid.ErrParse", err)
	}
}

func TestPuzzleCommands_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		args      []string
		wantErr   error
		wantIssue issue.Id
	}{
		{
			name:      "unterminated grid is rejected",
			input:     "XMAS\nSAMX",
			args:      []string{"wordsearch"},
			wantErr:   grid.ErrParse,
			wantIssue: issue.InputParseErrorId,
		},
		{
			name:      "malformed lists line",
			input:     "1 2 3\n",
			args:      []string{"lists"},
			wantErr:   puzzle.ErrMalformedInput,
			wantIssue: issue.InputParseErrorId,
		},
		{
			name:      "unknown puzzle",
			input:     referenceGrid,
			args:      []string{"run", "9"},
			wantErr:   puzzle.ErrUnknownPuzzle,
			wantIssue: issue.UnknownPuzzleId,
		},
		{
			name:    "invalid word flag",
			input:   referenceGrid,
			args:    []string{"wordsearch", "--word", "X MAS"},
			wantErr: config.ErrInvalidWord,
		},
		{
			name:    "invalid max step flag",
			input:   referenceGrid,
			args:    []string{"reports", "--max-step", "0"},
			wantErr: config.ErrInvalidMaxStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHarness(t, nil)
			path := writeInput(t, tt.input)

			err := h.run(append(tt.args, "--input", path)...)
			assertExitError(t, err)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want errors.Is %v", err, tt.wantErr)
			}

			var svcErr *ServiceError
			if tt.wantIssue == 0 {
				if errors.As(err, &svcErr) {
					t.Errorf("unexpected ServiceError with issue %d", svcErr.IssueID)
				}
				return
			}
			if !errors.As(err, &svcErr) {
				t.Fatalf("error = %v, want *ServiceError", err)
			}
			if svcErr.IssueID != tt.wantIssue {
				t.Errorf("IssueID = %d, want %d", svcErr.IssueID, tt.wantIssue)
			}
			if !strings.Contains(h.stderr.String(), "Things you can try") {
				t.Errorf("stderr should contain rendered issue help, got %q", h.stderr.String())
			}
			if h.stdout.Len() != 0 {
				t.Errorf("stdout should be empty on failure, got %q", h.stdout.String())
			}
		})
	}
}

func TestPuzzleCommands_MissingInput(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, nil)
	missing := filepath.Join(t.TempDir(), "nope.txt")

	err := h.run("wordsearch", "-f", missing)
	assertExitError(t, err)
	if !errors.Is(err, puzzle.ErrInputUnreadable) {
		t.Errorf("error = %v, want puzzle.ErrInputUnreadable", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *issue.ActionableError", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
}

func TestPuzzleCommands_ConfigLoadFailure(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("broken config")
	h := newTestHarness(t, stubProvider{err: loadErr})

	err := h.run("wordsearch")
	assertExitError(t, err)
	if !errors.Is(err, loadErr) {
		t.Errorf("error = %v, want %v", err, loadErr)
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID != issue.ConfigLoadFailedId {
		t.Errorf("error = %v, want ServiceError with ConfigLoadFailedId", err)
	}
}

func TestPuzzleCommands_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, nil)
	path := writeInput(t, referenceGrid)

	if err := h.run("wordsearch", "-v", "-f", path); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(h.stderr.String(), "reading input") {
		t.Errorf("stderr should contain debug log, got %q", h.stderr.String())
	}
	if got, want := h.stdout.String(), "Part 1: 18\nPart 2: 9\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, nil)
	if err := h.run("list"); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := h.stdout.String()
	names := []string{"lists", "reports", "memory", "wordsearch"}
	last := -1
	for _, name := range names {
		idx := strings.Index(out, name)
		if idx < 0 {
			t.Fatalf("list output missing %q:\n%s", name, out)
		}
		if idx < last {
			t.Errorf("%q listed out of day order", name)
		}
		last = idx
	}
}

func TestApp_Solve(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, nil)
	path := writeInput(t, "XMAS\n")

	answer, err := h.app.Solve(context.Background(), SolveRequest{
		Puzzle:    "WordSearch",
		InputPath: path,
		Override: func(cfg *config.Config) {
			cfg.WordSearch.Word = "MAS"
		},
	})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if want := (puzzle.Answer{Part1: 1, Part2: 0}); answer != want {
		t.Errorf("Solve() = %+v, want %+v", answer, want)
	}
}

func TestApp_Watch(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, nil)
	path := writeInput(t, "XMAS\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan puzzle.Answer, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- h.app.Watch(ctx, SolveRequest{Puzzle: "wordsearch", InputPath: path}, func(a puzzle.Answer, err error) {
			if err != nil {
				t.Errorf("watch solve error = %v", err)
				return
			}
			results <- a
		})
	}()

	next := func() puzzle.Answer {
		t.Helper()
		select {
		case a := <-results:
			return a
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a watch result")
			return puzzle.Answer{}
		}
	}

	if got, want := next(), (puzzle.Answer{Part1: 1}); got != want {
		t.Errorf("initial answer = %+v, want %+v", got, want)
	}

	if err := os.WriteFile(path, []byte("XMASAMX\n"), 0o644); err != nil {
		t.Fatalf("rewrite input: %v", err)
	}
	if got, want := next(), (puzzle.Answer{Part1: 2}); got != want {
		t.Errorf("answer after change = %+v, want %+v", got, want)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func assertExitError(t *testing.T, err error) {
	t.Helper()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("ExitError.Code = %d, want 1", exitErr.Code)
	}
}
