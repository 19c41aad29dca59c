// SPDX-License-Identifier: MPL-2.0

package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultInputPath is the input file read when no path is configured.
const DefaultInputPath = "input.txt"

// MaxInputSize bounds the input file size. Puzzle inputs are a few KiB.
const MaxInputSize = 16 << 20

var (
	// ErrInputUnreadable is the sentinel error wrapped by InputError.
	ErrInputUnreadable = errors.New("input unreadable")
	// ErrMalformedInput marks errors raised while parsing puzzle text.
	ErrMalformedInput = errors.New("malformed puzzle input")
)

type (
	// Answer holds the two results of a puzzle run.
	Answer struct {
		Part1 int
		Part2 int
	}

	// Solver parses puzzle text and computes its Answer.
	Solver interface {
		// Day is the puzzle's day number, used as its short key.
		Day() int
		// Name is the puzzle's command name.
		Name() string
		// Summary is a one-line description for listings.
		Summary() string
		// Solve parses input and computes both parts.
		Solve(ctx context.Context, input string) (Answer, error)
	}

	// InputError is returned when the input file cannot be read.
	// It wraps ErrInputUnreadable and the underlying cause.
	InputError struct {
		Path string
		Err  error
	}
)

// WriteTo writes the answer in the fixed "Part N: <value>" format.
func (a Answer) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Part 1: %d\nPart 2: %d\n", a.Part1, a.Part2)
	return int64(n), err
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrInputUnreadable and the underlying cause.
func (e *InputError) Unwrap() []error {
	return []error{ErrInputUnreadable, e.Err}
}

// Malformed marks err as a parse failure of puzzle text while keeping it
// reachable through errors.As.
func Malformed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformedInput, err)
}

// ReadInput reads the whole input file at path.
func ReadInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &InputError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &InputError{Path: path, Err: errors.New("is a directory")}
	}
	if info.Size() > MaxInputSize {
		return "", &InputError{Path: path, Err: fmt.Errorf("file size %d bytes exceeds maximum %d bytes", info.Size(), MaxInputSize)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputError{Path: path, Err: err}
	}
	return string(data), nil
}
