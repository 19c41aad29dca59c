// SPDX-License-Identifier: MPL-2.0

package reports

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"puzzlebox-cli/internal/puzzle"

	"github.com/charmbracelet/log"
)

// DefaultMaxStep is the largest allowed difference between neighbouring levels.
const DefaultMaxStep = 3

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("malformed report")

type (
	// Report is one line of level readings.
	Report []int

	// ParseError reports the first line containing a non-integer field.
	// It wraps ErrParse for errors.Is() compatibility.
	ParseError struct {
		Line  int
		Field string
	}

	// Solver implements puzzle.Solver for the safety reports.
	Solver struct {
		// MaxStep overrides DefaultMaxStep when positive.
		MaxStep int
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q is not an integer", e.Line, e.Field)
}

// Unwrap returns ErrParse so callers can use errors.Is for programmatic detection.
func (e *ParseError) Unwrap() error { return ErrParse }

// Parse reads one Report per non-blank line.
func Parse(text string) ([]Report, error) {
	var reports []Report
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		r := make(Report, len(fields))
		for j, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Field: f}
			}
			r[j] = n
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Safe reports whether r is strictly increasing or strictly decreasing with
// every step between 1 and maxStep inclusive. Reports shorter than two
// levels are trivially safe.
func (r Report) Safe(maxStep int) bool {
	return firstViolation(r, maxStep) < 0
}

// SafeDampened reports whether r is safe, or becomes safe after removing
// exactly one level.
func (r Report) SafeDampened(maxStep int) bool {
	if r.Safe(maxStep) {
		return true
	}
	buf := make(Report, 0, len(r))
	for skip := range r {
		buf = append(buf[:0], r[:skip]...)
		buf = append(buf, r[skip+1:]...)
		if buf.Safe(maxStep) {
			return true
		}
	}
	return false
}

// firstViolation returns the index of the first step that breaks the safety
// rules, or -1 if there is none.
func firstViolation(r Report, maxStep int) int {
	if len(r) < 2 {
		return -1
	}
	increasing := r[1] > r[0]
	for i := 1; i < len(r); i++ {
		step := r[i] - r[i-1]
		if !increasing {
			step = -step
		}
		if step < 1 || step > maxStep {
			return i
		}
	}
	return -1
}

// CountSafe counts the reports passing Safe.
func CountSafe(reports []Report, maxStep int) int {
	n := 0
	for _, r := range reports {
		if r.Safe(maxStep) {
			n++
		}
	}
	return n
}

// CountSafeDampened counts the reports passing SafeDampened.
func CountSafeDampened(reports []Report, maxStep int) int {
	n := 0
	for _, r := range reports {
		if r.SafeDampened(maxStep) {
			n++
		}
	}
	return n
}

// Day implements puzzle.Solver.
func (s *Solver) Day() int { return 2 }

// Name implements puzzle.Solver.
func (s *Solver) Name() string { return "reports" }

// Summary implements puzzle.Solver.
func (s *Solver) Summary() string {
	return fmt.Sprintf("count monotonic reports with steps of at most %d, with and without dampening", s.maxStep())
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	reports, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed(err)
	}
	log.FromContext(ctx).Debug("parsed reports", "reports", len(reports), "max_step", s.maxStep())

	return puzzle.Answer{
		Part1: CountSafe(reports, s.maxStep()),
		Part2: CountSafeDampened(reports, s.maxStep()),
	}, nil
}

func (s *Solver) maxStep() int {
	if s.MaxStep > 0 {
		return s.MaxStep
	}
	return DefaultMaxStep
}
