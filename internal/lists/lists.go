// SPDX-License-Identifier: MPL-2.0

package lists

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"puzzlebox-cli/internal/puzzle"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/constraints"
)

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("malformed location list")

type (
	// Pair is one input line: a left and a right location ID.
	Pair struct {
		Left  int
		Right int
	}

	// ParseError reports the first line that is not two unsigned integers.
	// It wraps ErrParse for errors.Is() compatibility.
	ParseError struct {
		Line   int
		Text   string
		Reason string
	}

	// Solver implements puzzle.Solver for the location lists.
	Solver struct{}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Unwrap returns ErrParse so callers can use errors.Is for programmatic detection.
func (e *ParseError) Unwrap() error { return ErrParse }

// Parse reads one Pair per non-blank line.
func Parse(text string) ([]Pair, error) {
	var pairs []Pair
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: fmt.Sprintf("expected 2 numbers, found %d fields", len(fields))}
		}
		left, err := parseID(fields[0])
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		right, err := parseID(fields[1])
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		pairs = append(pairs, Pair{Left: left, Right: right})
	}
	return pairs, nil
}

func parseID(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%q is not an unsigned integer", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return n, nil
}

// Columns splits pairs into their left and right columns.
func Columns(pairs []Pair) (left, right []int) {
	left = make([]int, len(pairs))
	right = make([]int, len(pairs))
	for i, p := range pairs {
		left[i], right[i] = p.Left, p.Right
	}
	return left, right
}

// TotalDistance sorts both columns independently and sums the absolute
// difference of each rank-aligned pair.
func TotalDistance(pairs []Pair) int {
	left, right := Columns(pairs)
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += absDiff(left[i], right[i])
	}
	return total
}

// Similarity sums every left value multiplied by the number of times it
// occurs in the right column.
func Similarity(pairs []Pair) int {
	occurrences := make(map[int]int, len(pairs))
	for _, p := range pairs {
		occurrences[p.Right]++
	}

	score := 0
	for _, p := range pairs {
		score += p.Left * occurrences[p.Left]
	}
	return score
}

func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Day implements puzzle.Solver.
func (Solver) Day() int { return 1 }

// Name implements puzzle.Solver.
func (Solver) Name() string { return "lists" }

// Summary implements puzzle.Solver.
func (Solver) Summary() string {
	return "total distance and similarity score of two location ID columns"
}

// Solve implements puzzle.Solver.
func (Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	pairs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, puzzle.Malformed(err)
	}
	log.FromContext(ctx).Debug("parsed location lists", "pairs", len(pairs))

	return puzzle.Answer{
		Part1: TotalDistance(pairs),
		Part2: Similarity(pairs),
	}, nil
}
