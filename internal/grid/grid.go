// SPDX-License-Identifier: MPL-2.0

package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("malformed grid input")

type (
	// Grid is an ordered sequence of character rows. A Grid is never modified
	// after Parse or FromRows returns it; derived grids (see Mirror) are copies.
	Grid struct {
		rows [][]rune
	}

	// ParseError is returned when the input does not fully decompose into
	// well-formed lines. It wraps ErrParse for errors.Is() compatibility.
	ParseError struct {
		// Line is the 1-based line number where the residual input starts.
		Line int
		// Offset is the byte offset of the residual input.
		Offset int
		// Reason describes why the residual could not be consumed.
		Reason string
	}

	// Option configures Parse.
	Option func(*parseOptions)

	parseOptions struct {
		allowUnterminated bool
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (byte %d): %s", e.Line, e.Offset, e.Reason)
}

// Unwrap returns ErrParse so callers can use errors.Is for programmatic detection.
func (e *ParseError) Unwrap() error { return ErrParse }

// AllowUnterminated accepts a final line that is not followed by a line break.
// Without it, such a line is residual input and Parse fails.
func AllowUnterminated() Option {
	return func(o *parseOptions) {
		o.allowUnterminated = true
	}
}

// Parse converts text into a Grid. Each line, an arbitrary (possibly empty)
// run of characters terminated by "\n" or "\r\n", becomes one row. Empty text
// yields an empty Grid.
func Parse(text string, opts ...Option) (*Grid, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{}
	rest := text
	offset := 0
	for line := 1; rest != ""; line++ {
		end := strings.IndexByte(rest, '\n')
		if end < 0 {
			if !o.allowUnterminated {
				return nil, &ParseError{Line: line, Offset: offset, Reason: "line is not terminated by a line break"}
			}
			end = len(rest)
		}

		raw := rest[:end]
		if bad := invalidByte(raw); bad >= 0 {
			return nil, &ParseError{Line: line, Offset: offset + bad, Reason: "invalid UTF-8 sequence"}
		}
		if end < len(rest) {
			raw = strings.TrimSuffix(raw, "\r")
			rest = rest[end+1:]
		} else {
			rest = ""
		}
		g.rows = append(g.rows, []rune(raw))
		offset += end + 1
	}

	return g, nil
}

// FromRows builds a Grid from already split rows.
func FromRows(rows ...string) *Grid {
	g := &Grid{rows: make([][]rune, len(rows))}
	for i, r := range rows {
		g.rows[i] = []rune(r)
	}
	return g
}

// invalidByte returns the offset of the first invalid UTF-8 byte in s, or -1.
func invalidByte(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Width returns the length of row y, or 0 when y is out of range.
func (g *Grid) Width(y int) int {
	if y < 0 || y >= g.Height() {
		return 0
	}
	return len(g.rows[y])
}

// MaxWidth returns the length of the longest row.
func (g *Grid) MaxWidth() int {
	width := 0
	for y := range g.Height() {
		width = max(width, len(g.rows[y]))
	}
	return width
}

// IsEmpty reports whether the grid has no rows.
func (g *Grid) IsEmpty() bool { return g.Height() == 0 }

// At returns the cell at row y, column x. The second result is false when the
// position lies outside the grid or past the end of row y.
func (g *Grid) At(y, x int) (rune, bool) {
	if x < 0 || x >= g.Width(y) {
		return 0, false
	}
	return g.rows[y][x], true
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []rune {
	if y < 0 || y >= g.Height() {
		return nil
	}
	return slices.Clone(g.rows[y])
}

// Mirror returns a new Grid with every row reversed.
func (g *Grid) Mirror() *Grid {
	m := &Grid{rows: make([][]rune, g.Height())}
	for y := range m.rows {
		row := slices.Clone(g.rows[y])
		slices.Reverse(row)
		m.rows[y] = row
	}
	return m
}

// String joins the rows, terminating each with "\n". For input accepted by
// Parse with "\n" terminators this reproduces the original text.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.Height() {
		sb.WriteString(string(g.rows[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
