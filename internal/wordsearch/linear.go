// SPDX-License-Identifier: MPL-2.0

package wordsearch

import (
	"errors"
	"slices"

	"puzzlebox-cli/internal/grid"
)

// DefaultWord is the word searched for when none is configured.
const DefaultWord = "XMAS"

// ErrEmptyNeedle is returned when a Needle is built from an empty word.
var ErrEmptyNeedle = errors.New("search word must not be empty")

type (
	// Needle is a word together with its reverse. Both readings are matched
	// independently, so a palindrome is counted twice at the same place.
	Needle struct {
		forward []rune
		reverse []rune
	}

	// axis is a scan direction expressed as a row and column step.
	axis struct {
		dy, dx int
	}
)

// Scan axes: down, down-right, right, up-right. Matching the reversed word
// along each covers the opposite compass direction.
var axes = [...]axis{
	{dy: 1, dx: 0},
	{dy: 1, dx: 1},
	{dy: 0, dx: 1},
	{dy: -1, dx: 1},
}

// NewNeedle builds a Needle for word.
func NewNeedle(word string) (Needle, error) {
	if word == "" {
		return Needle{}, ErrEmptyNeedle
	}
	forward := []rune(word)
	reverse := slices.Clone(forward)
	slices.Reverse(reverse)
	return Needle{forward: forward, reverse: reverse}, nil
}

// MustNeedle is like NewNeedle but panics on an empty word.
func MustNeedle(word string) Needle {
	n, err := NewNeedle(word)
	if err != nil {
		panic(err)
	}
	return n
}

// Len returns the number of characters in the word.
func (n Needle) Len() int { return len(n.forward) }

// String returns the forward word.
func (n Needle) String() string { return string(n.forward) }

// Reversed returns the Needle whose forward word is n's reverse.
func (n Needle) Reversed() Needle {
	return Needle{forward: n.reverse, reverse: n.forward}
}

// CountWord counts every reading of n, forward or reversed, along the four
// scan axes starting at any cell of g. Reads never wrap and never leave the
// grid; starts that cannot fit the whole word are skipped.
func CountWord(g *grid.Grid, n Needle) int {
	l := n.Len()
	if l == 0 || g.IsEmpty() {
		return 0
	}

	sample := make([]rune, l)
	count := 0
	for y := range g.Height() {
		for _, a := range axes {
			limit := safeColumns(g, y, a, l)
			for x := range limit {
				for i := range sample {
					sample[i], _ = g.At(y+i*a.dy, x+i*a.dx)
				}
				if slices.Equal(sample, n.forward) {
					count++
				}
				if slices.Equal(sample, n.reverse) {
					count++
				}
			}
		}
	}
	return count
}

// safeColumns returns how many leading columns of row y can start a read of
// length l along a. Every row the read touches bounds the range by its own
// width, so ragged rows shorten it instead of causing out-of-range reads.
func safeColumns(g *grid.Grid, y int, a axis, l int) int {
	last := y + (l-1)*a.dy
	if last < 0 || last >= g.Height() {
		return 0
	}
	limit := g.Width(y)
	for i := 1; i < l; i++ {
		limit = min(limit, g.Width(y+i*a.dy)-i*a.dx)
	}
	return max(limit, 0)
}
