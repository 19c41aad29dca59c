// SPDX-License-Identifier: MPL-2.0

package wordsearch

import "puzzlebox-cli/internal/grid"

const (
	// PatchSize is the side length of a cross window.
	PatchSize = 3

	// Filler occupies the edge-midpoint cells of every Patch. It is written
	// identically into samples and templates, so it never decides a match.
	Filler = '.'
)

// Patch is a 3x3 window of grid cells. Only the four corners and the center
// are sampled from the grid; the remaining cells hold Filler.
type Patch [PatchSize][PatchSize]rune

// crossTemplates are the four valid "MAS" crosses: A in the center and each
// diagonal reading MAS in one of its two directions.
var crossTemplates = [4]Patch{
	{{'M', Filler, 'S'}, {Filler, 'A', Filler}, {'M', Filler, 'S'}},
	{{'M', Filler, 'M'}, {Filler, 'A', Filler}, {'S', Filler, 'S'}},
	{{'S', Filler, 'S'}, {Filler, 'A', Filler}, {'M', Filler, 'M'}},
	{{'S', Filler, 'M'}, {Filler, 'A', Filler}, {'S', Filler, 'M'}},
}

// CrossTemplates returns a copy of the four cross templates.
func CrossTemplates() [4]Patch {
	return crossTemplates
}

// SamplePatch extracts the Patch whose top-left cell is (y, x). The second
// result is false when the window does not fit inside the rows it spans.
func SamplePatch(g *grid.Grid, y, x int) (Patch, bool) {
	if y < 0 || x < 0 || x >= windowColumns(g, y) {
		return Patch{}, false
	}
	cell := func(dy, dx int) rune {
		r, _ := g.At(y+dy, x+dx)
		return r
	}
	return Patch{
		{cell(0, 0), Filler, cell(0, 2)},
		{Filler, cell(1, 1), Filler},
		{cell(2, 0), Filler, cell(2, 2)},
	}, true
}

// CountCross counts 3x3 windows of g matching any cross template. Every
// template is compared over all nine cells and each match is counted.
func CountCross(g *grid.Grid) int {
	count := 0
	for y := 0; y+PatchSize <= g.Height(); y++ {
		limit := windowColumns(g, y)
		for x := range limit {
			sample, _ := SamplePatch(g, y, x)
			for _, tmpl := range crossTemplates {
				if sample == tmpl {
					count++
				}
			}
		}
	}
	return count
}

// windowColumns returns how many top-left columns in row y start a window
// that fits inside the shortest of the three rows it spans.
func windowColumns(g *grid.Grid, y int) int {
	if y+PatchSize > g.Height() {
		return 0
	}
	width := g.Width(y)
	for dy := 1; dy < PatchSize; dy++ {
		width = min(width, g.Width(y+dy))
	}
	return max(width-PatchSize+1, 0)
}
