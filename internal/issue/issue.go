// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Catalog identifiers. Zero means "no catalog entry".
const (
	InputNotFoundId Id = iota + 1
	InputParseErrorId
	ConfigLoadFailedId
	UnknownPuzzleId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is Markdown help text.
	MarkdownMsg string

	// Issue is a catalog entry: a Markdown help page for one failure mode.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw Markdown text.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the Markdown with the named glamour style ("dark",
// "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg))+"\n", stylePath)
}

var (
	render = glamour.Render

	inputNotFoundIssue = &Issue{
		id: InputNotFoundId,
		mdMsg: `
# Puzzle input could not be read

puzzlebox reads the whole puzzle input from a single text file before solving.

## Things you can try:
- Save your puzzle input as "input.txt" in the current directory
- Point to another file:
~~~
$ puzzlebox wordsearch --input path/to/input.txt
~~~
- Set a default path in your config file:
~~~cue
input: "inputs/day4.txt"
~~~`,
	}

	inputParseErrorIssue = &Issue{
		id: InputParseErrorId,
		mdMsg: `
# Puzzle input is malformed

The input file does not match the format this puzzle expects, so no answer
was computed.

## Things you can try:
- Check the reported line for stray characters
- Make sure the last line ends with a line break, or accept an unterminated
  final line for grid puzzles:
~~~
$ puzzlebox wordsearch --allow-unterminated
~~~
- Re-download the input instead of copying it from the browser`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

## Things you can try:
- Show where puzzlebox looks for its config:
~~~
$ puzzlebox config path
~~~
- Regenerate a default config file:
~~~
$ puzzlebox config init
~~~
- Check the CUE syntax and the allowed keys: input, ui, grid, wordsearch, reports`,
	}

	unknownPuzzleIssue = &Issue{
		id: UnknownPuzzleId,
		mdMsg: `
# Unknown puzzle

Puzzles can be selected by day number ("4"), day alias ("day4") or name
("wordsearch").

## Things you can try:
- List the available puzzles:
~~~
$ puzzlebox list
~~~`,
	}

	issues = map[Id]*Issue{
		inputNotFoundIssue.Id():    inputNotFoundIssue,
		inputParseErrorIssue.Id():  inputParseErrorIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		unknownPuzzleIssue.Id():    unknownPuzzleIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
