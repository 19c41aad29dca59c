// SPDX-License-Identifier: MPL-2.0

// Package wordsearch counts word occurrences in a character grid.
//
// CountWord finds a linear word and its reverse along the vertical, horizontal
// and both diagonal axes, which together cover all eight compass directions.
// CountCross finds the 3x3 "MAS" cross under its four orientations. Both are
// pure functions of an immutable *grid.Grid and can run concurrently.
package wordsearch
