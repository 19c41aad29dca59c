// SPDX-License-Identifier: MPL-2.0

// Package puzzle defines the contract shared by every puzzle solver: read the
// input file, parse it into a puzzle-specific structure and report two answers.
//
// A Registry indexes solvers by day number and by name so the CLI can dispatch
// "puzzlebox run 4" and "puzzlebox run wordsearch" the same way.
package puzzle
