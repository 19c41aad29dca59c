// SPDX-License-Identifier: MPL-2.0

// Package grid parses newline-delimited puzzle text into an immutable grid of
// single-codepoint cells.
//
// Rows are kept exactly as they appear in the input and may differ in length;
// every accessor treats row width as a per-row property. Parsing is total: the
// whole input must decompose into terminated lines, otherwise Parse returns a
// *ParseError. A final line without a terminator is rejected unless the caller
// opts in with AllowUnterminated.
package grid
