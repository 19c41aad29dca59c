// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError records what puzzlebox was doing, which file was involved and
// how the user can fix it. The issue catalog holds longer Markdown help pages
// keyed by Id, rendered for the terminal with glamour.
package issue
