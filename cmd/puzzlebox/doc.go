// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for puzzlebox.
//
// This package implements the Cobra command hierarchy: one subcommand per
// puzzle, the generic "run" and "list" commands, and configuration
// management. Business logic is reached through the App composition root.
package cmd
