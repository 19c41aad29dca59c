// SPDX-License-Identifier: MPL-2.0

// Package config handles puzzlebox configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/puzzlebox/config.cue (~/.config on
// Linux, ~/Library/Application Support on macOS, %APPDATA% on Windows), falling back
// to ./config.cue. Files are validated against the embedded CUE schema
// (config_schema.cue) before being merged over the defaults. Environment variables
// prefixed with PUZZLEBOX_ override file values, e.g. PUZZLEBOX_WORDSEARCH_WORD.
package config
