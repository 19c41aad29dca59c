// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds benchmarks for the puzzlebox hot paths:
//   - grid parsing
//   - straight-line word and crossed-pattern counting
//   - CUE config loading
//   - the end-to-end solve pipeline
//
// The profiles they produce feed profile-guided optimization:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
