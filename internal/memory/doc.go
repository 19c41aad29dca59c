// SPDX-License-Identifier: MPL-2.0

// Package memory recovers multiplication instructions from corrupted program
// memory.
//
// Tokenize splits the text into mul(a,b), do, don't and noise tokens. The
// sums are computed from that token stream: every product, or only the
// products seen while multiplication is enabled.
package memory
