// SPDX-License-Identifier: MPL-2.0

// Package reports classifies sequences of readings as safe or unsafe.
//
// A report is safe when it is strictly monotonic and every step between
// neighbouring levels lies within [1, maxStep]. The dampened check also
// accepts reports that become safe after removing a single level.
package reports
