// SPDX-License-Identifier: MPL-2.0

// Package lists reconciles two columns of location IDs: the summed distance
// between the sorted columns and a similarity score based on how often each
// left value appears on the right.
package lists
