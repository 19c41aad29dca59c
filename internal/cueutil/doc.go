// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes user-supplied CUE documents against an embedded
// schema definition.
//
// Decoding compiles the schema, unifies the definition with the user data,
// validates the result and decodes it into T. Errors carry the file name
// and the dotted path of each offending field.
package cueutil
