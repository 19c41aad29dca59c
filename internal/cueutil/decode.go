// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned when a document exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// Decode validates data against the definition at defPath in schema and
// decodes the unified value into a T.
func Decode[T any](schema string, data []byte, defPath string, opts ...Option) (T, error) {
	var zero T

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if size := int64(len(data)); size > o.maxFileSize {
		return zero, fmt.Errorf("%s: %w: %d bytes exceeds maximum %d bytes", o.filename, ErrFileTooLarge, size, o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return zero, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	def := schemaValue.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		return zero, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, def.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if userValue.Err() != nil {
		return zero, FormatError(userValue.Err(), o.filename)
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return zero, FormatError(err, o.filename)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return zero, FormatError(err, o.filename)
	}
	return out, nil
}

// FormatError flattens CUE errors into "<file>: <path>: <message>" lines.
// Errors that do not come from CUE are wrapped with the file name only.
// The result always unwraps to err.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		return fmt.Errorf("%s: %w", filename, err)
	}

	errs := cueerrors.Errors(err)
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.Error()
		if field := strings.Join(cueerrors.Path(e), "."); field != "" {
			msg = field + ": " + strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, field), ":"))
		}
		lines = append(lines, msg)
	}
	if len(lines) == 1 {
		return &formattedError{msg: filename + ": " + lines[0], err: err}
	}
	return &formattedError{msg: filename + ": validation failed:\n  " + strings.Join(lines, "\n  "), err: err}
}

// formattedError carries the flattened message while keeping the CUE
// error reachable through errors.Is and errors.As.
type formattedError struct {
	msg string
	err error
}

func (e *formattedError) Error() string { return e.msg }

func (e *formattedError) Unwrap() error { return e.err }
