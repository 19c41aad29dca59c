// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	defaultInput   = "input.txt"
	defaultWord    = "XMAS"
	defaultMaxStep = 3
	maxMaxStep     = 9
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidWord is returned when the search word is empty or contains whitespace.
	ErrInvalidWord = errors.New("invalid search word")
	// ErrInvalidMaxStep is returned when reports.max_step is out of range.
	ErrInvalidMaxStep = errors.New("invalid max step")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidWordError is returned when the search word is unusable.
	// It wraps ErrInvalidWord for errors.Is() compatibility.
	InvalidWordError struct {
		Value string
	}

	// InvalidConfigError collects field-level validation errors.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the complete puzzlebox configuration.
	Config struct {
		// Input is the puzzle input file path.
		Input string `json:"input" mapstructure:"input"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Grid configures grid parsing.
		Grid GridConfig `json:"grid" mapstructure:"grid"`
		// WordSearch configures the word search puzzle.
		WordSearch WordSearchConfig `json:"wordsearch" mapstructure:"wordsearch"`
		// Reports configures the report safety puzzle.
		Reports ReportsConfig `json:"reports" mapstructure:"reports"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// ColorScheme sets the color scheme for rendered help pages.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// GridConfig configures grid parsing.
	GridConfig struct {
		// AllowUnterminated accepts a final line without a line break.
		AllowUnterminated bool `json:"allow_unterminated" mapstructure:"allow_unterminated"`
	}

	// WordSearchConfig configures the word search puzzle.
	WordSearchConfig struct {
		// Word is the word counted in eight directions.
		Word string `json:"word" mapstructure:"word"`
		// Parallel runs the two scans concurrently.
		Parallel bool `json:"parallel" mapstructure:"parallel"`
	}

	// ReportsConfig configures the report safety puzzle.
	ReportsConfig struct {
		// MaxStep is the largest allowed difference between neighbouring levels.
		MaxStep int `json:"max_step" mapstructure:"max_step"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid search word %q (must be non-empty without whitespace)", e.Value)
}

// Unwrap returns ErrInvalidWord for errors.Is() compatibility.
func (e *InvalidWordError) Unwrap() error { return ErrInvalidWord }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap exposes ErrInvalidConfig and every field error to errors.Is/As.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate returns an error if the ColorScheme is not one of the defined values.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// GlamourStyle maps the scheme to a glamour style name.
func (c ColorScheme) GlamourStyle() string {
	switch c {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// ValidateWord returns an error if word cannot be searched for.
func ValidateWord(word string) error {
	if word == "" || strings.ContainsFunc(word, unicode.IsSpace) {
		return &InvalidWordError{Value: word}
	}
	return nil
}

// Validate checks constraints that hold regardless of where values came
// from, including environment overrides the CUE schema never sees.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Input) == "" {
		errs = append(errs, errors.New("input path must not be empty"))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateWord(c.WordSearch.Word); err != nil {
		errs = append(errs, err)
	}
	if c.Reports.MaxStep < 1 || c.Reports.MaxStep > maxMaxStep {
		errs = append(errs, fmt.Errorf("%w: reports.max_step %d (must be 1-%d)", ErrInvalidMaxStep, c.Reports.MaxStep, maxMaxStep))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Input: defaultInput,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Grid: GridConfig{
			AllowUnterminated: false,
		},
		WordSearch: WordSearchConfig{
			Word:     defaultWord,
			Parallel: false,
		},
		Reports: ReportsConfig{
			MaxStep: defaultMaxStep,
		},
	}
}
