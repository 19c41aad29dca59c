// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, c := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := c.Validate(); err != nil {
			t.Errorf("ColorScheme(%q).Validate() error = %v", c, err)
		}
	}

	err := ColorScheme("sepia").Validate()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Fatalf("Validate() error = %v, want ErrInvalidColorScheme", err)
	}
	var csErr *InvalidColorSchemeError
	if !errors.As(err, &csErr) || csErr.Value != "sepia" {
		t.Errorf("error = %#v, want *InvalidColorSchemeError{sepia}", err)
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	tests := map[ColorScheme]string{
		ColorSchemeAuto:  "auto",
		ColorSchemeDark:  "dark",
		ColorSchemeLight: "light",
		"":               "auto",
	}
	for scheme, want := range tests {
		if got := scheme.GlamourStyle(); got != want {
			t.Errorf("ColorScheme(%q).GlamourStyle() = %q, want %q", scheme, got, want)
		}
	}
}

func TestValidateWord(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"XMAS", "A", "ÄÖÜ"} {
		if err := ValidateWord(word); err != nil {
			t.Errorf("ValidateWord(%q) error = %v", word, err)
		}
	}
	for _, word := range []string{"", " ", "X MAS", "XMAS\n"} {
		if err := ValidateWord(word); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("ValidateWord(%q) error = %v, want ErrInvalidWord", word, err)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.Input = " "
	cfg.UI.ColorScheme = "neon"
	cfg.WordSearch.Word = ""
	cfg.Reports.MaxStep = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
	}
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	if !errors.Is(cfgErr.FieldErrors[3], ErrInvalidMaxStep) {
		t.Errorf("last field error = %v, want ErrInvalidMaxStep", cfgErr.FieldErrors[3])
	}
}
