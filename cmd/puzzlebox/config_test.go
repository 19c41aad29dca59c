// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"puzzlebox-cli/internal/config"
	"puzzlebox-cli/internal/testutil"
)

func TestConfigDump(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.WordSearch.Word = "SAMX"
	h := newTestHarness(t, stubProvider{cfg: cfg})

	if err := h.run("config", "dump"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got, want := h.stdout.String(), config.GenerateCUE(cfg); got != want {
		t.Errorf("dump output = %q, want %q", got, want)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.MustWriteFile(t, t.TempDir(), "custom.cue", "wordsearch: {\n\tword: \"SAMX\"\n}\n")

	h := newTestHarness(t, config.NewProvider())
	if err := h.run("config", "show", "--config", cfgPath); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, h.stderr.String())
	}

	out := h.stdout.String()
	for _, want := range []string{cfgPath, "SAMX", "max_step", "allow_unterminated"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_InvalidFile(t *testing.T) {
	t.Parallel()

	cfgPath := testutil.MustWriteFile(t, t.TempDir(), "bad.cue", "reports: max_step: 42\n")

	h := newTestHarness(t, config.NewProvider())
	err := h.run("config", "show", "--config", cfgPath)
	assertExitError(t, err)
	if h.stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", h.stdout.String())
	}
}

func TestConfigPath_ExplicitFile(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, nil)
	if err := h.run("config", "path", "--config", "/tmp/puzzlebox.cue"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got, want := h.stdout.String(), "Config file: /tmp/puzzlebox.cue\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
