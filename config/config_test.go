// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	settings, err := Parse([]byte(`
engine:
  yieldthreshold: 2ms
  verbose: true
demo:
  frameinterval: 40ms
  theme:
    accent: "#ff8800"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	want.Engine.YieldThreshold = 2 * time.Millisecond
	want.Engine.Verbose = true
	want.Demo.FrameInterval = 40 * time.Millisecond
	want.Demo.Theme.Accent = "#ff8800"
	if diff := cmp.Diff(want, settings); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
	cfg := settings.EngineConfig(nil)
	if cfg.YieldThreshold != 2*time.Millisecond || !cfg.Verbose || cfg.EventPrefix != "on" {
		t.Fatalf("unexpected engine config %+v", cfg)
	}
}

func TestParseEmpty(t *testing.T) {
	settings, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(Default(), settings); diff != "" {
		t.Fatalf("empty file should give defaults:\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "engine:\n  fast: true\n", "field fast not found"},
		{"bad duration", "demo:\n  framebudget: soon\n", "parsing yaml"},
		{"empty prefix", "engine:\n  eventprefix: \"\"\n", "eventprefix"},
		{"budget over interval", "demo:\n  frameinterval: 5ms\n  framebudget: 10ms\n", "framebudget"},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.yaml))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ripple.yaml")
	if err := os.WriteFile(path, []byte("demo:\n  framebudget: 4ms\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Demo.FrameBudget != 4*time.Millisecond {
		t.Fatalf("framebudget not loaded: %v", settings.Demo.FrameBudget)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	roundTrip, err := Parse([]byte(settings.String()))
	if err != nil {
		t.Fatalf("re-parsing String(): %v", err)
	}
	if diff := cmp.Diff(settings, roundTrip); diff != "" {
		t.Fatalf("String() round trip mismatch:\n%s", diff)
	}
}
