package main

// Notes:
// - loadEnvConfig: we test every DOCS2MD_* variable through an injected
//   getenv, and that invalid worker counts are ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set variables override the config file and
//   unset ones leave it alone.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-docs2md/internal/config"
)

// mapGetenv returns a getenv function backed by m.
func mapGetenv(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()
		cfg := loadEnvConfig(mapGetenv(map[string]string{
			"DOCS2MD_CONFIG":     "ci",
			"DOCS2MD_INPUT":      "docs.json",
			"DOCS2MD_OUTPUT_DIR": "out",
			"DOCS2MD_WORKERS":    "8",
			"DOCS2MD_LOG_LEVEL":  "warn",
		}))

		want := envConfig{
			ConfigPath: "ci",
			Input:      "docs.json",
			OutputDir:  "out",
			Workers:    8,
			LogLevel:   "warn",
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("invalid workers are ignored", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"abc", "-2", "0", ""} {
			cfg := loadEnvConfig(mapGetenv(map[string]string{"DOCS2MD_WORKERS": v}))
			if cfg.Workers != 0 {
				t.Errorf("DOCS2MD_WORKERS=%q: Workers = %d, want 0", v, cfg.Workers)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars([]string{
		"PATH=/usr/bin",
		"DOCS2MD_OUTPUT=out",
		"DOCS2MD_OUTPUT_DIR=out",
		"DOCS2MD_WORKERS=4",
	}, &buf)

	got := buf.String()
	if !strings.Contains(got, "DOCS2MD_OUTPUT ") {
		t.Errorf("expected warning for DOCS2MD_OUTPUT, got %q", got)
	}
	if strings.Count(got, "warning:") != 1 {
		t.Errorf("expected exactly one warning, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Output.Dir = "from-file"

		applyEnvConfig(&envConfig{Input: "in.json", OutputDir: "from-env", Workers: 3, LogLevel: "debug"}, cfg)

		if cfg.Input.Path != "in.json" {
			t.Errorf("Input.Path = %q, want in.json", cfg.Input.Path)
		}
		if cfg.Output.Dir != "from-env" {
			t.Errorf("Output.Dir = %q, want from-env", cfg.Output.Dir)
		}
		if cfg.Generate.Workers != 3 {
			t.Errorf("Generate.Workers = %d, want 3", cfg.Generate.Workers)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Output.Dir = "from-file"
		cfg.Generate.Workers = 2

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.Dir != "from-file" {
			t.Errorf("Output.Dir = %q, want from-file", cfg.Output.Dir)
		}
		if cfg.Generate.Workers != 2 {
			t.Errorf("Generate.Workers = %d, want 2", cfg.Generate.Workers)
		}
	})
}
