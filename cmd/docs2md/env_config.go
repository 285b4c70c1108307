package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-docs2md/internal/config"
)

// envPrefix marks variables read by docs2md.
const envPrefix = "DOCS2MD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOCS2MD_CONFIG: config file name or path
	Input      string // DOCS2MD_INPUT: docs.json path
	OutputDir  string // DOCS2MD_OUTPUT_DIR: output directory
	Workers    int    // DOCS2MD_WORKERS: parallel workers
	LogLevel   string // DOCS2MD_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid DOCS2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCS2MD_CONFIG":     true,
	"DOCS2MD_INPUT":      true,
	"DOCS2MD_OUTPUT_DIR": true,
	"DOCS2MD_WORKERS":    true,
	"DOCS2MD_LOG_LEVEL":  true,
}

// loadEnvConfig reads the recognized DOCS2MD_* values through getenv.
// An unparsable or non-positive worker count is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("DOCS2MD_CONFIG"),
		Input:      getenv("DOCS2MD_INPUT"),
		OutputDir:  getenv("DOCS2MD_OUTPUT_DIR"),
		LogLevel:   getenv("DOCS2MD_LOG_LEVEL"),
	}

	if workers := getenv("DOCS2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized DOCS2MD_* variable.
// Helps catch typos like DOCS2MD_OUTPUT instead of DOCS2MD_OUTPUT_DIR.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig copies set environment values over the loaded config.
// Order of precedence: flags > env vars > config file > defaults
// (flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Generate.Workers = env.Workers
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
