package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docs2md/internal/config"
	"github.com/alnah/go-docs2md/internal/hints"
	"github.com/alnah/go-docs2md/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrNoInput         = errors.New("no input specified")
	ErrNoOutput        = errors.New("no output directory specified")
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrPartialFailure  = errors.New("some pages failed")
	ErrSelectorNoMatch = errors.New("selector matched nothing")
	ErrProblemsFound   = errors.New("output contract problems found")
)

// stdioArg selects stdin or stdout in place of a file path.
const stdioArg = "-"

// resolveConfig loads the config file named by the flag or DOCS2MD_CONFIG,
// then applies environment overrides. Flags are merged by the caller.
func resolveConfig(flagConfig string, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Environ(), env.Stderr)
	envCfg := loadEnvConfig(env.Getenv)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// buildLogger returns the logger for a command. --verbose and --quiet
// take precedence over the configured level.
func buildLogger(f commonFlags, cfg *config.Config, w io.Writer) *slog.Logger {
	level := cfg.Log.Level
	switch {
	case f.verbose:
		level = "debug"
	case f.quiet:
		level = "error"
	}
	return logging.BuildLogger(level, w)
}

// usageError marks flag parsing and argument errors for exit code 2.
// A help request is passed through unchanged.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
