package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docs2md/internal/fileutil"
	"github.com/alnah/go-docs2md/internal/logging"
	"github.com/alnah/go-docs2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits mirrored from the library so the config package stays import-free.
const (
	MaxWorkers           = 256
	DefaultMaxHTMLSize   = 5_000_000
	DefaultMaxExportSize = 32 << 20
)

// appDir is the directory name under the user config directory.
const appDir = "go-docs2md"

// Config holds all configuration for a generation run.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Convert  ConvertConfig  `yaml:"convert"`
	Generate GenerateConfig `yaml:"generate"`
	Log      LogConfig      `yaml:"log"`
}

// InputConfig defines where the export is read from.
type InputConfig struct {
	Path    string `yaml:"path"`    // docs.json path (empty = must specify or use stdin)
	MaxSize int64  `yaml:"maxSize"` // bytes (0 = default 32 MiB)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir         string `yaml:"dir"`         // Output directory (empty = must specify)
	Frontmatter *bool  `yaml:"frontmatter"` // nil = enabled
}

// ConvertConfig defines HTML conversion limits.
type ConvertConfig struct {
	MaxHTMLSize int `yaml:"maxHTMLSize"` // bytes per fragment
}

// GenerateConfig defines batch generation options.
type GenerateConfig struct {
	Workers int  `yaml:"workers"` // 0 = GOMAXPROCS
	Force   bool `yaml:"force"`
	Verify  bool `yaml:"verify"`
}

// LogConfig defines logger options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// FrontmatterEnabled reports whether pages get a YAML frontmatter block.
func (o OutputConfig) FrontmatterEnabled() bool {
	return o.Frontmatter == nil || *o.Frontmatter
}

// ExportLimit returns the configured export size limit or the default.
func (i InputConfig) ExportLimit() int64 {
	if i.MaxSize <= 0 {
		return DefaultMaxExportSize
	}
	return i.MaxSize
}

// Validate checks ranges and enumerations.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually (e.g., after environment overrides).
func (c *Config) Validate() error {
	if c.Input.MaxSize < 0 {
		return fmt.Errorf("%w: input.maxSize must not be negative, got %d", ErrInvalidValue, c.Input.MaxSize)
	}
	if c.Convert.MaxHTMLSize <= 0 {
		return fmt.Errorf("%w: convert.maxHTMLSize must be positive, got %d", ErrInvalidValue, c.Convert.MaxHTMLSize)
	}
	if c.Generate.Workers < 0 || c.Generate.Workers > MaxWorkers {
		return fmt.Errorf("%w: generate.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Generate.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{MaxSize: DefaultMaxExportSize},
		Convert:  ConvertConfig{MaxHTMLSize: DefaultMaxHTMLSize},
		Generate: GenerateConfig{Workers: 0},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory first, then ~/.config/go-docs2md/.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
