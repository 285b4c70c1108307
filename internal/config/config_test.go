package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.Path != "" {
		t.Errorf("Input.Path = %q, want empty", cfg.Input.Path)
	}
	if cfg.Input.MaxSize != DefaultMaxExportSize {
		t.Errorf("Input.MaxSize = %d, want %d", cfg.Input.MaxSize, DefaultMaxExportSize)
	}
	if cfg.Convert.MaxHTMLSize != DefaultMaxHTMLSize {
		t.Errorf("Convert.MaxHTMLSize = %d, want %d", cfg.Convert.MaxHTMLSize, DefaultMaxHTMLSize)
	}
	if !cfg.Output.FrontmatterEnabled() {
		t.Error("Output.FrontmatterEnabled() = false, want true")
	}
	if cfg.Generate.Force || cfg.Generate.Verify {
		t.Error("Generate.Force/Verify should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestInputConfig_ExportLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		maxSize int64
		want    int64
	}{
		{"zero uses default", 0, DefaultMaxExportSize},
		{"negative uses default", -1, DefaultMaxExportSize},
		{"explicit value kept", 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := InputConfig{MaxSize: tt.maxSize}.ExportLimit()
			if got != tt.want {
				t.Errorf("ExportLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutputConfig_FrontmatterEnabled(t *testing.T) {
	t.Parallel()

	on, off := true, false
	tests := []struct {
		name string
		val  *bool
		want bool
	}{
		{"unset enables", nil, true},
		{"explicit true", &on, true},
		{"explicit false", &off, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := OutputConfig{Frontmatter: tt.val}.FrontmatterEnabled()
			if got != tt.want {
				t.Errorf("FrontmatterEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "defaults are valid",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "max workers is valid",
			modify:  func(c *Config) { c.Generate.Workers = MaxWorkers },
			wantErr: false,
		},
		{
			name:    "negative workers",
			modify:  func(c *Config) { c.Generate.Workers = -1 },
			wantErr: true,
			errMsg:  "generate.workers",
		},
		{
			name:    "too many workers",
			modify:  func(c *Config) { c.Generate.Workers = MaxWorkers + 1 },
			wantErr: true,
			errMsg:  "generate.workers",
		},
		{
			name:    "zero max HTML size",
			modify:  func(c *Config) { c.Convert.MaxHTMLSize = 0 },
			wantErr: true,
			errMsg:  "convert.maxHTMLSize",
		},
		{
			name:    "negative export size",
			modify:  func(c *Config) { c.Input.MaxSize = -5 },
			wantErr: true,
			errMsg:  "input.maxSize",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "empty log level means info",
			modify:  func(c *Config) { c.Log.Level = "" },
			wantErr: false,
		},
		{
			name:    "log level is case insensitive",
			modify:  func(c *Config) { c.Log.Level = "DEBUG" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("error = %v, want ErrInvalidValue", err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %q, want to contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "test.yaml", `input:
  path: "docs.json"
output:
  dir: "out"
  frontmatter: false
generate:
  workers: 4
  force: true
  verify: true
log:
  level: debug
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != "docs.json" {
			t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "docs.json")
		}
		if cfg.Output.Dir != "out" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "out")
		}
		if cfg.Output.FrontmatterEnabled() {
			t.Error("FrontmatterEnabled() = true, want false")
		}
		if cfg.Generate.Workers != 4 || !cfg.Generate.Force || !cfg.Generate.Verify {
			t.Errorf("Generate = %+v, want workers 4, force and verify", cfg.Generate)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "partial.yaml", "output:\n  dir: out\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Convert.MaxHTMLSize != DefaultMaxHTMLSize {
			t.Errorf("Convert.MaxHTMLSize = %d, want %d", cfg.Convert.MaxHTMLSize, DefaultMaxHTMLSize)
		}
		if cfg.Input.MaxSize != DefaultMaxExportSize {
			t.Errorf("Input.MaxSize = %d, want %d", cfg.Input.MaxSize, DefaultMaxExportSize)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "invalid.yaml", "output: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "output:\n  dir: out\nstyle: default\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("out of range value returns ErrInvalidValue", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), "workers.yaml", "generate:\n  workers: 1000\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig_ByName - Name resolution in standard locations
// ---------------------------------------------------------------------------
// Notes:
//   - changes the working directory, so subtests cannot run in parallel
// ---------------------------------------------------------------------------

func TestLoadConfig_ByName(t *testing.T) {
	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "output:\n  dir: fromname\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "fromname" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "fromname")
		}
	})

	t.Run("yml extension is tried after yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "alt.yml", "output:\n  dir: fromyml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("alt")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Dir != "fromyml" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "fromyml")
		}
	})

	t.Run("missing name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nowhere")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nowhere.yaml") || !strings.Contains(err.Error(), "nowhere.yml") {
			t.Errorf("error = %q, want both extensions listed", err.Error())
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("docs")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least 2 entries", paths)
	}
	if paths[0] != "docs.yaml" || paths[1] != "docs.yml" {
		t.Errorf("SearchPaths()[:2] = %v, want local yaml then yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), appDir+"/docs.") {
			t.Errorf("user path %q not under %s", p, appDir)
		}
	}
}
