package fileutil_test

// Notes:
// - WriteFile error branches for MkdirAll/WriteFile are exercised through a
//   regular file standing where a directory is expected, which is portable.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-docs2md/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing path", path: filepath.Join(dir, "missing.md"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirExists - Directory detection
// ---------------------------------------------------------------------------

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false", file)
	}
	if fileutil.DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Path vs name detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docs", false},
		{"my-config", false},
		{"./docs.yaml", true},
		{"../shared/docs.yaml", true},
		{"/absolute/docs.yaml", true},
		{`C:\windows\docs.yaml`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCountFiles - Recursive regular file count
// ---------------------------------------------------------------------------

func TestCountFiles(t *testing.T) {
	t.Parallel()

	t.Run("missing directory counts as empty", func(t *testing.T) {
		t.Parallel()

		n, err := fileutil.CountFiles(filepath.Join(t.TempDir(), "nope"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("CountFiles() = %d, want 0", n)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		n, err := fileutil.CountFiles(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("CountFiles() = %d, want 0", n)
		}
	})

	t.Run("nested files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, rel := range []string{"index.md", "a/b.md", "a/c/d.md"} {
			if err := fileutil.WriteFile(filepath.Join(dir, rel), []byte("x")); err != nil {
				t.Fatalf("setup: %v", err)
			}
		}
		if err := os.Mkdir(filepath.Join(dir, "empty"), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}

		n, err := fileutil.CountFiles(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 3 {
			t.Errorf("CountFiles() = %d, want 3", n)
		}
	})
}

// ---------------------------------------------------------------------------
// TestJoinUnder - Output path confinement
// ---------------------------------------------------------------------------

func TestJoinUnder(t *testing.T) {
	t.Parallel()

	root := filepath.Join("out", "docs")

	tests := []struct {
		name    string
		rel     string
		want    string
		wantErr error
	}{
		{name: "root page", rel: "index.md", want: filepath.Join(root, "index.md")},
		{name: "nested page", rel: "reference/text.md", want: filepath.Join(root, "reference", "text.md")},
		{name: "empty", rel: "", wantErr: fileutil.ErrPathEmpty},
		{name: "parent traversal", rel: "../escape.md", wantErr: fileutil.ErrPathEscapesRoot},
		{name: "inner traversal", rel: "a/../../escape.md", wantErr: fileutil.ErrPathEscapesRoot},
		{name: "absolute", rel: "/etc/passwd", wantErr: fileutil.ErrPathEscapesRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.JoinUnder(root, tt.rel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("JoinUnder(%q) error = %v, want %v", tt.rel, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("JoinUnder(%q) = %q, want %q", tt.rel, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Writes with parent directory creation
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "page.md")
		if err := fileutil.WriteFile(path, []byte("# Hi\n")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if string(got) != "# Hi\n" {
			t.Errorf("content = %q, want %q", got, "# Hi\n")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.WriteFile("", nil); !errors.Is(err, fileutil.ErrPathEmpty) {
			t.Errorf("error = %v, want ErrPathEmpty", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := fileutil.WriteFile(filepath.Join(blocker, "page.md"), []byte("x")); err == nil {
			t.Error("expected error when parent is a regular file")
		}
	})
}
