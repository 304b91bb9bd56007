package utils

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestExpandTextFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "bravo")
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha")
	writeFile(t, filepath.Join(dir, "nested", "deep", "c.txt"), "charlie")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			"SingleDirectory",
			[]string{filepath.Join(dir, "*.txt")},
			[]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")},
		},
		{
			"Recursive",
			[]string{filepath.Join(dir, "**", "*.txt")},
			[]string{
				filepath.Join(dir, "a.txt"),
				filepath.Join(dir, "b.txt"),
				filepath.Join(dir, "nested", "deep", "c.txt"),
			},
		},
		{
			"Deduplicated",
			[]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "*.txt")},
			[]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")},
		},
		{
			"SkipsDirectories",
			[]string{filepath.Join(dir, "*")},
			[]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), filepath.Join(dir, "notes.md")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExpandTextFiles(tc.patterns)
			if err != nil {
				t.Fatalf("ExpandTextFiles failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExpandTextFiles() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestExpandTextFilesNoMatches(t *testing.T) {
	dir := t.TempDir()

	_, err := ExpandTextFiles([]string{filepath.Join(dir, "*.txt")})
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestExpandTextFilesMissingLiteralPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha")
	if err := os.MkdirAll(filepath.Join(dir, "folder"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	tests := []struct {
		name     string
		patterns []string
	}{
		{"MissingFileAlongsideGlob", []string{filepath.Join(dir, "*.txt"), filepath.Join(dir, "missing.txt")}},
		{"DirectoryPath", []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "folder")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExpandTextFiles(tc.patterns)
			if !errors.Is(err, kerrors.ErrNoFilesFound) {
				t.Errorf("Expected ErrNoFilesFound, got %v", err)
			}
		})
	}
}

func TestExpandTextFilesInvalidPattern(t *testing.T) {
	_, err := ExpandTextFiles([]string{"[unclosed"})
	if err == nil {
		t.Fatal("Expected error for invalid pattern")
	}
	if errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected pattern error, got %v", err)
	}
}

func TestReadTextFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	writeFile(t, first, "  Hello, World\n\n")
	writeFile(t, second, "line one\nline two\n")

	got, err := ReadTextFiles([]string{second, first})
	if err != nil {
		t.Fatalf("ReadTextFiles failed: %v", err)
	}

	want := []string{"line one\nline two", "Hello, World"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadTextFiles() = %q, expected %q", got, want)
	}
}

func TestReadTextFilesMissing(t *testing.T) {
	_, err := ReadTextFiles([]string{filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
