// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// SolutionFile is the solution file name Solution creates.
const SolutionFile = "Helix.sln"

// Solution creates a temporary solution root holding an empty solution file.
func Solution(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteFile(t, root, SolutionFile, "")
	return root
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTree writes files, keyed by slash-separated path, below dir.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
}

// Snapshot reads every regular file below dir, keyed by slash-separated
// relative path.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", dir, err)
	}
	return out
}
