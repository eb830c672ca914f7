package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTreeStateStable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	first, err := treeState(dir)
	if err != nil {
		t.Fatalf("treeState() error = %v", err)
	}
	second, err := treeState(dir)
	if err != nil {
		t.Fatalf("treeState() error = %v", err)
	}

	if first != second {
		t.Errorf("treeState() changed without any file change: %q vs %q", first, second)
	}
}

func TestTreeStateDetectsChanges(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	before, err := treeState(dir)
	if err != nil {
		t.Fatalf("treeState() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("world"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	after, err := treeState(dir)
	if err != nil {
		t.Fatalf("treeState() error = %v", err)
	}

	if before == after {
		t.Error("treeState() did not change after adding a file")
	}
}

func TestTreeStateSkipsHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	before, err := treeState(dir)
	if err != nil {
		t.Fatalf("treeState() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".git", "index"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	after, err := treeState(dir)
	if err != nil {
		t.Fatalf("treeState() error = %v", err)
	}

	if before != after {
		t.Error("treeState() should ignore files inside hidden directories")
	}
}

func TestTreeStateMissingDir(t *testing.T) {
	if _, err := treeState(filepath.Join(t.TempDir(), "gone")); err != nil {
		t.Errorf("treeState() on a missing dir should not fail, got %v", err)
	}
}
