package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/taskdown/taskdown/board"
)

func TestReadText_Missing(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error for missing file, got %v", err)
	}
	if !errors.Is(err, board.ErrIO) {
		t.Errorf("expected read failure to wrap ErrIO, got %v", err)
	}
}

func TestWriteAndReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")

	if err := WriteText(path, "- [ ] hello\n"); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if got != "- [ ] hello\n" {
		t.Errorf("round trip mismatch: %q", got)
	}
}

func TestWriteText_KeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := WriteText(path, "y"); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600 preserved, got %v", info.Mode().Perm())
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if Exists(path) {
		t.Error("expected missing file to not exist")
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if !Exists(path) {
		t.Error("expected file to exist")
	}
}
