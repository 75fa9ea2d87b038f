package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskdown/taskdown/board"
)

func TestFileRepository_LoadMissing(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nonexistent"))

	snap, err := repo.Load()
	if err != nil {
		t.Fatalf("failed to load missing file: %v", err)
	}
	if snap == nil || len(snap.Boards) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	store, err := board.Open(repo)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	b, err := store.CreateBoard("Persisted", "survives restarts", "/notes.md")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	if _, err := store.CreateTask(b.ID, "Write things down", board.TaskOptions{Priority: board.PriorityHigh}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	reopened, err := board.Open(NewFileRepository(dir))
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	boards := reopened.Boards()
	if len(boards) != 1 {
		t.Fatalf("expected 1 board after reopen, got %d", len(boards))
	}
	if boards[0].Name != "Persisted" || boards[0].FilePath != "/notes.md" {
		t.Errorf("unexpected board after reopen: %+v", boards[0])
	}
	if len(boards[0].Tasks) != 1 || boards[0].Tasks[0].Priority != board.PriorityHigh {
		t.Errorf("unexpected tasks after reopen: %+v", boards[0].Tasks)
	}
}

func TestFileRepository_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested")
	repo := NewFileRepository(dir)

	if err := repo.Save(&board.Snapshot{}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "boards.json")); err != nil {
		t.Errorf("expected boards.json created: %v", err)
	}
}

func TestFileRepository_SkipsIdenticalWrite(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	snap := &board.Snapshot{DefaultBoardID: "abc"}
	if err := repo.Save(snap); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	before, err := os.Stat(filepath.Join(dir, "boards.json"))
	if err != nil {
		t.Fatalf("failed to stat: %v", err)
	}

	if err := repo.Save(snap); err != nil {
		t.Fatalf("failed to re-save: %v", err)
	}
	after, err := os.Stat(filepath.Join(dir, "boards.json"))
	if err != nil {
		t.Fatalf("failed to stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("expected identical save to skip the write")
	}
}

func TestFileRepository_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "boards.json"), []byte("{nope"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	_, err := NewFileRepository(dir).Load()
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("expected unmarshal error, got %v", err)
	}
}
