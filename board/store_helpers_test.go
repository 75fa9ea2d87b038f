package board

import (
	"errors"
	"testing"
)

// memoryRepo persists snapshots in memory for tests.
type memoryRepo struct {
	saved *Snapshot
	fail  error
}

func (r *memoryRepo) Load() (*Snapshot, error) {
	if r.saved == nil {
		return &Snapshot{}, nil
	}
	return r.saved, nil
}

func (r *memoryRepo) Save(snap *Snapshot) error {
	if r.fail != nil {
		return r.fail
	}
	r.saved = snap
	return nil
}

var errSaveBroken = errors.New("disk full")

func newTestStore(t *testing.T) (*Store, *memoryRepo) {
	t.Helper()

	repo := &memoryRepo{}
	store, err := Open(repo)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store, repo
}

func mustCreateBoard(t *testing.T, store *Store, name string) *Board {
	t.Helper()

	b, err := store.CreateBoard(name, "", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	return b
}

func mustCreateTask(t *testing.T, store *Store, boardID, title string, opts TaskOptions) *Task {
	t.Helper()

	task, err := store.CreateTask(boardID, title, opts)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}
