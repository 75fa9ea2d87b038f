// Package settings persists the board snapshot as JSON in the taskdown
// state directory, with file locking so concurrent invocations don't
// interleave writes.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/taskdown/taskdown/board"
)

// FileRepository stores the snapshot in <dir>/boards.json.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a repository rooted at the given directory. The
// directory is created on first save.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) boardsPath() string {
	return filepath.Join(r.dir, "boards.json")
}

func (r *FileRepository) lockPath() string {
	return filepath.Join(r.dir, "boards.lock")
}

// Load reads the snapshot from disk. Returns an empty snapshot if the file
// doesn't exist yet.
func (r *FileRepository) Load() (*board.Snapshot, error) {
	data, err := os.ReadFile(r.boardsPath())
	if os.IsNotExist(err) {
		return &board.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read boards file: %w", err)
	}

	var snap board.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal boards: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot to disk atomically. Writes that would not change
// the file are skipped.
func (r *FileRepository) Save(snap *board.Snapshot) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal boards: %w", err)
	}

	if existing, err := os.ReadFile(r.boardsPath()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read boards file: %w", err)
	}

	tmpFile, err := os.CreateTemp(r.dir, "boards.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp boards file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp boards file: %w", err)
	}

	if err := os.Rename(name, r.boardsPath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename boards file: %w", err)
	}

	return nil
}

// lock takes an exclusive flock on the lock file and returns the release
// function.
func (r *FileRepository) lock() (func(), error) {
	lockFile, err := os.OpenFile(r.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		lockFile.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return func() {
		syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		lockFile.Close()
	}, nil
}
