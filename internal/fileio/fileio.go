// Package fileio reads and writes the Markdown files boards are bound to.
package fileio

import (
	"fmt"
	"os"

	"github.com/taskdown/taskdown/board"
)

// ReadText reads a file as a string. Failures wrap board.ErrIO and the
// underlying OS error.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", board.ErrIO, path, err)
	}
	return string(data), nil
}

// WriteText writes content to a file, keeping the existing file mode when
// the file already exists.
func WriteText(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("%w: write %s: %w", board.ErrIO, path, err)
	}
	return nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
