package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/taskdown/taskdown/board"
	"github.com/taskdown/taskdown/internal/config"
	"github.com/taskdown/taskdown/internal/paths"
	"github.com/taskdown/taskdown/internal/settings"
	"github.com/taskdown/taskdown/internal/ui"
)

// loadConfig reads taskdown.toml from the working directory and the global
// config location.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// openStore opens the board store using the configured state directory.
func openStore(cfg *config.Config) (*board.Store, error) {
	dir := cfg.State.Dir
	if dir == "" {
		var err error
		dir, err = paths.DefaultStateDir()
		if err != nil {
			return nil, err
		}
	}
	return board.Open(settings.NewFileRepository(dir))
}

// loadStore loads config and opens the store in one step.
func loadStore() (*board.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// resolveBoard picks the board to act on: an explicit flag value first, then
// the config default, then the store default.
func resolveBoard(store *board.Store, cfg *config.Config, flagValue string) (*board.Board, error) {
	if flagValue != "" {
		return store.BoardByID(flagValue)
	}
	if cfg.Board.Default != "" {
		return store.BoardByID(cfg.Board.Default)
	}
	return store.DefaultBoard()
}

// extractOptions maps the configured extraction settings onto the core's
// options.
func extractOptions(cfg *config.Config) board.ExtractOptions {
	return board.ExtractOptions{
		Tags:     cfg.Extract.Tags,
		DueDates: cfg.Extract.DueDates,
	}
}

func taskLogHighlighterForStore(store *board.Store) func(string) string {
	return logHighlighter(store.TaskIDIndex().PrefixLengths(), ui.HighlightID)
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}
