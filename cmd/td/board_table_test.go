package main

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdown/taskdown/board"
)

func TestFormatBoardTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	boards := []board.Board{
		{
			ID:        "11111111-2222-3333-4444-555555555555",
			Name:      "Work",
			FilePath:  "work.md",
			Tasks:     []board.Task{{ID: "abc12345"}, {ID: "def67890"}},
			UpdatedAt: now.Add(-time.Hour),
		},
		{
			ID:        "66666666-7777-8888-9999-000000000000",
			Name:      "Home",
			UpdatedAt: now.Add(-48 * time.Hour),
		},
	}

	output := formatBoardTable(boards, now)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), output)
	}

	if !strings.Contains(lines[0], "NAME") || !strings.Contains(lines[0], "TASKS") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Work") || !strings.Contains(lines[1], "2") || !strings.Contains(lines[1], "work.md") {
		t.Errorf("unexpected work row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Home") || !strings.Contains(lines[2], "2d") {
		t.Errorf("unexpected home row: %q", lines[2])
	}

	// No file binding renders as a dash.
	if !strings.Contains(lines[2], "-") {
		t.Errorf("expected dash for unbound board: %q", lines[2])
	}
}

func TestPrintBoardTableEmpty(t *testing.T) {
	output := captureStdout(t, func() {
		printBoardTable(nil, time.Now())
	})
	if !strings.Contains(output, "No boards found.") {
		t.Fatalf("expected empty message, got: %q", output)
	}
}
