package main

import (
	"strings"
	"testing"

	"github.com/taskdown/taskdown/board"
)

func TestValidSortKey(t *testing.T) {
	for _, key := range []string{"priority", "due", "created", "updated", "title"} {
		if !validSortKey(key) {
			t.Errorf("expected %q to be a valid sort key", key)
		}
	}
	if validSortKey("prio") {
		t.Error("expected unknown key to be rejected")
	}
}

func TestPrintPrefs(t *testing.T) {
	output := captureStdout(t, func() {
		printPrefs(true, board.DisplaySettings{GroupByStatus: true, SortBy: "due"})
	})

	if !strings.Contains(output, "Auto-extract:    true") {
		t.Errorf("expected auto-extract line, got: %q", output)
	}
	if !strings.Contains(output, "Sort:            due") {
		t.Errorf("expected sort line, got: %q", output)
	}

	output = captureStdout(t, func() {
		printPrefs(false, board.DisplaySettings{})
	})
	if !strings.Contains(output, "Sort:            (board order)") {
		t.Errorf("expected placeholder for unset sort, got: %q", output)
	}
}
