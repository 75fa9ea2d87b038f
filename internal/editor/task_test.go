package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdown/taskdown/board"
)

func TestRenderTaskTOML_Create(t *testing.T) {
	content, err := RenderTaskTOML(DefaultCreateData())
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	if !strings.Contains(content, `title = ""`) {
		t.Errorf("expected empty title field, got:\n%s", content)
	}
	if !strings.Contains(content, `priority = "normal"`) {
		t.Errorf("expected default priority, got:\n%s", content)
	}
	if strings.Contains(content, "status =") {
		t.Errorf("expected no status field on create, got:\n%s", content)
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	task := board.Task{
		ID:       "abc12345",
		Title:    "Fix the thing",
		Status:   board.StatusInProgress,
		Priority: board.PriorityHigh,
		Assignee: "sam",
		Tags:     []string{"backend", "urgent-ish"},
		DueDate:  &due,
	}

	content, err := RenderTaskTOML(DataFromTask(&task))
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	for _, want := range []string{
		`title = "Fix the thing"`,
		`priority = "high"`,
		`status = "in-progress"`,
		`assignee = "sam"`,
		`tags = ["backend", "urgent-ish"]`,
		`due = "2026-04-15"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %s in rendered TOML, got:\n%s", want, content)
		}
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	task := board.Task{
		ID:          "abc12345",
		Title:       "Fix the thing",
		Status:      board.StatusOnHold,
		Priority:    board.PriorityUrgent,
		Assignee:    "sam",
		Tags:        []string{"backend"},
		DueDate:     &due,
		Description: "It broke on Tuesday.",
	}

	content, err := RenderTaskTOML(DataFromTask(&task))
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("failed to parse rendered TOML: %v", err)
	}

	if parsed.Title != task.Title {
		t.Errorf("title: expected %q, got %q", task.Title, parsed.Title)
	}
	if parsed.Priority != string(task.Priority) {
		t.Errorf("priority: expected %q, got %q", task.Priority, parsed.Priority)
	}
	if parsed.Status == nil || *parsed.Status != string(task.Status) {
		t.Errorf("status: expected %q, got %v", task.Status, parsed.Status)
	}
	if parsed.Assignee != "sam" {
		t.Errorf("assignee: expected 'sam', got %q", parsed.Assignee)
	}
	if len(parsed.Tags) != 1 || parsed.Tags[0] != "backend" {
		t.Errorf("tags: expected [backend], got %v", parsed.Tags)
	}
	if got := parsed.DueDate(); got == nil || !got.Equal(due) {
		t.Errorf("due: expected %v, got %v", due, got)
	}
	if parsed.Description != "It broke on Tuesday." {
		t.Errorf("description: expected round trip, got %q", parsed.Description)
	}
}

func TestParseTaskTOML_NormalizesCase(t *testing.T) {
	content := `title = "ok"
priority = " HIGH "
status = "In-Progress"
---
`
	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if parsed.Priority != "high" {
		t.Errorf("expected 'high', got %q", parsed.Priority)
	}
	if parsed.Status == nil || *parsed.Status != "in-progress" {
		t.Errorf("expected 'in-progress', got %v", parsed.Status)
	}
}

func TestParseTaskTOML_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty title", "title = \"\"\npriority = \"normal\"\n---\n"},
		{"bad priority", "title = \"ok\"\npriority = \"critical\"\n---\n"},
		{"bad status", "title = \"ok\"\npriority = \"normal\"\nstatus = \"done\"\n---\n"},
		{"bad due", "title = \"ok\"\npriority = \"normal\"\ndue = \"tomorrow\"\n---\n"},
		{"bad toml", "title = unquoted\n---\n"},
	}
	for _, tc := range cases {
		if _, err := ParseTaskTOML(tc.content); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestParseTaskTOML_NoFrontmatterSeparator(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"ok\"\npriority = \"normal\"\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if parsed.Description != "" {
		t.Errorf("expected empty description, got %q", parsed.Description)
	}
}

func TestParsedTask_ToUpdateOptions(t *testing.T) {
	status := "completed"
	parsed := &ParsedTask{
		Title:    "ok",
		Priority: "low",
		Status:   &status,
	}

	opts := parsed.ToUpdateOptions()
	if opts.Title == nil || *opts.Title != "ok" {
		t.Errorf("expected title set, got %v", opts.Title)
	}
	if opts.Priority == nil || *opts.Priority != board.PriorityLow {
		t.Errorf("expected priority low, got %v", opts.Priority)
	}
	if opts.Status == nil || *opts.Status != board.StatusCompleted {
		t.Errorf("expected status completed, got %v", opts.Status)
	}
	if opts.DueDate == nil || *opts.DueDate != nil {
		t.Error("expected due date cleared via double pointer")
	}
}
