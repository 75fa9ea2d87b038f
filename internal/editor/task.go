package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/taskdown/taskdown/board"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Title is the task title.
	Title string
	// Priority is the task priority.
	Priority string
	// Status is the task status (only for updates).
	Status string
	// Assignee names who the task is assigned to.
	Assignee string
	// Tags are the task's labels.
	Tags []string
	// Due is the due date as YYYY-MM-DD, or empty.
	Due string
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for creating a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Priority: string(board.PriorityNormal),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *board.Task) TaskData {
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Format("2006-01-02")
	}
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Assignee:    t.Assignee,
		Tags:        t.Tags,
		Due:         due,
		Description: t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
 priority = {{ printf "%q" .Priority }} # low, normal, high, urgent
{{- if .IsUpdate }}
 status = {{ printf "%q" .Status }} # todo, in-progress, completed, on-hold, cancelled
{{- end }}
 assignee = {{ printf "%q" .Assignee }}
 tags = [{{ range $i, $tag := .Tags }}{{ if $i }}, {{ end }}{{ printf "%q" $tag }}{{ end }}]
 due = {{ printf "%q" .Due }} # YYYY-MM-DD, empty for none
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string   `toml:"title"`
	Priority    string   `toml:"priority"`
	Status      *string  `toml:"status"`
	Assignee    string   `toml:"assignee"`
	Tags        []string `toml:"tags"`
	Due         string   `toml:"due"`
	Description string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimRight(strings.TrimLeft(body, "\n"), "\n")
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))
	parsed.Due = strings.TrimSpace(parsed.Due)
	if parsed.Status != nil {
		normalizedStatus := strings.ToLower(strings.TrimSpace(*parsed.Status))
		parsed.Status = &normalizedStatus
	}

	if err := board.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if !board.Priority(parsed.Priority).IsValid() {
		return nil, fmt.Errorf("invalid priority %q: must be %s", parsed.Priority, validPriorityList())
	}
	if parsed.Status != nil && !board.Status(*parsed.Status).IsValid() {
		return nil, fmt.Errorf("invalid status %q: must be %s", *parsed.Status, validStatusList())
	}
	if parsed.Due != "" {
		if _, err := time.Parse("2006-01-02", parsed.Due); err != nil {
			return nil, fmt.Errorf("invalid due date %q: must be YYYY-MM-DD", parsed.Due)
		}
	}

	return &parsed, nil
}

// DueDate returns the parsed due date, or nil when unset.
func (p *ParsedTask) DueDate() *time.Time {
	if p.Due == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", p.Due)
	if err != nil {
		return nil
	}
	return &parsed
}

// ToTaskOptions converts a ParsedTask to board.TaskOptions.
func (p *ParsedTask) ToTaskOptions() board.TaskOptions {
	return board.TaskOptions{
		Description: p.Description,
		Priority:    board.Priority(p.Priority),
		Assignee:    p.Assignee,
		Tags:        p.Tags,
		DueDate:     p.DueDate(),
	}
}

// ToUpdateOptions converts a ParsedTask to board.TaskUpdateOptions.
func (p *ParsedTask) ToUpdateOptions() board.TaskUpdateOptions {
	priority := board.Priority(p.Priority)
	due := p.DueDate()
	opts := board.TaskUpdateOptions{
		Title:       &p.Title,
		Description: &p.Description,
		Priority:    &priority,
		Assignee:    &p.Assignee,
		Tags:        &p.Tags,
		DueDate:     &due,
	}

	if p.Status != nil {
		status := board.Status(*p.Status)
		opts.Status = &status
	}
	return opts
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "td-task-*.md")
}

func validStatusList() string {
	valid := board.ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}

func validPriorityList() string {
	valid := board.ValidPriorities()
	values := make([]string, 0, len(valid))
	for _, priority := range valid {
		values = append(values, string(priority))
	}
	return strings.Join(values, ", ")
}

// EditTask opens the editor for a task and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing task.
func EditTask(existing *board.Task) (*ParsedTask, error) {
	var data TaskData
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromTask(existing)
	}
	return EditTaskWithData(data)
}

// EditTaskWithData opens the editor with pre-populated data and returns the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}
