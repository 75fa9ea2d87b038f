package board

import "time"

// Task represents a single task on a board.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from initial
	// title + timestamp). Immutable after creation.
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description,omitempty"`

	// Status is the current state of the task. It always agrees with the
	// status of the column holding the task.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Assignee names who the task is assigned to, if anyone.
	Assignee string `json:"assignee,omitempty"`

	// Tags are free-form labels, deduplicated, in display order.
	Tags []string `json:"tags,omitempty"`

	// DueDate is when the task is due (nil when unset).
	DueDate *time.Time `json:"due_date,omitempty"`

	// CreatedAt is when the task was created. Immutable.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`

	// CompletedAt is when the task entered the completed status (nil while
	// not completed).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// LineNumber is the 1-based line in the associated Markdown source this
	// task was extracted from. It is a lookup hint, not an ownership link:
	// it can go stale when the file changes outside the synchronizer, and
	// re-extraction re-resolves or clears it.
	LineNumber *int `json:"line_number,omitempty"`
}

func (t Task) clone() Task {
	clone := t
	clone.Tags = append([]string(nil), t.Tags...)
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		clone.CompletedAt = &completed
	}
	if t.LineNumber != nil {
		line := *t.LineNumber
		clone.LineNumber = &line
	}
	return clone
}

// dedupeTags removes duplicate tag strings, preserving first-seen order.
// Empty tags are dropped.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
