// Package board implements kanban-style task boards extracted from and
// synchronized with Markdown checklist files.
//
// Boards live in a JSON snapshot persisted through a Repository (by default a
// file in the taskdown state directory). Each board owns its tasks and a set
// of columns, one per status; columns reference tasks by ID so a task belongs
// to exactly one column at a time.
//
// The public API mirrors the CLI commands:
//   - CreateBoard, UpdateBoard, DeleteBoard, Boards, BoardByID for boards
//   - CreateTask, UpdateTask, DeleteTask, MoveTask and the status wrappers
//     (Start, Finish, Hold, Cancel, Reopen) for task lifecycle
//   - Query, GroupByStatus for querying
//   - Extract, ExtractAndMerge, PatchMarkdown for Markdown synchronization
package board

import "time"

// Board is a named collection of tasks, optionally bound to one Markdown file.
type Board struct {
	// ID is a unique identifier assigned at creation.
	ID string `json:"id"`

	// Name is the display name (non-empty).
	Name string `json:"name"`

	// Description provides additional context about the board.
	Description string `json:"description,omitempty"`

	// FilePath associates the board with a Markdown source. It is a plain
	// path string, never an open handle; the file may not exist.
	FilePath string `json:"file_path,omitempty"`

	// Columns are the board's kanban columns, one per status, in display
	// order. The board exclusively owns its columns.
	Columns []Column `json:"columns"`

	// Tasks is the board-level task collection the columns index into.
	Tasks []Task `json:"tasks,omitempty"`

	// CreatedAt is when the board was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the board was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Column is an ordered lane of task IDs sharing one status.
type Column struct {
	// ID identifies the column within its board.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Status is the status every task in this column has.
	Status Status `json:"status"`

	// Order is the display position, lowest first.
	Order int `json:"order"`

	// Color is a display hint (hex string); the core never interprets it.
	Color string `json:"color,omitempty"`

	// TaskIDs are the IDs of the tasks in this column, in display order.
	TaskIDs []string `json:"task_ids,omitempty"`
}

// DefaultColumns returns the standard five columns for a new board.
func DefaultColumns() []Column {
	return []Column{
		{ID: "todo", Name: "To Do", Status: StatusTodo, Order: 0, Color: "#f3f4f6"},
		{ID: "in-progress", Name: "In Progress", Status: StatusInProgress, Order: 1, Color: "#dbeafe"},
		{ID: "completed", Name: "Completed", Status: StatusCompleted, Order: 2, Color: "#dcfce7"},
		{ID: "on-hold", Name: "On Hold", Status: StatusOnHold, Order: 3, Color: "#fef3c7"},
		{ID: "cancelled", Name: "Cancelled", Status: StatusCancelled, Order: 4, Color: "#fee2e2"},
	}
}

// Clone returns a deep copy of the board. Mutating operations work on clones
// so a failed persist leaves the original untouched.
func (b Board) Clone() Board {
	clone := b
	clone.Columns = make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		clone.Columns[i] = col
		clone.Columns[i].TaskIDs = append([]string(nil), col.TaskIDs...)
	}
	clone.Tasks = make([]Task, len(b.Tasks))
	for i, task := range b.Tasks {
		clone.Tasks[i] = task.clone()
	}
	return clone
}

// TaskByID returns a pointer to the board's task with the given ID, or nil.
func (b *Board) TaskByID(id string) *Task {
	for i := range b.Tasks {
		if b.Tasks[i].ID == id {
			return &b.Tasks[i]
		}
	}
	return nil
}

// ColumnByStatus returns a pointer to the board's column for a status, or nil.
func (b *Board) ColumnByStatus(status Status) *Column {
	for i := range b.Columns {
		if b.Columns[i].Status == status {
			return &b.Columns[i]
		}
	}
	return nil
}

func (c *Column) removeTaskID(id string) {
	filtered := c.TaskIDs[:0]
	for _, taskID := range c.TaskIDs {
		if taskID != id {
			filtered = append(filtered, taskID)
		}
	}
	c.TaskIDs = filtered
}
