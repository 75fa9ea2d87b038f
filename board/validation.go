package board

import (
	"fmt"
	"strings"
)

// ValidateTitle checks if a task title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateBoardName checks if a board name is valid.
func ValidateBoardName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyBoardName
	}
	return nil
}

// ValidateTask checks if a task struct is internally consistent.
func ValidateTask(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}

	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return fmt.Errorf("%w: completed task must have completed_at", ErrValidation)
	}
	if t.Status != StatusCompleted && t.CompletedAt != nil {
		return fmt.Errorf("%w: non-completed task cannot have completed_at", ErrValidation)
	}

	if t.LineNumber != nil && *t.LineNumber < 1 {
		return fmt.Errorf("%w: line number must be >= 1", ErrValidation)
	}

	return nil
}

// ValidateBoard checks a board's structural invariants: valid columns, every
// task homed in exactly one column, and task statuses agreeing with their
// column's status.
func ValidateBoard(b *Board) error {
	if err := ValidateBoardName(b.Name); err != nil {
		return err
	}

	homes := make(map[string]Status)
	for i := range b.Columns {
		col := &b.Columns[i]
		if !col.Status.IsValid() {
			return fmt.Errorf("%w: column %q has status %q", ErrInvalidStatus, col.ID, col.Status)
		}
		for _, taskID := range col.TaskIDs {
			if _, dup := homes[taskID]; dup {
				return fmt.Errorf("%w: task %s appears in multiple columns", ErrValidation, taskID)
			}
			homes[taskID] = col.Status
		}
	}

	for i := range b.Tasks {
		task := &b.Tasks[i]
		if err := ValidateTask(task); err != nil {
			return fmt.Errorf("task %s: %w", task.ID, err)
		}
		home, ok := homes[task.ID]
		if !ok {
			return fmt.Errorf("%w: task %s is not in any column", ErrValidation, task.ID)
		}
		if home != task.Status {
			return fmt.Errorf("%w: task %s has status %q but sits in the %q column",
				ErrValidation, task.ID, task.Status, home)
		}
	}

	return nil
}
