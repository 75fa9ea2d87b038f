package board

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is currently being worked on.
	StatusInProgress Status = "in-progress"

	// StatusCompleted indicates the task is finished.
	StatusCompleted Status = "completed"

	// StatusOnHold indicates the task is paused.
	StatusOnHold Status = "on-hold"

	// StatusCancelled indicates the task was abandoned without completing.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses returns all valid status values in column order.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal returns true when the status ends a task's lifecycle.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Checked returns true when the status projects to a filled Markdown checkbox.
func (s Status) Checked() bool {
	return s == StatusCompleted
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is for tasks that can wait.
	PriorityLow Priority = "low"

	// PriorityNormal is the default importance level.
	PriorityNormal Priority = "normal"

	// PriorityHigh is for tasks that should be handled soon.
	PriorityHigh Priority = "high"

	// PriorityUrgent is for tasks that need attention immediately.
	PriorityUrgent Priority = "urgent"
)

// ValidPriorities returns all valid priority values, lowest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority, most urgent first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
