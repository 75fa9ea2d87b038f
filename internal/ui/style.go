package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdown/taskdown/board"
)

var (
	statusTodoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusInProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	statusCompletedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusOnHoldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusCancelledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)

	priorityUrgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// StyleStatus colors a status label for terminal output.
func StyleStatus(status board.Status) string {
	if !ansiEnabled() {
		return string(status)
	}

	switch status {
	case board.StatusTodo:
		return statusTodoStyle.Render(string(status))
	case board.StatusInProgress:
		return statusInProgressStyle.Render(string(status))
	case board.StatusCompleted:
		return statusCompletedStyle.Render(string(status))
	case board.StatusOnHold:
		return statusOnHoldStyle.Render(string(status))
	case board.StatusCancelled:
		return statusCancelledStyle.Render(string(status))
	default:
		return string(status)
	}
}

// StylePriority colors a priority label for terminal output. Normal priority
// is left unstyled so it doesn't dominate listings.
func StylePriority(priority board.Priority) string {
	if !ansiEnabled() {
		return string(priority)
	}

	switch priority {
	case board.PriorityUrgent:
		return priorityUrgentStyle.Render(string(priority))
	case board.PriorityHigh:
		return priorityHighStyle.Render(string(priority))
	case board.PriorityLow:
		return priorityLowStyle.Render(string(priority))
	default:
		return string(priority)
	}
}
