package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskdown/taskdown/board"
	"github.com/taskdown/taskdown/internal/markdown"
	"github.com/taskdown/taskdown/internal/ui"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t board.Task, highlight func(string) string) {
	fmt.Printf("ID:        %s\n", highlight(t.ID))
	fmt.Printf("Title:     %s\n", t.Title)
	fmt.Printf("Status:    %s\n", ui.StyleStatus(t.Status))
	fmt.Printf("Priority:  %s\n", ui.StylePriority(t.Priority))

	if t.Assignee != "" {
		fmt.Printf("Assignee:  %s\n", t.Assignee)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:      %s\n", strings.Join(t.Tags, ", "))
	}
	if t.DueDate != nil {
		fmt.Printf("Due:       %s\n", t.DueDate.Format("2006-01-02"))
	}

	fmt.Printf("Created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))

	if t.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", t.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	if t.LineNumber != nil {
		fmt.Printf("Line:      %d\n", *t.LineNumber)
	}

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", formatTaskDescription(t.Description))
	}
}

func formatTaskDescription(value string) string {
	rendered := markdown.SafeRender(taskDetailLineWidth, 0, []byte(value))
	formatted := strings.TrimRight(string(rendered), "\n")
	if strings.TrimSpace(formatted) == "" {
		return "-"
	}
	return formatted
}

// printBoardDetail prints a board header followed by its tasks grouped into
// status columns.
func printBoardDetail(b *board.Board) {
	fmt.Printf("Board:   %s\n", b.Name)
	fmt.Printf("ID:      %s\n", b.ID)
	if b.Description != "" {
		fmt.Printf("About:   %s\n", b.Description)
	}
	if b.FilePath != "" {
		fmt.Printf("File:    %s\n", b.FilePath)
	}
	fmt.Printf("Updated: %s\n", b.UpdatedAt.Format("2006-01-02 15:04:05"))

	groups := board.GroupByStatus(b.Tasks)
	prefixLengths := taskIDPrefixLengths(b.Tasks)
	now := time.Now()

	for _, column := range b.Columns {
		tasks := groups[column.Status]
		fmt.Printf("\n%s (%d)\n", column.Name, len(tasks))
		if len(tasks) == 0 {
			continue
		}
		fmt.Print(formatTaskTable(tasks, prefixLengths, ui.HighlightID, now))
	}
}
