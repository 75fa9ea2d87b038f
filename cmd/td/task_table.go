package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskdown/taskdown/board"
	"github.com/taskdown/taskdown/internal/age"
	"github.com/taskdown/taskdown/internal/ui"
)

func printTaskTable(tasks []board.Task, prefixLengths map[string]int, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, prefixLengths, ui.HighlightID, now))
}

func formatTaskTable(tasks []board.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "AGE", "DUE", "TITLE"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = taskIDPrefixLengths(tasks)
	}

	for _, t := range tasks {
		title := ui.TruncateTableCell(t.Title)
		prefixLen := prefixLengths[strings.ToLower(t.ID)]
		highlighted := highlight(t.ID, prefixLen)
		row := []string{
			highlighted,
			ui.StylePriority(t.Priority),
			ui.StyleStatus(t.Status),
			formatTaskAge(t, now),
			ui.FormatDate(t.DueDate),
			title,
		}
		builder.AddRow(row)
	}

	return builder.String()
}

// printGroupedTaskTable prints tasks grouped by status, skipping statuses
// with no tasks.
func printGroupedTaskTable(tasks []board.Task, prefixLengths map[string]int, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	groups := board.GroupByStatus(tasks)
	first := true
	for _, status := range board.ValidStatuses() {
		group := groups[status]
		if len(group) == 0 {
			continue
		}
		if !first {
			fmt.Println()
		}
		first = false
		fmt.Printf("%s (%d)\n", ui.StyleStatus(status), len(group))
		fmt.Print(formatTaskTable(group, prefixLengths, ui.HighlightID, now))
	}
}

func taskIDPrefixLengths(tasks []board.Task) map[string]int {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return board.NewIDIndex(ids).PrefixLengths()
}

func formatTaskAge(t board.Task, now time.Time) string {
	ageValue, ok := age.AgeData(t.CreatedAt, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(ageValue)
}

func formatTaskDuration(t board.Task, now time.Time) string {
	if t.CompletedAt != nil {
		duration, ok := age.CompletionData(t.CreatedAt, t.CompletedAt)
		if !ok {
			return "-"
		}
		return ui.FormatDurationShort(duration)
	}
	if t.Status == board.StatusInProgress {
		duration, ok := age.AgeData(t.UpdatedAt, now)
		if !ok {
			return "-"
		}
		return ui.FormatDurationShort(duration)
	}
	return "-"
}
