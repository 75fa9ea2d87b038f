package board

import (
	"regexp"
	"strings"
	"time"
)

// taskLineRE matches a Markdown task list item: optional indentation, a
// bullet (-, * or +), a checkbox, then the title. The fill character decides
// checked state; anything other than space, x or X is not a task line.
var taskLineRE = regexp.MustCompile(`^(\s*)[-*+]\s+\[([ xX])\]\s*(.*)$`)

var (
	inlineTagRE = regexp.MustCompile(`(^|\s)#([\p{L}\p{N}_-]+)`)
	dueDateRE   = regexp.MustCompile(`(^|\s)due:(\d{4}-\d{2}-\d{2})`)
)

// ExtractedTask is one task list item found in a Markdown document. It
// carries only what the text says; IDs and timestamps are assigned when the
// task is merged into a board.
type ExtractedTask struct {
	// Title is the item text with any recognized inline metadata removed.
	Title string

	// Checked reports whether the checkbox was filled.
	Checked bool

	// LineNumber is the 1-based line the item was found on.
	LineNumber int

	// Tags holds inline #tag labels, deduplicated, in order of appearance.
	Tags []string

	// DueDate holds an inline due:YYYY-MM-DD date, if present and valid.
	DueDate *time.Time
}

// ExtractOptions controls which inline metadata the extractor recognizes.
type ExtractOptions struct {
	// Tags enables #tag recognition.
	Tags bool

	// DueDates enables due:YYYY-MM-DD recognition.
	DueDates bool
}

// Extract scans Markdown content for task list items and returns them in
// document order. Lines that are not task items, including malformed
// checkboxes, are skipped. Extraction never mutates any board: the result is
// plain data for the caller to merge or display.
func Extract(content string, opts ExtractOptions) []ExtractedTask {
	var tasks []ExtractedTask
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		m := taskLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		title := m[3]
		var tags []string
		var due *time.Time
		if opts.Tags {
			title, tags = stripInlineTags(title)
		}
		if opts.DueDates {
			title, due = stripDueDate(title)
		}
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}

		tasks = append(tasks, ExtractedTask{
			Title:      title,
			Checked:    m[2] != " ",
			LineNumber: i + 1,
			Tags:       tags,
			DueDate:    due,
		})
	}
	return tasks
}

func stripInlineTags(title string) (string, []string) {
	var tags []string
	stripped := inlineTagRE.ReplaceAllStringFunc(title, func(match string) string {
		sub := inlineTagRE.FindStringSubmatch(match)
		tags = append(tags, sub[2])
		return sub[1]
	})
	return stripped, dedupeTags(tags)
}

func stripDueDate(title string) (string, *time.Time) {
	var due *time.Time
	stripped := dueDateRE.ReplaceAllStringFunc(title, func(match string) string {
		sub := dueDateRE.FindStringSubmatch(match)
		parsed, err := time.Parse("2006-01-02", sub[2])
		if err != nil {
			return match
		}
		if due == nil {
			due = &parsed
		}
		return sub[1]
	})
	return stripped, due
}
