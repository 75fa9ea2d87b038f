package board

import (
	"strings"
	"time"
)

// MergeReport summarizes what a merge did to the board.
type MergeReport struct {
	// Created counts tasks that existed only in the Markdown.
	Created int

	// Updated counts existing tasks changed by the Markdown.
	Updated int

	// Unchanged counts matched tasks the Markdown agreed with.
	Unchanged int

	// Orphaned counts board tasks with no matching Markdown item; they stay
	// on the board with their line reference cleared.
	Orphaned int
}

// ExtractAndMerge extracts task items from Markdown content and merges them
// into the board, all-or-nothing. Items match existing tasks first by
// normalized title, then by recorded line number, so a task keeps its
// identity whether its line moved or its title was edited in place (but not
// both at once). The Markdown wins checked state and
// title; the board keeps IDs, priorities, assignees and history. Board tasks
// absent from the Markdown remain, with their line reference cleared.
func (s *Store) ExtractAndMerge(boardID, content string, opts ExtractOptions) (*MergeReport, error) {
	extracted := Extract(content, opts)

	boardIdx, err := s.boardIndex(boardID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := s.snap.Boards[boardIdx].Clone()
	report := &MergeReport{}

	matched := make(map[string]bool, len(updated.Tasks))
	byLine := make(map[int]*Task)
	byTitle := make(map[string]*Task)
	for i := range updated.Tasks {
		t := &updated.Tasks[i]
		if t.LineNumber != nil {
			byLine[*t.LineNumber] = t
		}
		if _, taken := byTitle[normalizeTitle(t.Title)]; !taken {
			byTitle[normalizeTitle(t.Title)] = t
		}
	}

	for i := range extracted {
		item := &extracted[i]

		// Titles identify tasks across line moves; the recorded line number
		// catches a title edited in place.
		task := byTitle[normalizeTitle(item.Title)]
		if task == nil || matched[task.ID] {
			task = byLine[item.LineNumber]
		}
		if task == nil || matched[task.ID] {
			created, err := newExtractedTask(&updated, item, now)
			if err != nil {
				return nil, err
			}
			report.Created++
			matched[created.ID] = true
			continue
		}

		matched[task.ID] = true
		changed, err := mergeExtracted(&updated, task, item, now)
		if err != nil {
			return nil, err
		}
		if changed {
			report.Updated++
		} else {
			report.Unchanged++
		}
	}

	for i := range updated.Tasks {
		t := &updated.Tasks[i]
		if matched[t.ID] || t.LineNumber == nil {
			continue
		}
		t.LineNumber = nil
		t.UpdatedAt = now
		report.Orphaned++
	}

	updated.UpdatedAt = now

	next := s.cloneSnapshot()
	next.Boards[boardIdx] = updated
	if err := s.persist(next); err != nil {
		return nil, err
	}

	return report, nil
}

// newExtractedTask appends a fresh task for a Markdown item and homes it in
// the matching column.
func newExtractedTask(b *Board, item *ExtractedTask, now time.Time) (*Task, error) {
	status := StatusTodo
	if item.Checked {
		status = StatusCompleted
	}

	line := item.LineNumber
	created := Task{
		ID:         GenerateTaskID(item.Title, now),
		Title:      item.Title,
		Status:     status,
		Priority:   PriorityNormal,
		Tags:       dedupeTags(item.Tags),
		DueDate:    item.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
		LineNumber: &line,
	}
	if status.Checked() {
		completed := now
		created.CompletedAt = &completed
	}

	column := b.ColumnByStatus(status)
	if column == nil {
		return nil, ErrValidation
	}

	b.Tasks = append(b.Tasks, created)
	column.TaskIDs = append(column.TaskIDs, created.ID)
	return &b.Tasks[len(b.Tasks)-1], nil
}

// mergeExtracted folds a Markdown item into an existing task. It reports
// whether anything changed.
func mergeExtracted(b *Board, task *Task, item *ExtractedTask, now time.Time) (bool, error) {
	changed := false

	if task.Title != item.Title {
		task.Title = item.Title
		changed = true
	}

	// The checkbox is authoritative only across the done boundary: checking
	// completes, unchecking reopens. In-progress and on-hold survive an
	// unchecked box.
	if item.Checked && !task.Status.Checked() {
		if err := rehomeTask(b, task, StatusCompleted, now); err != nil {
			return false, err
		}
		changed = true
	} else if !item.Checked && task.Status.Checked() {
		if err := rehomeTask(b, task, StatusTodo, now); err != nil {
			return false, err
		}
		changed = true
	}

	merged := dedupeTags(append(append([]string(nil), task.Tags...), item.Tags...))
	if len(merged) != len(task.Tags) {
		task.Tags = merged
		changed = true
	}

	if item.DueDate != nil && (task.DueDate == nil || !task.DueDate.Equal(*item.DueDate)) {
		due := *item.DueDate
		task.DueDate = &due
		changed = true
	}

	if task.LineNumber == nil || *task.LineNumber != item.LineNumber {
		line := item.LineNumber
		task.LineNumber = &line
		changed = true
	}

	if changed {
		task.UpdatedAt = now
	}
	return changed, nil
}

// PatchMarkdown rewrites checkbox fill characters in content so they agree
// with the given tasks, matched by line number. Only the single character
// inside each matched checkbox changes; every other byte, including line
// endings and indentation, passes through untouched.
func PatchMarkdown(content string, tasks []Task) string {
	checkedByLine := make(map[int]bool, len(tasks))
	for i := range tasks {
		if tasks[i].LineNumber != nil {
			checkedByLine[*tasks[i].LineNumber] = tasks[i].Status.Checked()
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		checked, ok := checkedByLine[i+1]
		if !ok {
			continue
		}

		trimmed := strings.TrimSuffix(line, "\r")
		loc := taskLineRE.FindStringSubmatchIndex(trimmed)
		if loc == nil {
			continue
		}

		// loc[4]:loc[5] is the checkbox fill character.
		if checked == (trimmed[loc[4]] != ' ') {
			continue
		}
		fill := " "
		if checked {
			fill = "x"
		}
		lines[i] = line[:loc[4]] + fill + line[loc[5]:]
	}
	return strings.Join(lines, "\n")
}
