package board

import (
	"iter"
	"sort"
	"strings"

	internalstrings "github.com/taskdown/taskdown/internal/strings"
)

// Filter selects tasks. Zero-value fields match everything.
type Filter struct {
	// Text matches case-insensitively against title, description, and tags.
	Text string

	// Statuses keeps only tasks whose status is listed.
	Statuses []Status

	// Priorities keeps only tasks whose priority is listed.
	Priorities []Priority

	// Assignee matches case-insensitively against a substring of the assignee.
	Assignee string

	// Tag keeps only tasks carrying the tag.
	Tag string
}

func (f Filter) matches(t *Task) bool {
	if f.Text != "" {
		needle := internalstrings.NormalizeLower(f.Text)
		if !strings.Contains(internalstrings.NormalizeLower(t.Title), needle) &&
			!strings.Contains(internalstrings.NormalizeLower(t.Description), needle) &&
			!anyContains(t.Tags, needle) {
			return false
		}
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, t.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, t.Priority) {
		return false
	}
	if f.Assignee != "" &&
		!strings.Contains(internalstrings.NormalizeLower(t.Assignee), internalstrings.NormalizeLower(f.Assignee)) {
		return false
	}
	if f.Tag != "" && !containsFold(t.Tags, f.Tag) {
		return false
	}
	return true
}

func containsStatus(list []Status, s Status) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsPriority(list []Priority, p Priority) bool {
	for _, candidate := range list {
		if candidate == p {
			return true
		}
	}
	return false
}

// anyContains reports whether any list entry contains the already-lowercased
// needle.
func anyContains(list []string, needle string) bool {
	for _, candidate := range list {
		if strings.Contains(internalstrings.NormalizeLower(candidate), needle) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, candidate := range list {
		if strings.EqualFold(candidate, s) {
			return true
		}
	}
	return false
}

// Query returns the board's tasks matching the filter, lazily. The sequence
// reflects the board at call time and may be ranged over more than once.
func (s *Store) Query(boardID string, filter Filter) (iter.Seq[Task], error) {
	idx, err := s.boardIndex(boardID)
	if err != nil {
		return nil, err
	}

	snapshot := s.snap.Boards[idx].Clone()
	return func(yield func(Task) bool) {
		for i := range snapshot.Tasks {
			if !filter.matches(&snapshot.Tasks[i]) {
				continue
			}
			if !yield(snapshot.Tasks[i].clone()) {
				return
			}
		}
	}, nil
}

// QueryAll returns tasks matching the filter across every board.
func (s *Store) QueryAll(filter Filter) iter.Seq[Task] {
	boards := s.Boards()
	return func(yield func(Task) bool) {
		for b := range boards {
			for i := range boards[b].Tasks {
				if !filter.matches(&boards[b].Tasks[i]) {
					continue
				}
				if !yield(boards[b].Tasks[i].clone()) {
					return
				}
			}
		}
	}
}

// SortTasks orders tasks in place by the named key: "priority", "due",
// "created", "updated", or "title". Unknown keys leave the order unchanged.
// The sort is stable so equal tasks keep their board order.
func SortTasks(tasks []Task, key string, desc bool) {
	var less func(a, b *Task) bool
	switch key {
	case "priority":
		less = func(a, b *Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case "due":
		less = func(a, b *Task) bool {
			if a.DueDate == nil {
				return false
			}
			if b.DueDate == nil {
				return true
			}
			return a.DueDate.Before(*b.DueDate)
		}
	case "created":
		less = func(a, b *Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated":
		less = func(a, b *Task) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "title":
		less = func(a, b *Task) bool { return normalizeTitle(a.Title) < normalizeTitle(b.Title) }
	default:
		return
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return less(&tasks[j], &tasks[i])
		}
		return less(&tasks[i], &tasks[j])
	})
}
