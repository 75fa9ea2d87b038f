package board

import (
	"testing"
	"time"
)

func collect(seq func(yield func(Task) bool)) []Task {
	var tasks []Task
	seq(func(t Task) bool {
		tasks = append(tasks, t)
		return true
	})
	return tasks
}

func TestStore_Query_Filters(t *testing.T) {
	store, _ := newTestStore(t)
	b := mustCreateBoard(t, store, "Inbox")
	mustCreateTask(t, store, b.ID, "Write report", TaskOptions{Assignee: "sam", Tags: []string{"docs"}})
	mustCreateTask(t, store, b.ID, "Review report draft", TaskOptions{Priority: PriorityHigh})
	mustCreateTask(t, store, b.ID, "Water plants", TaskOptions{Assignee: "Alice Smith", Tags: []string{"garden"}})
	done := mustCreateTask(t, store, b.ID, "File expenses", TaskOptions{})
	if _, err := store.Finish(done.ID); err != nil {
		t.Fatalf("failed to finish task: %v", err)
	}

	cases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"text", Filter{Text: "REPORT"}, 2},
		{"text over tags", Filter{Text: "garden"}, 1},
		{"status", Filter{Statuses: []Status{StatusCompleted}}, 1},
		{"priority", Filter{Priorities: []Priority{PriorityHigh}}, 1},
		{"assignee", Filter{Assignee: "SAM"}, 1},
		{"assignee substring", Filter{Assignee: "alice"}, 1},
		{"tag", Filter{Tag: "docs"}, 1},
		{"combined", Filter{Text: "report", Statuses: []Status{StatusTodo}}, 2},
		{"no match", Filter{Text: "zebra"}, 0},
	}
	for _, tc := range cases {
		seq, err := store.Query(b.ID, tc.filter)
		if err != nil {
			t.Fatalf("%s: query failed: %v", tc.name, err)
		}
		if got := collect(seq); len(got) != tc.want {
			t.Errorf("%s: expected %d tasks, got %d", tc.name, tc.want, len(got))
		}
	}
}

func TestStore_Query_SequenceIsRestartable(t *testing.T) {
	store, _ := newTestStore(t)
	b := mustCreateBoard(t, store, "Inbox")
	mustCreateTask(t, store, b.ID, "One", TaskOptions{})
	mustCreateTask(t, store, b.ID, "Two", TaskOptions{})

	seq, err := store.Query(b.ID, Filter{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	first := collect(seq)
	second := collect(seq)
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("expected both passes to yield 2 tasks, got %d and %d", len(first), len(second))
	}
}

func TestStore_Query_EarlyBreak(t *testing.T) {
	store, _ := newTestStore(t)
	b := mustCreateBoard(t, store, "Inbox")
	mustCreateTask(t, store, b.ID, "One", TaskOptions{})
	mustCreateTask(t, store, b.ID, "Two", TaskOptions{})
	mustCreateTask(t, store, b.ID, "Three", TaskOptions{})

	seq, err := store.Query(b.ID, Filter{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	count := 0
	for range seq {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Errorf("expected to stop after 1 task, saw %d", count)
	}
}

func TestStore_QueryAll(t *testing.T) {
	store, _ := newTestStore(t)
	a := mustCreateBoard(t, store, "Alpha")
	b := mustCreateBoard(t, store, "Beta")
	mustCreateTask(t, store, a.ID, "On alpha", TaskOptions{})
	mustCreateTask(t, store, b.ID, "On beta", TaskOptions{})

	if got := collect(store.QueryAll(Filter{})); len(got) != 2 {
		t.Errorf("expected 2 tasks across boards, got %d", len(got))
	}
}

func TestGroupByStatus(t *testing.T) {
	tasks := []Task{
		{ID: "a", Status: StatusTodo},
		{ID: "b", Status: StatusTodo},
		{ID: "c", Status: StatusCompleted},
	}

	groups := GroupByStatus(tasks)
	if len(groups) != len(ValidStatuses()) {
		t.Errorf("expected a group per status, got %d", len(groups))
	}
	if len(groups[StatusTodo]) != 2 {
		t.Errorf("expected 2 todo tasks, got %d", len(groups[StatusTodo]))
	}
	if len(groups[StatusCompleted]) != 1 {
		t.Errorf("expected 1 completed task, got %d", len(groups[StatusCompleted]))
	}
	if groups[StatusOnHold] == nil {
		t.Error("expected empty statuses to map to empty groups, got nil")
	}
}

func TestSortTasks(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{ID: "a", Title: "banana", Priority: PriorityLow, CreatedAt: late, DueDate: &late},
		{ID: "b", Title: "apple", Priority: PriorityUrgent, CreatedAt: early, DueDate: &early},
		{ID: "c", Title: "cherry", Priority: PriorityNormal, CreatedAt: early},
	}

	SortTasks(tasks, "priority", false)
	if tasks[0].ID != "b" {
		t.Errorf("priority sort: expected urgent first, got %s", tasks[0].ID)
	}

	SortTasks(tasks, "title", false)
	if tasks[0].Title != "apple" || tasks[2].Title != "cherry" {
		t.Errorf("title sort: got %s, %s, %s", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}

	SortTasks(tasks, "due", false)
	if tasks[0].ID != "b" || tasks[2].ID != "c" {
		t.Errorf("due sort: expected undated last, got %s, %s, %s", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}

	SortTasks(tasks, "title", true)
	if tasks[0].Title != "cherry" {
		t.Errorf("descending title sort: expected cherry first, got %s", tasks[0].Title)
	}
}
