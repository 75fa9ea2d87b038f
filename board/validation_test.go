package board

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("fine"); err != nil {
		t.Errorf("expected valid title, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("a", MaxTitleLength)); err != nil {
		t.Errorf("expected title at the limit valid, got %v", err)
	}
	if err := ValidateTitle(""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle("  \t "); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle for whitespace, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("a", MaxTitleLength+1)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestValidateTask(t *testing.T) {
	now := time.Now()
	valid := Task{Title: "ok", Status: StatusTodo, Priority: PriorityNormal}
	if err := ValidateTask(&valid); err != nil {
		t.Errorf("expected valid task, got %v", err)
	}

	completed := Task{Title: "ok", Status: StatusCompleted, Priority: PriorityNormal, CompletedAt: &now}
	if err := ValidateTask(&completed); err != nil {
		t.Errorf("expected valid completed task, got %v", err)
	}

	missingStamp := Task{Title: "ok", Status: StatusCompleted, Priority: PriorityNormal}
	if err := ValidateTask(&missingStamp); !errors.Is(err, ErrValidation) {
		t.Errorf("expected error for completed task without timestamp, got %v", err)
	}

	strayStamp := Task{Title: "ok", Status: StatusTodo, Priority: PriorityNormal, CompletedAt: &now}
	if err := ValidateTask(&strayStamp); !errors.Is(err, ErrValidation) {
		t.Errorf("expected error for todo task with completion timestamp, got %v", err)
	}

	badStatus := Task{Title: "ok", Status: "done", Priority: PriorityNormal}
	if err := ValidateTask(&badStatus); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	badPriority := Task{Title: "ok", Status: StatusTodo, Priority: "critical"}
	if err := ValidateTask(&badPriority); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}

	zero := 0
	badLine := Task{Title: "ok", Status: StatusTodo, Priority: PriorityNormal, LineNumber: &zero}
	if err := ValidateTask(&badLine); !errors.Is(err, ErrValidation) {
		t.Errorf("expected error for line number 0, got %v", err)
	}
}

func TestValidateBoard(t *testing.T) {
	b := Board{Name: "ok", Columns: DefaultColumns()}
	task := Task{ID: "abc12345", Title: "ok", Status: StatusTodo, Priority: PriorityNormal}
	b.Tasks = []Task{task}
	b.Columns[0].TaskIDs = []string{task.ID}

	if err := ValidateBoard(&b); err != nil {
		t.Fatalf("expected valid board, got %v", err)
	}

	// Status disagreeing with the homing column.
	b.Tasks[0].Status = StatusInProgress
	if err := ValidateBoard(&b); !errors.Is(err, ErrValidation) {
		t.Errorf("expected error for column/status disagreement, got %v", err)
	}
	b.Tasks[0].Status = StatusTodo

	// Task homed in two columns.
	b.Columns[1].TaskIDs = []string{task.ID}
	if err := ValidateBoard(&b); !errors.Is(err, ErrValidation) {
		t.Errorf("expected error for task in two columns, got %v", err)
	}
	b.Columns[1].TaskIDs = nil

	// Task homed nowhere.
	b.Columns[0].TaskIDs = nil
	if err := ValidateBoard(&b); !errors.Is(err, ErrValidation) {
		t.Errorf("expected error for unhomed task, got %v", err)
	}
}
