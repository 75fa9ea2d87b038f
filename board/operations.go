package board

import (
	"fmt"
	"strings"
	"time"
)

// CreateBoard creates a new board with the default columns and no tasks.
func (s *Store) CreateBoard(name, description, filePath string) (*Board, error) {
	name = strings.TrimSpace(name)
	if err := ValidateBoardName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	created := Board{
		ID:          GenerateBoardID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		FilePath:    strings.TrimSpace(filePath),
		Columns:     DefaultColumns(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := s.cloneSnapshot()
	next.Boards = append(next.Boards, created)
	if err := s.persist(next); err != nil {
		return nil, err
	}

	return &created, nil
}

// BoardUpdateOptions configures fields to update on a board.
// Nil pointers mean "don't update this field".
type BoardUpdateOptions struct {
	Name        *string
	Description *string
	FilePath    *string
}

// UpdateBoard updates a board's metadata.
func (s *Store) UpdateBoard(id string, opts BoardUpdateOptions) (*Board, error) {
	if opts.Name != nil {
		trimmed := strings.TrimSpace(*opts.Name)
		if err := ValidateBoardName(trimmed); err != nil {
			return nil, err
		}
		opts.Name = &trimmed
	}

	idx, err := s.boardIndex(id)
	if err != nil {
		return nil, err
	}

	updated := s.snap.Boards[idx].Clone()
	if opts.Name != nil {
		updated.Name = *opts.Name
	}
	if opts.Description != nil {
		updated.Description = strings.TrimSpace(*opts.Description)
	}
	if opts.FilePath != nil {
		updated.FilePath = strings.TrimSpace(*opts.FilePath)
	}
	updated.UpdatedAt = time.Now()

	next := s.cloneSnapshot()
	next.Boards[idx] = updated
	if err := s.persist(next); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteBoard deletes a board and every task on it. Deleting an unknown board
// is an error, so callers learn the target no longer exists.
func (s *Store) DeleteBoard(id string) error {
	idx, err := s.boardIndex(id)
	if err != nil {
		return err
	}

	next := s.cloneSnapshot()
	if next.DefaultBoardID == next.Boards[idx].ID {
		next.DefaultBoardID = ""
	}
	next.Boards = append(next.Boards[:idx:idx], next.Boards[idx+1:]...)
	return s.persist(next)
}

// TaskOptions configures a new task.
type TaskOptions struct {
	// Description provides additional context.
	Description string

	// Status is the initial status. Defaults to StatusTodo.
	Status Status

	// Priority is the importance level. Defaults to PriorityNormal.
	Priority Priority

	// Assignee names who the task is assigned to.
	Assignee string

	// Tags are free-form labels; duplicates are dropped.
	Tags []string

	// DueDate is when the task is due.
	DueDate *time.Time

	// LineNumber records the Markdown source line the task came from.
	LineNumber *int
}

// CreateTask creates a new task on the given board.
func (s *Store) CreateTask(boardID, title string, opts TaskOptions) (*Task, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	if opts.Status == "" {
		opts.Status = StatusTodo
	}
	status, err := normalizeStatusInput(opts.Status)
	if err != nil {
		return nil, err
	}

	if opts.Priority == "" {
		opts.Priority = PriorityNormal
	}
	priority, err := normalizePriorityInput(opts.Priority)
	if err != nil {
		return nil, err
	}

	idx, err := s.boardIndex(boardID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := Task{
		ID:          GenerateTaskID(title, now),
		Title:       title,
		Description: opts.Description,
		Status:      status,
		Priority:    priority,
		Assignee:    strings.TrimSpace(opts.Assignee),
		Tags:        dedupeTags(opts.Tags),
		DueDate:     opts.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		LineNumber:  opts.LineNumber,
	}
	if status.Checked() {
		created.CompletedAt = &now
	}

	updated := s.snap.Boards[idx].Clone()
	updated.Tasks = append(updated.Tasks, created)
	column := updated.ColumnByStatus(status)
	if column == nil {
		return nil, fmt.Errorf("%w: board has no column for status %q", ErrValidation, status)
	}
	column.TaskIDs = append(column.TaskIDs, created.ID)
	updated.UpdatedAt = now

	next := s.cloneSnapshot()
	next.Boards[idx] = updated
	if err := s.persist(next); err != nil {
		return nil, err
	}

	return &created, nil
}

// TaskUpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type TaskUpdateOptions struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	Assignee    *string
	Tags        *[]string
	DueDate     **time.Time
	LineNumber  **int
}

// UpdateTask merges the provided fields into a task and refreshes UpdatedAt.
// A status change re-homes the task in the matching column and maintains
// CompletedAt: entering the completed status sets it, leaving clears it.
func (s *Store) UpdateTask(taskID string, opts TaskUpdateOptions) (*Task, error) {
	if opts.Title != nil {
		trimmed := strings.TrimSpace(*opts.Title)
		if err := ValidateTitle(trimmed); err != nil {
			return nil, err
		}
		opts.Title = &trimmed
	}
	if opts.Status != nil {
		normalized, err := normalizeStatusInput(*opts.Status)
		if err != nil {
			return nil, err
		}
		opts.Status = &normalized
	}
	if opts.Priority != nil {
		normalized, err := normalizePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}

	boardIdx, taskIdx, err := s.resolveTask(taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := s.snap.Boards[boardIdx].Clone()
	task := &updated.Tasks[taskIdx]

	if opts.Title != nil {
		task.Title = *opts.Title
	}
	if opts.Description != nil {
		task.Description = *opts.Description
	}
	if opts.Status != nil && *opts.Status != task.Status {
		if err := rehomeTask(&updated, task, *opts.Status, now); err != nil {
			return nil, err
		}
	}
	if opts.Priority != nil {
		task.Priority = *opts.Priority
	}
	if opts.Assignee != nil {
		task.Assignee = strings.TrimSpace(*opts.Assignee)
	}
	if opts.Tags != nil {
		task.Tags = dedupeTags(*opts.Tags)
	}
	if opts.DueDate != nil {
		task.DueDate = *opts.DueDate
	}
	if opts.LineNumber != nil {
		task.LineNumber = *opts.LineNumber
	}
	task.UpdatedAt = now
	updated.UpdatedAt = now

	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	next := s.cloneSnapshot()
	next.Boards[boardIdx] = updated
	if err := s.persist(next); err != nil {
		return nil, err
	}

	result := task.clone()
	return &result, nil
}

// DeleteTask removes a task from its board. Deleting an unknown task is an
// error, so a second delete of the same ID fails.
func (s *Store) DeleteTask(taskID string) error {
	boardIdx, taskIdx, err := s.resolveTask(taskID)
	if err != nil {
		return err
	}

	updated := s.snap.Boards[boardIdx].Clone()
	id := updated.Tasks[taskIdx].ID
	updated.Tasks = append(updated.Tasks[:taskIdx:taskIdx], updated.Tasks[taskIdx+1:]...)
	for i := range updated.Columns {
		updated.Columns[i].removeTaskID(id)
	}
	updated.UpdatedAt = time.Now()

	next := s.cloneSnapshot()
	next.Boards[boardIdx] = updated
	return s.persist(next)
}

// MoveTask moves a task to the column for targetStatus on the given board,
// updating column membership and the task's status together. The task lands
// at the end of the target column.
func (s *Store) MoveTask(boardID, taskID string, targetStatus Status) (*Task, error) {
	status, err := normalizeStatusInput(targetStatus)
	if err != nil {
		return nil, err
	}

	boardIdx, err := s.boardIndex(boardID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.TaskIDIndex().Resolve(taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := s.snap.Boards[boardIdx].Clone()
	task := updated.TaskByID(resolved)
	if task == nil {
		return nil, fmt.Errorf("%w: task %q on board %q", ErrTaskNotOnBoard, taskID, boardID)
	}

	if task.Status != status {
		if err := rehomeTask(&updated, task, status, now); err != nil {
			return nil, err
		}
		task.UpdatedAt = now
		updated.UpdatedAt = now
	}

	next := s.cloneSnapshot()
	next.Boards[boardIdx] = updated
	if err := s.persist(next); err != nil {
		return nil, err
	}

	result := task.clone()
	return &result, nil
}

// Start marks a task as in progress.
func (s *Store) Start(taskID string) (*Task, error) {
	status := StatusInProgress
	return s.UpdateTask(taskID, TaskUpdateOptions{Status: &status})
}

// Finish marks a task as completed.
func (s *Store) Finish(taskID string) (*Task, error) {
	status := StatusCompleted
	return s.UpdateTask(taskID, TaskUpdateOptions{Status: &status})
}

// Hold puts a task on hold.
func (s *Store) Hold(taskID string) (*Task, error) {
	status := StatusOnHold
	return s.UpdateTask(taskID, TaskUpdateOptions{Status: &status})
}

// Cancel cancels a task.
func (s *Store) Cancel(taskID string) (*Task, error) {
	status := StatusCancelled
	return s.UpdateTask(taskID, TaskUpdateOptions{Status: &status})
}

// Reopen returns a task to todo.
func (s *Store) Reopen(taskID string) (*Task, error) {
	status := StatusTodo
	return s.UpdateTask(taskID, TaskUpdateOptions{Status: &status})
}

// rehomeTask moves a task between columns and keeps its status and
// CompletedAt consistent with the destination.
func rehomeTask(b *Board, task *Task, status Status, now time.Time) error {
	target := b.ColumnByStatus(status)
	if target == nil {
		return fmt.Errorf("%w: board has no column for status %q", ErrValidation, status)
	}

	for i := range b.Columns {
		b.Columns[i].removeTaskID(task.ID)
	}
	target.TaskIDs = append(target.TaskIDs, task.ID)

	task.Status = status
	if status.Checked() {
		completed := now
		task.CompletedAt = &completed
	} else {
		task.CompletedAt = nil
	}

	return nil
}
