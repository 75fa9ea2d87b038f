package board

import (
	"errors"
	"fmt"
)

// Base error kinds. Every error the package returns wraps one of these, so
// callers can branch with errors.Is without matching individual sentinels.
var (
	// ErrValidation covers rejected input: empty required fields, invalid
	// enum values, over-length titles.
	ErrValidation = errors.New("validation error")

	// ErrNotFound covers lookups of unknown board or task IDs.
	ErrNotFound = errors.New("not found")

	// ErrIO covers failures propagated from the persistence collaborator.
	// The core never generates it on its own.
	ErrIO = errors.New("io error")
)

var (
	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds maximum length", ErrValidation)

	// ErrEmptyBoardName is returned when a board name is empty after trimming.
	ErrEmptyBoardName = fmt.Errorf("%w: board name cannot be empty", ErrValidation)

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrValidation)

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)

	// ErrBoardNotFound is returned when a board with the given ID doesn't exist.
	ErrBoardNotFound = fmt.Errorf("%w: board not found", ErrNotFound)

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = fmt.Errorf("%w: task not found", ErrNotFound)

	// ErrTaskNotOnBoard is returned when a task exists but not on the named board.
	ErrTaskNotOnBoard = fmt.Errorf("%w: task not on board", ErrNotFound)

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple items.
	ErrAmbiguousIDPrefix = fmt.Errorf("%w: ambiguous ID prefix", ErrNotFound)

	// ErrNoBoardForFile is returned when no board is bound to a file path.
	ErrNoBoardForFile = fmt.Errorf("%w: no board for file", ErrNotFound)
)
