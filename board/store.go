package board

import (
	"fmt"

	"github.com/taskdown/taskdown/internal/ids"
	internalstrings "github.com/taskdown/taskdown/internal/strings"
)

// Repository loads and saves the full board collection as one snapshot.
// Implementations decide where the JSON lives; the core never touches the
// filesystem itself.
type Repository interface {
	// Load returns the persisted snapshot, or a fresh empty snapshot when
	// nothing has been persisted yet.
	Load() (*Snapshot, error)

	// Save persists the snapshot. It must be all-or-nothing: a failed save
	// leaves the previously persisted snapshot intact.
	Save(*Snapshot) error
}

// Snapshot is the unit of persistence: every board plus display preferences.
type Snapshot struct {
	Boards []Board `json:"boards,omitempty"`

	// DefaultBoardID selects the board commands act on when none is named.
	DefaultBoardID string `json:"default_board_id,omitempty"`

	// AutoExtract re-runs extraction whenever a bound file is previewed.
	AutoExtract bool `json:"auto_extract,omitempty"`

	// Display holds task list presentation preferences.
	Display DisplaySettings `json:"display"`
}

// DisplaySettings holds presentation preferences for task listings.
type DisplaySettings struct {
	GroupByStatus bool   `json:"group_by_status,omitempty"`
	SortBy        string `json:"sort_by,omitempty"`
	SortDesc      bool   `json:"sort_desc,omitempty"`
}

// Store owns the in-memory board collection for a session. All mutating
// operations are all-or-nothing: they work on a clone, persist through the
// Repository, and only then replace the in-memory state.
//
// The store itself is not safe for concurrent use; hosts that call it from
// multiple goroutines must serialize access per store.
type Store struct {
	repo Repository
	snap *Snapshot
}

// Open loads the snapshot from the repository and returns a store over it.
func Open(repo Repository) (*Store, error) {
	snap, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: load boards: %v", ErrIO, err)
	}
	if snap == nil {
		snap = &Snapshot{}
	}
	return &Store{repo: repo, snap: snap}, nil
}

// Boards returns all boards in creation order.
func (s *Store) Boards() []Board {
	boards := make([]Board, len(s.snap.Boards))
	for i, b := range s.snap.Boards {
		boards[i] = b.Clone()
	}
	return boards
}

// BoardByID returns the board with the given ID or ID prefix.
func (s *Store) BoardByID(id string) (*Board, error) {
	idx, err := s.boardIndex(id)
	if err != nil {
		return nil, err
	}
	found := s.snap.Boards[idx].Clone()
	return &found, nil
}

// BoardForFile returns the board bound to the given file path.
func (s *Store) BoardForFile(path string) (*Board, error) {
	for i := range s.snap.Boards {
		if s.snap.Boards[i].FilePath == path {
			found := s.snap.Boards[i].Clone()
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoBoardForFile, path)
}

// DefaultBoard returns the configured default board, or the only board when
// exactly one exists.
func (s *Store) DefaultBoard() (*Board, error) {
	if s.snap.DefaultBoardID != "" {
		return s.BoardByID(s.snap.DefaultBoardID)
	}
	if len(s.snap.Boards) == 1 {
		found := s.snap.Boards[0].Clone()
		return &found, nil
	}
	return nil, fmt.Errorf("%w: no default board", ErrBoardNotFound)
}

// SetDefaultBoard records the board commands act on when none is named.
func (s *Store) SetDefaultBoard(id string) error {
	idx, err := s.boardIndex(id)
	if err != nil {
		return err
	}

	next := s.cloneSnapshot()
	next.DefaultBoardID = s.snap.Boards[idx].ID
	return s.persist(next)
}

// AutoExtract reports whether previewing a bound file should re-run
// extraction first.
func (s *Store) AutoExtract() bool {
	return s.snap.AutoExtract
}

// SetAutoExtract records whether previews of bound files re-run extraction.
func (s *Store) SetAutoExtract(enabled bool) error {
	next := s.cloneSnapshot()
	next.AutoExtract = enabled
	return s.persist(next)
}

// Display returns the current display settings.
func (s *Store) Display() DisplaySettings {
	return s.snap.Display
}

// SetDisplay records the task list presentation preferences.
func (s *Store) SetDisplay(display DisplaySettings) error {
	next := s.cloneSnapshot()
	next.Display = display
	return s.persist(next)
}

// TaskIDIndex returns an index over every task ID in the store, for unique
// prefix resolution and display.
func (s *Store) TaskIDIndex() IDIndex {
	var taskIDs []string
	for i := range s.snap.Boards {
		for j := range s.snap.Boards[i].Tasks {
			taskIDs = append(taskIDs, s.snap.Boards[i].Tasks[j].ID)
		}
	}
	return NewIDIndex(taskIDs)
}

// boardIndex resolves a board ID or unique ID prefix to its slice index.
func (s *Store) boardIndex(id string) (int, error) {
	boardIDs := make([]string, 0, len(s.snap.Boards))
	for i := range s.snap.Boards {
		boardIDs = append(boardIDs, s.snap.Boards[i].ID)
	}

	resolved, err := NewIDIndex(boardIDs).Resolve(id)
	if err != nil {
		return -1, fmt.Errorf("%w: board %q", ErrBoardNotFound, id)
	}

	for i := range s.snap.Boards {
		if internalstrings.NormalizeLower(s.snap.Boards[i].ID) == resolved {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: board %q", ErrBoardNotFound, id)
}

// resolveTask finds a task by ID or unique prefix across all boards, returning
// the board index and task index.
func (s *Store) resolveTask(taskID string) (boardIdx, taskIdx int, err error) {
	resolved, err := s.TaskIDIndex().Resolve(taskID)
	if err != nil {
		return -1, -1, err
	}

	for i := range s.snap.Boards {
		for j := range s.snap.Boards[i].Tasks {
			if s.snap.Boards[i].Tasks[j].ID == resolved {
				return i, j, nil
			}
		}
	}
	return -1, -1, fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
}

// cloneSnapshot copies the snapshot with a fresh boards slice. Individual
// boards are still shared until replaced; operations clone the board they
// mutate.
func (s *Store) cloneSnapshot() *Snapshot {
	next := *s.snap
	next.Boards = append([]Board(nil), s.snap.Boards...)
	return &next
}

// persist saves the candidate snapshot and commits it in memory on success.
func (s *Store) persist(next *Snapshot) error {
	if err := s.repo.Save(next); err != nil {
		return fmt.Errorf("%w: save boards: %v", ErrIO, err)
	}
	s.snap = next
	return nil
}

// IDIndex indexes IDs for unique-prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from raw IDs.
func NewIDIndex(rawIDs []string) IDIndex {
	return IDIndex{ids: ids.NormalizeUniqueIDs(rawIDs)}
}

// Resolve returns the full ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %q", ErrTaskNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengthsNormalized(index.ids)
}
