package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdown/taskdown/board"
	"github.com/taskdown/taskdown/internal/editor"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to a board",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var (
	taskAddBoard       string
	taskAddDescription string
	taskAddPriority    string
	taskAddAssignee    string
	taskAddTags        []string
	taskAddDue         string
	taskAddEdit        bool
	taskAddNoEdit      bool
	taskAddJSON        bool
)

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks on a board",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var (
	taskListBoard      string
	taskListAll        bool
	taskListEverywhere bool
	taskListStatuses   []string
	taskListPriorities []string
	taskListAssignee   string
	taskListTag        string
	taskListText       string
	taskListSort       string
	taskListReverse    bool
	taskListJSON       bool
)

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateStatus      string
	taskUpdatePriority    string
	taskUpdateAssignee    string
	taskUpdateTags        []string
	taskUpdateDue         string
	taskUpdateEdit        bool
	taskUpdateNoEdit      bool
	taskUpdateJSON        bool
)

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDelete,
}

// task move
var taskMoveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskMove,
}

var taskMoveBoard string

// Status shortcut commands.
var taskStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Mark a task as in progress",
	Args:  cobra.ExactArgs(1),
	RunE:  taskActionRunner((*board.Store).Start, "Started"),
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  taskActionRunner((*board.Store).Finish, "Completed"),
}

var taskHoldCmd = &cobra.Command{
	Use:   "hold <id>",
	Short: "Put a task on hold",
	Args:  cobra.ExactArgs(1),
	RunE:  taskActionRunner((*board.Store).Hold, "Held"),
}

var taskCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a task",
	Args:  cobra.ExactArgs(1),
	RunE:  taskActionRunner((*board.Store).Cancel, "Cancelled"),
}

var taskReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Return a task to todo",
	Args:  cobra.ExactArgs(1),
	RunE:  taskActionRunner((*board.Store).Reopen, "Reopened"),
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskShowCmd, taskUpdateCmd, taskDeleteCmd, taskMoveCmd,
		taskStartCmd, taskDoneCmd, taskHoldCmd, taskCancelCmd, taskReopenCmd)

	taskAddCmd.Flags().StringVarP(&taskAddBoard, "board", "b", "", "Board ID or prefix (default board when omitted)")
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "Task description (use '-' to read from stdin)")
	taskAddCmd.Flags().StringVarP(&taskAddPriority, "priority", "p", "", "Priority (low, normal, high, urgent)")
	taskAddCmd.Flags().StringVarP(&taskAddAssignee, "assignee", "a", "", "Assignee")
	taskAddCmd.Flags().StringSliceVarP(&taskAddTags, "tag", "t", nil, "Tag (repeatable)")
	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "Due date (YYYY-MM-DD)")
	taskAddCmd.Flags().BoolVarP(&taskAddEdit, "edit", "e", false, "Open $EDITOR to fill in the task")
	taskAddCmd.Flags().BoolVar(&taskAddNoEdit, "no-edit", false, "Never open $EDITOR")
	taskAddCmd.Flags().BoolVar(&taskAddJSON, "json", false, "Output as JSON")

	taskListCmd.Flags().StringVarP(&taskListBoard, "board", "b", "", "Board ID or prefix (default board when omitted)")
	taskListCmd.Flags().BoolVar(&taskListAll, "all", false, "Include completed and cancelled tasks")
	taskListCmd.Flags().BoolVar(&taskListEverywhere, "everywhere", false, "List tasks across all boards")
	taskListCmd.Flags().StringSliceVarP(&taskListStatuses, "status", "s", nil, "Filter by status (repeatable)")
	taskListCmd.Flags().StringSliceVarP(&taskListPriorities, "priority", "p", nil, "Filter by priority (repeatable)")
	taskListCmd.Flags().StringVarP(&taskListAssignee, "assignee", "a", "", "Filter by assignee")
	taskListCmd.Flags().StringVarP(&taskListTag, "tag", "t", "", "Filter by tag")
	taskListCmd.Flags().StringVar(&taskListText, "text", "", "Filter by title/description substring")
	taskListCmd.Flags().StringVar(&taskListSort, "sort", "", "Sort by: priority, due, created, updated, title")
	taskListCmd.Flags().BoolVar(&taskListReverse, "reverse", false, "Reverse the sort order")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")

	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateStatus, "status", "s", "", "New status")
	taskUpdateCmd.Flags().StringVarP(&taskUpdatePriority, "priority", "p", "", "New priority")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateAssignee, "assignee", "a", "", "New assignee (empty to clear)")
	taskUpdateCmd.Flags().StringSliceVarP(&taskUpdateTags, "tag", "t", nil, "Replacement tags (repeatable)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "New due date (YYYY-MM-DD, empty to clear)")
	taskUpdateCmd.Flags().BoolVarP(&taskUpdateEdit, "edit", "e", false, "Open $EDITOR to edit the task")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateNoEdit, "no-edit", false, "Never open $EDITOR")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateJSON, "json", false, "Output as JSON")

	taskMoveCmd.Flags().StringVarP(&taskMoveBoard, "board", "b", "", "Board ID or prefix (default board when omitted)")

	addFieldFlagAliases(taskAddCmd, taskUpdateCmd)
}

var taskAddFieldFlags = []string{"description", "priority", "assignee", "tag", "due"}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	b, err := resolveBoard(store, cfg, taskAddBoard)
	if err != nil {
		return err
	}

	title := args[0]
	opts := board.TaskOptions{}

	hasFlags := hasChangedFlags(cmd, taskAddFieldFlags...)
	if shouldUseEditor(hasFlags, taskAddEdit, taskAddNoEdit, editor.IsInteractive()) {
		data := editor.DefaultCreateData()
		data.Title = title
		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToTaskOptions()
	} else {
		description, err := resolveDescriptionFromStdin(taskAddDescription, os.Stdin)
		if err != nil {
			return err
		}
		opts.Description = description
		opts.Assignee = taskAddAssignee
		opts.Tags = taskAddTags
		if taskAddPriority != "" {
			opts.Priority = board.Priority(taskAddPriority)
		}
		if taskAddDue != "" {
			due, err := parseDueDate(taskAddDue)
			if err != nil {
				return err
			}
			opts.DueDate = due
		}
	}

	created, err := store.CreateTask(b.ID, title, opts)
	if err != nil {
		return err
	}

	if taskAddJSON {
		return encodeJSONToStdout(created)
	}
	highlight := taskLogHighlighterForStore(store)
	fmt.Printf("Created task %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	filter := board.Filter{
		Text:     taskListText,
		Assignee: taskListAssignee,
		Tag:      taskListTag,
	}
	for _, status := range taskListStatuses {
		filter.Statuses = append(filter.Statuses, board.Status(status))
	}
	for _, priority := range taskListPriorities {
		filter.Priorities = append(filter.Priorities, board.Priority(priority))
	}

	var tasks []board.Task
	if taskListEverywhere {
		for t := range store.QueryAll(filter) {
			tasks = append(tasks, t)
		}
	} else {
		b, err := resolveBoard(store, cfg, taskListBoard)
		if err != nil {
			return err
		}
		seq, err := store.Query(b.ID, filter)
		if err != nil {
			return err
		}
		for t := range seq {
			tasks = append(tasks, t)
		}
	}

	if len(taskListStatuses) == 0 && !taskListAll {
		filtered := tasks[:0]
		for _, t := range tasks {
			if !t.Status.IsTerminal() {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	display := store.Display()
	sortKey, sortReverse := resolveListSort(display, taskListSort, taskListReverse, cmd.Flags().Changed("reverse"))
	if sortKey != "" {
		board.SortTasks(tasks, sortKey, sortReverse)
	}

	if taskListJSON {
		if tasks == nil {
			tasks = []board.Task{}
		}
		return encodeJSONToStdout(tasks)
	}
	prefixLengths := store.TaskIDIndex().PrefixLengths()
	if display.GroupByStatus {
		printGroupedTaskTable(tasks, prefixLengths, time.Now())
		return nil
	}
	printTaskTable(tasks, prefixLengths, time.Now())
	return nil
}

// resolveListSort merges the sort flags with the stored display preferences.
// Flags win; the stored reverse applies only when the reverse flag was not
// given explicitly.
func resolveListSort(display board.DisplaySettings, flagSort string, flagReverse, reverseChanged bool) (string, bool) {
	if flagSort != "" {
		return flagSort, flagReverse
	}
	if reverseChanged {
		return display.SortBy, flagReverse
	}
	return display.SortBy, display.SortDesc
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	t, err := taskByIDOrPrefix(store, args[0])
	if err != nil {
		return err
	}

	if taskShowJSON {
		return encodeJSONToStdout(t)
	}
	printTaskDetail(*t, taskLogHighlighterForStore(store))
	return nil
}

var taskUpdateFieldFlags = []string{"title", "description", "status", "priority", "assignee", "tag", "due"}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	existing, err := taskByIDOrPrefix(store, args[0])
	if err != nil {
		return err
	}

	var opts board.TaskUpdateOptions

	hasFlags := hasChangedFlags(cmd, taskUpdateFieldFlags...)
	if shouldUseEditor(hasFlags, taskUpdateEdit, taskUpdateNoEdit, editor.IsInteractive()) {
		parsed, err := editor.EditTask(existing)
		if err != nil {
			return err
		}
		opts = parsed.ToUpdateOptions()
	} else {
		if !hasFlags {
			return fmt.Errorf("at least one field flag (or --edit) is required")
		}
		if cmd.Flags().Changed("title") {
			opts.Title = &taskUpdateTitle
		}
		if cmd.Flags().Changed("description") {
			description, err := resolveDescriptionFromStdin(taskUpdateDescription, os.Stdin)
			if err != nil {
				return err
			}
			opts.Description = &description
		}
		if cmd.Flags().Changed("status") {
			status := board.Status(taskUpdateStatus)
			opts.Status = &status
		}
		if cmd.Flags().Changed("priority") {
			priority := board.Priority(taskUpdatePriority)
			opts.Priority = &priority
		}
		if cmd.Flags().Changed("assignee") {
			opts.Assignee = &taskUpdateAssignee
		}
		if cmd.Flags().Changed("tag") {
			opts.Tags = &taskUpdateTags
		}
		if cmd.Flags().Changed("due") {
			var due *time.Time
			if taskUpdateDue != "" {
				due, err = parseDueDate(taskUpdateDue)
				if err != nil {
					return err
				}
			}
			opts.DueDate = &due
		}
	}

	updated, err := store.UpdateTask(existing.ID, opts)
	if err != nil {
		return err
	}

	if taskUpdateJSON {
		return encodeJSONToStdout(updated)
	}
	highlight := taskLogHighlighterForStore(store)
	fmt.Printf("Updated task %s: %s\n", highlight(updated.ID), updated.Title)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	t, err := taskByIDOrPrefix(store, args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteTask(t.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s: %s\n", t.ID, t.Title)
	return nil
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	b, err := resolveBoard(store, cfg, taskMoveBoard)
	if err != nil {
		return err
	}

	moved, err := store.MoveTask(b.ID, args[0], board.Status(args[1]))
	if err != nil {
		return err
	}

	highlight := taskLogHighlighterForStore(store)
	fmt.Printf("Moved task %s to %s\n", highlight(moved.ID), moved.Status)
	return nil
}

// taskActionRunner builds a RunE for the single-task status shortcuts.
func taskActionRunner(action func(*board.Store, string) (*board.Task, error), verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, _, err := loadStore()
		if err != nil {
			return err
		}

		t, err := action(store, args[0])
		if err != nil {
			return err
		}

		highlight := taskLogHighlighterForStore(store)
		fmt.Printf("%s task %s: %s\n", verb, highlight(t.ID), t.Title)
		return nil
	}
}

// taskByIDOrPrefix resolves a task ID or unique prefix across all boards.
func taskByIDOrPrefix(store *board.Store, id string) (*board.Task, error) {
	resolved, err := store.TaskIDIndex().Resolve(id)
	if err != nil {
		return nil, err
	}
	for _, b := range store.Boards() {
		if t := b.TaskByID(resolved); t != nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: task %q", board.ErrTaskNotFound, id)
}

func parseDueDate(value string) (*time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: must be YYYY-MM-DD", value)
	}
	return &parsed, nil
}
