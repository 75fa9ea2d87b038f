package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdown/taskdown/board"
	"github.com/taskdown/taskdown/internal/ui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage task boards",
}

// board create
var boardCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new board",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardCreate,
}

var (
	boardCreateDescription string
	boardCreateFile        string
	boardCreateDefault     bool
)

// board list
var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List boards",
	Args:  cobra.NoArgs,
	RunE:  runBoardList,
}

var boardListJSON bool

// board show
var boardShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a board and its columns",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBoardShow,
}

var boardShowJSON bool

// board update
var boardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a board's name, description, or file binding",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardUpdate,
}

var (
	boardUpdateName        string
	boardUpdateDescription string
	boardUpdateFile        string
)

// board delete
var boardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a board and all its tasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardDelete,
}

// board default
var boardDefaultCmd = &cobra.Command{
	Use:   "default <id>",
	Short: "Set the default board",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardDefault,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.AddCommand(boardCreateCmd, boardListCmd, boardShowCmd, boardUpdateCmd, boardDeleteCmd, boardDefaultCmd)

	boardCreateCmd.Flags().StringVarP(&boardCreateDescription, "description", "d", "", "Board description")
	boardCreateCmd.Flags().StringVarP(&boardCreateFile, "file", "f", "", "Markdown file to bind the board to")
	boardCreateCmd.Flags().BoolVar(&boardCreateDefault, "default", false, "Make this the default board")

	boardListCmd.Flags().BoolVar(&boardListJSON, "json", false, "Output as JSON")

	boardShowCmd.Flags().BoolVar(&boardShowJSON, "json", false, "Output as JSON")

	boardUpdateCmd.Flags().StringVar(&boardUpdateName, "name", "", "New name")
	boardUpdateCmd.Flags().StringVarP(&boardUpdateDescription, "description", "d", "", "New description")
	boardUpdateCmd.Flags().StringVarP(&boardUpdateFile, "file", "f", "", "New Markdown file binding (empty to unbind)")
}

func runBoardCreate(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	created, err := store.CreateBoard(args[0], boardCreateDescription, boardCreateFile)
	if err != nil {
		return err
	}
	if boardCreateDefault {
		if err := store.SetDefaultBoard(created.ID); err != nil {
			return err
		}
	}

	fmt.Printf("Created board %s: %s\n", created.ID, created.Name)
	return nil
}

func runBoardList(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	boards := store.Boards()
	if boardListJSON {
		return encodeJSONToStdout(boards)
	}
	printBoardTable(boards, time.Now())
	return nil
}

func runBoardShow(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	flagValue := ""
	if len(args) > 0 {
		flagValue = args[0]
	}
	b, err := resolveBoard(store, cfg, flagValue)
	if err != nil {
		return err
	}

	if boardShowJSON {
		return encodeJSONToStdout(b)
	}
	printBoardDetail(b)
	return nil
}

func runBoardUpdate(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	if !hasChangedFlags(cmd, "name", "description", "file") {
		return fmt.Errorf("at least one of --name, --description, or --file is required")
	}

	opts := board.BoardUpdateOptions{}
	if cmd.Flags().Changed("name") {
		opts.Name = &boardUpdateName
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &boardUpdateDescription
	}
	if cmd.Flags().Changed("file") {
		opts.FilePath = &boardUpdateFile
	}

	updated, err := store.UpdateBoard(args[0], opts)
	if err != nil {
		return err
	}

	fmt.Printf("Updated board %s: %s\n", updated.ID, updated.Name)
	return nil
}

func runBoardDelete(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	b, err := store.BoardByID(args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteBoard(b.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted board %s: %s\n", b.ID, b.Name)
	return nil
}

func runBoardDefault(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	if err := store.SetDefaultBoard(args[0]); err != nil {
		return err
	}
	b, err := store.BoardByID(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Default board is now %s: %s\n", b.ID, b.Name)
	return nil
}

// printBoardTable prints boards in a table format.
func printBoardTable(boards []board.Board, now time.Time) {
	if len(boards) == 0 {
		fmt.Println("No boards found.")
		return
	}

	fmt.Print(formatBoardTable(boards, now))
}

func formatBoardTable(boards []board.Board, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "TASKS", "FILE", "UPDATED"}, len(boards))

	for _, b := range boards {
		file := b.FilePath
		if file == "" {
			file = "-"
		}
		builder.AddRow([]string{
			b.ID,
			ui.TruncateTableCell(b.Name),
			fmt.Sprintf("%d", len(b.Tasks)),
			ui.TruncateTableCell(file),
			ui.FormatTimeAgeShort(b.UpdatedAt, now),
		})
	}

	return builder.String()
}
