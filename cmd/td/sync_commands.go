package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taskdown/taskdown/board"
	"github.com/taskdown/taskdown/internal/fileio"
	"github.com/taskdown/taskdown/internal/markdown"
)

// extract
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Pull checklist items from a Markdown file into its board",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var (
	extractBoard string
	extractJSON  bool
)

// sync
var syncCmd = &cobra.Command{
	Use:   "sync <file>",
	Short: "Merge a Markdown file with its board and write checkbox state back",
	Args:  cobra.ExactArgs(1),
	RunE:  runSync,
}

var syncBoard string

// preview
var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a Markdown file in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(extractCmd, syncCmd, previewCmd)

	extractCmd.Flags().StringVarP(&extractBoard, "board", "b", "", "Board ID or prefix (defaults to the board bound to the file)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output the merge report as JSON")

	syncCmd.Flags().StringVarP(&syncBoard, "board", "b", "", "Board ID or prefix (defaults to the board bound to the file)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	path := args[0]
	b, err := boardForExtract(store, extractBoard, path)
	if err != nil {
		return err
	}

	content, err := fileio.ReadText(path)
	if err != nil {
		return err
	}

	report, err := store.ExtractAndMerge(b.ID, content, extractOptions(cfg))
	if err != nil {
		return err
	}

	if extractJSON {
		return encodeJSONToStdout(report)
	}
	printMergeReport(b, report)
	return nil
}

func runSync(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	path := args[0]
	b, err := boardForSync(store, syncBoard, path)
	if err != nil {
		return err
	}

	content, err := fileio.ReadText(path)
	if err != nil {
		return err
	}

	// Patch before merging so the board's status survives a stale checkbox.
	patched := board.PatchMarkdown(content, b.Tasks)
	if patched != content {
		if err := fileio.WriteText(path, patched); err != nil {
			return err
		}
		fmt.Printf("Patched %s\n", path)
	}

	report, err := store.ExtractAndMerge(b.ID, patched, extractOptions(cfg))
	if err != nil {
		return err
	}

	printMergeReport(b, report)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	path := args[0]
	content, err := fileio.ReadText(path)
	if err != nil {
		return err
	}

	// With the auto-extract preference on, previewing a bound file keeps its
	// board fresh.
	if store.AutoExtract() {
		if b, err := store.BoardForFile(path); err == nil {
			if _, err := store.ExtractAndMerge(b.ID, content, extractOptions(cfg)); err != nil {
				return err
			}
		}
	}

	rendered := markdown.SafeRender(previewWidth(), 0, []byte(content))
	if len(rendered) == 0 {
		fmt.Println("(empty)")
		return nil
	}
	fmt.Print(string(rendered))
	return nil
}

const previewDefaultWidth = 80

func previewWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 1 {
		return previewDefaultWidth
	}
	return width
}

// boardForSync resolves the board a Markdown file belongs to: an explicit
// flag wins, then the file binding.
func boardForSync(store *board.Store, flagValue, path string) (*board.Board, error) {
	if flagValue != "" {
		return store.BoardByID(flagValue)
	}
	return store.BoardForFile(path)
}

// boardForExtract is boardForSync, except an unbound file gets a fresh board
// named after it.
func boardForExtract(store *board.Store, flagValue, path string) (*board.Board, error) {
	b, err := boardForSync(store, flagValue, path)
	if err == nil || !errors.Is(err, board.ErrNoBoardForFile) {
		return b, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	created, err := store.CreateBoard(name, "", path)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Created board %s: %s\n", created.ID, created.Name)
	return created, nil
}

func printMergeReport(b *board.Board, report *board.MergeReport) {
	fmt.Printf("Board %s: %d created, %d updated, %d unchanged, %d orphaned\n",
		b.Name, report.Created, report.Updated, report.Unchanged, report.Orphaned)
}
