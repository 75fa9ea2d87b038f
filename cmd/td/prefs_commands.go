package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdown/taskdown/board"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored display preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefs,
}

var (
	prefsAutoExtract bool
	prefsGroup       bool
	prefsSort        string
	prefsReverse     bool
)

func init() {
	rootCmd.AddCommand(prefsCmd)

	prefsCmd.Flags().BoolVar(&prefsAutoExtract, "auto-extract", false, "Re-run extraction when previewing a bound file")
	prefsCmd.Flags().BoolVar(&prefsGroup, "group-by-status", false, "Group task listings by status")
	prefsCmd.Flags().StringVar(&prefsSort, "sort", "", "Default task list sort key (priority, due, created, updated, title)")
	prefsCmd.Flags().BoolVar(&prefsReverse, "reverse", false, "Reverse the default sort order")
}

func runPrefs(cmd *cobra.Command, args []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("auto-extract") {
		if err := store.SetAutoExtract(prefsAutoExtract); err != nil {
			return err
		}
	}

	if hasChangedFlags(cmd, "group-by-status", "sort", "reverse") {
		display := store.Display()
		if cmd.Flags().Changed("group-by-status") {
			display.GroupByStatus = prefsGroup
		}
		if cmd.Flags().Changed("sort") {
			if prefsSort != "" && !validSortKey(prefsSort) {
				return fmt.Errorf("unknown sort key %q (priority, due, created, updated, title)", prefsSort)
			}
			display.SortBy = prefsSort
		}
		if cmd.Flags().Changed("reverse") {
			display.SortDesc = prefsReverse
		}
		if err := store.SetDisplay(display); err != nil {
			return err
		}
	}

	printPrefs(store.AutoExtract(), store.Display())
	return nil
}

func validSortKey(key string) bool {
	switch key {
	case "priority", "due", "created", "updated", "title":
		return true
	}
	return false
}

func printPrefs(autoExtract bool, display board.DisplaySettings) {
	fmt.Printf("Auto-extract:    %t\n", autoExtract)
	fmt.Printf("Group by status: %t\n", display.GroupByStatus)
	sortBy := display.SortBy
	if sortBy == "" {
		sortBy = "(board order)"
	}
	fmt.Printf("Sort:            %s\n", sortBy)
	fmt.Printf("Reverse sort:    %t\n", display.SortDesc)
}
