package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var (
	listFrozen bool
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `Lists tasks. The default view shows only Thawing and Active tasks;
--frozen shows the frozen backlog and --all shows everything, Done
included. Tasks are never deleted, only filtered out of views.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFrozen, "frozen", false, "Show only frozen tasks")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show all tasks")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := newCommandEnv()
	if err != nil {
		return err
	}

	tasks, swept, err := e.loadSwept()
	if err != nil {
		return err
	}
	// List writes only when the sweep changed something.
	if swept > 0 {
		if err := e.store.Save(tasks); err != nil {
			return err
		}
	}

	var filtered []task.Task
	switch {
	case listAll:
		filtered = tasks
	case listFrozen:
		for _, t := range tasks {
			if t.State == task.StateFrozen {
				filtered = append(filtered, t)
			}
		}
	default:
		for _, t := range tasks {
			if t.State == task.StateThawing || t.State == task.StateActive {
				filtered = append(filtered, t)
			}
		}
	}

	if len(filtered) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	printTable(filtered)
	return nil
}

// Column order: ID, Task, State, Thaw Date, Due Date.
func printTable(tasks []task.Task) {
	idW := 5
	taskW := len("Task")
	for _, t := range tasks {
		if len(t.Title) > taskW {
			taskW = len(t.Title)
		}
	}
	stateW := 11 // "Thawing" plus margin
	dateW := 12  // "YYYY-MM-DD" plus margin

	fmt.Printf("%s  %s  %s  %s  %s\n",
		bold(fmt.Sprintf("%-*s", idW, "ID")),
		bold(fmt.Sprintf("%-*s", taskW, "Task")),
		bold(fmt.Sprintf("%-*s", stateW, "State")),
		bold(fmt.Sprintf("%-*s", dateW, "Thaw Date")),
		bold("Due Date"),
	)
	totalW := idW + taskW + stateW + dateW*2 + 8
	fmt.Println(strings.Repeat("─", totalW))

	for _, t := range tasks {
		fmt.Printf("%-*d  %-*s  %s  %-*s  %s\n",
			idW, t.ID,
			taskW, t.Title,
			paddedState(t.State, stateW),
			dateW, dateStr(t.ThawDate),
			dateStr(t.DueDate),
		)
	}
}
