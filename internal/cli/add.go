package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/store"
	"github.com/x-color/kelvin/internal/task"
)

var (
	addDesc string
	addThaw string
	addDue  string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Adds a new task in the Active state. With --date the task is created
Frozen instead and stays out of the default list until its thaw date.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Task description")
	addCmd.Flags().StringVarP(&addThaw, "date", "d", "", "Thaw date (e.g. 3d, 1w, 2026-03-01); creates the task frozen")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (e.g. 3d, 1w, 2026-03-01)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := args[0]
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title must not be empty")
	}

	e, err := newCommandEnv()
	if err != nil {
		return err
	}

	tasks, err := e.store.Load()
	if err != nil {
		return err
	}

	var thaw *task.Date
	if addThaw != "" {
		d, err := task.ResolveDateSpec(addThaw, e.today)
		if err != nil {
			return err
		}
		thaw = &d
	}

	var due *task.Date
	if addDue != "" {
		d, err := task.ResolveDateSpec(addDue, e.today)
		if err != nil {
			return err
		}
		due = &d
	}

	t := task.New(store.NextID(tasks), title, addDesc, thaw, due, e.today)
	tasks = append(tasks, t)

	if err := e.store.Save(tasks); err != nil {
		return err
	}

	printTaskLine("Added", &t)
	return nil
}
