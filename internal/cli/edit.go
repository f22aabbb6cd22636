package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var (
	editTitle string
	editDesc  string
	editThaw  string
	editDue   string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing task",
	Long: `Updates the provided fields of a task. Dates accept the same specs as
add. Editing never changes the task's state; use warm, burn, cool, or
freeze for that.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "New description")
	editCmd.Flags().StringVarP(&editThaw, "date", "d", "", "New thaw date (e.g. 3d, 1w, 2026-03-01)")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (e.g. 3d, 1w, 2026-03-01)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	e, err := newCommandEnv()
	if err != nil {
		return err
	}

	tasks, _, err := e.loadSwept()
	if err != nil {
		return err
	}

	t, err := task.Find(tasks, id)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("title") {
		if strings.TrimSpace(editTitle) == "" {
			return fmt.Errorf("task title must not be empty")
		}
		t.Title = editTitle
	}
	if cmd.Flags().Changed("desc") {
		t.Description = editDesc
	}
	if cmd.Flags().Changed("date") {
		d, err := task.ResolveDateSpec(editThaw, e.today)
		if err != nil {
			return err
		}
		t.ThawDate = &d
	}
	if cmd.Flags().Changed("due") {
		d, err := task.ResolveDateSpec(editDue, e.today)
		if err != nil {
			return err
		}
		t.DueDate = &d
	}

	if err := e.store.Save(tasks); err != nil {
		return err
	}

	printTaskLine("Updated", t)
	return nil
}
