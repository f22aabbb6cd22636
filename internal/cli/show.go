package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	// Persist sweep results even though show itself mutates nothing.
	if err := e.store.Save(tasks); err != nil {
		return err
	}

	t, err := task.Find(tasks, id)
	if err != nil {
		return err
	}

	printField("ID:", fmt.Sprintf("%d", t.ID))
	printField("Title:", t.Title)
	if t.Description != "" {
		printField("Description:", t.Description)
	}
	printField("State:", coloredState(t.State))
	printField("Thaw Date:", dateStr(t.ThawDate))
	printField("Due Date:", dateStr(t.DueDate))
	printField("Created:", t.CreatedAt.String())

	return nil
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", bold(fmt.Sprintf("%-14s", label)), value)
}
