package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var freezeDate string

var freezeCmd = &cobra.Command{
	Use:   "freeze <id>",
	Short: "Refreeze a task (any state -> Frozen)",
	Long: `Defers a task until a thaw date. Works from any state, so a Done task
can be snoozed back into the queue. Without --date the thaw date is
today plus the configured defaults.thaw_days.`,
	Args: cobra.ExactArgs(1),
	RunE: runFreeze,
}

func init() {
	freezeCmd.Flags().StringVarP(&freezeDate, "date", "d", "", "Thaw date (e.g. 3d, 1w, 2026-03-01)")
	rootCmd.AddCommand(freezeCmd)
}

func runFreeze(cmd *cobra.Command, args []string) error {
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

	var thaw task.Date
	if freezeDate != "" {
		thaw, err = task.ResolveDateSpec(freezeDate, e.today)
		if err != nil {
			return err
		}
	} else {
		thaw = e.today.AddDays(e.cfg.Defaults.ThawDays)
	}

	task.Freeze(t, thaw)

	if err := e.store.Save(tasks); err != nil {
		return err
	}

	fmt.Printf("Froze task %d [%s] until %s: %s\n", t.ID, t.State, thaw, t.Title)
	return nil
}
