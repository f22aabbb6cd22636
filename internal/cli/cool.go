package cli

import (
	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var coolCmd = &cobra.Command{
	Use:   "cool <id>",
	Short: "Reopen a completed task (Done -> Active)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(args[0], "Cooled", task.Cool)
	},
}

func init() {
	rootCmd.AddCommand(coolCmd)
}
