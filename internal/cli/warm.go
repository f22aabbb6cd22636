package cli

import (
	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var warmCmd = &cobra.Command{
	Use:   "warm <id>",
	Short: "Make a task active (Thawing/Frozen -> Active)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(args[0], "Warmed", task.Warm)
	},
}

func init() {
	rootCmd.AddCommand(warmCmd)
}
