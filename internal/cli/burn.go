package cli

import (
	"github.com/spf13/cobra"

	"github.com/x-color/kelvin/internal/task"
)

var burnCmd = &cobra.Command{
	Use:   "burn <id>",
	Short: "Complete a task (Active/Frozen -> Done)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(args[0], "Burned", task.Burn)
	},
}

func init() {
	rootCmd.AddCommand(burnCmd)
}
