package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kelvin",
	Short: "A thermodynamic task manager",
	Long: `Kelvin is a task tracker built on a thermal metaphor.

Tasks can be frozen with a thaw date; once that date arrives they start
thawing and show up in the default list. Warm a task to make it active,
burn it when it is done, cool a burned task to reopen it, and freeze any
task to snooze it again. State lives in a single local JSON file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
