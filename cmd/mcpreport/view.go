// cmd/mcpreport/view.go
package mcpreport

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/mcpreport/cli"
)

var startPager = cli.StartPager

// viewCmd represents the 'view' command.
var viewCmd = &cobra.Command{
	Use:   "view <run-dir>",
	Short: "Browse a generated summary in the terminal",
	Long: `The 'view' command opens the summary.md generated for a run directory in a
scrollable terminal pager. Generate the summary with 'summarize' first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startPager(args[0])
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
