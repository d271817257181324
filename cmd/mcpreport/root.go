// cmd/mcpreport/root.go
package mcpreport

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the mcpreport application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "mcpreport",
	Short: "Summarize MCP benchmark runs",
	Long:  `mcpreport turns a benchmark run directory into a markdown summary with comparison tables, embedded answer transcripts, and a grouped bar chart image.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
