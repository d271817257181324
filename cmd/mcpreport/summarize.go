// cmd/mcpreport/summarize.go
package mcpreport

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/mcpreport/chart"
	"github.com/mwiater/mcpreport/report"
)

var (
	withChart bool
	debugDump bool
)

// summarizeCmd represents the 'summarize' command.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <run-dir>",
	Short: "Build summary.md and chart.png for a benchmark run",
	Long: `The 'summarize' command reads prompts.json plus the per-trial result and
transcript files in a run directory, and writes a markdown summary comparing
with-mcp and without-mcp trials per model. Unless disabled it also renders a
2x2 grid of comparison bar charts next to the summary.

Only a missing or unparsable prompts.json is fatal. Individual trial files
that are missing or malformed show up as N/A in the summary instead of
aborting the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runDir := args[0]

		run, err := report.LoadRun(runDir)
		if err != nil {
			return err
		}
		if viper.GetBool("debug") {
			pp.Println(run.Meta)
		}

		summaryPath, err := report.WriteSummary(run)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Summary written to %s\n", summaryPath)

		var renderer chart.Renderer = chart.Grid{}
		if !viper.GetBool("chart") {
			renderer = chart.Noop{}
		}

		chartPath := filepath.Join(runDir, report.ChartFileName)
		switch err := renderer.Render(run, chartPath); {
		case errors.Is(err, chart.ErrUnavailable):
			fmt.Fprintln(cmd.OutOrStdout(), "Chart rendering disabled -- skipping chart generation")
		case err != nil:
			// Charts are best effort; a rendering failure never fails the report.
			fmt.Fprintf(cmd.OutOrStdout(), "Could not render chart: %v\n", err)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", chartPath)
		}
		return nil
	},
}

func init() {
	// 1. Add the command to the root
	rootCmd.AddCommand(summarizeCmd)

	// 2. Define the flags
	summarizeCmd.Flags().BoolVar(&withChart, "chart", true, "render chart.png alongside the summary")
	summarizeCmd.Flags().BoolVar(&debugDump, "debug", false, "pretty-print the loaded run metadata")

	// 3. Bind the Cobra flags to Viper
	viper.BindPFlag("chart", summarizeCmd.Flags().Lookup("chart"))
	viper.BindPFlag("debug", summarizeCmd.Flags().Lookup("debug"))
}
